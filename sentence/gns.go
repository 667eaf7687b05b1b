package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// GNS is GNSS fix data, the multi-constellation counterpart of GGA.
type GNS struct {
	Talker Talker

	// Time is the UTC time of the position fix.
	Time *TimeOfDay
	// Lat is the latitude in decimal degrees, positive north.
	Lat *float64
	// Lon is the longitude in decimal degrees, positive east.
	Lon *float64
	// PosMode holds one FAA mode per constellation (GPS, GLONASS,
	// Galileo, BeiDou in NMEA order); characters that decode to no
	// known mode are skipped.
	PosMode []PosMode
	// NumSV is the number of satellites in use.
	NumSV *uint8
	// HDOP is the horizontal dilution of precision.
	HDOP *float64
	// Alt is the altitude above mean sea level, meters.
	Alt *float64
	// Sep is the geoidal separation, meters.
	Sep *float64
	// DiffAge is the age of differential corrections, seconds.
	DiffAge *float64
	// DiffStation is the differential reference station ID.
	DiffStation *uint16
	// NavStatus is the navigational status indicator (NMEA 4.1+).
	NavStatus *NavStatus
}

// Kind implements Record.
func (*GNS) Kind() Identifier { return IdentGNS }

// NewGNS decodes a GNS sentence from the context.
func NewGNS(ctx *strparse.Context, talker Talker) (*GNS, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	g := &GNS{Talker: talker}
	g.Time = opt(strparse.Take(ctx, nmeaTime))
	g.Lat = opt(strparse.Take(ctx, nmeaCoord))
	g.Lon = opt(strparse.Take(ctx, nmeaCoord))

	modeStr, err := strparse.TakeStrict(ctx, untilComma)
	if err != nil {
		return nil, err
	}
	for _, c := range modeStr {
		if m, err := posModeOf(c); err == nil {
			g.PosMode = append(g.PosMode, m)
		}
	}

	g.NumSV = optU8(strparse.Take(ctx, untilComma))
	g.HDOP = optF64(strparse.Take(ctx, untilComma))
	g.Alt = optF64(strparse.Take(ctx, commaOrStar))
	g.Sep = optF64(strparse.Take(ctx, commaOrStar))
	g.DiffAge = optF64(strparse.Take(ctx, commaOrStar))
	g.DiffStation = optU16(strparse.Take(ctx, commaOrStar))

	if g.NavStatus, err = enumField(ctx, untilStar, ParseNavStatus); err != nil {
		return nil, err
	}
	return g, nil
}
