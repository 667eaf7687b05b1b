package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// GGA is Global Positioning System fix data: time, position and fix
// related data for a GNSS receiver.
//
// References:
//   - https://gpsd.gitlab.io/gpsd/NMEA.html#_gga_global_positioning_system_fix_data
type GGA struct {
	Talker Talker

	// Time is the UTC of this position report.
	Time *TimeOfDay
	// Lat is the latitude in decimal degrees, positive north.
	Lat *float64
	// Lon is the longitude in decimal degrees, positive east.
	Lon *float64
	// Quality is the quality indicator for the position fix.
	Quality *Quality
	// NumSV is the number of satellites used (0-12).
	NumSV *uint8
	// HDOP is the horizontal dilution of precision.
	HDOP *float64
	// Alt is the antenna altitude above mean sea level, meters.
	Alt *float64
	// Sep is the geoidal separation, meters; negative means the geoid
	// is below the WGS-84 ellipsoid.
	Sep *float64
	// DiffAge is the age of differential corrections in seconds; nil
	// when DGPS is not in use.
	DiffAge *float64
	// DiffStation is the differential reference station ID (0-1023).
	DiffStation *uint16
}

// Kind implements Record.
func (*GGA) Kind() Identifier { return IdentGGA }

// NewGGA decodes a GGA sentence from the context.
func NewGGA(ctx *strparse.Context, talker Talker) (*GGA, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	g := &GGA{Talker: talker}
	g.Time = opt(strparse.Take(ctx, nmeaTime))
	g.Lat = opt(strparse.Take(ctx, nmeaCoord))
	g.Lon = opt(strparse.Take(ctx, nmeaCoord))

	var err error
	if g.Quality, err = enumField(ctx, untilComma, ParseQuality); err != nil {
		return nil, err
	}

	g.NumSV = optU8(strparse.Take(ctx, untilComma))
	g.HDOP = optF64(strparse.Take(ctx, untilComma))
	g.Alt = optF64(strparse.Take(ctx, untilComma))

	// Altitude unit field, always "M".
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	g.Sep = optF64(strparse.Take(ctx, untilComma))

	// Separation unit field, always "M".
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	g.DiffAge = optF64(strparse.Take(ctx, untilComma))
	g.DiffStation = optU16(strparse.Take(ctx, untilStar))
	return g, nil
}
