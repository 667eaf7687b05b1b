package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// GLL is geographic position (latitude/longitude) with the time of the
// position fix and status.
type GLL struct {
	Talker Talker

	// Lat is the latitude in decimal degrees, positive north.
	Lat *float64
	// Lon is the longitude in decimal degrees, positive east.
	Lon *float64
	// Time is the UTC time of the position fix.
	Time *TimeOfDay
	// Status reports data validity.
	Status *Status
	// PosMode is the FAA mode indicator.
	PosMode *PosMode
}

// Kind implements Record.
func (*GLL) Kind() Identifier { return IdentGLL }

// NewGLL decodes a GLL sentence from the context.
func NewGLL(ctx *strparse.Context, talker Talker) (*GLL, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	g := &GLL{Talker: talker}
	g.Lat = opt(strparse.Take(ctx, nmeaCoord))
	g.Lon = opt(strparse.Take(ctx, nmeaCoord))
	g.Time = opt(strparse.Take(ctx, nmeaTime))

	var err error
	if g.Status, err = enumField(ctx, untilComma, ParseStatus); err != nil {
		return nil, err
	}
	if g.PosMode, err = enumField(ctx, untilStar, ParsePosMode); err != nil {
		return nil, err
	}
	return g, nil
}
