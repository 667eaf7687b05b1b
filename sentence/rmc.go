package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// RMC is the recommended minimum navigation data: position, velocity
// and time.
type RMC struct {
	Talker Talker

	// Time is the UTC time of the position fix.
	Time *TimeOfDay
	// Status reports fix validity.
	Status *Status
	// Lat is the latitude in decimal degrees, positive north.
	Lat *float64
	// Lon is the longitude in decimal degrees, positive east.
	Lon *float64
	// Spd is the speed over ground in knots.
	Spd *float64
	// Cog is the course over ground in degrees (true).
	Cog *float64
	// Date is the date of the fix.
	Date *Date
	// Mv is the magnetic variation in degrees, positive east.
	Mv *float64
	// PosMode is the FAA mode indicator.
	PosMode *PosMode
}

// Kind implements Record.
func (*RMC) Kind() Identifier { return IdentRMC }

// NewRMC decodes an RMC sentence from the context.
func NewRMC(ctx *strparse.Context, talker Talker) (*RMC, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	r := &RMC{Talker: talker}
	r.Time = opt(strparse.Take(ctx, nmeaTime))

	var err error
	if r.Status, err = enumField(ctx, untilComma, ParseStatus); err != nil {
		return nil, err
	}

	r.Lat = opt(strparse.Take(ctx, nmeaCoord))
	r.Lon = opt(strparse.Take(ctx, nmeaCoord))
	r.Spd = optF64(strparse.Take(ctx, untilComma))
	r.Cog = optF64(strparse.Take(ctx, untilComma))
	r.Date = opt(strparse.Take(ctx, nmeaDate))
	r.Mv = opt(strparse.Take(ctx, nmeaDegree))

	if r.PosMode, err = enumField(ctx, untilStar, ParsePosMode); err != nil {
		return nil, err
	}
	return r, nil
}
