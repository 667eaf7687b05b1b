package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// DHV carries 3D speed components (meters/second).
type DHV struct {
	Talker Talker

	// Time is the UTC time of the fix this sentence belongs to.
	Time *TimeOfDay
	// Speed3D is the 3D speed.
	Speed3D *float64
	// SpeedX is the speed in the X direction.
	SpeedX *float64
	// SpeedY is the speed in the Y direction.
	SpeedY *float64
	// SpeedZ is the speed in the Z direction.
	SpeedZ *float64
	// GdSpd is the ground speed.
	GdSpd *float64
}

// Kind implements Record.
func (*DHV) Kind() Identifier { return IdentDHV }

// NewDHV decodes a DHV sentence from the context.
func NewDHV(ctx *strparse.Context, talker Talker) (*DHV, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	d := &DHV{Talker: talker}
	d.Time = opt(strparse.Take(ctx, nmeaTime))
	d.Speed3D = optF64(strparse.Take(ctx, untilComma))
	d.SpeedX = optF64(strparse.Take(ctx, untilComma))
	d.SpeedY = optF64(strparse.Take(ctx, untilComma))
	d.SpeedZ = optF64(strparse.Take(ctx, untilComma))
	d.GdSpd = optF64(strparse.Take(ctx, untilStar))
	return d, nil
}
