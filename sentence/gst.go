package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// GST is GNSS pseudorange noise statistics.
type GST struct {
	Talker Talker

	// Time is the UTC time of the associated fix.
	Time *TimeOfDay
	// RMS is the RMS value of the pseudorange residuals.
	RMS *float64
	// StdMajor is the standard deviation of the error ellipse
	// semi-major axis, meters.
	StdMajor *float64
	// StdMinor is the standard deviation of the error ellipse
	// semi-minor axis, meters.
	StdMinor *float64
	// Orient is the orientation of the semi-major axis, degrees true.
	Orient *float64
	// StdLat is the standard deviation of the latitude error, meters.
	StdLat *float64
	// StdLon is the standard deviation of the longitude error, meters.
	StdLon *float64
	// StdAlt is the standard deviation of the altitude error, meters.
	StdAlt *float64
}

// Kind implements Record.
func (*GST) Kind() Identifier { return IdentGST }

// NewGST decodes a GST sentence from the context.
func NewGST(ctx *strparse.Context, talker Talker) (*GST, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	g := &GST{Talker: talker}
	g.Time = opt(strparse.Take(ctx, nmeaTime))
	g.RMS = optF64(strparse.Take(ctx, untilComma))
	g.StdMajor = optF64(strparse.Take(ctx, untilComma))
	g.StdMinor = optF64(strparse.Take(ctx, untilComma))
	g.Orient = optF64(strparse.Take(ctx, untilComma))
	g.StdLat = optF64(strparse.Take(ctx, untilComma))
	g.StdLon = optF64(strparse.Take(ctx, untilComma))
	g.StdAlt = optF64(strparse.Take(ctx, untilStar))
	return g, nil
}
