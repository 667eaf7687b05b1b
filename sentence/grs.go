package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// GRS is GNSS range residuals: per-satellite residuals for the most
// recent position fix.
type GRS struct {
	Talker Talker

	// Time is the UTC time of the associated fix.
	Time *TimeOfDay
	// Mode states whether the residuals were used in the fix or
	// recomputed afterwards.
	Mode *ResidualMode
	// Residuals holds the satellite residuals, meters; the wire format
	// reserves twelve slots and empty ones are skipped.
	Residuals []float64
	// SystemID identifies the constellation (NMEA 4.1+).
	SystemID *SystemID
	// SignalID identifies the signal (NMEA 4.1+).
	SignalID *uint16
}

// Kind implements Record.
func (*GRS) Kind() Identifier { return IdentGRS }

// NewGRS decodes a GRS sentence from the context.
func NewGRS(ctx *strparse.Context, talker Talker) (*GRS, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	g := &GRS{Talker: talker}
	g.Time = opt(strparse.Take(ctx, nmeaTime))

	var err error
	if g.Mode, err = enumField(ctx, untilComma, ParseResidualMode); err != nil {
		return nil, err
	}

	g.Residuals = make([]float64, 0, 12)
	for i := 0; i < 12; i++ {
		if r := optF64(strparse.Take(ctx, untilComma)); r != nil {
			g.Residuals = append(g.Residuals, *r)
		}
	}

	if g.SystemID, err = enumField(ctx, untilComma, ParseSystemID); err != nil {
		return nil, err
	}
	g.SignalID = optU16(strparse.Take(ctx, untilStar))
	return g, nil
}
