package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// VTG is track made good and ground speed. Each value is followed by a
// unit/reference field (T, M, N, K) which is skipped.
type VTG struct {
	Talker Talker

	// CogT is the course over ground, degrees true.
	CogT *float64
	// CogM is the course over ground, degrees magnetic.
	CogM *float64
	// SogN is the speed over ground in knots.
	SogN *float64
	// SogK is the speed over ground in km/h.
	SogK *float64
	// PosMode is the FAA mode indicator.
	PosMode *PosMode
}

// Kind implements Record.
func (*VTG) Kind() Identifier { return IdentVTG }

// NewVTG decodes a VTG sentence from the context.
func NewVTG(ctx *strparse.Context, talker Talker) (*VTG, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	v := &VTG{Talker: talker}
	v.CogT = optF64(strparse.Take(ctx, untilComma))
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}
	v.CogM = optF64(strparse.Take(ctx, untilComma))
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}
	v.SogN = optF64(strparse.Take(ctx, untilComma))
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}
	v.SogK = optF64(strparse.Take(ctx, untilComma))
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	var err error
	if v.PosMode, err = enumField(ctx, untilStar, ParsePosMode); err != nil {
		return nil, err
	}
	return v, nil
}
