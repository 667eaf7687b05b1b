package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// VLW is dual ground/water distance. Each distance is followed by a
// unit field ("N" for nautical miles) which is skipped.
type VLW struct {
	Talker Talker

	// TWD is the total cumulative water distance.
	TWD *float64
	// WD is the water distance since reset.
	WD *float64
	// TGD is the total cumulative ground distance.
	TGD *float64
	// GD is the ground distance since reset.
	GD *float64
}

// Kind implements Record.
func (*VLW) Kind() Identifier { return IdentVLW }

// NewVLW decodes a VLW sentence from the context.
func NewVLW(ctx *strparse.Context, talker Talker) (*VLW, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	v := &VLW{Talker: talker}
	v.TWD = optF64(strparse.Take(ctx, untilComma))
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}
	v.WD = optF64(strparse.Take(ctx, untilComma))
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}
	v.TGD = optF64(strparse.Take(ctx, untilComma))
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}
	v.GD = optF64(strparse.Take(ctx, untilComma))
	return v, nil
}
