package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// THS is the true heading and status of the vehicle.
type THS struct {
	Talker Talker

	// HeadT is the heading of the vehicle, degrees true.
	HeadT *float64
	// MI is the mode indicator.
	MI *PosMode
}

// Kind implements Record.
func (*THS) Kind() Identifier { return IdentTHS }

// NewTHS decodes a THS sentence from the context.
func NewTHS(ctx *strparse.Context, talker Talker) (*THS, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	t := &THS{Talker: talker}
	t.HeadT = optF64(strparse.Take(ctx, untilComma))

	var err error
	if t.MI, err = enumField(ctx, untilStar, ParsePosMode); err != nil {
		return nil, err
	}
	return t, nil
}
