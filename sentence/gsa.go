package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// GSA is DOP and active satellites: the operating mode, the satellites
// used in the navigation solution, and the DOP values.
type GSA struct {
	Talker Talker

	// OpMode reports whether mode switching is manual or automatic.
	OpMode *OpMode
	// NavMode is the fix mode.
	NavMode *NavMode
	// SVID holds the IDs of the satellites used in the solution; the
	// wire format reserves twelve slots and empty ones are skipped.
	SVID []uint8
	// PDOP is the position dilution of precision.
	PDOP *float64
	// HDOP is the horizontal dilution of precision.
	HDOP *float64
	// VDOP is the vertical dilution of precision.
	VDOP *float64
	// SystemID identifies the constellation (NMEA 4.1+).
	SystemID *SystemID
}

// Kind implements Record.
func (*GSA) Kind() Identifier { return IdentGSA }

// NewGSA decodes a GSA sentence from the context.
func NewGSA(ctx *strparse.Context, talker Talker) (*GSA, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	g := &GSA{Talker: talker}

	var err error
	if g.OpMode, err = enumField(ctx, untilComma, ParseOpMode); err != nil {
		return nil, err
	}
	if g.NavMode, err = enumField(ctx, untilComma, ParseNavMode); err != nil {
		return nil, err
	}

	g.SVID = make([]uint8, 0, 12)
	for i := 0; i < 12; i++ {
		if id := optU8(strparse.Take(ctx, untilComma)); id != nil {
			g.SVID = append(g.SVID, *id)
		}
	}

	g.PDOP = optF64(strparse.Take(ctx, untilComma))
	g.HDOP = optF64(strparse.Take(ctx, untilComma))
	// VDOP is last on pre-4.1 receivers, so it may end at '*'.
	g.VDOP = optF64(strparse.Take(ctx, commaOrStar))

	if g.SystemID, err = enumField(ctx, untilStar, ParseSystemID); err != nil {
		return nil, err
	}
	return g, nil
}
