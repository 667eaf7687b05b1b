package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// DTM is the datum reference: the local datum and its offsets from
// WGS-84.
type DTM struct {
	Talker Talker

	// Datum is the local datum code.
	Datum *Datum
	// SubDatum is the local datum subdivision code. The code is copied
	// out of the sentence because records outlive the parser context.
	SubDatum *string
	// Lat is the offset in latitude, minutes, positive north.
	Lat *float64
	// Lon is the offset in longitude, minutes, positive east.
	Lon *float64
	// Alt is the offset in altitude, meters.
	Alt *float64
}

// Kind implements Record.
func (*DTM) Kind() Identifier { return IdentDTM }

// NewDTM decodes a DTM sentence from the context.
func NewDTM(ctx *strparse.Context, talker Talker) (*DTM, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	d := &DTM{Talker: talker}

	var err error
	if d.Datum, err = enumField(ctx, untilComma, ParseDatum); err != nil {
		return nil, err
	}
	d.SubDatum = optStr(strparse.Take(ctx, untilComma))
	d.Lat = opt(strparse.Take(ctx, nmeaDegree))
	d.Lon = opt(strparse.Take(ctx, nmeaDegree))
	d.Alt = optF64(strparse.Take(ctx, untilComma))
	return d, nil
}
