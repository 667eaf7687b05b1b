// Package nmea is a streaming NMEA-0183 parser.
//
// The package ties three layers together:
//
//   - strparse: a composable, zero-copy rule engine over strings
//   - sentence: checksummed decoders for twenty sentence kinds
//   - dispatch: classification and multi-line reassembly
//
// Basic usage, one line at a time:
//
//	d := dispatch.New()
//	ctx := strparse.NewContext()
//	for line := range lines {
//	    talker, ident, full, ok := d.Dispatch(line)
//	    if !ok {
//	        continue // buffered or dropped
//	    }
//	    rec, err := nmea.Decode(ctx, talker, ident, full)
//	    ...
//	}
//
// Or, for a batch of lines, DecodeAll drives the dispatcher and
// decoder in one call and aggregates per-sentence failures.
package nmea

import (
	"github.com/hashicorp/go-multierror"

	"github.com/coregx/nmea/dispatch"
	"github.com/coregx/nmea/sentence"
	"github.com/coregx/nmea/strparse"
)

// Record is a decoded sentence; see the sentence package for the
// concrete types.
type Record = sentence.Record

// Classify reports the talker and identifier of a raw sentence without
// decoding it.
func Classify(s string) (sentence.Talker, sentence.Identifier, error) {
	talker, err := sentence.ParseTalker(s)
	if err != nil {
		return 0, 0, err
	}
	ident, err := sentence.ParseIdentifier(s)
	if err != nil {
		return 0, 0, err
	}
	return talker, ident, nil
}

// Decode parses one complete sentence — for multi-line kinds, the
// dispatcher's reassembled concatenation — into its typed record. The
// context is reinitialized with the sentence; reusing one context
// across calls keeps allocation flat.
func Decode(ctx *strparse.Context, talker sentence.Talker, ident sentence.Identifier, full string) (Record, error) {
	ctx.Init(full)
	switch ident {
	case sentence.IdentDHV:
		return sentence.NewDHV(ctx, talker)
	case sentence.IdentDTM:
		return sentence.NewDTM(ctx, talker)
	case sentence.IdentGBQ:
		return sentence.NewGBQ(ctx, talker)
	case sentence.IdentGBS:
		return sentence.NewGBS(ctx, talker)
	case sentence.IdentGGA:
		return sentence.NewGGA(ctx, talker)
	case sentence.IdentGLL:
		return sentence.NewGLL(ctx, talker)
	case sentence.IdentGLQ:
		return sentence.NewGLQ(ctx, talker)
	case sentence.IdentGNQ:
		return sentence.NewGNQ(ctx, talker)
	case sentence.IdentGNS:
		return sentence.NewGNS(ctx, talker)
	case sentence.IdentGPQ:
		return sentence.NewGPQ(ctx, talker)
	case sentence.IdentGRS:
		return sentence.NewGRS(ctx, talker)
	case sentence.IdentGSA:
		return sentence.NewGSA(ctx, talker)
	case sentence.IdentGST:
		return sentence.NewGST(ctx, talker)
	case sentence.IdentGSV:
		return sentence.NewGSV(ctx, talker)
	case sentence.IdentRMC:
		return sentence.NewRMC(ctx, talker)
	case sentence.IdentTHS:
		return sentence.NewTHS(ctx, talker)
	case sentence.IdentTXT:
		return sentence.NewTXT(ctx, talker)
	case sentence.IdentVLW:
		return sentence.NewVLW(ctx, talker)
	case sentence.IdentVTG:
		return sentence.NewVTG(ctx, talker)
	case sentence.IdentZDA:
		return sentence.NewZDA(ctx, talker)
	}
	return nil, sentence.ErrUnknownIdentifier
}

// DecodeAll drives a fresh dispatcher over lines and decodes every
// sentence that completes. Unclassifiable lines are dropped by the
// dispatcher as usual; sentences that classify but fail to decode
// contribute to the aggregated error while the remaining records are
// still returned.
func DecodeAll(lines []string) ([]Record, error) {
	d := dispatch.New()
	ctx := strparse.NewContext()

	var records []Record
	var errs *multierror.Error
	for _, line := range lines {
		talker, ident, full, ok := d.Dispatch(line)
		if !ok {
			continue
		}
		rec, err := Decode(ctx, talker, ident, full)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		records = append(records, rec)
	}
	return records, errs.ErrorOrNil()
}
