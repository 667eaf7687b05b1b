// Package sentence decodes NMEA-0183 sentences into strongly-typed
// records.
//
// Every sentence is ASCII text of the form
//
//	$<talker:2><identifier:3>,<field>,<field>,...*<checksum:2>
//
// optionally terminated by CR/LF. The checksum is the XOR of all bytes
// strictly between '$' and '*', rendered as two hex digits.
//
// Each record kind has a constructor that drives a strparse.Context
// through a fixed rule sequence. Wire fields are almost all optional,
// so record fields are pointers (or slices) and an empty field simply
// stays nil. Constructors validate the checksum first, then re-parse
// field by field; reusing one context across sentences is the expected
// pattern:
//
//	ctx := strparse.NewContext()
//	gga, err := sentence.NewGGA(ctx.Init(line), sentence.TalkerGP)
//
// Multi-line kinds (GSV, TXT) expect the reassembled concatenation the
// dispatch package produces, with per-line checksums intact.
package sentence

// Record is the common surface of every decoded sentence.
type Record interface {
	// Kind reports which sentence identifier produced the record.
	Kind() Identifier
}
