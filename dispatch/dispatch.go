// Package dispatch classifies incoming NMEA lines and reassembles
// multi-line sentences.
//
// A Dispatcher accepts one physical line at a time. Single-line kinds
// pass straight through; the multi-line kinds (GSV, TXT) are buffered
// per (talker, identifier) key until their final part arrives, then
// emitted as one concatenated sentence. Checksums are never inspected
// here; that is the decoder's job. A malformed line is logged and
// dropped — one bad line must not tear down a stream.
package dispatch

import (
	"strconv"
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/rs/zerolog/log"

	"github.com/coregx/nmea/sentence"
)

// headerFilter rejects lines that cannot contain a known sentence
// identifier before the fixed-offset classification runs. The
// automaton holds all twenty identifier codes; a line with no hit
// cannot classify, so the miss path skips the per-code comparison.
// Classification semantics are unchanged: a hit still goes through
// sentence.ParseIdentifier.
var headerFilter = buildHeaderFilter()

func buildHeaderFilter() *ahocorasick.Automaton {
	builder := ahocorasick.NewBuilder()
	for id := sentence.IdentDHV; id <= sentence.IdentZDA; id++ {
		builder.AddPattern([]byte(id.String()))
	}
	auto, err := builder.Build()
	if err != nil {
		// The pattern set is a compile-time constant; a build failure
		// is a programming error.
		panic("dispatch: building header filter: " + err.Error())
	}
	return auto
}

type key struct {
	talker sentence.Talker
	ident  sentence.Identifier
}

// Dispatcher groups sentences, handling both single- and multi-line
// kinds. The zero value is not ready for use; call New.
//
// A Dispatcher is exclusively owned by its caller and not safe for
// concurrent use. Dropping it drops all in-progress buffers.
type Dispatcher struct {
	buffer map[key]string
}

// New returns an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{buffer: make(map[key]string)}
}

// Dispatch feeds one physical line (including its trailing newline,
// when present) into the dispatcher. It returns the classified talker
// and identifier together with a complete sentence and ok == true when
// a sentence is ready: immediately for single-line kinds, and on the
// final part for multi-line kinds. Lines that fail classification or
// carry malformed multi-line metadata are dropped with a warning.
func (d *Dispatcher) Dispatch(line string) (sentence.Talker, sentence.Identifier, string, bool) {
	if m := headerFilter.Find([]byte(line), 0); m == nil {
		log.Warn().Str("line", line).Msg("no known identifier in line, dropping")
		return 0, 0, "", false
	}

	talker, err := sentence.ParseTalker(line)
	if err != nil {
		log.Warn().Err(err).Str("line", line).Msg("dropping unclassifiable line")
		return 0, 0, "", false
	}
	ident, err := sentence.ParseIdentifier(line)
	if err != nil {
		log.Warn().Err(err).Str("line", line).Msg("dropping unclassifiable line")
		return 0, 0, "", false
	}

	if !ident.Multiline() {
		return talker, ident, line, true
	}
	return d.reassemble(talker, ident, line)
}

// reassemble runs the multi-line state machine for one GSV or TXT
// part. The part's second and third comma-delimited fields are the
// total line count and this part's 1-based index.
func (d *Dispatcher) reassemble(talker sentence.Talker, ident sentence.Identifier, line string) (sentence.Talker, sentence.Identifier, string, bool) {
	total, index, ok := multilineMeta(line)
	if !ok {
		log.Warn().Str("line", line).Msg("malformed multi-line metadata, dropping")
		return 0, 0, "", false
	}

	k := key{talker: talker, ident: ident}
	_, buffered := d.buffer[k]

	switch {
	case index == 1 && total == 1:
		// A complete single-part transmission; a stale buffer for the
		// key is superseded.
		delete(d.buffer, k)
		return talker, ident, line, true

	case index == 1:
		if buffered {
			log.Warn().
				Stringer("talker", talker).
				Stringer("identifier", ident).
				Msg("newer first part arrived, replacing unfinished buffer")
		}
		d.buffer[k] = line
		return 0, 0, "", false

	case !buffered:
		log.Warn().
			Stringer("talker", talker).
			Stringer("identifier", ident).
			Str("line", line).
			Msg("part without a first line, dropping")
		return 0, 0, "", false

	case index == total:
		combined := d.buffer[k] + line
		delete(d.buffer, k)
		log.Debug().
			Stringer("talker", talker).
			Stringer("identifier", ident).
			Msg("multi-line sentence complete")
		return talker, ident, combined, true

	default:
		d.buffer[k] += line
		return 0, 0, "", false
	}
}

// multilineMeta extracts the (total, index) pair from a multi-line
// part.
func multilineMeta(line string) (total, index int, ok bool) {
	parts := strings.Split(line, ",")
	if len(parts) < 3 {
		return 0, 0, false
	}
	total, err1 := strconv.Atoi(parts[1])
	index, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || total < 1 || index < 1 {
		return 0, 0, false
	}
	return total, index, true
}
