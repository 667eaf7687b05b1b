package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// TxtMessage is one line's worth of a TXT transmission.
type TxtMessage struct {
	// Type is the message severity.
	Type *TxtType
	// Text is the message payload. The payload is copied out of the
	// sentence because records outlive the parser context.
	Text *string
}

// TXT is a text transmission. A transmission spans up to 99 physical
// lines; NewTXT expects the dispatcher's reassembled concatenation and
// yields one message per line, in input order.
type TXT struct {
	Talker Talker

	// Messages holds the per-line (severity, payload) pairs.
	Messages []TxtMessage
}

// Kind implements Record.
func (*TXT) Kind() Identifier { return IdentTXT }

// NewTXT decodes a (possibly multi-line) TXT sentence from the
// context.
func NewTXT(ctx *strparse.Context, talker Talker) (*TXT, error) {
	if err := validateLines(ctx.Full()); err != nil {
		return nil, err
	}

	t := &TXT{Talker: talker}
	for line := countLines(ctx.Full()); line > 0; line-- {
		// "$xxTXT", total lines, line index.
		if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
			return nil, err
		}
		if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
			return nil, err
		}
		if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
			return nil, err
		}

		msgType, err := enumField(ctx, untilComma, ParseTxtType)
		if err != nil {
			return nil, err
		}
		text := optStr(strparse.Take(ctx, untilStar))
		t.Messages = append(t.Messages, TxtMessage{Type: msgType, Text: text})

		// Move past the checksum to the next physical line; on the
		// final line there is no newline and the cursor stays put.
		strparse.Skip(ctx, untilNewline)
	}
	return t, nil
}
