package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// The four poll sentences share one wire shape: a single message-ID
// field naming the standard sentence whose transmission is requested.

// GBQ polls a standard message (talker GB).
type GBQ struct {
	Talker Talker
	// MsgID names the message to be polled.
	MsgID *string
}

// Kind implements Record.
func (*GBQ) Kind() Identifier { return IdentGBQ }

// NewGBQ decodes a GBQ sentence from the context.
func NewGBQ(ctx *strparse.Context, talker Talker) (*GBQ, error) {
	id, err := pollMsgID(ctx)
	if err != nil {
		return nil, err
	}
	return &GBQ{Talker: talker, MsgID: id}, nil
}

// GLQ polls a standard message (talker GL).
type GLQ struct {
	Talker Talker
	// MsgID names the message to be polled.
	MsgID *string
}

// Kind implements Record.
func (*GLQ) Kind() Identifier { return IdentGLQ }

// NewGLQ decodes a GLQ sentence from the context.
func NewGLQ(ctx *strparse.Context, talker Talker) (*GLQ, error) {
	id, err := pollMsgID(ctx)
	if err != nil {
		return nil, err
	}
	return &GLQ{Talker: talker, MsgID: id}, nil
}

// GNQ polls a standard message (talker GN).
type GNQ struct {
	Talker Talker
	// MsgID names the message to be polled.
	MsgID *string
}

// Kind implements Record.
func (*GNQ) Kind() Identifier { return IdentGNQ }

// NewGNQ decodes a GNQ sentence from the context.
func NewGNQ(ctx *strparse.Context, talker Talker) (*GNQ, error) {
	id, err := pollMsgID(ctx)
	if err != nil {
		return nil, err
	}
	return &GNQ{Talker: talker, MsgID: id}, nil
}

// GPQ polls a standard message (talker GP).
type GPQ struct {
	Talker Talker
	// MsgID names the message to be polled.
	MsgID *string
}

// Kind implements Record.
func (*GPQ) Kind() Identifier { return IdentGPQ }

// NewGPQ decodes a GPQ sentence from the context.
func NewGPQ(ctx *strparse.Context, talker Talker) (*GPQ, error) {
	id, err := pollMsgID(ctx)
	if err != nil {
		return nil, err
	}
	return &GPQ{Talker: talker, MsgID: id}, nil
}

func pollMsgID(ctx *strparse.Context) (*string, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}
	return optStr(strparse.Take(ctx, untilStar)), nil
}
