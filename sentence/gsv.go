package sentence

import (
	"fmt"
	"strings"

	"github.com/coregx/nmea/strparse"
)

// Satellite is a single satellite entry in a GSV sentence.
type Satellite struct {
	// SVID is the satellite ID, typically 1-32.
	SVID *uint16
	// Elv is the elevation in degrees (0-90).
	Elv *uint8
	// Az is the azimuth in degrees (0-359).
	Az *uint16
	// Cno is the carrier-to-noise ratio in dBHz.
	Cno *uint8
}

// GSV is satellites in view. A GSV report spans up to several physical
// lines; NewGSV expects the dispatcher's reassembled concatenation and
// yields the satellites in wire order.
type GSV struct {
	Talker Talker

	// Satellites holds every satellite of the report, in the order the
	// lines carried them.
	Satellites []Satellite
	// SignalID is the NMEA 4.1+ signal identifier trailing the last
	// satellite.
	SignalID *uint16
}

// Kind implements Record.
func (*GSV) Kind() Identifier { return IdentGSV }

// NewGSV decodes a (possibly multi-line) GSV sentence from the
// context.
func NewGSV(ctx *strparse.Context, talker Talker) (*GSV, error) {
	// Each physical line carries its own checksum.
	if err := validateLines(ctx.Full()); err != nil {
		return nil, err
	}

	lineCount := countLines(ctx.Full())

	// Header of the first line: "$xxGSV", total lines, line index,
	// then the total satellite count.
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}
	countTok, err := strparse.TakeStrict(ctx, untilComma)
	if err != nil {
		return nil, err
	}
	n := optU8(countTok, true)
	if n == nil {
		return nil, fmt.Errorf("invalid satellite count %q", countTok)
	}
	satCount := int(*n)

	// Full lines carry four satellites; the last line carries the
	// remainder, or four when the count divides evenly.
	lastLineCount := satCount % 4
	if lastLineCount == 0 && satCount != 0 {
		lastLineCount = 4
	}

	g := &GSV{Talker: talker, Satellites: make([]Satellite, 0, satCount)}

	for line := 0; line < lineCount-1; line++ {
		for i := 0; i < 3; i++ {
			g.Satellites = append(g.Satellites, parseSatellite(ctx, false))
		}
		g.Satellites = append(g.Satellites, parseSatellite(ctx, true))
		// Step over the checksum remnant and the next line's header:
		// count and index fields plus the repeated total.
		strparse.Skip(ctx, untilComma)
		strparse.Skip(ctx, untilComma)
		strparse.Skip(ctx, untilComma)
		strparse.Skip(ctx, untilComma)
	}

	if lastLineCount != 0 {
		for i := 0; i < lastLineCount-1; i++ {
			g.Satellites = append(g.Satellites, parseSatellite(ctx, false))
		}
		g.Satellites = append(g.Satellites, parseSatellite(ctx, true))
	}

	g.SignalID = optU16(strparse.Take(ctx, commaOrStar))
	return g, nil
}

// parseSatellite reads one (svid, elv, az, cno) quadruple. The last
// satellite of a physical line ends at either ',' (a trailing signal
// ID follows) or '*' (the checksum follows), so its cno field uses the
// two-delimiter rule.
func parseSatellite(ctx *strparse.Context, lastInLine bool) Satellite {
	var s Satellite
	s.SVID = optU16(strparse.Take(ctx, untilComma))
	s.Elv = optU8(strparse.Take(ctx, untilComma))
	s.Az = optU16(strparse.Take(ctx, untilComma))
	if lastInLine {
		s.Cno = optU8(strparse.Take(ctx, commaOrStar))
	} else {
		s.Cno = optU8(strparse.Take(ctx, untilComma))
	}
	return s
}

// countLines counts the physical sentences in a reassembled blob.
func countLines(full string) int {
	n := 0
	for _, l := range strings.Split(full, "\n") {
		if strings.TrimRight(l, "\r") != "" {
			n++
		}
	}
	return n
}
