package sentence

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/coregx/nmea/internal/scan"
)

// ValidateRule checks a whole sentence for correct framing and
// checksum: a '$' prefix, a '*' delimiter, exactly two hex characters
// after it, and an XOR over the data bytes matching the transmitted
// value. It is a global rule: it reads the full sentence and does not
// advance any cursor.
//
// Hex parsing is case-insensitive; receivers emit uppercase but the
// validator does not insist on it.
type ValidateRule struct{}

// Validate is the shared instance used by every sentence constructor.
var Validate = ValidateRule{}

// Name implements strparse.Rule.
func (ValidateRule) Name() string { return "NmeaValidate" }

// Apply implements strparse.GlobalRule.
func (ValidateRule) Apply(input string) error {
	s := strings.TrimRightFunc(input, func(r rune) bool {
		return r == '\r' || r == '\n' || r == ' ' || r == '\t'
	})
	log.Trace().Str("sentence", s).Msg("validating")

	if !strings.HasPrefix(s, "$") {
		return ErrInvalidPrefix
	}

	star := scan.IndexByte(s, '*')
	if star < 0 {
		return ErrMissingChecksumDelimiter
	}

	data := s[1:star]
	checksum := s[star+1:]
	if len(checksum) != 2 {
		return ErrChecksumLength
	}

	expected, err := strconv.ParseUint(checksum, 16, 8)
	if err != nil {
		return ErrInvalidHexChecksum
	}

	var calculated byte
	for i := 0; i < len(data); i++ {
		calculated ^= data[i]
	}
	if calculated != byte(expected) {
		err := &ChecksumError{Calculated: calculated, Expected: byte(expected)}
		log.Warn().Str("sentence", s).Err(err).Msg("checksum mismatch")
		return err
	}
	log.Debug().Str("sentence", s).Msg("sentence is valid")
	return nil
}

// validateLines applies the checksum validator to every physical line
// of a reassembled multi-line sentence.
func validateLines(full string) error {
	for _, l := range strings.Split(full, "\n") {
		if l = strings.TrimRight(l, "\r"); l == "" {
			continue
		}
		if err := Validate.Apply(l); err != nil {
			return err
		}
	}
	return nil
}
