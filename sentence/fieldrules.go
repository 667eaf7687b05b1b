package sentence

import (
	"math"
	"strconv"

	"github.com/rs/zerolog/log"
)

// CoordRule reads two comma-delimited tokens: a DDDMM.MMMM number and
// a hemisphere letter, producing decimal degrees. Southern and western
// hemispheres negate the value. A missing number or empty hemisphere
// yields no value while still consuming both fields, so the cursor
// lands on the next field either way.
type CoordRule struct{}

// Name implements strparse.Rule.
func (CoordRule) Name() string { return "NmeaCoord" }

// Apply implements strparse.FlowRule.
func (CoordRule) Apply(input string) (float64, bool, string) {
	num, numOK, rest := untilComma.Apply(input)
	hemi, hemiOK, rest := untilComma.Apply(rest)
	if !numOK || !hemiOK {
		return 0, false, rest
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false, rest
	}
	switch hemi {
	case "N", "E":
		return toDecimalDegrees(v), true, rest
	case "S", "W":
		return -toDecimalDegrees(v), true, rest
	}
	// Empty or unrecognized hemisphere.
	return 0, false, rest
}

// toDecimalDegrees converts DDDMM.MMMM to decimal degrees:
// the integer hundreds are degrees, the rest is minutes.
func toDecimalDegrees(v float64) float64 {
	deg := math.Floor(v / 100)
	min := v - deg*100
	return deg + min/60
}

// DegreeRule reads two comma-delimited tokens: a plain decimal number
// and a sign letter (N/E positive, S/W negative). Unlike CoordRule
// there is no minutes conversion; magnetic variation is already in
// degrees.
type DegreeRule struct{}

// Name implements strparse.Rule.
func (DegreeRule) Name() string { return "NmeaDegree" }

// Apply implements strparse.FlowRule.
func (DegreeRule) Apply(input string) (float64, bool, string) {
	num, numOK, rest := untilComma.Apply(input)
	sign, signOK, rest := untilComma.Apply(rest)
	if !numOK || !signOK {
		return 0, false, rest
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false, rest
	}
	switch sign {
	case "N", "E":
		return v, true, rest
	case "S", "W":
		return -v, true, rest
	}
	return 0, false, rest
}

// TimeRule reads one comma-delimited hhmmss[.sss] token. Digits after
// position six are the fraction; they scale to nanoseconds by
// 10^(9-digits).
type TimeRule struct{}

// Name implements strparse.Rule.
func (TimeRule) Name() string { return "NmeaTime" }

// Apply implements strparse.FlowRule.
func (TimeRule) Apply(input string) (TimeOfDay, bool, string) {
	tok, ok, rest := untilComma.Apply(input)
	if !ok || tok == "" {
		return TimeOfDay{}, false, rest
	}

	var nanos int64
	if len(tok) >= 7 {
		frac := tok[7:]
		digits := len(frac)
		v, err := strconv.ParseUint(frac, 10, 64)
		if err != nil {
			// Covers a bare trailing separator with no digits after it.
			return TimeOfDay{}, false, rest
		}
		if digits <= 9 {
			nanos = int64(v) * pow10(9-digits)
		} else {
			nanos = int64(v / uint64(pow10(digits-9)))
		}
	}

	hour, err1 := atoiField(tok, 0, 2)
	minute, err2 := atoiField(tok, 2, 4)
	second, err3 := atoiField(tok, 4, 6)
	if err1 != nil || err2 != nil || err3 != nil {
		return TimeOfDay{}, false, rest
	}

	t, valid := NewTimeOfDay(hour, minute, second, nanos)
	if !valid {
		log.Debug().Str("token", tok).Msg("NmeaTime: out-of-range time")
		return TimeOfDay{}, false, rest
	}
	return t, true, rest
}

// DateRule reads one comma-delimited ddmmyy token. The two-digit year
// maps into 2000..2099 and the full date is validated against the
// calendar.
type DateRule struct{}

// Name implements strparse.Rule.
func (DateRule) Name() string { return "NmeaDate" }

// Apply implements strparse.FlowRule.
func (DateRule) Apply(input string) (Date, bool, string) {
	tok, ok, rest := untilComma.Apply(input)
	if !ok {
		return Date{}, false, input
	}

	day, err1 := atoiField(tok, 0, 2)
	month, err2 := atoiField(tok, 2, 4)
	year, err3 := atoiField(tok, 4, 6)
	if err1 != nil || err2 != nil || err3 != nil {
		return Date{}, false, rest
	}

	d, valid := NewDate(year+2000, month, day)
	if !valid {
		log.Debug().Str("token", tok).Msg("NmeaDate: invalid calendar date")
		return Date{}, false, rest
	}
	return d, true, rest
}

// atoiField parses tok[from:to] as a decimal number, failing when the
// token is too short.
func atoiField(tok string, from, to int) (int, error) {
	if len(tok) < to {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseUint(tok[from:to], 10, 32)
	return int(v), err
}

func pow10(n int) int64 {
	out := int64(1)
	for ; n > 0; n-- {
		out *= 10
	}
	return out
}

// Shared instances for the sentence constructors.
var (
	nmeaCoord  = CoordRule{}
	nmeaDegree = DegreeRule{}
	nmeaTime   = TimeRule{}
	nmeaDate   = DateRule{}
)
