package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// ZDA is time and date: UTC, day, month, year and local time zone.
type ZDA struct {
	Talker Talker

	// Time is the UTC time.
	Time *TimeOfDay
	// Day is the day of the month (1-31).
	Day *uint8
	// Month is the month of the year (1-12).
	Month *uint8
	// Year is the four-digit year.
	Year *uint16
	// Ltzh is the local zone hours offset (-13..+13).
	Ltzh *int8
	// Ltzn is the local zone minutes offset.
	Ltzn *uint8
}

// Kind implements Record.
func (*ZDA) Kind() Identifier { return IdentZDA }

// NewZDA decodes a ZDA sentence from the context.
func NewZDA(ctx *strparse.Context, talker Talker) (*ZDA, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	z := &ZDA{Talker: talker}
	z.Time = opt(strparse.Take(ctx, nmeaTime))
	z.Day = optU8(strparse.Take(ctx, untilComma))
	z.Month = optU8(strparse.Take(ctx, untilComma))
	z.Year = optU16(strparse.Take(ctx, untilComma))
	z.Ltzh = optI8(strparse.Take(ctx, untilComma))
	z.Ltzn = optU8(strparse.Take(ctx, untilStar))
	return z, nil
}
