package dayrange

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned for date input the package cannot parse.
// Handlers surface it as a bad-request response.
var ErrInvalidDate = errors.New("invalid date")

// DefaultOffsetMinutes is the fixed UTC offset for Asia/Colombo (+05:30).
const DefaultOffsetMinutes = 330

// Range bounds one calendar day of the company timezone in UTC.
type Range struct {
	Start time.Time // inclusive, UTC
	End   time.Time // inclusive, UTC, last millisecond of the day
	Label string    // YYYY-MM-DD in the company timezone
}

// Contains reports whether t falls inside the day window.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Normalize resolves a date input against a fixed UTC offset (in minutes)
// and returns the UTC instants bounding that calendar day.
//
// input may be empty (meaning now), "YYYY-MM-DD", or RFC3339. A fixed
// offset is used instead of IANA timezone rules, so the result is only
// correct for zones without daylight-saving transitions.
func Normalize(input string, offsetMinutes int) (Range, error) {
	return NormalizeAt(input, offsetMinutes, time.Now())
}

// NormalizeAt is Normalize with an explicit reference instant for the
// empty-input case.
func NormalizeAt(input string, offsetMinutes int, now time.Time) (Range, error) {
	loc := time.FixedZone("", offsetMinutes*60)

	var t time.Time
	switch {
	case input == "":
		t = now.In(loc)
	default:
		parsed, err := time.ParseInLocation("2006-01-02", input, loc)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, input)
			if err != nil {
				return Range{}, ErrInvalidDate
			}
		}
		t = parsed.In(loc)
	}

	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return Range{
		Start: midnight.UTC(),
		End:   midnight.Add(24*time.Hour - time.Millisecond).UTC(),
		Label: midnight.Format("2006-01-02"),
	}, nil
}

// MonthRange bounds a calendar month the same way Normalize bounds a day.
func MonthRange(year int, month int, offsetMinutes int) (Range, error) {
	if year < 1 || month < 1 || month > 12 {
		return Range{}, ErrInvalidDate
	}
	loc := time.FixedZone("", offsetMinutes*60)
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)
	return Range{
		Start: first.UTC(),
		End:   next.Add(-time.Millisecond).UTC(),
		Label: first.Format("2006-01"),
	}, nil
}
