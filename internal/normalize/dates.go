package normalize

import (
	"fmt"
	"strings"
	"time"
)

// DateError reports a raw date value that matched none of the accepted
// layouts. The raw string is kept so the caller can log or surface it.
type DateError struct {
	Raw string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("cannot parse date %q", e.Raw)
}

// Registry exports are inconsistent about date rendering: plain ISO dates,
// ISO timestamps with and without zone, and the local day.month.year forms
// all occur.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02.01.2006",
	"02/01/2006",
}

// ParseDate parses a raw date string into a calendar date (UTC midnight).
// Time-of-day present in the source is dropped: the registry semantics of
// every date field here are calendar days.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, &DateError{Raw: raw}
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, &DateError{Raw: raw}
}

// ParseOptionalDate is ParseDate for fields where absence is fine. Empty
// input yields (nil, nil); a present but unparseable value is still an
// error rather than a silent nil.
func ParseOptionalDate(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a date the way reports expect it. The output re-parses
// under ParseDate to the same calendar day.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
