// Package period parses the heterogeneous invoice date strings found in the store and
// maps them onto calendar bucket keys.
package period

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Granularity string

const (
	Year  Granularity = "year"
	Month Granularity = "month"
	Week  Granularity = "week"
	Day   Granularity = "day"
)

// Unknown is the bucket for dates no parser understands.
const Unknown = "unknown"

var ErrUnknownGranularity = errors.New("invalid period, expected one of year, month, week, day")

func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(s))); g {
	case Year, Month, Week, Day:
		return g, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGranularity, s)
}

type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

type extractor struct {
	re               *regexp.Regexp
	year, month, day int // submatch indexes
}

// Tried in order; the first structurally valid match wins.
var extractors = []extractor{
	{re: regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`), year: 1, month: 2, day: 3}, // YYYY-MM-DD
	{re: regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})`), year: 3, month: 2, day: 1}, // DD/MM/YYYY
	{re: regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})`), year: 3, month: 2, day: 1}, // DD-MM-YYYY
	{re: regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2})`), year: 1, month: 2, day: 3}, // YYYY/MM/DD
}

var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"2006-1-2",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02 Jan 2006",
}

// Parse normalises raw into a calendar date.
func Parse(raw string) (Date, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Date{}, false
	}

	for _, ex := range extractors {
		m := ex.re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		y, _ := strconv.Atoi(m[ex.year])
		mo, _ := strconv.Atoi(m[ex.month])
		d, _ := strconv.Atoi(m[ex.day])
		if valid(y, mo, d) {
			return Date{Year: y, Month: mo, Day: d}, true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, true
		}
	}
	return Date{}, false
}

func valid(y, m, d int) bool {
	if m < 1 || m > 12 || d < 1 {
		return false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return t.Month() == time.Month(m) && t.Day() == d
}

// ISO returns the YYYY-MM-DD form of raw, or "" when it cannot be parsed.
func ISO(raw string) string {
	d, ok := Parse(raw)
	if !ok {
		return ""
	}
	return d.ISO()
}

// WeekOfMonth is the coarse week index used by week buckets: day/7 + 1. It is not
// an ISO week and does not follow calendar week boundaries.
func WeekOfMonth(day int) int {
	return day/7 + 1
}

// Key returns the bucket raw falls into. Day buckets use the stored value as is.
func Key(g Granularity, raw string) string {
	if g == Day {
		return raw
	}

	d, ok := Parse(raw)
	if !ok {
		return Unknown
	}

	switch g {
	case Year:
		return fmt.Sprintf("%04d", d.Year)
	case Month:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	case Week:
		return fmt.Sprintf("%04d-%02d-W%d", d.Year, d.Month, WeekOfMonth(d.Day))
	}
	return Unknown
}

// SortKey orders buckets chronologically; unparseable dates sort before everything
// else so that they end up last in a descending listing.
func SortKey(g Granularity, raw string) string {
	if g == Day {
		return ISO(raw)
	}
	if k := Key(g, raw); k != Unknown {
		return k
	}
	return ""
}
