package labelparse

import (
	"regexp"
	"strings"
	"time"
)

// dateMatcher reads one date shape from label text. A match that does not
// parse to a real calendar date is reported as a miss.
type dateMatcher struct {
	re      *regexp.Regexp
	layouts []string
}

var (
	monthDayYearLayouts = []string{"January 2, 2006", "Jan 2, 2006", "January 2 2006", "Jan 2 2006"}

	// dateMatchers run in priority order; the first valid date wins.
	dateMatchers = []dateMatcher{
		{
			re:      regexp.MustCompile(`(?m)^[ \t]*(\d{1,2}/\d{1,2}/\d{4})\b`),
			layouts: []string{"1/2/2006"},
		},
		{
			re:      regexp.MustCompile(`(?m)^[ \t]*(\d{4}-\d{2}-\d{2})\b`),
			layouts: []string{"2006-01-02"},
		},
		{
			re:      regexp.MustCompile(`(?m)^[ \t]*([A-Za-z]{3,9}\.?[ \t]+\d{1,2},?[ \t]+\d{4})\b`),
			layouts: monthDayYearLayouts,
		},
		{
			re: regexp.MustCompile(`(?i)return[ \t]+(?:by|before)[ \t]*:?[ \t]*` +
				`(\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2}|[A-Za-z]{3,9}\.?[ \t]+\d{1,2},?[ \t]+\d{4})`),
			layouts: append([]string{"1/2/2006", "2006-01-02"}, monthDayYearLayouts...),
		},
		{
			re: regexp.MustCompile(`(?i)deadline[ \t]*:?[ \t]*` +
				`(\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2}|[A-Za-z]{3,9}\.?[ \t]+\d{1,2},?[ \t]+\d{4})`),
			layouts: append([]string{"1/2/2006", "2006-01-02"}, monthDayYearLayouts...),
		},
	}
)

// findReturnByDate returns the first valid date found in text, as midnight UTC.
func findReturnByDate(text string) *time.Time {
	for _, m := range dateMatchers {
		if d, ok := m.match(text); ok {
			return &d
		}
	}
	return nil
}

// match tries every occurrence of the pattern, so that an invalid date early
// in the text does not hide a valid one on a later line.
func (m dateMatcher) match(text string) (time.Time, bool) {
	for _, sub := range m.re.FindAllStringSubmatch(text, -1) {
		if d, ok := parseDate(sub[1], m.layouts); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

func parseDate(raw string, layouts []string) (time.Time, bool) {
	value := normalizeDateText(raw)
	for _, layout := range layouts {
		if d, err := time.Parse(layout, value); err == nil {
			return d.UTC(), true
		}
	}
	return time.Time{}, false
}

// normalizeDateText fixes capitalization and the common "Sept" spelling so
// that the month names match Go's layouts.
func normalizeDateText(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	s = strings.Replace(s, ".", "", 1)
	if len(s) == 0 || s[0] < 'A' || (s[0] > 'Z' && s[0] < 'a') || s[0] > 'z' {
		return s
	}
	word, rest, _ := strings.Cut(s, " ")
	word = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	if word == "Sept" {
		word = "Sep"
	}
	return word + " " + rest
}
