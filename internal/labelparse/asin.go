// Package labelparse extracts identifying signals from return shipping
// labels: the label's filename and the plain text of the label PDF.
// Every parser is best-effort. A field that cannot be found stays nil and no
// parser returns an error.
package labelparse

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

var (
	// asinPattern matches a delimited B + 9 alphanumerics token. Tokens
	// without a digit are words ("BASKETBALL") and are skipped by asinSpans.
	asinPattern = regexp.MustCompile(`(?i)(?:^|[^A-Z0-9])(B[0-9A-Z]{9})(?:[^A-Z0-9]|$)`)

	// orderNumberPattern matches the ###-#######-####### marketplace order shape.
	orderNumberPattern = regexp.MustCompile(`(?:^|[^0-9])(\d{3}-\d{7}-\d{7})(?:[^0-9]|$)`)
)

// findASIN returns the first ASIN-shaped token, uppercased.
func findASIN(s string) *string {
	spans := asinSpans(s)
	if len(spans) == 0 {
		return nil
	}
	asin := strings.ToUpper(s[spans[0][0]:spans[0][1]])
	return &asin
}

// asinSpans returns the byte ranges of ASIN tokens in s that contain at
// least one digit. The search resumes at the end of each token so that a
// rejected word does not swallow the delimiter of the token after it.
func asinSpans(s string) [][2]int {
	var spans [][2]int
	for off := 0; off < len(s); {
		loc := asinPattern.FindStringSubmatchIndex(s[off:])
		if loc == nil {
			break
		}
		start, end := off+loc[2], off+loc[3]
		if strings.ContainsFunc(s[start:end], unicode.IsDigit) {
			spans = append(spans, [2]int{start, end})
		}
		off = end
	}
	return spans
}

func findOrderNumber(s string) *string {
	m := orderNumberPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	return &m[1]
}

// stripIdentifiers removes ASIN and order-number tokens from s.
func stripIdentifiers(s string) string {
	s = replaceSubmatch(orderNumberPattern, s)
	spans := asinSpans(s)
	for _, sp := range slices.Backward(spans) {
		s = s[:sp[0]] + " " + s[sp[1]:]
	}
	return s
}

// replaceSubmatch blanks the first capture group of every match of re,
// keeping the delimiters around it.
func replaceSubmatch(re *regexp.Regexp, s string) string {
	for {
		loc := re.FindStringSubmatchIndex(s)
		if loc == nil {
			return s
		}
		s = s[:loc[2]] + " " + s[loc[3]:]
	}
}
