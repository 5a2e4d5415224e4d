package labelparse

import (
	"regexp"
	"strings"
	"time"
)

// MaxProductNameLength bounds a product name read from label text, in characters.
const MaxProductNameLength = 255

// ContentSignals are the identifiers recognized in a label's PDF text.
type ContentSignals struct {
	ReturnByDate *time.Time
	ProductName  *string
	ASIN         *string
}

var (
	productLinePattern = regexp.MustCompile(`(?im)^[ \t]*(?:product|item|description|title)[ \t]*:[ \t]*(\S[^\r\n]{3,})`)
	explicitASIN       = regexp.MustCompile(`(?i)\bASIN[ \t]*[:#]?[ \t]*(B[0-9A-Z]{9})\b`)
)

// ParseContent extracts signals from extracted label text. Empty text yields
// an empty result.
func ParseContent(text string) (s ContentSignals) {
	defer func() {
		if r := recover(); r != nil {
			s = ContentSignals{}
		}
	}()

	if strings.TrimSpace(text) == "" {
		return ContentSignals{}
	}

	return ContentSignals{
		ReturnByDate: findReturnByDate(text),
		ProductName:  findProductName(text),
		ASIN:         findContentASIN(text),
	}
}

func findProductName(text string) *string {
	m := productLinePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	name := strings.TrimSpace(m[1])
	if r := []rune(name); len(r) > MaxProductNameLength {
		name = strings.TrimSpace(string(r[:MaxProductNameLength]))
	}
	return &name
}

// findContentASIN prefers an explicitly labelled ASIN over a bare token.
func findContentASIN(text string) *string {
	if m := explicitASIN.FindStringSubmatch(text); m != nil {
		asin := strings.ToUpper(m[1])
		return &asin
	}
	return findASIN(text)
}
