package labelparse

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// FilenameSignals are the identifiers recognized in a label's filename.
type FilenameSignals struct {
	ASIN            *string
	OrderNumber     *string
	Quantity        *int
	Carrier         *string
	IsDamaged       bool
	ProductNameHint *string
}

// Carrier names as stored on a return.
const (
	CarrierUPS   = "UPS"
	CarrierFedEx = "FedEx"
)

var carrierNeedles = []struct {
	needle string
	name   string
}{
	{"ups", CarrierUPS},
	{"fedex", CarrierFedEx},
}

var (
	unitsPattern      = regexp.MustCompile(`(?i)\b(\d{1,4})\s*(?:units?|adet)\b`)
	damagedQtyPattern = regexp.MustCompile(`(?i)\b(\d{1,4})\s*(?:damaged|hasarl[ıi])`)
	wordReturnPattern = regexp.MustCompile(`(?i)\b(\d{1,4})\s+\p{L}+\s+(?:return|iade)\b`)
	returnSuffix      = regexp.MustCompile(`(?i)\breturn\s*\d+`)
	standaloneNumber  = regexp.MustCompile(`(?:^|[^0-9\p{L}])(\d{1,3})(?:[^0-9\p{L}]|$)`)

	damagePattern = regexp.MustCompile(`(?i)dmg|damaged|hasarl[ıi]`)

	hintNoiseWords = regexp.MustCompile(`(?i)\b(?:ups|fedex|returns?|labels?|iade|dmg|damaged|wrong|units?|adet)\b`)
	hintNoiseTurk  = regexp.MustCompile(`(?i)hasarl[ıi]`)
	whitespace     = regexp.MustCompile(`\s+`)
)

// quantityHit is a quantity value together with the text it was read from.
type quantityHit struct {
	value  int
	phrase string
}

// quantityMatcher tries one way of reading a quantity from a normalized name.
type quantityMatcher func(name string) (quantityHit, bool)

// quantityMatchers run in priority order; the first hit wins.
var quantityMatchers = []quantityMatcher{
	phraseQuantity(unitsPattern),
	phraseQuantity(damagedQtyPattern),
	phraseQuantity(wordReturnPattern),
	standaloneQuantity,
}

// ParseFilename extracts signals from a label filename. Every field is
// independently optional.
func ParseFilename(filename string) FilenameSignals {
	name := normalizeFilename(filename)

	s := FilenameSignals{
		ASIN:        findASIN(name),
		OrderNumber: findOrderNumber(name),
		Carrier:     findCarrier(name),
		IsDamaged:   damagePattern.MatchString(name),
	}

	var qtyPhrase string
	for _, match := range quantityMatchers {
		if hit, ok := match(name); ok {
			v := hit.value
			s.Quantity = &v
			qtyPhrase = hit.phrase
			break
		}
	}

	s.ProductNameHint = productNameHint(name, qtyPhrase)
	return s
}

// normalizeFilename drops directory and extension and turns underscores
// into spaces.
func normalizeFilename(filename string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	if ext := filepath.Ext(name); ext != "" && len(ext) <= 5 {
		name = strings.TrimSuffix(name, ext)
	}
	return strings.ReplaceAll(name, "_", " ")
}

func phraseQuantity(re *regexp.Regexp) quantityMatcher {
	return func(name string) (quantityHit, bool) {
		m := re.FindStringSubmatch(name)
		if m == nil {
			return quantityHit{}, false
		}
		v, err := strconv.Atoi(m[1])
		if err != nil || v < 1 {
			return quantityHit{}, false
		}
		return quantityHit{value: v, phrase: m[0]}, true
	}
}

// standaloneQuantity reads a lone 1-3 digit number once identifiers and any
// "RETURN N" suffix are removed.
func standaloneQuantity(name string) (quantityHit, bool) {
	rest := returnSuffix.ReplaceAllString(stripIdentifiers(name), " ")
	m := standaloneNumber.FindStringSubmatch(rest)
	if m == nil {
		return quantityHit{}, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil || v < 1 {
		return quantityHit{}, false
	}
	return quantityHit{value: v, phrase: m[1]}, true
}

// findCarrier returns the carrier whose name occurs earliest in name.
func findCarrier(name string) *string {
	lower := strings.ToLower(name)
	best, bestIdx := "", -1
	for _, c := range carrierNeedles {
		idx := strings.Index(lower, c.needle)
		if idx >= 0 && (bestIdx < 0 || idx < bestIdx) {
			best, bestIdx = c.name, idx
		}
	}
	if bestIdx < 0 {
		return nil
	}
	return &best
}

// productNameHint is what remains of the name after every recognized token
// is removed. Remainders shorter than 3 characters or made of digits only
// are discarded; longer ones are cut to MaxProductNameLength.
func productNameHint(name, qtyPhrase string) *string {
	hint := stripIdentifiers(name)
	if qtyPhrase != "" {
		hint = strings.Replace(hint, qtyPhrase, " ", 1)
	}
	hint = returnSuffix.ReplaceAllString(hint, " ")
	hint = hintNoiseWords.ReplaceAllString(hint, " ")
	hint = hintNoiseTurk.ReplaceAllString(hint, " ")
	hint = whitespace.ReplaceAllString(hint, " ")
	hint = strings.Trim(hint, " -.,;:()[]")

	r := []rune(hint)
	if len(r) < 3 || isNumeric(hint) {
		return nil
	}
	if len(r) > MaxProductNameLength {
		hint = strings.TrimSpace(string(r[:MaxProductNameLength]))
	}
	return &hint
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
