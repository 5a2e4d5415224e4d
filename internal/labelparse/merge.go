package labelparse

import (
	"time"
	"unicode/utf8"
)

// MinCandidateNameLength is the shortest product name worth matching on.
const MinCandidateNameLength = 3

// Signals is the merged view of filename and content signals.
type Signals struct {
	ASIN            *string
	OrderNumber     *string
	Quantity        *int
	Carrier         *string
	IsDamaged       bool
	ReturnByDate    *time.Time
	ProductName     *string
	ProductNameHint *string
}

// Merge combines both signal sets. Content ASIN and product name win over
// their filename equivalents. Quantity, carrier, order number and the damage
// flag only come from the filename.
func Merge(file FilenameSignals, content ContentSignals) Signals {
	s := Signals{
		ASIN:            file.ASIN,
		OrderNumber:     file.OrderNumber,
		Quantity:        file.Quantity,
		Carrier:         file.Carrier,
		IsDamaged:       file.IsDamaged,
		ReturnByDate:    content.ReturnByDate,
		ProductName:     content.ProductName,
		ProductNameHint: file.ProductNameHint,
	}
	if content.ASIN != nil {
		s.ASIN = content.ASIN
	}
	return s
}

// Parse runs both parsers and merges the result.
func Parse(filename, text string) Signals {
	return Merge(ParseFilename(filename), ParseContent(text))
}

// SourceIdentifier is the ASIN if known, else the order number.
func (s Signals) SourceIdentifier() *string {
	if s.ASIN != nil {
		return s.ASIN
	}
	return s.OrderNumber
}

// CandidateName is the name to match catalog titles against: the content
// product name if present, else the filename hint. Names shorter than
// MinCandidateNameLength are ignored.
func (s Signals) CandidateName() (string, bool) {
	for _, name := range []*string{s.ProductName, s.ProductNameHint} {
		if name != nil && utf8.RuneCountInString(*name) >= MinCandidateNameLength {
			return *name, true
		}
	}
	return "", false
}

// ParsedProductName is the name stored on the return for manual review.
func (s Signals) ParsedProductName() *string {
	if s.ProductName != nil {
		return s.ProductName
	}
	return s.ProductNameHint
}
