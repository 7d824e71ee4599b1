// internal/core/domain/record.go
package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record represents a single inventory line as persisted in the data file.
// Its JSON form is handled in record_json.go.
type Record struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Category   string  `json:"category"`
	Discount   float64 `json:"discount"`
	ExpiryDate string  `json:"expiry_date"`

	// unparsed holds values from the data file that do not fit the typed
	// fields, plus unknown keys, keyed by JSON key. They are written back
	// unchanged.
	unparsed map[string]json.RawMessage
}

// Fields holds the raw text of the six form inputs
type Fields struct {
	Name       string
	Price      string
	Quantity   string
	Category   string
	Discount   string
	ExpiryDate string
}

// FieldName identifies one of the six form inputs
type FieldName string

// Field name constants, matching the persisted JSON keys
const (
	FieldNameName       FieldName = "name"
	FieldNamePrice      FieldName = "price"
	FieldNameQuantity   FieldName = "quantity"
	FieldNameCategory   FieldName = "category"
	FieldNameDiscount   FieldName = "discount"
	FieldNameExpiryDate FieldName = "expiry_date"
)

// FieldOrder is the order in which the form presents its inputs
var FieldOrder = []FieldName{
	FieldNameName,
	FieldNamePrice,
	FieldNameQuantity,
	FieldNameCategory,
	FieldNameDiscount,
	FieldNameExpiryDate,
}

// FieldLabels are the human readable labels shown next to each input
var FieldLabels = map[FieldName]string{
	FieldNameName:       "Item Name",
	FieldNamePrice:      "Item Price",
	FieldNameQuantity:   "Quantity",
	FieldNameCategory:   "Category",
	FieldNameDiscount:   "Discount (%)",
	FieldNameExpiryDate: "Expiry Date (YYYY-MM-DD)",
}

// ParseFieldName resolves user input to a field name. It accepts the JSON
// key as well as the short alias "expiry".
func ParseFieldName(s string) (FieldName, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "expiry" {
		return FieldNameExpiryDate, true
	}
	for _, f := range FieldOrder {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Get returns the raw text of the named field
func (f Fields) Get(name FieldName) string {
	switch name {
	case FieldNameName:
		return f.Name
	case FieldNamePrice:
		return f.Price
	case FieldNameQuantity:
		return f.Quantity
	case FieldNameCategory:
		return f.Category
	case FieldNameDiscount:
		return f.Discount
	case FieldNameExpiryDate:
		return f.ExpiryDate
	}
	return ""
}

// Set returns a copy of f with the named field replaced
func (f Fields) Set(name FieldName, value string) Fields {
	switch name {
	case FieldNameName:
		f.Name = value
	case FieldNamePrice:
		f.Price = value
	case FieldNameQuantity:
		f.Quantity = value
	case FieldNameCategory:
		f.Category = value
	case FieldNameDiscount:
		f.Discount = value
	case FieldNameExpiryDate:
		f.ExpiryDate = value
	}
	return f
}

// IsEmpty reports whether every input is blank
func (f Fields) IsEmpty() bool {
	return f == Fields{}
}

// Validate checks that all six inputs are present. Presence is checked on
// the raw text, so a field holding only spaces counts as filled.
func (f Fields) Validate() error {
	for _, name := range FieldOrder {
		if f.Get(name) == "" {
			return &ValidationError{Kind: KindMissingField, Field: name}
		}
	}
	return nil
}

// Parse validates the inputs and converts them into a Record. Presence is
// checked before any numeric parsing.
func (f Fields) Parse() (Record, error) {
	if err := f.Validate(); err != nil {
		return Record{}, err
	}

	price, err := parseDecimal(f.Price)
	if err != nil {
		return Record{}, &ValidationError{Kind: KindTypeError, Field: FieldNamePrice, Err: err}
	}

	quantity, err := parseInteger(f.Quantity)
	if err != nil {
		return Record{}, &ValidationError{Kind: KindTypeError, Field: FieldNameQuantity, Err: err}
	}

	discount, err := parseDecimal(f.Discount)
	if err != nil {
		return Record{}, &ValidationError{Kind: KindTypeError, Field: FieldNameDiscount, Err: err}
	}

	return Record{
		Name:       f.Name,
		Price:      price,
		Quantity:   quantity,
		Category:   f.Category,
		Discount:   discount,
		ExpiryDate: f.ExpiryDate,
	}, nil
}

// FromRecord renders a record back into form text. Values kept raw from a
// hand-edited data file are shown as they appear in the file.
func FromRecord(r Record) Fields {
	fields := Fields{
		Name:       r.Name,
		Price:      FormatNumber(r.Price),
		Quantity:   strconv.Itoa(r.Quantity),
		Category:   r.Category,
		Discount:   FormatNumber(r.Discount),
		ExpiryDate: r.ExpiryDate,
	}
	for _, name := range FieldOrder {
		if text, ok := r.rawText(name); ok {
			fields = fields.Set(name, text)
		}
	}
	return fields
}

// FormatNumber formats a float with the fewest digits that parse back to
// the same value
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseDecimal parses a decimal float and refuses values JSON cannot carry
func parseDecimal(s string) (float64, error) {
	s, err := normalizeNumber(s)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// parseInteger parses a decimal integer
func parseInteger(s string) (int, error) {
	s, err := normalizeNumber(s)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

// normalizeNumber trims s, refuses hex literals and drops underscores
// that sit between two digits ("1_000"). Any other underscore is an error.
func normalizeNumber(s string) (string, error) {
	s = strings.TrimSpace(s)

	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return "", strconv.ErrSyntax
	}

	if !strings.Contains(s, "_") {
		return s, nil
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", strconv.ErrSyntax
		}
	}
	return b.String(), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
