// internal/core/domain/record_json.go
package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
)

// UnmarshalJSON decodes a record leniently. The data file may have been
// edited by hand: values that do not fit a typed field are kept as raw JSON
// instead of failing the whole load. Integral numbers such as 5.0 or 1e2
// are accepted as quantities.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return nil
	}

	*r = Record{}
	for key, raw := range fields {
		var ok bool
		switch FieldName(key) {
		case FieldNameName:
			ok = decodeString(raw, &r.Name)
		case FieldNamePrice:
			ok = decodeFloat(raw, &r.Price)
		case FieldNameQuantity:
			ok = decodeQuantity(raw, &r.Quantity)
		case FieldNameCategory:
			ok = decodeString(raw, &r.Category)
		case FieldNameDiscount:
			ok = decodeFloat(raw, &r.Discount)
		case FieldNameExpiryDate:
			ok = decodeString(raw, &r.ExpiryDate)
		}
		if !ok {
			r.keep(key, raw)
		}
	}

	return nil
}

// MarshalJSON writes the six keys in form order, then any unknown keys in
// sorted order. Kept raw values take precedence over the typed fields.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	write := func(key string, value []byte) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := marshalValue(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(value)
		return nil
	}

	for _, name := range FieldOrder {
		value, ok := r.unparsed[string(name)]
		if !ok {
			var err error
			if value, err = marshalValue(r.typedValue(name)); err != nil {
				return nil, err
			}
		}
		if err := write(string(name), value); err != nil {
			return nil, err
		}
	}

	extra := make([]string, 0, len(r.unparsed))
	for key := range r.unparsed {
		if _, known := FieldLabels[FieldName(key)]; !known {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		if err := write(key, r.unparsed[key]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// rawText returns the form text of a kept raw value. Strings are unquoted
// and null shows as an empty input.
func (r Record) rawText(name FieldName) (string, bool) {
	raw, ok := r.unparsed[string(name)]
	if !ok {
		return "", false
	}
	if isNull(raw) {
		return "", true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	return string(raw), true
}

func (r *Record) keep(key string, raw json.RawMessage) {
	if r.unparsed == nil {
		r.unparsed = make(map[string]json.RawMessage)
	}
	r.unparsed[key] = append(json.RawMessage(nil), raw...)
}

func (r Record) typedValue(name FieldName) any {
	switch name {
	case FieldNameName:
		return r.Name
	case FieldNamePrice:
		return r.Price
	case FieldNameQuantity:
		return r.Quantity
	case FieldNameCategory:
		return r.Category
	case FieldNameDiscount:
		return r.Discount
	case FieldNameExpiryDate:
		return r.ExpiryDate
	}
	return nil
}

func decodeString(raw json.RawMessage, dst *string) bool {
	if isNull(raw) {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func decodeFloat(raw json.RawMessage, dst *float64) bool {
	if !isNumber(raw) {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// decodeQuantity accepts integers and integral floats. For any other
// number the truncated value is stored and false is returned so the
// literal is kept.
func decodeQuantity(raw json.RawMessage, dst *int) bool {
	if !isNumber(raw) {
		return false
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return false
	}
	if i, err := strconv.Atoi(n.String()); err == nil {
		*dst = i
		return true
	}

	f, err := n.Float64()
	if err != nil || math.Abs(f) >= math.MaxInt64 {
		return false
	}
	*dst = int(f)
	return f == math.Trunc(f)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isNumber(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && (raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'))
}

// marshalValue encodes v without HTML escaping
func marshalValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
