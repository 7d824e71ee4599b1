package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/pharmacy-inventory/internal/core/domain"
)

func validFields() domain.Fields {
	return domain.Fields{
		Name:       "Aspirin",
		Price:      "5.50",
		Quantity:   "10",
		Category:   "Pain",
		Discount:   "0",
		ExpiryDate: "2026-01-01",
	}
}

func TestFields_Parse(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(f domain.Fields) domain.Fields
		want      domain.Record
		wantKind  domain.ValidationKind
		wantField domain.FieldName
	}{
		{
			name:   "valid_fields",
			modify: func(f domain.Fields) domain.Fields { return f },
			want: domain.Record{
				Name:       "Aspirin",
				Price:      5.5,
				Quantity:   10,
				Category:   "Pain",
				Discount:   0,
				ExpiryDate: "2026-01-01",
			},
		},
		{
			name: "accepts_negative_price_and_large_discount",
			modify: func(f domain.Fields) domain.Fields {
				f.Price = "-3"
				f.Discount = "150"
				return f
			},
			want: domain.Record{
				Name:       "Aspirin",
				Price:      -3,
				Quantity:   10,
				Category:   "Pain",
				Discount:   150,
				ExpiryDate: "2026-01-01",
			},
		},
		{
			name: "trims_whitespace_around_numbers",
			modify: func(f domain.Fields) domain.Fields {
				f.Quantity = " 7 "
				f.Price = "2.25\t"
				return f
			},
			want: domain.Record{
				Name:       "Aspirin",
				Price:      2.25,
				Quantity:   7,
				Category:   "Pain",
				Discount:   0,
				ExpiryDate: "2026-01-01",
			},
		},
		{
			name: "expiry_is_not_parsed",
			modify: func(f domain.Fields) domain.Fields {
				f.ExpiryDate = "next spring"
				return f
			},
			want: domain.Record{
				Name:       "Aspirin",
				Price:      5.5,
				Quantity:   10,
				Category:   "Pain",
				Discount:   0,
				ExpiryDate: "next spring",
			},
		},
		{
			name:      "missing_name",
			modify:    func(f domain.Fields) domain.Fields { f.Name = ""; return f },
			wantKind:  domain.KindMissingField,
			wantField: domain.FieldNameName,
		},
		{
			name:      "missing_expiry",
			modify:    func(f domain.Fields) domain.Fields { f.ExpiryDate = ""; return f },
			wantKind:  domain.KindMissingField,
			wantField: domain.FieldNameExpiryDate,
		},
		{
			name: "missing_field_reported_before_type_error",
			modify: func(f domain.Fields) domain.Fields {
				f.Price = "abc"
				f.Category = ""
				return f
			},
			wantKind:  domain.KindMissingField,
			wantField: domain.FieldNameCategory,
		},
		{
			name:      "non_numeric_price",
			modify:    func(f domain.Fields) domain.Fields { f.Price = "abc"; return f },
			wantKind:  domain.KindTypeError,
			wantField: domain.FieldNamePrice,
		},
		{
			name:      "fractional_quantity",
			modify:    func(f domain.Fields) domain.Fields { f.Quantity = "1.5"; return f },
			wantKind:  domain.KindTypeError,
			wantField: domain.FieldNameQuantity,
		},
		{
			name:      "non_numeric_discount",
			modify:    func(f domain.Fields) domain.Fields { f.Discount = "10%"; return f },
			wantKind:  domain.KindTypeError,
			wantField: domain.FieldNameDiscount,
		},
		{
			name:      "rejects_nan",
			modify:    func(f domain.Fields) domain.Fields { f.Price = "NaN"; return f },
			wantKind:  domain.KindTypeError,
			wantField: domain.FieldNamePrice,
		},
		{
			name: "underscores_between_digits",
			modify: func(f domain.Fields) domain.Fields {
				f.Price = "1_000.50"
				f.Quantity = "2_500"
				f.Discount = "1_0"
				return f
			},
			want: domain.Record{
				Name: "Aspirin", Price: 1000.5, Quantity: 2500,
				Category: "Pain", Discount: 10, ExpiryDate: "2026-01-01",
			},
		},
		{
			name:      "rejects_hex_float_price",
			modify:    func(f domain.Fields) domain.Fields { f.Price = "0x1p4"; return f },
			wantKind:  domain.KindTypeError,
			wantField: domain.FieldNamePrice,
		},
		{
			name:      "rejects_signed_hex_discount",
			modify:    func(f domain.Fields) domain.Fields { f.Discount = "-0X10"; return f },
			wantKind:  domain.KindTypeError,
			wantField: domain.FieldNameDiscount,
		},
		{
			name:      "rejects_leading_underscore",
			modify:    func(f domain.Fields) domain.Fields { f.Quantity = "_10"; return f },
			wantKind:  domain.KindTypeError,
			wantField: domain.FieldNameQuantity,
		},
		{
			name:      "rejects_double_underscore",
			modify:    func(f domain.Fields) domain.Fields { f.Price = "1__0"; return f },
			wantKind:  domain.KindTypeError,
			wantField: domain.FieldNamePrice,
		},
		{
			name:      "rejects_underscore_next_to_point",
			modify:    func(f domain.Fields) domain.Fields { f.Price = "1_.5"; return f },
			wantKind:  domain.KindTypeError,
			wantField: domain.FieldNamePrice,
		},
		{
			name:      "whitespace_only_quantity_is_type_error",
			modify:    func(f domain.Fields) domain.Fields { f.Quantity = "  "; return f },
			wantKind:  domain.KindTypeError,
			wantField: domain.FieldNameQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := tt.modify(validFields()).Parse()

			if tt.wantKind != "" {
				require.Error(t, err)
				var verr *domain.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.wantKind, verr.Kind)
				assert.Equal(t, tt.wantField, verr.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, rec)
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	_, err := domain.Fields{}.Parse()
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.NotErrorIs(t, err, domain.ErrTypeError)

	f := validFields()
	f.Quantity = "ten"
	_, err = f.Parse()
	assert.ErrorIs(t, err, domain.ErrTypeError)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Price, Quantity, and Discount must be numbers.", verr.Message())
}

func TestFromRecord(t *testing.T) {
	rec := domain.Record{
		Name:       "Aspirin",
		Price:      5.5,
		Quantity:   10,
		Category:   "Pain",
		Discount:   12.25,
		ExpiryDate: "2026-01-01",
	}

	f := domain.FromRecord(rec)
	assert.Equal(t, "5.5", f.Price)
	assert.Equal(t, "10", f.Quantity)
	assert.Equal(t, "12.25", f.Discount)

	back, err := f.Parse()
	require.NoError(t, err)
	assert.Equal(t, rec, back)
}

func TestFields_SetAndGet(t *testing.T) {
	var f domain.Fields
	assert.True(t, f.IsEmpty())

	for _, name := range domain.FieldOrder {
		f = f.Set(name, string(name)+"-value")
	}
	assert.False(t, f.IsEmpty())
	for _, name := range domain.FieldOrder {
		assert.Equal(t, string(name)+"-value", f.Get(name))
	}
}

func TestParseFieldName(t *testing.T) {
	name, ok := domain.ParseFieldName("Expiry")
	require.True(t, ok)
	assert.Equal(t, domain.FieldNameExpiryDate, name)

	name, ok = domain.ParseFieldName(" price ")
	require.True(t, ok)
	assert.Equal(t, domain.FieldNamePrice, name)

	_, ok = domain.ParseFieldName("colour")
	assert.False(t, ok)
}
