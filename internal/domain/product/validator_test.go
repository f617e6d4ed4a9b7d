package product

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Name:           "Milk",
		Price:          "350",
		Quantity:       "2",
		ExpirationDate: "31/12/2025",
		Description:    "Dairy",
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{date: "31/12/2025", want: true},
		{date: "01/01/2000", want: true},
		{date: "31/12/2100", want: true},
		{date: "30/02/2025", want: true},
		{date: "31/02/2025", want: true},
		{date: "31/12/1999", want: false},
		{date: "01/01/2101", want: false},
		{date: "00/01/2025", want: false},
		{date: "32/01/2025", want: false},
		{date: "01/00/2025", want: false},
		{date: "01/13/2025", want: false},
		{date: "1/1/2025", want: false},
		{date: "01-01-2025", want: false},
		{date: "01012025", want: false},
		{date: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDate(tt.date))
		})
	}
}

func TestValidateDate_Lenient(t *testing.T) {
	assert.NoError(t, ValidateDate("99/99/1900", false))
	assert.ErrorIs(t, ValidateDate("99/99/1900", true), ErrInvalidDateRange)
	assert.ErrorIs(t, ValidateDate("9/9/1900", false), ErrInvalidDateFormat)
}

func TestRequiredFieldsPresent(t *testing.T) {
	assert.True(t, RequiredFieldsPresent(validDraft()))

	d := validDraft()
	d.ExpirationDate = ""
	assert.True(t, RequiredFieldsPresent(d), "expiration date is checked separately")

	for _, unset := range []func(*Draft){
		func(d *Draft) { d.Name = "" },
		func(d *Draft) { d.Price = "" },
		func(d *Draft) { d.Quantity = "" },
		func(d *Draft) { d.Description = "" },
	} {
		d := validDraft()
		unset(&d)
		assert.False(t, RequiredFieldsPresent(d))
	}
}

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Draft)
		wantKind error
	}{
		{name: "valid", modify: func(*Draft) {}},
		{
			name:   "missing field wins over bad date",
			modify: func(d *Draft) {
				d.Name = ""
				d.ExpirationDate = "bad"
			},
			wantKind: ErrMissingRequiredField,
		},
		{
			name:     "name too long",
			modify:   func(d *Draft) { d.Name = strings.Repeat("a", MaxNameLength+1) },
			wantKind: ErrFieldTooLong,
		},
		{
			name:   "name at limit counts runes",
			modify: func(d *Draft) { d.Name = strings.Repeat("ç", MaxNameLength) },
		},
		{
			name:     "description too long",
			modify:   func(d *Draft) { d.Description = strings.Repeat("a", MaxDescriptionLength+1) },
			wantKind: ErrFieldTooLong,
		},
		{
			name:     "price not digits",
			modify:   func(d *Draft) { d.Price = "3,50" },
			wantKind: ErrInvalidNumber,
		},
		{
			name:     "quantity not digits",
			modify:   func(d *Draft) { d.Quantity = "-1" },
			wantKind: ErrInvalidNumber,
		},
		{
			name:     "quantity too many digits",
			modify:   func(d *Draft) { d.Quantity = "10000" },
			wantKind: ErrFieldTooLong,
		},
		{
			name:     "bad date format",
			modify:   func(d *Draft) { d.ExpirationDate = "31122025" },
			wantKind: ErrInvalidDateFormat,
		},
		{
			name:     "missing date",
			modify:   func(d *Draft) { d.ExpirationDate = "" },
			wantKind: ErrInvalidDateFormat,
		},
		{
			name:     "date out of range",
			modify:   func(d *Draft) { d.ExpirationDate = "31/12/1999" },
			wantKind: ErrInvalidDateRange,
		},
	}

	validator := NewValidator(true)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.modify(&d)

			err := validator.Validate(d)
			if tt.wantKind == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantKind)
		})
	}
}

func TestValidator_ValidateChange_SkipsUnchangedDate(t *testing.T) {
	validator := NewValidator(true)

	prev := validDraft().toProduct(1)
	prev.ExpirationDate = "12/31/2025"

	d := DraftOf(prev)
	assert.NoError(t, validator.ValidateChange(d, prev))

	d.ExpirationDate = "12/31/2026"
	assert.ErrorIs(t, validator.ValidateChange(d, prev), ErrInvalidDateRange)

	d = DraftOf(prev)
	d.Name = ""
	assert.ErrorIs(t, validator.ValidateChange(d, prev), ErrMissingRequiredField)
}

func TestValidationError_Error(t *testing.T) {
	err := newValidationError("price", ErrInvalidNumber)
	assert.Equal(t, "validation failed: price: invalid number", err.Error())

	err = newValidationError("", ErrMissingRequiredField)
	assert.Equal(t, "validation failed: missing required field", err.Error())
}
