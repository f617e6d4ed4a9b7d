package product

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

const (
	MaxNameLength        = 45
	MaxDescriptionLength = 45
	MaxQuantityDigits    = 4

	MinYear = 2000
	MaxYear = 2100
)

var (
	datePattern   = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// RequiredFieldsPresent reports whether name, price, quantity and description
// are non-empty. The expiration date is checked by IsValidDate.
func RequiredFieldsPresent(d Draft) bool {
	return d.Name != "" && d.Price != "" && d.Quantity != "" && d.Description != ""
}

// IsValidDate accepts DD/MM/YYYY with year in [2000,2100], month in [1,12] and
// day in [1,31]. Month lengths are not cross-checked: 31/02/2025 passes.
func IsValidDate(s string) bool {
	return ValidateDate(s, true) == nil
}

// ValidateDate checks the DD/MM/YYYY shape and, when strict, the numeric ranges.
func ValidateDate(s string, strict bool) error {
	if !datePattern.MatchString(s) {
		return ErrInvalidDateFormat
	}
	if !strict {
		return nil
	}

	// the pattern guarantees the digits
	day, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[3:5])
	year, _ := strconv.Atoi(s[6:10])

	if year < MinYear || year > MaxYear || month < 1 || month > 12 || day < 1 || day > 31 {
		return ErrInvalidDateRange
	}
	return nil
}

// Validator проверяет черновик продукта и возвращает первую найденную ошибку
type Validator struct {
	strictDates bool
}

func NewValidator(strictDates bool) *Validator {
	return &Validator{strictDates: strictDates}
}

// Validate runs the checks for a new product: required fields, field limits,
// then the expiration date.
func (v *Validator) Validate(d Draft) error {
	if err := v.validateFields(d); err != nil {
		return err
	}
	return v.validateDate(d.ExpirationDate)
}

// ValidateChange is Validate for an edit of prev. An unchanged expiration date
// is not checked again.
func (v *Validator) ValidateChange(d Draft, prev Product) error {
	if err := v.validateFields(d); err != nil {
		return err
	}
	if d.ExpirationDate == prev.ExpirationDate {
		return nil
	}
	return v.validateDate(d.ExpirationDate)
}

func (v *Validator) validateFields(d Draft) error {
	if !RequiredFieldsPresent(d) {
		return newValidationError("", ErrMissingRequiredField)
	}

	if utf8.RuneCountInString(d.Name) > MaxNameLength {
		return newValidationError("name", ErrFieldTooLong)
	}
	if utf8.RuneCountInString(d.Description) > MaxDescriptionLength {
		return newValidationError("description", ErrFieldTooLong)
	}

	if !digitsPattern.MatchString(d.Price) {
		return newValidationError("price", ErrInvalidNumber)
	}
	if !digitsPattern.MatchString(d.Quantity) {
		return newValidationError("quantity", ErrInvalidNumber)
	}
	if len(d.Quantity) > MaxQuantityDigits {
		return newValidationError("quantity", ErrFieldTooLong)
	}

	return nil
}

func (v *Validator) validateDate(s string) error {
	if err := ValidateDate(s, v.strictDates); err != nil {
		return newValidationError("expirationDate", err)
	}
	return nil
}
