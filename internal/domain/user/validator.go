package user

import (
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateSignUp(email, password, confirm string) error
	ValidateEmail(email string) error
}

type CredentialValidator struct{}

// NewCredentialValidator создает новый валидатор
func NewCredentialValidator() *CredentialValidator {
	return &CredentialValidator{}
}

// IsValidEmail checks the local@domain.tld shape only; it is not RFC 5322.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// PasswordsMatch is exact, case-sensitive equality.
func PasswordsMatch(p, confirm string) bool {
	return p == confirm
}

// ValidateSignUp валидирует данные для регистрации. Порядок проверок:
// обязательные поля, формат email, совпадение паролей.
func (v *CredentialValidator) ValidateSignUp(email, password, confirm string) error {
	if email == "" || password == "" || confirm == "" {
		return ErrMissingCredentials
	}

	if err := v.ValidateEmail(email); err != nil {
		return err
	}

	if !PasswordsMatch(password, confirm) {
		return ErrPasswordMismatch
	}

	return nil
}

// ValidateEmail валидирует email
func (v *CredentialValidator) ValidateEmail(email string) error {
	if !IsValidEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}
