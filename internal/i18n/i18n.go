// Package i18n holds the user-facing strings for pt and en and maps domain
// errors to the notice shown for them.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"estoque/internal/domain/product"
	"estoque/internal/domain/session"
	"estoque/internal/domain/user"
	"estoque/internal/format"
	"estoque/internal/infrastructure/storage"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Action names the user action a storage failure interrupted.
type Action string

const (
	ActionLogin         Action = "login"
	ActionRegister      Action = "register"
	ActionSaveProduct   Action = "save_product"
	ActionDeleteProduct Action = "delete_product"
)

// NewBundle parses every embedded locale file.
func NewBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", f.Name(), err)
		}
	}
	return bundle, nil
}

type Localizer struct {
	locale    format.Locale
	localizer *goi18n.Localizer
}

func New(locale format.Locale) (*Localizer, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	return &Localizer{
		locale:    locale,
		localizer: goi18n.NewLocalizer(bundle, string(locale)),
	}, nil
}

func (l *Localizer) Locale() format.Locale {
	return l.locale
}

// T translates id. Unknown ids come back unchanged.
func (l *Localizer) T(id string) string {
	return l.TData(id, nil)
}

func (l *Localizer) TData(id string, data map[string]any) string {
	msg, err := l.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}

// Message returns the notice for err. Storage failures and unknown errors get
// the generic storage notice.
func (l *Localizer) Message(err error) string {
	return l.T(MessageID(err))
}

// Failure is Message, except that a storage failure is reported with the
// notice of the interrupted action.
func (l *Localizer) Failure(action Action, err error) string {
	id := MessageID(err)
	if id == "error.storage" {
		id = "error." + string(action)
	}
	return l.T(id)
}

// MessageID maps a domain error to its message id.
func MessageID(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.id
		}
	}
	return "error.storage"
}

var errorMessages = []struct {
	err error
	id  string
}{
	{user.ErrMissingCredentials, "error.missing_credentials"},
	{user.ErrInvalidEmail, "error.invalid_email"},
	{user.ErrPasswordMismatch, "error.password_mismatch"},
	{user.ErrAlreadyRegistered, "error.already_registered"},
	{user.ErrNoUsersRegistered, "error.no_users"},
	{user.ErrInvalidCredentials, "error.invalid_credentials"},
	{session.ErrNoSession, "error.no_session"},
	{product.ErrMissingRequiredField, "error.missing_fields"},
	{product.ErrInvalidDateFormat, "error.invalid_date"},
	{product.ErrInvalidDateRange, "error.invalid_date"},
	{product.ErrFieldTooLong, "error.field_too_long"},
	{product.ErrInvalidNumber, "error.invalid_number"},
	{product.ErrNotFound, "error.not_found"},
	{storage.ErrStorage, "error.storage"},
}
