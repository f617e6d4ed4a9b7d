// Package apierr переводит ошибки домена в ответы huma.
package apierr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"estoque/internal/domain/product"
	"estoque/internal/domain/session"
	"estoque/internal/domain/user"
	"estoque/internal/i18n"
)

// From maps err to a huma status error carrying the localized notice.
func From(localizer *i18n.Localizer, err error) huma.StatusError {
	msg := localizer.Message(err)

	switch {
	case errors.Is(err, product.ErrValidation),
		errors.Is(err, user.ErrMissingCredentials),
		errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrPasswordMismatch):
		return huma.Error422UnprocessableEntity(msg, err)
	case errors.Is(err, user.ErrAlreadyRegistered):
		return huma.Error409Conflict(msg, err)
	case errors.Is(err, user.ErrNoUsersRegistered),
		errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, session.ErrNoSession):
		return huma.Error401Unauthorized(msg, err)
	case errors.Is(err, product.ErrNotFound):
		return huma.Error404NotFound(msg, err)
	default:
		return huma.Error500InternalServerError(msg)
	}
}
