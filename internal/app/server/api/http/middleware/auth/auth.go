package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"estoque/internal/domain/session"
	"estoque/internal/i18n"
)

// Auth кладёт в контекст запроса текущую сессию или отвечает 401.
type Auth struct {
	session   session.Servicer
	localizer *i18n.Localizer
	log       *slog.Logger
}

func New(session session.Servicer, localizer *i18n.Localizer, log *slog.Logger) *Auth {
	return &Auth{
		session:   session,
		localizer: localizer,
		log:       log.With("component", "auth_middleware"),
	}
}

type contextKey string

const SessionKey contextKey = "session"

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		sess, err := a.session.Current(ctx.Context())
		if err != nil {
			status := http.StatusUnauthorized
			if !errors.Is(err, session.ErrNoSession) {
				a.log.Error("failed to resolve session", "error", err)
				status = http.StatusInternalServerError
			}
			a.reject(ctx, status, a.localizer.Message(err))
			return
		}

		newCtx := WithSession(ctx.Context(), sess)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) reject(ctx huma.Context, status int, message string) {
	ctx.SetHeader("Content-Type", "application/problem+json")
	ctx.SetStatus(status)

	body := huma.ErrorModel{
		Title:  http.StatusText(status),
		Status: status,
		Detail: message,
	}
	if err := json.NewEncoder(ctx.BodyWriter()).Encode(body); err != nil {
		a.log.Error("failed to encode response", "error", err)
	}
}

func SessionFrom(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(session.Session)
	return sess, ok && sess.Valid()
}

// WithSession кладёт сессию в контекст так же, как это делает Middleware
func WithSession(ctx context.Context, sess session.Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}
