package types

import (
	"context"
	"errors"

	"estoque/internal/app"
)

type ctxKey string

// AppKey - ключ контекста команды, под которым лежит *app.App
const AppKey ctxKey = "app"

var ErrNoApp = errors.New("приложение не инициализировано")

func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, AppKey, a)
}

func AppFrom(ctx context.Context) (*app.App, error) {
	if ctx == nil {
		return nil, ErrNoApp
	}
	a, ok := ctx.Value(AppKey).(*app.App)
	if !ok || a == nil {
		return nil, ErrNoApp
	}
	return a, nil
}
