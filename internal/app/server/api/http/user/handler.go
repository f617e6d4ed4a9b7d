package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"estoque/internal/app/server/api/http/apierr"
	"estoque/internal/domain/user"
	"estoque/internal/i18n"
)

type Handler struct {
	service    user.Servicer
	localizer  *i18n.Localizer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, localizer *i18n.Localizer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		localizer:  localizer,
		log:        log.With("component", "user_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.currentOp(), h.current)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*userOutput, error) {
	err := h.service.SignUp(ctx, input.Body.Email, input.Body.Password, input.Body.ConfirmPassword)
	if err != nil {
		return nil, h.fail(err)
	}

	return &userOutput{
		Body: userResponse{
			Email:   input.Body.Email,
			Status:  "Ok",
			Message: h.localizer.T("success.register"),
		},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*userOutput, error) {
	sess, err := h.service.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, h.fail(err)
	}

	return &userOutput{
		Body: userResponse{
			Email:   sess.Email,
			Status:  "Ok",
			Message: h.localizer.T("success.login"),
		},
	}, nil
}

func (h *Handler) current(ctx context.Context, _ *struct{}) (*currentUserOutput, error) {
	email, ok, err := h.service.CurrentUser(ctx)
	if err != nil {
		return nil, h.fail(err)
	}
	return &currentUserOutput{
		Body: currentUserResponse{LoggedIn: ok, Email: email},
	}, nil
}

func (h *Handler) fail(err error) error {
	apiErr := apierr.From(h.localizer, err)
	if apiErr.GetStatus() >= http.StatusInternalServerError {
		h.log.Error("request failed", "error", err)
	}
	return apiErr
}
