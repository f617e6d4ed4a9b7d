package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-register",
		Method:        http.MethodPost,
		Path:          "/user/register",
		Summary:       "Регистрация пользователя",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-login",
		Method:      http.MethodPost,
		Path:        "/user/login",
		Summary:     "Вход пользователя",
		Description: "Проверяет пароль и делает пользователя текущим.",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) currentOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-current",
		Method:      http.MethodGet,
		Path:        "/user/current",
		Summary:     "Текущий пользователь",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}
