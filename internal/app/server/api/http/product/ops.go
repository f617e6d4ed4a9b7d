package product

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "products-list",
		Method:      http.MethodGet,
		Path:        "/api/products",
		Summary:     "Список продуктов текущего пользователя",
		Tags:        []string{"products"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "products-create",
		Method:        http.MethodPost,
		Path:          "/api/products",
		Summary:       "Добавить продукт",
		Description:   "Проверяет поля и добавляет продукт в конец списка. ID выдаётся сервером.",
		Tags:          []string{"products"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "products-find",
		Method:      http.MethodGet,
		Path:        "/api/products/{id}",
		Summary:     "Получить продукт",
		Tags:        []string{"products"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "products-update",
		Method:      http.MethodPut,
		Path:        "/api/products/{id}",
		Summary:     "Обновить продукт",
		Tags:        []string{"products"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "products-delete",
		Method:      http.MethodDelete,
		Path:        "/api/products/{id}",
		Summary:     "Удалить продукт",
		Description: "Неизвестный ID не считается ошибкой.",
		Tags:        []string{"products"},
		Middlewares: h.middleware,
	}
}
