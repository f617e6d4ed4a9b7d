package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) probeOp() huma.Operation {
	return huma.Operation{
		OperationID: "storage-probe",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Проверка хранилища",
		Description: "Читает ключ currentUser. 503, если хранилище недоступно.",
		Tags:        []string{"health"},
		Errors:      []int{http.StatusServiceUnavailable},
		Middlewares: h.middleware,
	}
}
