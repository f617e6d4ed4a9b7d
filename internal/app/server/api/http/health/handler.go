package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"estoque/internal/infrastructure/storage"
)

// probeKey is read on every check; its presence does not matter.
const probeKey = "currentUser"

type Handler struct {
	store      storage.Store
	driver     string
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store storage.Store, driver string, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		driver:     driver,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.probeOp(), h.probe)
}

func (h *Handler) probe(ctx context.Context, _ *struct{}) (*probeOutput, error) {
	start := time.Now()
	_, _, err := h.store.Get(ctx, probeKey)
	latency := time.Since(start)

	if err != nil {
		h.log.Error("storage probe failed", "storage", h.driver, "error", err)
		return nil, huma.Error503ServiceUnavailable("storage unavailable")
	}
	h.log.Debug("storage probe ok", "storage", h.driver, "latency", latency)

	return &probeOutput{
		Body: storageStatus{
			Status:    "OK",
			Storage:   h.driver,
			LatencyMs: latency.Milliseconds(),
		},
	}, nil
}
