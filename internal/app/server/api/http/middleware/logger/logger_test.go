package logger

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

type idOutput struct {
	Body struct {
		RequestID string `json:"request_id"`
	}
}

func setup(t *testing.T, buf *bytes.Buffer) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	mw := New(slog.New(slog.NewJSONHandler(buf, nil)))

	huma.Register(api, huma.Operation{
		OperationID: "echo-id",
		Method:      http.MethodGet,
		Path:        "/id",
		Middlewares: huma.Middlewares{mw.Middleware()},
	}, func(ctx context.Context, _ *struct{}) (*idOutput, error) {
		out := &idOutput{}
		out.Body.RequestID = RequestID(ctx)
		return out, nil
	})
	return api
}

func TestLogger_Middleware(t *testing.T) {
	t.Run("keeps incoming request id", func(t *testing.T) {
		var buf bytes.Buffer
		resp := setup(t, &buf).Get("/id", RequestIDHeader+": req-1")

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "req-1", resp.Header().Get(RequestIDHeader))
		assert.Contains(t, resp.Body.String(), "req-1")
		assert.Contains(t, buf.String(), `"request_id":"req-1"`)
		assert.Contains(t, buf.String(), `"status":200`)
	})

	t.Run("generates request id", func(t *testing.T) {
		var buf bytes.Buffer
		resp := setup(t, &buf).Get("/id")

		id := resp.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Contains(t, buf.String(), id)
	})
}

func TestRequestID_Empty(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))
}
