package product

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"estoque/internal/app/server/api/http/apierr"
	"estoque/internal/app/server/api/http/middleware/auth"
	"estoque/internal/domain/product"
	"estoque/internal/domain/session"
	"estoque/internal/format"
	"estoque/internal/i18n"
)

type Handler struct {
	service    product.Servicer
	localizer  *i18n.Localizer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service product.Servicer, localizer *i18n.Localizer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		localizer:  localizer,
		log:        log.With("component", "product_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*productListOutput, error) {
	sess, err := h.session(ctx)
	if err != nil {
		return nil, err
	}

	list, err := h.service.List(ctx, sess)
	if err != nil {
		return nil, h.fail(err)
	}

	views := make([]productView, 0, len(list))
	for _, p := range list {
		views = append(views, h.view(p))
	}
	return &productListOutput{Body: productListResponse{Products: views}}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*productOutput, error) {
	sess, err := h.session(ctx)
	if err != nil {
		return nil, err
	}

	p, err := h.service.Get(ctx, sess, input.ID)
	if err != nil {
		return nil, h.fail(err)
	}
	return &productOutput{Body: h.view(p)}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*productOutput, error) {
	sess, err := h.session(ctx)
	if err != nil {
		return nil, err
	}

	p, err := h.service.Add(ctx, sess, input.Body.draft())
	if err != nil {
		return nil, h.fail(err)
	}
	return &productOutput{Body: h.view(p)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*productOutput, error) {
	sess, err := h.session(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := h.service.Get(ctx, sess, input.ID)
	if err != nil {
		return nil, h.fail(err)
	}

	p, err := h.service.Update(ctx, sess, input.ID, input.Body.draftOver(existing))
	if err != nil {
		return nil, h.fail(err)
	}
	return &productOutput{Body: h.view(p)}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*productDeleteOutput, error) {
	sess, err := h.session(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.service.Remove(ctx, sess, input.ID); err != nil {
		return nil, h.fail(err)
	}
	return &productDeleteOutput{
		Body: productDeleteResponse{
			ID:      input.ID,
			Status:  "Ok",
			Message: h.localizer.T("success.product_deleted"),
		},
	}, nil
}

func (h *Handler) session(ctx context.Context) (session.Session, error) {
	sess, ok := auth.SessionFrom(ctx)
	if !ok {
		return session.Session{}, apierr.From(h.localizer, session.ErrNoSession)
	}
	return sess, nil
}

func (h *Handler) fail(err error) error {
	apiErr := apierr.From(h.localizer, err)
	if apiErr.GetStatus() >= http.StatusInternalServerError {
		h.log.Error("request failed", "error", err)
	}
	return apiErr
}

func (h *Handler) view(p product.Product) productView {
	l := h.localizer.Locale()
	v := productView{Product: p}
	v.Display.ExpirationDate = format.DisplayDate(p.ExpirationDate, l)
	v.Display.Price = p.Price
	if cents, err := strconv.ParseInt(p.Price, 10, 64); err == nil {
		v.Display.Price = format.Currency(cents, l)
	}
	return v
}

func (r productRequest) draft() product.Draft {
	return product.Draft{
		Name:           r.Name,
		Price:          format.Digits(r.Price),
		Quantity:       format.Digits(r.Quantity),
		ExpirationDate: format.MaskDate(r.ExpirationDate),
		Description:    r.Description,
	}
}

// draftOver is draft for an edit of prev: a date sent back exactly as stored
// is kept as is, whatever format it was saved in.
func (r productRequest) draftOver(prev product.Product) product.Draft {
	d := r.draft()
	if r.ExpirationDate == prev.ExpirationDate {
		d.ExpirationDate = prev.ExpirationDate
	}
	return d
}
