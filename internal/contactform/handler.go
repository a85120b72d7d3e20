package contactform

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/umerfilms/website/handler"
	"github.com/umerfilms/website/internal/contact"
	"github.com/umerfilms/website/pkg/binder"
	"github.com/umerfilms/website/pkg/logger"
)

// Handler serves the server-rendered contact page.
type Handler struct {
	sub      Submitter
	log      *slog.Logger
	formOpts []Option
	page     http.HandlerFunc
	submit   http.HandlerFunc
}

type HandlerOption func(*Handler)

// WithFormOptions applies opts to every Form the handler creates.
func WithFormOptions(opts ...Option) HandlerOption {
	return func(h *Handler) {
		h.formOpts = append(h.formOpts, opts...)
	}
}

func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

func NewHandler(sub Submitter, opts ...HandlerOption) *Handler {
	h := &Handler{sub: sub, log: logger.Discard()}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Handler("contact_page"))

	onError := handler.NewErrorHandler(h.log, handler.ErrorHandlerConfig{
		ErrorPage:      ErrorPage,
		ErrorFragment:  ErrorFragment,
		FragmentTarget: "#" + FormID,
	})

	h.page = handler.Wrap(h.showPage,
		handler.WithErrorHandler[handler.Context, struct{}](onError),
	)
	h.submit = handler.Wrap(h.handleSubmit,
		handler.WithBinder[handler.Context, contact.Submission](bindSubmission),
		handler.WithDecorators(handler.Recover[handler.Context, contact.Submission](h.log)),
		handler.WithErrorHandler[handler.Context, contact.Submission](onError),
	)
	return h
}

// Page serves GET /contact.
func (h *Handler) Page() http.HandlerFunc { return h.page }

// Submit serves POST /contact.
func (h *Handler) Submit() http.HandlerFunc { return h.submit }

// bindSubmission reads datastar signals for datastar requests and form
// values otherwise.
func bindSubmission(r *http.Request, v any) error {
	if handler.IsDataStar(r) {
		return binder.Signals()(r, v)
	}
	return binder.Form()(r, v)
}

func (h *Handler) showPage(_ handler.Context, _ struct{}) handler.Response {
	s := New(h.formOpts...).Snapshot()
	return handler.TemplPartial(FormView(s), Page(s), handler.WithTarget("#"+FormID))
}

func (h *Handler) handleSubmit(ctx handler.Context, req contact.Submission) handler.Response {
	form := New(h.formOpts...)
	form.Load(req)

	if handler.IsDataStar(ctx.Request()) {
		return handler.SSE(func(sc handler.StreamContext) error {
			return h.stream(sc, form)
		})
	}

	err := form.Submit(context.WithoutCancel(ctx), h.sub)
	status := http.StatusOK
	switch {
	case errors.Is(err, ErrInvalidForm):
		status = http.StatusBadRequest
	case err != nil:
		status = contact.KindOf(err).Status()
		h.log.WarnContext(ctx, "contact page submission failed", logger.Error(err))
	}
	return handler.TemplStatus(status, Page(form.Snapshot()))
}

// stream runs the submit and pushes every state as a patch of the form. It
// ends on the first idle state: either a validation failure or the revert
// after the display window.
func (h *Handler) stream(sc handler.StreamContext, form *Form) error {
	states := make(chan State, 8)
	form.OnChange(func(s State) { states <- s })

	go func() {
		if err := form.Submit(context.WithoutCancel(sc), h.sub); err != nil && !errors.Is(err, ErrInvalidForm) {
			h.log.WarnContext(sc, "contact page submission failed", logger.Error(err))
		}
	}()

	for {
		select {
		case <-sc.Done():
			return nil
		case s := <-states:
			if err := sc.SendComponent(FormView(s), handler.WithTarget("#"+FormID)); err != nil {
				return err
			}
			if s.Status == StatusSuccess {
				if err := sc.SendSignals(signalsOf(s.Values)); err != nil {
					return err
				}
			}
			if s.Status == StatusIdle {
				return nil
			}
		}
	}
}
