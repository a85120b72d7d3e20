package contact

import (
	"log/slog"
	"net/http"

	"github.com/umerfilms/website/handler"
	"github.com/umerfilms/website/pkg/binder"
	"github.com/umerfilms/website/pkg/logger"
)

// Response is the JSON body of every /api/contact response.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Handler serves POST /api/contact.
type Handler struct {
	svc *Service
	log *slog.Logger
	h   http.HandlerFunc
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	h := &Handler{svc: svc, log: log.With(logger.Handler("contact_api"))}

	jsonErrors := handler.NewJSONErrorHandler[handler.Context](h.log, func(handler.ErrorInfo) any {
		return Response{Success: false, Message: GenericFailureMessage}
	})

	h.h = handler.Wrap(h.submit,
		handler.WithBinder[handler.Context, Submission](binder.JSON()),
		handler.WithDecorators(handler.Recover[handler.Context, Submission](h.log)),
		handler.WithErrorHandler[handler.Context, Submission](func(ctx handler.Context, err error) {
			h.svc.metrics.SubmissionOutcome(string(KindUnexpected))
			jsonErrors(ctx, err)
		}),
	)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.h(w, r)
}

func (h *Handler) submit(ctx handler.Context, req Submission) handler.Response {
	if _, err := h.svc.Submit(ctx, req); err != nil {
		kind := KindOf(err)
		return handler.JSON(
			Response{Success: false, Message: kind.Message()},
			handler.WithJSONStatus(kind.Status()),
		)
	}
	return handler.JSON(Response{Success: true, Message: SuccessMessage})
}
