package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/umerfilms/website/pkg/logger"
)

type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

// Fail returns a Response that hands err to the error handler.
func Fail(err error) Response {
	return errorResponse{err: err}
}

// Recover converts a panic inside the wrapped handler into ErrPanic, which
// the configured error handler turns into a 500.
func Recover[C Context, R any](log *slog.Logger) Decorator[C, R] {
	if log == nil {
		log = logger.Discard()
	}
	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		return func(ctx C, req R) (resp Response) {
			defer func() {
				if v := recover(); v != nil {
					log.ErrorContext(ctx, "handler panic",
						logger.Component("handler"),
						slog.Any("panic", v),
						slog.String("stack", string(debug.Stack())),
					)
					resp = Fail(fmt.Errorf("%w: %v", ErrPanic, v))
				}
			}()
			return next(ctx, req)
		}
	}
}
