package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/umerfilms/website/pkg/logger"
	"github.com/umerfilms/website/pkg/requestid"
)

// ErrorInfo is the classification of a handler error.
type ErrorInfo struct {
	StatusCode int
	Key        string
	LogLevel   slog.Level
}

// Classify maps err to a status code. HTTPError keeps its code; anything
// else, binder and render failures included, is a 500.
func Classify(err error) ErrorInfo {
	info := ErrorInfo{StatusCode: http.StatusInternalServerError, Key: ErrInternalServerError.Key}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode >= 400 && info.StatusCode < 500 {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// LogError records err with request metadata at the level chosen by Classify.
func LogError(log *slog.Logger, r *http.Request, err error, info ErrorInfo) {
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.Component("error_handler"),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
	)
}

// DefaultErrorHandler writes a plain-text status response. Error details are
// never sent to the client.
func DefaultErrorHandler[C Context](ctx C, err error) {
	info := Classify(err)
	http.Error(ctx.ResponseWriter(), http.StatusText(info.StatusCode), info.StatusCode)
}

// NewJSONErrorHandler logs the error and writes body(info) as JSON with the
// classified status.
func NewJSONErrorHandler[C Context](log *slog.Logger, body func(ErrorInfo) any) ErrorHandler[C] {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx C, err error) {
		info := Classify(err)
		LogError(log, ctx.Request(), err, info)
		if rerr := JSON(body(info), WithJSONStatus(info.StatusCode)).Render(ctx.ResponseWriter(), ctx.Request()); rerr != nil {
			log.ErrorContext(ctx, "failed to write error response", logger.Error(rerr))
		}
	}
}

// ErrorPageParams is passed to ErrorHandlerConfig.ErrorPage.
type ErrorPageParams struct {
	StatusCode int
	Message    string
	RequestID  string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the full page for regular requests.
	ErrorPage func(ErrorPageParams) templ.Component
	// ErrorFragment renders the patch for datastar requests.
	ErrorFragment func(ErrorPageParams) templ.Component
	// FragmentTarget is the selector the fragment is patched into.
	FragmentTarget string
}

// NewErrorHandler returns an error handler for HTML pages. Datastar requests
// get ErrorFragment patched into FragmentTarget; other requests get
// ErrorPage, or a plain-text response when no page is configured.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := Classify(err)
		LogError(log, r, err, info)

		params := ErrorPageParams{
			StatusCode: info.StatusCode,
			Message:    http.StatusText(info.StatusCode),
			RequestID:  requestid.FromContext(r.Context()),
		}

		var resp Response
		switch {
		case IsDataStar(r) && cfg.ErrorFragment != nil:
			var opts []TemplOption
			if cfg.FragmentTarget != "" {
				opts = append(opts, WithTarget(cfg.FragmentTarget))
			}
			resp = Templ(cfg.ErrorFragment(params), opts...)
		case !IsDataStar(r) && cfg.ErrorPage != nil:
			resp = TemplStatus(info.StatusCode, cfg.ErrorPage(params))
		default:
			http.Error(ctx.ResponseWriter(), params.Message, info.StatusCode)
			return
		}

		if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
			log.ErrorContext(ctx, "failed to render error response", logger.Error(rerr))
		}
	}
}
