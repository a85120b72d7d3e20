package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umerfilms/website/handler"
	"github.com/umerfilms/website/pkg/logger"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	info := handler.Classify(handler.ErrTooManyRequests)
	assert.Equal(t, http.StatusTooManyRequests, info.StatusCode)
	assert.Equal(t, slog.LevelWarn, info.LogLevel)

	info = handler.Classify(fmt.Errorf("wrapped: %w", handler.NewHTTPError(http.StatusNotFound, "missing")))
	assert.Equal(t, http.StatusNotFound, info.StatusCode)
	assert.Equal(t, "missing", info.Key)

	info = handler.Classify(errors.New("database exploded"))
	assert.Equal(t, http.StatusInternalServerError, info.StatusCode)
	assert.Equal(t, slog.LevelError, info.LogLevel)
}

func TestDefaultErrorHandlerHidesDetails(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ctx := handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	handler.DefaultErrorHandler(ctx, errors.New("secret detail"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestNewJSONErrorHandler(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := logger.New(logger.WithOutput(&logs))
	eh := handler.NewJSONErrorHandler[handler.Context](log, func(info handler.ErrorInfo) any {
		return map[string]any{"success": false, "status": info.StatusCode}
	})

	rec := httptest.NewRecorder()
	eh(handler.NewContext(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil)), errors.New("provider: 503"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"status":500}`, rec.Body.String())
	assert.Contains(t, logs.String(), "provider: 503")
	assert.Contains(t, logs.String(), `"level":"ERROR"`)
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	cfg := handler.ErrorHandlerConfig{
		ErrorPage: func(p handler.ErrorPageParams) templ.Component {
			return text(fmt.Sprintf("<h1>%d %s</h1>", p.StatusCode, p.Message))
		},
		ErrorFragment: func(p handler.ErrorPageParams) templ.Component {
			return text(fmt.Sprintf(`<div id="banner">%d</div>`, p.StatusCode))
		},
		FragmentTarget: "#banner",
	}
	eh := handler.NewErrorHandler(nil, cfg)

	t.Run("page", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		eh(handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/contact", nil)), handler.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "<h1>404 Not Found</h1>", rec.Body.String())
	})

	t.Run("datastar fragment", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.Header.Set("Datastar-Request", "true")
		rec := httptest.NewRecorder()
		eh(handler.NewContext(rec, req), errors.New("boom"))
		require.Contains(t, rec.Body.String(), "datastar-patch-elements")
		assert.Contains(t, rec.Body.String(), `<div id="banner">500</div>`)
	})

	t.Run("plain fallback", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{})(
			handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrBadRequest)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
