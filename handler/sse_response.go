package handler

import "net/http"

// SSEHandler produces a stream of patches. The stream ends when it returns.
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "sse_requires_datastar")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE streams patches produced by handler. Non-datastar requests get a 400.
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
