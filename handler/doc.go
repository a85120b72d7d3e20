// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value already decoded by
// one or more binders, and returns a Response. Wrap runs the binders, applies
// decorators, renders the response, and routes any failure to an
// ErrorHandler:
//
//	h := handler.Wrap(submit,
//		handler.WithBinder[handler.Context, contact.Submission](binder.JSON()),
//		handler.WithDecorators(handler.Recover[handler.Context, contact.Submission](log)),
//		handler.WithErrorHandler[handler.Context, contact.Submission](onError),
//	)
//
// Responses cover JSON bodies, templ components (rendered as HTML or, for
// datastar requests, as element patches over SSE), and long-lived SSE
// streams through SSE and StreamContext.
//
// Error handlers classify errors with Classify: HTTPError keeps its status
// and everything else is a 500. Error text is logged, never sent.
package handler
