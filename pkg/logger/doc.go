// Package logger builds *slog.Logger instances with functional options and
// transparent injection of request-scoped values.
//
// New picks a text or JSON handler based on the configured Format, applies
// static attributes, and wraps the result in LogHandlerDecorator. The
// decorator runs every registered ContextExtractor when a record is handled,
// so values such as the request ID or client IP appear on every line logged
// with a request context:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "umerfilms"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			clientip.LoggerExtractor(),
//		),
//	)
//	log.InfoContext(ctx, "contact submission accepted", logger.Outcome("sent"))
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Helpers that take an error or identifier return an empty slog.Attr for
// zero values, which slog omits from output.
package logger
