// Package environment propagates the deployment environment (development,
// staging, production) through configuration, request contexts and logs.
//
// Environment values read from configuration are passed through Normalize so
// that aliases such as "prod" resolve to the canonical constants. Middleware
// attaches the value to every request context, and LoggerExtractor exposes it
// to loggers built with pkg/logger.
package environment
