// Package requestid attaches a correlation identifier to every HTTP request.
//
// Middleware accepts a caller-supplied X-Request-ID when it is at most 128
// characters of [a-zA-Z0-9_-]; anything else is replaced with a fresh UUIDv4.
// The chosen ID is stored on the request context, echoed in the response
// header, and exposed to pkg/logger through LoggerExtractor.
package requestid
