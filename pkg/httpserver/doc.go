// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown.
//
// Run binds the listener, invokes start hooks, and blocks until the parent
// context is cancelled, SIGINT or SIGTERM arrives, or Shutdown is called.
// In-flight requests get ShutdownTimeout to finish. Configuration comes from
// Config (HTTP_ADDR, HTTP_READ_TIMEOUT, ...) via NewFromConfig or from the
// With* options.
//
// HealthCheckHandler provides liveness and readiness endpoints.
package httpserver
