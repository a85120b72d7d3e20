// Package clientip resolves the originating client address of a request
// served behind Cloudflare, the DigitalOcean App Platform, or a generic
// reverse proxy.
//
// Resolution order:
//
//  1. CF-Connecting-IP
//  2. DO-Connecting-IP
//  3. X-Forwarded-For (first valid entry)
//  4. X-Real-IP
//  5. RemoteAddr
//
// Middleware stores the result on the request context. KeyFunc feeds the
// per-client rate limiter on the submission routes, and LoggerExtractor adds
// the address to log records.
package clientip
