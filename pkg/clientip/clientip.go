package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Headers consulted in priority order before falling back to RemoteAddr.
var forwardedHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the originating client address for r. The first valid IP
// found in the proxy headers wins; X-Forwarded-For is scanned left to right.
// It returns "" when nothing parses.
func GetIP(r *http.Request) string {
	for _, h := range forwardedHeaders {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for candidate := range strings.SplitSeq(v, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// KeyFunc adapts GetIP to the rate limiter key signature.
func KeyFunc(r *http.Request) (string, error) {
	if ip := GetIPFromContext(r.Context()); ip != "" {
		return ip, nil
	}
	if ip := GetIP(r); ip != "" {
		return ip, nil
	}
	return "", ErrNoClientIP
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
