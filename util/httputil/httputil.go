package httputil

import (
	"net"
	"net/http"
	"strings"
)

var (
	xForwardedFor = http.CanonicalHeaderKey("X-Forwarded-For")
	xTrueClientIP = http.CanonicalHeaderKey("True-Client-IP")
	xRealIP       = http.CanonicalHeaderKey("X-Real-IP")
)

// FindClientIP returns the best candidate for the caller's IP address,
// preferring proxy-supplied headers over the socket peer address.
func FindClientIP(r *http.Request) net.IP {
	if ip := parseIP(r.Header.Get(xTrueClientIP)); ip != nil {
		return ip
	}

	if xff := r.Header.Get(xForwardedFor); xff != "" {
		for _, part := range strings.Split(xff, ",") {
			if ip := parseIP(part); ip != nil {
				return ip
			}
		}
	}

	if ip := parseIP(r.Header.Get(xRealIP)); ip != nil {
		return ip
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return net.ParseIP(host)
	}

	return nil
}

func parseIP(raw string) net.IP {
	return net.ParseIP(strings.TrimSpace(raw))
}
