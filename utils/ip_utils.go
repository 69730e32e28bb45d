package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP resolves the visitor's address from the forwarding headers set by
// proxies in front of the service: X-Forwarded-For first (leftmost entry),
// then the Cloudflare header, then a loopback placeholder.
func ClientIP(header http.Header) string {
	if fwd := header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}
	if ip := strings.TrimSpace(header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}
	return "127.0.0.1"
}

// IsPrivateIP reports whether the address is loopback, link-local, or in a
// private range, or cannot be parsed at all. Such addresses never hit the
// geolocation service.
func IsPrivateIP(ip string) bool {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return true
	}
	return parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsLinkLocalUnicast() || parsed.IsUnspecified()
}
