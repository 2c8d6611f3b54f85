// Package http holds shared outbound HTTP plumbing.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns a client for outbound calls such as the mail webhook.
// timeout bounds the whole request; dial and TLS handshakes are capped at 5s
// and idle connections are pooled for reuse.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
