package sharedhttp

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/avast/retry-go"
)

var Transport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	ForceAttemptHTTP2:     true,
	MaxIdleConns:          100,
	MaxIdleConnsPerHost:   10,
	IdleConnTimeout:       90 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	ExpectContinueTimeout: 1 * time.Second,
	ReadBufferSize:        65536,
	WriteBufferSize:       65536,
	TLSClientConfig: &tls.Config{
		MinVersion: tls.VersionTLS12,
	},
}

// RoundTripper returns the shared transport, wrapped with browser-like headers and TLS
// settings for sites behind anti-bot protection.
func RoundTripper(protected bool) http.RoundTripper {
	if protected {
		return cloudflarebp.AddCloudFlareByPass(Transport)
	}

	return Transport
}

func CheckStatusCode(statusCode int) error {
	switch statusCode {
	case http.StatusOK:

	case http.StatusUnauthorized, http.StatusForbidden:
		return retry.Unrecoverable(fmt.Errorf("access denied fetching page: status code %d", statusCode))

	case http.StatusNotFound, http.StatusGone:
		return retry.Unrecoverable(fmt.Errorf("page not found: status code %d", statusCode))

	case http.StatusMethodNotAllowed:
		return retry.Unrecoverable(fmt.Errorf("method not allowed: status code %d", statusCode))

	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusInternalServerError:
		return fmt.Errorf("server error encountered while fetching page: status code %d - retrying", statusCode)

	default:
		return retry.Unrecoverable(fmt.Errorf("unexpected error fetching page: status code %d", statusCode))
	}

	return nil
}
