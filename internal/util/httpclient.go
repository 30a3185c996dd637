package util

import (
	"net"
	"net/http"
	"sync"
	"time"
)

var (
	apiClient     *http.Client
	apiClientOnce sync.Once
)

// APIClient returns the shared HTTP client for provider API requests.
// Both providers answer small JSON payloads, so the client keeps a
// modest connection pool and a short overall timeout.
func APIClient() *http.Client {
	apiClientOnce.Do(func() {
		apiClient = &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:          50,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   5 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		}
	})
	return apiClient
}
