package engine

import (
	"net/http"
	"time"
)

// NewHTTPClient builds the shared client for YouTube page fetches. The pool
// is small on purpose: searches run sequentially, one request per query.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     60 * time.Second,
		},
	}
}
