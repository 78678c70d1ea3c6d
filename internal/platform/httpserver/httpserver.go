package httpserver

import (
	"net/http"
	"time"
)

// New builds the HTTP server the compliance API listens on. The header
// timeout guards against slow-loris clients; per-request deadlines are
// handled by router middleware.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
