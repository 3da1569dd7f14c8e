package api

import (
	"log/slog"
	"net/http"
	"time"
)

// loggingTransport logs each API call with method, path, status, and duration.
type loggingTransport struct {
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	elapsed := time.Since(start).Round(time.Millisecond)

	if err != nil {
		slog.Debug("api request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"request_id", req.Header.Get("X-Request-ID"),
			"duration", elapsed,
			"error", err,
		)
		return nil, err
	}

	slog.Debug("api request",
		"method", req.Method,
		"path", req.URL.RequestURI(),
		"status", resp.StatusCode,
		"request_id", req.Header.Get("X-Request-ID"),
		"duration", elapsed,
	)
	return resp, nil
}
