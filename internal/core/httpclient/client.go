package httpclient

import (
	"net/http"
	"time"

	"shop-admin/internal/core/logger"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs every backend request with its outcome and duration.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	requestID := req.Header.Get(RequestIDHeader)

	logger.Get().Debug("Backend request started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("request_id", requestID),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Get().Error("Backend request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.String("request_id", requestID),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Debug("Backend request completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("request_id", requestID),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
		},
		Timeout: timeout,
	}
}
