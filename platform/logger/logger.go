// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// Context key types for storing values in context
type contextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithContext returns a logger with context values extracted.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		return l.WithRequestID(requestID)
	}

	return l
}

// WithRequestID returns a logger with request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("request_id", requestID)),
	}
}

// HTTPRequest logs an HTTP request
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// RenderEvent logs an offer letter render attempt.
func (l *Logger) RenderEvent(sellerEmail, pdfPath string, success bool, reason string) {
	if success {
		l.Info("render_event",
			slog.String("seller_email", sellerEmail),
			slog.String("pdf_path", pdfPath),
			slog.Bool("success", success),
		)
	} else {
		l.Error("render_event",
			slog.String("seller_email", sellerEmail),
			slog.Bool("success", success),
			slog.String("reason", reason),
		)
	}
}

// DeliveryEvent logs a mail delivery attempt.
func (l *Logger) DeliveryEvent(provider, toEmail string, success bool, reason string) {
	if success {
		l.Info("delivery_event",
			slog.String("provider", provider),
			slog.String("to", toEmail),
			slog.Bool("success", success),
		)
	} else {
		l.Error("delivery_event",
			slog.String("provider", provider),
			slog.String("to", toEmail),
			slog.Bool("success", success),
			slog.String("reason", reason),
		)
	}
}

// WebhookEvent logs an outbound CRM webhook attempt.
func (l *Logger) WebhookEvent(url string, success bool, reason string) {
	if success {
		l.Info("webhook_event",
			slog.String("url", url),
			slog.Bool("success", success),
		)
	} else {
		l.Warn("webhook_event",
			slog.String("url", url),
			slog.Bool("success", success),
			slog.String("reason", reason),
		)
	}
}

// RateLimitExceeded logs rate limit events
func (l *Logger) RateLimitExceeded(clientIP, path string) {
	l.Warn("rate_limit_exceeded",
		slog.String("client_ip", clientIP),
		slog.String("path", path),
	)
}
