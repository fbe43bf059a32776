package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/greencycle/wastehub/token"
)

const (
	// RequestIDHeader is the request id HTTP header
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the request id key in the gin context
	RequestIDKey = "request_id"
)

// RequestTracingMiddleware assigns every request a unique request_id and
// echoes it in the response headers.
func RequestTracingMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// A gateway may have injected one already
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx.Set(RequestIDKey, requestID)
		ctx.Header(RequestIDHeader, requestID)

		ctx.Next()
	}
}

// RequestLoggingMiddleware logs every request with its request_id
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path
		query := ctx.Request.URL.RawQuery

		requestID, _ := ctx.Get(RequestIDKey)

		ctx.Next()

		latency := time.Since(start)
		status := ctx.Writer.Status()

		var logEvent *zerolog.Event
		switch {
		case status >= 500:
			logEvent = log.Error()
		case status >= 400:
			logEvent = log.Warn()
		default:
			logEvent = log.Info()
		}

		logEvent.
			Str("request_id", requestID.(string)).
			Str("method", ctx.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", ctx.ClientIP()).
			Int("body_size", ctx.Writer.Size())

		if len(ctx.Errors) > 0 {
			logEvent.Str("errors", ctx.Errors.String())
		}

		if payload, exists := ctx.Get(authorizationPayloadKey); exists {
			userPayload := payload.(*token.Payload)
			logEvent.Int64("user_id", userPayload.UserID)
		}

		logEvent.Msg("HTTP request")
	}
}

// GetRequestID returns the request_id from the gin context
func GetRequestID(ctx *gin.Context) string {
	if requestID, exists := ctx.Get(RequestIDKey); exists {
		return requestID.(string)
	}
	return ""
}
