package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/harshmriduhash/Cold-Emailer/pkg/logx"
	"github.com/harshmriduhash/Cold-Emailer/pkg/metrics"
)

const (
	ctxRequestID     = "request_id"
	ctxSubmitOutcome = "submit_outcome"
)

// Observability tags every request with an id, records route metrics and
// writes one access line. Submit requests also carry their outcome.
func Observability() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Header("X-Request-ID", rid)
		c.Set(ctxRequestID, rid)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		lat := time.Since(start).Seconds()

		metrics.APIRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		metrics.APIRequestDuration.WithLabelValues(c.Request.Method, route).Observe(lat)

		fields := []any{
			"rid", rid,
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration", lat,
			"client_ip", c.ClientIP(),
		}
		if outcome := c.GetString(ctxSubmitOutcome); outcome != "" {
			fields = append(fields, "submit_outcome", outcome)
		}
		logx.L().Infow("http_access", fields...)
	}
}
