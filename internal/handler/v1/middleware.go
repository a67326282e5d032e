package v1

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/be3health/patient-registry/internal/domain"
	"github.com/be3health/patient-registry/internal/service"
	"github.com/be3health/patient-registry/pkg/auth"
	"github.com/be3health/patient-registry/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	claimsKey    = "claims"
	requestIDKey = "request_id"

	requestIDHeader = "X-Request-ID"
)

// RequestID accepts an inbound X-Request-ID or mints one, and echoes
// it back so clients can correlate.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}

func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		collector.InFlightGauge.Inc()
		start := time.Now()
		c.Next()
		collector.InFlightGauge.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		collector.RequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		collector.RequestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
	}
}

// Auth requires a valid Bearer access token and stores the claims for
// downstream handlers.
func Auth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, messageResponse{Message: "Autenticação necessária."})
			return
		}

		claims, err := jwtManager.ValidateAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, messageResponse{Message: "Token inválido ou expirado."})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func actorFrom(c *gin.Context) service.Actor {
	actor := service.Actor{
		IP:        c.ClientIP(),
		RequestID: c.GetString(requestIDKey),
	}
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*domain.Claims); ok {
			actor.UserID = claims.UserID
		}
	}
	return actor
}
