package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/server/handlers"
)

const realm = "khamar"

// Handlers groups the HTTP adapters mounted by New.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Records   *handlers.RecordHandler
	Analytics *handlers.AnalyticsHandler
	Insights  *handlers.InsightHandler
}

// New wires the Gin engine with required routes and middlewares. Everything
// except login, health and metrics requires HTTP basic auth.
func New(h Handlers, auth handlers.Authenticator, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/auth/login", h.Auth.Login)

	protected := r.Group("/", basicAuthMiddleware(auth))

	rec := protected.Group("/records")
	rec.GET("", h.Records.List)
	rec.POST("", h.Records.Create)
	rec.PUT("/:id", h.Records.Update)
	rec.DELETE("/:id", h.Records.Delete)

	an := protected.Group("/analytics")
	an.GET("/monthly", h.Analytics.Monthly)
	an.GET("/monthly/export", h.Analytics.Export)
	an.GET("/trend", h.Analytics.Trend)

	ins := protected.Group("/insights")
	ins.GET("", h.Insights.List)
	ins.POST("/market", h.Insights.Market)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func basicAuthMiddleware(auth handlers.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || auth.Authenticate(username, password) != nil {
			c.Header("WWW-Authenticate", `Basic realm="`+realm+`"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(gin.AuthUserKey, username)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
