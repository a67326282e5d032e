package v1

import (
	"net/http"

	"github.com/be3health/patient-registry/internal/config"
	"github.com/be3health/patient-registry/pkg/auth"
	"github.com/be3health/patient-registry/pkg/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Config     *config.Config
	Log        *zap.Logger
	Collector  *metrics.Collector
	JWTManager *auth.JWTManager

	Patients *PatientHandler
	Plans    *PlanHandler
	Auth     *AuthHandler
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(deps.Config.Tracing.ServiceName))
	r.Use(RequestID())
	r.Use(RequestLogger(deps.Log))
	r.Use(Metrics(deps.Collector))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  deps.Config.CORS.AllowedOrigins,
		AllowMethods:  deps.Config.CORS.AllowedMethods,
		AllowHeaders:  deps.Config.CORS.AllowedHeaders,
		ExposeHeaders: []string{"Location", requestIDHeader},
		MaxAge:        deps.Config.CORS.MaxAge,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	api := r.Group("/api/v1")
	deps.Auth.Register(api)

	protected := api.Group("")
	protected.Use(Auth(deps.JWTManager))
	deps.Patients.Register(protected)
	deps.Plans.Register(protected)

	return r
}
