package server

import (
	"net/http"

	"exchange-service/internal/handler"
	"exchange-service/internal/metrics"
	"exchange-service/internal/middleware"
	"exchange-service/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Deps struct {
	Config            *config.Config
	ConversionHandler *handler.ConversionHandler
	Metrics           *metrics.Metrics
	Gatherer          prometheus.Gatherer
	Logger            *logrus.Logger
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	// Recovery stays innermost; Logger and Metrics must see recovered panics.
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.Recovery(d.Logger),
	)

	// cors middleware for the converter form
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.CORS.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
	}))

	r.GET("/health", handler.HealthCheck(d.Config.App.Name))

	api := r.Group("/api")
	api.GET("/exchange", d.ConversionHandler.Convert)
	api.GET("/currencies", d.ConversionHandler.ListCurrencies)

	if d.Config.Metrics.Enabled && d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	return r
}
