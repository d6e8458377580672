package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exchange-service/internal/adapter/exchangerate"
	"exchange-service/internal/handler"
	"exchange-service/internal/metrics"
	"exchange-service/internal/server"
	"exchange-service/internal/service"
	"exchange-service/internal/usecase"
	"exchange-service/pkg/config"
	"exchange-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log := logger.Init(cfg.Log.Level, cfg.Log.Format)

	log.Info("Starting app...")

	if cfg.Exchange.APIKey == "" {
		// not fatal: every conversion answers with a configuration error instead
		log.Warn("EXCHANGE_API_KEY is not set, conversions will fail")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// initialize adapters
	rateClient := exchangerate.NewClient(cfg.Exchange.BaseURL, cfg.Exchange.Timeout, m, log)
	log.Info("Initialized exchange rate API client")

	// initialize service
	rateService := service.NewRateService(rateClient, cfg.Exchange.APIKey, log)
	log.Info("Initialized service layer")

	// initialize usecase
	conversionUsecase := usecase.NewConversionUsecase(rateService, cfg.Currencies, log)
	log.Info("Initialized usecase layer")

	conversionHandler := handler.NewConversionHandler(conversionUsecase, m, log)

	if !log.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := server.NewRouter(server.Deps{
		Config:            cfg,
		ConversionHandler: conversionHandler,
		Metrics:           m,
		Gatherer:          reg,
		Logger:            log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Server starting on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Got shutdown signal...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Error server shutdown:", err)
	}
	log.Info("Server stopped")
}
