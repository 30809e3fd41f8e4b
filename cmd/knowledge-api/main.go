package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/frdeange/apitoolsnetworking/internal/api"
	"github.com/frdeange/apitoolsnetworking/internal/cache"
	"github.com/frdeange/apitoolsnetworking/internal/config"
	"github.com/frdeange/apitoolsnetworking/internal/engine"
	"github.com/frdeange/apitoolsnetworking/internal/metrics"
	"github.com/frdeange/apitoolsnetworking/internal/services"
	"github.com/frdeange/apitoolsnetworking/internal/store"
	"github.com/frdeange/apitoolsnetworking/internal/utils"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("path", configPath), slog.Any("error", err))
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Logging.Level, cfg.Logging.JSON)
	logger.Info("starting knowledge-api", slog.String("address", cfg.Server.Address))

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Error("failed to register metrics", slog.Any("error", err))
		os.Exit(1)
	}

	var dataset *store.Dataset
	if cfg.Data.Path != "" {
		dataset, err = store.Load(cfg.Data.Path)
		if err != nil {
			logger.Error("failed to load dataset", slog.String("path", cfg.Data.Path), slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("dataset loaded", slog.String("path", cfg.Data.Path))
	} else {
		dataset = store.Seed(time.Now().UTC())
		logger.Info("using built-in seed dataset")
	}

	sites := store.NewSiteDirectory(dataset.Sites)
	incidents := store.NewIncidentRegistry(dataset.Incidents)
	maintenance := store.NewMaintenanceSchedule(dataset.Maintenance)
	cases := store.NewCaseHistory(dataset.Cases)
	products := store.NewProductCatalog(dataset.Products)
	logger.Info("knowledge stores ready",
		slog.Int("sites", sites.Len()),
		slog.Int("incidents", incidents.Len()),
		slog.Int("maintenance", maintenance.Len()),
		slog.Int("cases", cases.Len()),
		slog.Int("products", products.Len()),
	)

	recommender, err := engine.NewRecommender(cfg.Rules.Path, logger)
	if err != nil {
		logger.Error("failed to load recommendation rules", slog.Any("error", err))
		os.Exit(1)
	}

	aggregator := engine.NewAggregator(logger, sites, incidents, maintenance, cases, products, recommender, nil)

	var cacheProvider cache.Provider = cache.NoopProvider{}
	if cfg.Cache.Enabled {
		provider, err := cache.NewLRUProvider(cfg.Cache.Size)
		if err != nil {
			logger.Warn("response cache unavailable", slog.Any("error", err))
		} else {
			cacheProvider = provider
			defer provider.Close()
		}
	}

	svc := services.NewKnowledgeService(logger, sites, incidents, maintenance, cases, products, aggregator, cacheProvider, cfg.Cache.TTL)

	server := api.NewServer(cfg.Server, cfg.CORS, logger, api.NewHandlers(logger, svc))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metricsServer *http.Server
	if cfg.Server.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:         cfg.Server.MetricsAddress,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
		}
		go func() {
			logger.Info("metrics server listening", slog.String("address", cfg.Server.MetricsAddress))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server exited", slog.Any("error", err))
				stop()
			}
		}()
	}

	go func() {
		if serveErr := server.Start(); serveErr != nil {
			logger.Error("http server exited", slog.Any("error", serveErr))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http server shutdown", slog.Any("error", err))
	}

	if metricsServer != nil {
		metricsCtx, cancelMetrics := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(metricsCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server shutdown", slog.Any("error", err))
		}
		cancelMetrics()
	}

	// Give remaining goroutines time to finish logging
	time.Sleep(100 * time.Millisecond)
	logger.Info("knowledge-api stopped")
}
