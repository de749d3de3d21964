// Package main - Entry point for the saas-economics API server
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"saas-economics/api"
	"saas-economics/core/engine"
	"saas-economics/internal/config"
	"saas-economics/internal/logging"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", config.DefaultPath(), "config file")
	addr := flag.String("addr", "", "listen address (default from config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err == nil {
		err = cfg.LoadEnv()
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		logging.InitializeDefault()
		logging.Fatal("invalid configuration", zap.Error(err))
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.InitializeDefault()
		logging.Fatal("initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	listen := cfg.Server.Address()
	if *addr != "" {
		listen = *addr
	}

	eng := engine.NewEngine(engine.EngineConfig{
		Tiers:            cfg.Tiers,
		ProjectionMonths: cfg.Projection.Months,
		Scenarios:        cfg.Scenarios,
	}, engine.WithLogger(logging.ForComponent("engine")))

	server := api.NewServer(eng, api.Options{
		Version:      version,
		AllowOrigins: cfg.Server.AllowOrigins,
		Logger:       logging.ForComponent("api"),
	})

	go func() {
		if err := server.Start(listen); err != nil {
			logging.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logging.Info("graceful shutdown initiated")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error("shutdown", zap.Error(err))
	}
}
