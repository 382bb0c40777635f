package main

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"payroll-engine/internal/config"
	"payroll-engine/internal/handler"
	"payroll-engine/internal/logging"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	server := &fasthttp.Server{
		Handler:            handler.New(cfg, logger).HandleRequest,
		Name:               "payroll-engine",
		ReadTimeout:        cfg.ReadTimeout,
		WriteTimeout:       cfg.WriteTimeout,
		MaxRequestBodySize: cfg.MaxBodyBytes,
	}

	go func() {
		logger.Infof("Payroll engine starting on port %s", cfg.Port)
		if err := server.ListenAndServe(":" + cfg.Port); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server stopped")
}
