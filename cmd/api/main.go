package main

import (
	"go-hrms/internal/app"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/config"
	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.App.Env)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	if err := bootstrap.StartHTTPServer(r, cfg.Server, bootstrap.NewStdoutAuditLogger(logger)); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	build := zap.NewDevelopment
	if env == "production" {
		build = zap.NewProduction
	}
	logger, err := build()
	if err != nil {
		panic(err)
	}
	return logger
}
