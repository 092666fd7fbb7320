package main

//	@title			TriNextGen Site API
//	@version		1.0
//	@description	Backend for the agency site: admin auth, client ledger, portfolio, careers and contact.
//	@schemes		http https
//	@BasePath		/api

//  Bearer at admin level
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Admin JWT (e.g., "Bearer eyJhbGci...")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/trinextgen/site-api/internal/bootstrap"
	"github.com/trinextgen/site-api/internal/config"
	"github.com/trinextgen/site-api/internal/infra/cache"
	dbpkg "github.com/trinextgen/site-api/internal/infra/db"
	"github.com/trinextgen/site-api/internal/modules/handler"
	"github.com/trinextgen/site-api/internal/modules/service"
	"github.com/trinextgen/site-api/internal/router"
	"github.com/trinextgen/site-api/internal/telemetry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()
	db := do.MustInvoke[*gorm.DB](inj)
	rdb := do.MustInvoke[*redis.Client](inj)
	mq := do.MustInvoke[*amqp.Connection](inj)

	// Setup OpenTelemetry tracing (using configuration system)
	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		// Register GORM OpenTelemetry plugin after tracer provider is set
		if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
			log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin, continuing without database tracing", "err", err)
		} else {
			log.Sugar().Info("GORM OpenTelemetry plugin registered")
		}

		// Register Redis OpenTelemetry plugin after tracer provider is set
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Sugar().Warnw("failed to register Redis OpenTelemetry plugin, continuing without Redis tracing", "err", err)
		} else {
			log.Sugar().Info("Redis OpenTelemetry plugin registered")
		}
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:               cfg,
		Log:                  log,
		Redis:                rdb,
		Auth:                 do.MustInvoke[service.AuthService](inj),
		AdminHandler:         do.MustInvoke[*handler.AdminHandler](inj),
		ClientHandler:        do.MustInvoke[*handler.ClientHandler](inj),
		ClientProjectHandler: do.MustInvoke[*handler.ClientProjectHandler](inj),
		ShowcaseHandler:      do.MustInvoke[*handler.ShowcaseHandler](inj),
		CareerHandler:        do.MustInvoke[*handler.CareerHandler](inj),
		SiteHandler:          do.MustInvoke[*handler.SiteHandler](inj),
		AttachmentHandler:    do.MustInvoke[*handler.AttachmentHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}

	if mq != nil {
		if err := mq.Close(); err != nil {
			log.Sugar().Warnw("close rabbitmq", "err", err)
		}
	}
	if err := rdb.Close(); err != nil {
		log.Sugar().Warnw("close redis", "err", err)
	}
	if err := dbpkg.Close(db); err != nil {
		log.Sugar().Warnw("close database", "err", err)
	}
	log.Sugar().Info("server exited")
}
