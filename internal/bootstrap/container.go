package bootstrap

import (
	"context"
	"errors"
	"time"

	"github.com/trinextgen/site-api/internal/config"
	"github.com/trinextgen/site-api/internal/content"
	"github.com/trinextgen/site-api/internal/infra/blob"
	"github.com/trinextgen/site-api/internal/infra/cache"
	"github.com/trinextgen/site-api/internal/infra/db"
	"github.com/trinextgen/site-api/internal/infra/logger"
	"github.com/trinextgen/site-api/internal/infra/queue"
	"github.com/trinextgen/site-api/internal/modules/handler"
	"github.com/trinextgen/site-api/internal/modules/model"
	"github.com/trinextgen/site-api/internal/modules/repo"
	"github.com/trinextgen/site-api/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			if err := d.AutoMigrate(
				&model.Admin{},
				&model.Client{},
				&model.ClientProject{},
				&model.Payment{},
				&model.ShowcaseProject{},
				&model.Career{},
				&model.Application{},
				&model.Contact{},
				&model.Service{},
			); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// RabbitMQ Connection. Without a broker events are dropped.
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		if cfg.RabbitMQ.URL == "" {
			log.Sugar().Warn("rabbitmq url not set, site events disabled")
			return nil, nil
		}
		conn, err := amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			log.Sugar().Warnw("rabbitmq unavailable, site events disabled", "err", err)
			return nil, nil
		}
		return conn, nil
	})
	do.Provide(inj, func(i *do.Injector) (*queue.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return queue.NewPublisher(
			do.MustInvoke[*amqp.Connection](i),
			cfg.RabbitMQ.Queue,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (blob.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.Transactor, error) {
		return repo.NewTransactor(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AdminRepo, error) {
		return repo.NewAdminRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ClientRepo, error) {
		return repo.NewClientRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ClientProjectRepo, error) {
		return repo.NewClientProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.PaymentRepo, error) {
		return repo.NewPaymentRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ShowcaseRepo, error) {
		return repo.NewShowcaseRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CareerRepo, error) {
		return repo.NewCareerRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ApplicationRepo, error) {
		return repo.NewApplicationRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ContactRepo, error) {
		return repo.NewContactRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ServiceRepo, error) {
		return repo.NewServiceRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.Auth.JWTSecret == "" {
			return nil, errors.New("auth.jwtSecret is required")
		}
		return service.NewAuthService(
			do.MustInvoke[repo.AdminRepo](i),
			service.AuthOptions{
				Secret:     []byte(cfg.Auth.JWTSecret),
				TokenTTL:   time.Duration(cfg.Auth.TokenTTLSec) * time.Second,
				BcryptCost: cfg.Auth.BcryptCost,
			},
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AttachmentService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		expire := 15 * time.Minute
		if cfg.S3.PresignExpireSec > 0 {
			expire = time.Duration(cfg.S3.PresignExpireSec) * time.Second
		}
		return service.NewAttachmentService(
			do.MustInvoke[blob.Store](i),
			service.AttachmentLimits{
				MaxImageBytes: cfg.Upload.MaxImageBytes,
				MaxFileBytes:  cfg.Upload.MaxFileBytes,
				PresignExpire: expire,
			},
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ClientService, error) {
		return service.NewClientService(
			do.MustInvoke[repo.Transactor](i),
			do.MustInvoke[repo.ClientRepo](i),
			do.MustInvoke[repo.ClientProjectRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ClientProjectService, error) {
		return service.NewClientProjectService(
			do.MustInvoke[repo.Transactor](i),
			do.MustInvoke[repo.ClientRepo](i),
			do.MustInvoke[repo.ClientProjectRepo](i),
			do.MustInvoke[repo.PaymentRepo](i),
			do.MustInvoke[service.AttachmentService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PaymentService, error) {
		return service.NewPaymentService(
			do.MustInvoke[repo.Transactor](i),
			do.MustInvoke[repo.ClientRepo](i),
			do.MustInvoke[repo.ClientProjectRepo](i),
			do.MustInvoke[repo.PaymentRepo](i),
			do.MustInvoke[service.AttachmentService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ShowcaseService, error) {
		return service.NewShowcaseService(do.MustInvoke[repo.ShowcaseRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CareerService, error) {
		return service.NewCareerService(
			do.MustInvoke[repo.CareerRepo](i),
			do.MustInvoke[repo.ApplicationRepo](i),
			do.MustInvoke[service.AttachmentService](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ContactService, error) {
		return service.NewContactService(
			do.MustInvoke[repo.ContactRepo](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CatalogService, error) {
		return service.NewCatalogService(do.MustInvoke[repo.ServiceRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PageService, error) {
		return service.NewPageService(content.Pages)
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AdminHandler, error) {
		return handler.NewAdminHandler(
			do.MustInvoke[service.AuthService](i),
			do.MustInvoke[service.ContactService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ClientHandler, error) {
		return handler.NewClientHandler(
			do.MustInvoke[service.ClientService](i),
			do.MustInvoke[service.ClientProjectService](i),
			do.MustInvoke[service.PaymentService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ClientProjectHandler, error) {
		return handler.NewClientProjectHandler(do.MustInvoke[service.ClientProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ShowcaseHandler, error) {
		return handler.NewShowcaseHandler(do.MustInvoke[service.ShowcaseService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CareerHandler, error) {
		return handler.NewCareerHandler(do.MustInvoke[service.CareerService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SiteHandler, error) {
		return handler.NewSiteHandler(
			do.MustInvoke[service.ContactService](i),
			do.MustInvoke[service.CatalogService](i),
			do.MustInvoke[service.PageService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AttachmentHandler, error) {
		return handler.NewAttachmentHandler(do.MustInvoke[service.AttachmentService](i)), nil
	})

	return inj
}
