package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/trinextgen/site-api/docs"
	"github.com/trinextgen/site-api/internal/config"
	"github.com/trinextgen/site-api/internal/middleware"
	"github.com/trinextgen/site-api/internal/modules/handler"
	"github.com/trinextgen/site-api/internal/modules/serializer"
	"github.com/trinextgen/site-api/internal/modules/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config *config.Config
	Log    *zap.Logger
	Redis  *redis.Client
	Auth   service.AuthService

	AdminHandler         *handler.AdminHandler
	ClientHandler        *handler.ClientHandler
	ClientProjectHandler *handler.ClientProjectHandler
	ShowcaseHandler      *handler.ShowcaseHandler
	CareerHandler        *handler.CareerHandler
	SiteHandler          *handler.SiteHandler
	AttachmentHandler    *handler.AttachmentHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Add OpenTelemetry middleware if enabled (using configuration system)
	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Trace-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	adminOnly := middleware.AdminAuth(d.Auth)

	limited := func(c *gin.Context) { c.Next() }
	if d.Config.RateLimit.Enabled {
		limited = middleware.NewRateLimiter(
			d.Redis,
			d.Config.RateLimit.Requests,
			time.Duration(d.Config.RateLimit.WindowSec)*time.Second,
			d.Log,
		).Handler()
	}

	api := r.Group("/api", middleware.BodyLimit(d.Config.Upload.BodyLimit()))
	{
		admin := api.Group("/admin")
		{
			admin.POST("/register", limited, d.AdminHandler.Register)
			admin.POST("/login", limited, d.AdminHandler.Login)
			admin.GET("/contacts", adminOnly, d.AdminHandler.ListContacts)
		}

		clients := api.Group("/clients", adminOnly)
		{
			clients.GET("", d.ClientHandler.ListClients)
			clients.POST("", d.ClientHandler.CreateClient)
			clients.GET("/:id", d.ClientHandler.GetClient)
			clients.PUT("/:id", d.ClientHandler.UpdateClient)
			clients.DELETE("/:id", d.ClientHandler.DeleteClient)

			clients.GET("/:id/projects", d.ClientHandler.ListClientProjects)
			clients.POST("/:id/projects", d.ClientHandler.CreateClientProject)
			clients.PUT("/:id/projects/:projectId", d.ClientHandler.UpdateClientProject)
			clients.DELETE("/:id/projects/:projectId", d.ClientHandler.DeleteClientProject)

			clients.GET("/:id/payments", d.ClientHandler.ListClientPayments)
			clients.POST("/:id/payments", d.ClientHandler.CreateClientPayment)
			clients.DELETE("/:id/payments/:paymentId", d.ClientHandler.DeleteClientPayment)
		}

		cp := api.Group("/clientProject", adminOnly)
		{
			cp.GET("", d.ClientProjectHandler.ListProjects)
			cp.POST("", d.ClientProjectHandler.CreateProject)
			cp.POST("/bulk-delete", d.ClientProjectHandler.BulkDelete)
			cp.GET("/client/:clientId", d.ClientProjectHandler.ListByClient)

			cp.GET("/:projectId", d.ClientProjectHandler.GetProject)
			cp.PUT("/:projectId", d.ClientProjectHandler.UpdateProject)
			cp.DELETE("/:projectId", d.ClientProjectHandler.DeleteProject)
			cp.PATCH("/:projectId/status", d.ClientProjectHandler.UpdateStatus)
			cp.GET("/:projectId/payments", d.ClientProjectHandler.ListPayments)
			cp.GET("/:projectId/stats", d.ClientProjectHandler.GetStats)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", d.ShowcaseHandler.ListShowcase)
			projects.GET("/:id", d.ShowcaseHandler.GetShowcase)
			projects.POST("", adminOnly, d.ShowcaseHandler.CreateShowcase)
			projects.PUT("/:id", adminOnly, d.ShowcaseHandler.UpdateShowcase)
			projects.DELETE("/:id", adminOnly, d.ShowcaseHandler.DeleteShowcase)
		}

		// career management is public, matching the site it backs
		careers := api.Group("/careers")
		{
			careers.GET("", d.CareerHandler.ListCareers)
			careers.POST("", d.CareerHandler.CreateCareer)
			careers.POST("/apply", limited, d.CareerHandler.Apply)
			careers.GET("/applications", d.CareerHandler.ListApplications)
			careers.PUT("/applications/:id", d.CareerHandler.UpdateApplication)
			careers.PUT("/:id", d.CareerHandler.UpdateCareer)
			careers.DELETE("/:id", d.CareerHandler.DeleteCareer)
		}

		api.POST("/contact", limited, d.SiteHandler.SubmitContact)
		api.GET("/services", d.SiteHandler.ListServices)
		api.POST("/services", d.SiteHandler.CreateService)
		api.GET("/pages/:page", d.SiteHandler.GetPage)

		api.GET("/attachments/url", adminOnly, d.AttachmentHandler.GetURL)
	}
	return r
}
