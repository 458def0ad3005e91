package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	catalogdomain "github.com/facturable/facturable/internal/catalog/domain"
	"github.com/facturable/facturable/internal/config"
	"github.com/facturable/facturable/internal/configuration"
	configurationdomain "github.com/facturable/facturable/internal/configuration/domain"
	"github.com/facturable/facturable/internal/entity"
	entitydomain "github.com/facturable/facturable/internal/entity/domain"
	"github.com/facturable/facturable/internal/entitysubscription"
	entitysubscriptiondomain "github.com/facturable/facturable/internal/entitysubscription/domain"
	"github.com/facturable/facturable/internal/i18n"
	"github.com/facturable/facturable/internal/invoice"
	invoicedomain "github.com/facturable/facturable/internal/invoice/domain"
	"github.com/facturable/facturable/internal/subscription"
	subscriptiondomain "github.com/facturable/facturable/internal/subscription/domain"
	"github.com/facturable/facturable/internal/user"
	userdomain "github.com/facturable/facturable/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	config.Module,
	i18n.Module,
	entity.Module,
	subscription.Module,
	entitysubscription.Module,
	invoice.Module,
	user.Module,
	configuration.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogMiddleware(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine    *gin.Engine
	cfg       config.Config
	db        *gorm.DB
	genID     *snowflake.Node
	translate i18n.Translator

	entitySvc        entitydomain.Service
	subscriptionSvc  subscriptiondomain.Service
	entitySubSvc     entitysubscriptiondomain.Service
	invoiceSvc       invoicedomain.Service
	userSvc          userdomain.Service
	configurationSvc configurationdomain.Service
	catalogRepo      catalogdomain.Repository
}

type ServerParams struct {
	fx.In

	Gin       *gin.Engine
	Cfg       config.Config
	DB        *gorm.DB
	GenID     *snowflake.Node
	Translate i18n.Translator

	EntitySvc        entitydomain.Service
	SubscriptionSvc  subscriptiondomain.Service
	EntitySubSvc     entitysubscriptiondomain.Service
	InvoiceSvc       invoicedomain.Service
	UserSvc          userdomain.Service
	ConfigurationSvc configurationdomain.Service
	CatalogRepo      catalogdomain.Repository
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:    p.Gin,
		cfg:       p.Cfg,
		db:        p.DB,
		genID:     p.GenID,
		translate: p.Translate,

		entitySvc:        p.EntitySvc,
		subscriptionSvc:  p.SubscriptionSvc,
		entitySubSvc:     p.EntitySubSvc,
		invoiceSvc:       p.InvoiceSvc,
		userSvc:          p.UserSvc,
		configurationSvc: p.ConfigurationSvc,
		catalogRepo:      p.CatalogRepo,
	}
}

// RegisterRoutes wires the back-office API.
func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api/v1")

	api.GET("/entities", s.ListEntities)
	api.POST("/entities", s.CreateEntity)
	api.GET("/entities/:id", s.GetEntity)
	api.PUT("/entities/:id", s.UpdateEntity)
	api.DELETE("/entities/:id", s.DeleteEntity)
	api.GET("/entities/:id/subscriptions", s.ListEntitySubscriptionsByEntity)

	api.GET("/subscriptions", s.ListSubscriptions)
	api.POST("/subscriptions", s.CreateSubscription)
	api.GET("/subscriptions/:id", s.GetSubscription)
	api.PUT("/subscriptions/:id", s.UpdateSubscription)
	api.DELETE("/subscriptions/:id", s.DeleteSubscription)

	api.GET("/entity_subscriptions/:id", s.GetEntitySubscription)
	api.POST("/entity_subscriptions", s.CreateEntitySubscription)
	api.PUT("/entity_subscriptions/:id", s.UpdateEntitySubscription)
	api.DELETE("/entity_subscriptions/:id", s.DeleteEntitySubscription)

	api.GET("/invoices", s.ListInvoices)
	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices/:id", s.GetInvoice)
	api.PUT("/invoices/:id", s.UpdateInvoice)
	api.POST("/invoices/:id/rectify", s.RectifyInvoice)

	api.GET("/series", s.ListSeries)
	api.POST("/series", s.CreateSerie)
	api.PUT("/series/:id", s.UpdateSerie)

	api.POST("/invoice_items/calculate", s.CalculateInvoiceItem)

	api.GET("/users", s.ListUsers)
	api.POST("/users", s.CreateUser)
	api.GET("/users/:id", s.GetUser)
	api.PUT("/users/:id", s.UpdateUser)
	api.DELETE("/users/:id", s.DeleteUser)

	api.GET("/roles", s.ListRoles)
	api.POST("/roles", s.CreateRole)
	api.PUT("/roles/:id", s.UpdateRole)
	api.DELETE("/roles/:id", s.DeleteRole)

	api.GET("/configuration", s.GetConfiguration)
	api.PUT("/configuration", s.ReplaceConfiguration)

	api.GET("/tax_types", s.ListTaxTypes)
	api.GET("/service_types", s.ListServiceTypes)
	api.GET("/payment_methods", s.ListPaymentMethods)
	api.GET("/laf_statuses", s.ListLAFStatuses)
	api.GET("/billing_cycles", s.ListBillingCycles)
}
