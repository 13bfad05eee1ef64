package routes

import (
	"context"
	"log"
	"net/http"

	_ "torchline_portal/docs" // registers the swagger spec
	"torchline_portal/internal/adapter/http/handlers"
	"torchline_portal/internal/adapter/persistence/repository"
	"torchline_portal/internal/infrastructure/config"
	"torchline_portal/internal/infrastructure/metrics"
	"torchline_portal/internal/infrastructure/reporting"
	"torchline_portal/internal/infrastructure/session"
	"torchline_portal/internal/usecase"
	"torchline_portal/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Quotes        *handlers.QuoteHandler
	Reports       *handlers.ReportHandler
	Portal        *handlers.PortalHandler
	Collaboration *handlers.CollaborationHandler
	Catalog       *handlers.CatalogHandler
}

// Run will start the server
func Run(cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	store, err := repository.NewDocumentStore(context.Background(), cfg)
	if err != nil {
		return err
	}
	m := metrics.New()
	sessions := session.NewManager(session.NewCookieStore(cfg.SessionSecret, cfg.SessionSecure))

	router := NewRouter(buildHandlers(cfg, metrics.NewInstrumentedStore(store, m), m, sessions), sessions, m)

	log.Printf("[server] listening port=%s backend=%s", cfg.Port, cfg.StoreBackend)
	return router.Run(":" + cfg.Port)
}

func buildHandlers(cfg *config.Config, store interfaces.IDocumentStore, m *metrics.Metrics, sessions *session.Manager) Handlers {
	owner := cfg.StoreServiceEmail

	quoteUseCase := usecase.NewQuoteUseCase(store, owner)
	approvalUseCase := usecase.NewQuoteApprovalUseCase(store)
	analyticsUseCase := usecase.NewAnalyticsUseCase(store, nil)
	reportUseCase := usecase.NewReportUseCase(store, analyticsUseCase, reporting.NewPDFRenderer(), reporting.NewExcelRenderer())

	return Handlers{
		Auth:          handlers.NewAuthHandler(usecase.NewAuthUseCase(store, owner, cfg.UsersPageSize), sessions),
		Quotes:        handlers.NewQuoteHandler(quoteUseCase, approvalUseCase, m),
		Reports:       handlers.NewReportHandler(analyticsUseCase, reportUseCase),
		Portal:        handlers.NewPortalHandler(usecase.NewPortalUseCase(store, owner)),
		Collaboration: handlers.NewCollaborationHandler(usecase.NewCollaborationUseCase(store)),
		Catalog:       handlers.NewCatalogHandler(usecase.NewStoreAdminUseCase(store)),
	}
}

// NewRouter mounts middleware, docs, metrics and the /v1 API.
func NewRouter(h Handlers, sessions handlers.SessionStore, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(m.Middleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", m.Handler())

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, h)
	addPortalRoutes(v1, h, sessions)
	return router
}
