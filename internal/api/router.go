package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pourtrait/pourtrait-api/internal/api/handlers"
	apimiddleware "github.com/pourtrait/pourtrait-api/internal/api/middleware"
	"github.com/pourtrait/pourtrait-api/internal/config"
	"github.com/pourtrait/pourtrait-api/internal/metrics"
	"github.com/pourtrait/pourtrait-api/internal/store"
	"github.com/pourtrait/pourtrait-api/internal/web"
	"gorm.io/gorm"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	DB        *gorm.DB
	Store     store.DrinkStore
	Remote    handlers.RemoteGenerator
	CWMetrics *metrics.Client
	Config    *config.Config
}

func SetupRouter(deps Deps) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())
	router.Use(apimiddleware.SentryMiddleware())
	router.Use(apimiddleware.RequestTracking(deps.CWMetrics))
	router.Use(apimiddleware.CORS())

	// Front end (embedded, precached by the service worker)
	webHandler := handlers.NewWebHandler()
	router.GET("/", webHandler.Index)
	router.GET("/sw.js", webHandler.ServiceWorker)
	router.GET("/manifest.webmanifest", webHandler.Manifest)
	router.StaticFS("/static", http.FS(web.Static()))

	// Health check
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Config)
	router.GET("/health", healthHandler.HealthCheck)

	// API v1
	v1 := router.Group("/api/v1")
	{
		drinkHandler := handlers.NewDrinkHandler(deps.Store, deps.Remote, deps.CWMetrics)
		v1.POST("/drinks", drinkHandler.Generate)
		v1.GET("/drinks", drinkHandler.List)
		v1.POST("/drinks/:id/vote", drinkHandler.Vote)

		v1.GET("/generators", handlers.ListGenerators)
	}

	return router
}
