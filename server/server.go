package server

import (
	"agroclima-server/cache"
	"agroclima-server/confs"
	"agroclima-server/db"
	httpHandler "agroclima-server/handlers/http"
	"agroclima-server/middleware"
	"agroclima-server/repositories"
	"agroclima-server/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg confs.AppConfig
}

func NewServer(database db.Database, cfg confs.AppConfig) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
}

func (s *Server) Start() {
	s.Setup()

	if err := s.app.Run("0.0.0.0:" + s.cfg.Port); err != nil {
		panic(err)
	}
}

// Setup wires repositories, use cases and routes onto the engine without
// binding the listener, so tests can drive the full stack through httptest.
func (s *Server) Setup() *gin.Engine {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", httpHandler.StationCredentialHeader}
	s.app.Use(cors.New(config))

	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	producerRepo := repositories.NewProducerPgRepository(s.db)
	farmRepo := repositories.NewFarmPgRepository(s.db)
	plotRepo := repositories.NewPlotPgRepository(s.db)
	stationRepo := repositories.NewStationPgRepository(s.db)
	readingRepo := repositories.NewRainReadingPgRepository(s.db)

	// Initialize use cases
	latest := cache.NewLatestCache()
	credentials := usecases.NewCredentialManager(stationRepo)
	registry := usecases.NewRegistryUseCase(farmRepo, plotRepo, stationRepo, credentials, latest)
	ingestion := usecases.NewIngestionUseCase(credentials, readingRepo, latest)
	queries := usecases.NewQueryUseCase(registry, readingRepo, latest)
	auth := usecases.NewAuthUseCase(producerRepo, s.cfg.JWTSecret, s.cfg.TokenTTL)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(auth)
	farmHandler := httpHandler.NewFarmHandler(registry)
	plotHandler := httpHandler.NewPlotHandler(registry)
	stationHandler := httpHandler.NewStationHandler(registry)
	rainfallHandler := httpHandler.NewRainfallHandler(ingestion, queries)

	// Route prefix kept from the deployed API
	v0 := s.app.Group("/v.0")
	{
		authRoutes := v0.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		// Public: physical stations authenticate by credential header only
		v0.POST("/chuva/ingest", rainfallHandler.Ingest)

		authed := v0.Group("", middleware.RequireProducer([]byte(s.cfg.JWTSecret)))
		{
			farms := authed.Group("/fazendas")
			{
				farms.POST("", farmHandler.CreateFarm)
				farms.GET("", farmHandler.ListFarms)
				farms.GET("/:id", farmHandler.GetFarm)
				farms.PUT("/:id", farmHandler.UpdateFarm)
				farms.DELETE("/:id", farmHandler.DeleteFarm)
			}

			plots := authed.Group("/talhoes")
			{
				plots.POST("/fazenda/:id", plotHandler.CreatePlot)
				plots.GET("/fazenda/:id", plotHandler.ListPlots)
			}

			stations := authed.Group("/estacoes")
			{
				stations.POST("/fazenda/:id", stationHandler.CreateStation)
				stations.GET("/fazenda/:id", stationHandler.ListStations)
				stations.GET("/:id", stationHandler.GetStation)
				stations.PUT("/:id/desativar", stationHandler.DeactivateStation)
				stations.DELETE("/:id", stationHandler.DeleteStation)
			}

			rain := authed.Group("/chuva")
			{
				rain.GET("/estacao/:id", rainfallHandler.GetByStation)
				rain.GET("/estacao/:id/latest", rainfallHandler.GetLatest)
				rain.GET("/periodo", rainfallHandler.GetByPeriod)
			}
		}
	}

	return s.app
}
