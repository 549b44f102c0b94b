package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"starwars-api/apierror"
	"starwars-api/auth"
	"starwars-api/confs"
	"starwars-api/db"
	httpHandler "starwars-api/handlers/http"
	"starwars-api/logging"
	"starwars-api/repositories"
	"starwars-api/usecases"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
}

func NewServer(cfg *confs.Config, database db.Database) *Server {
	s := &Server{
		app: gin.New(),
		db:  database,
		cfg: cfg,
	}
	s.routes()
	return s
}

// Handler exposes the engine, mainly for tests and route listing.
func (s *Server) Handler() *gin.Engine {
	return s.app
}

func (s *Server) routes() {
	s.app.Use(
		otelgin.Middleware(s.cfg.ServiceName),
		httpHandler.RequestLogger(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			logging.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.Internal())
		}),
	)

	// Setup CORS middleware
	config := cors.DefaultConfig()
	if len(s.cfg.AllowOrigins) == 0 || (len(s.cfg.AllowOrigins) == 1 && s.cfg.AllowOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.cfg.AllowOrigins
	}
	config.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	s.app.Use(httpHandler.ErrorHandler())

	// Initialize repositories
	userRepo := repositories.NewUserRepository(s.db)
	planetRepo := repositories.NewPlanetRepository(s.db)
	personRepo := repositories.NewPersonRepository(s.db)
	favoriteRepo := repositories.NewFavoriteRepository(s.db)

	// Initialize use cases
	tokens := auth.NewTokenIssuer(s.cfg.JWTSecret, s.cfg.JWTTTL)
	userUseCase := usecases.NewUserUseCase(userRepo)
	authUseCase := usecases.NewAuthUseCase(userRepo, tokens)
	catalogUseCase := usecases.NewCatalogUseCase(planetRepo, personRepo)
	favoriteUseCase := usecases.NewFavoriteUseCase(favoriteRepo, catalogUseCase)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(userUseCase, authUseCase)
	userHandler := httpHandler.NewUserHandler(userUseCase, favoriteUseCase)
	catalogHandler := httpHandler.NewCatalogHandler(catalogUseCase)
	favoriteHandler := httpHandler.NewFavoriteHandler(favoriteUseCase)
	healthHandler := httpHandler.NewHealthHandler(s.db)

	requireToken := httpHandler.RequireToken(authUseCase)

	s.app.GET("/", httpHandler.Sitemap(s.app))
	s.app.GET("/health", healthHandler.HealthCheck)

	// Auth routes
	s.app.POST("/register", authHandler.Register)
	s.app.POST("/login", authHandler.Login)

	// User routes
	s.app.GET("/users", userHandler.ListUsers)
	s.app.GET("/user/:id", userHandler.GetUser)
	s.app.GET("/users/:id/favorites", userHandler.GetFavoritesByUserID)
	s.app.GET("/users/favorites", requireToken, favoriteHandler.GetMyFavorites)

	// Catalog routes
	s.app.GET("/planets", catalogHandler.ListPlanets)
	s.app.GET("/planets/:id", catalogHandler.GetPlanet)
	s.app.GET("/people", catalogHandler.ListPeople)
	s.app.GET("/people/:id", catalogHandler.GetPerson)

	// Favorite routes, caller taken from the token
	favorite := s.app.Group("/favorite", requireToken)
	{
		favorite.POST("/planet/:id", favoriteHandler.AddPlanet)
		favorite.DELETE("/planet/:id", favoriteHandler.RemovePlanet)
		favorite.POST("/people/:id", favoriteHandler.AddPerson)
		favorite.DELETE("/people/:id", favoriteHandler.RemovePerson)
	}

	s.app.NoRoute(func(c *gin.Context) {
		_ = c.Error(apierror.NotFound("Route not found"))
	})
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              "0.0.0.0:" + s.cfg.Port,
		Handler:           s.app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger().Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Logger().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
