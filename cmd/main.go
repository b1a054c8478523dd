package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/walnut-pro/sb1-d8pb5s/config"
	"github.com/walnut-pro/sb1-d8pb5s/database"
	"github.com/walnut-pro/sb1-d8pb5s/internal/controller"
	"github.com/walnut-pro/sb1-d8pb5s/internal/logger"
	"github.com/walnut-pro/sb1-d8pb5s/internal/middleware"
	"github.com/walnut-pro/sb1-d8pb5s/internal/model"
	"github.com/walnut-pro/sb1-d8pb5s/internal/repository"
	"github.com/walnut-pro/sb1-d8pb5s/internal/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuizRepository,
			repository.NewParticipationRepository,
		),

		// Services layer
		fx.Provide(
			service.NewTokenService,
			service.NewIdentityProvider,
			service.NewAuthService,
			service.NewQuizService,
			service.NewParticipationService,
		),

		// API controllers layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewQuizController,
			controller.NewParticipationController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens service.TokenService,
	authCtrl *controller.AuthController,
	quizCtrl *controller.QuizController,
	participationCtrl *controller.ParticipationController,
) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
	}

	quizGroup := router.Group("/quizzes")
	{
		quizGroup.GET("", quizCtrl.List)
		quizGroup.GET("/:id", quizCtrl.Get)

		organizerGroup := quizGroup.Group("", middleware.RequireAuth(tokens))
		organizerGroup.POST("", quizCtrl.Create)
		organizerGroup.PUT("/:id", quizCtrl.Update)
		organizerGroup.DELETE("/:id", quizCtrl.Delete)
	}

	participationGroup := router.Group("/participations", middleware.RequireAuth(tokens))
	{
		participationGroup.POST("", participationCtrl.Start)
		participationGroup.GET("", participationCtrl.ListMine)
		participationGroup.POST("/:id/submit", participationCtrl.Submit)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
		&model.Participation{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
