package main

import (
	"context"
	"net/http"
	"time"

	"qnaboard/config"
	"qnaboard/database"
	_ "qnaboard/docs" // Swagger docs - auto-generated
	"qnaboard/internal/controller"
	"qnaboard/internal/logger"
	"qnaboard/internal/middleware"
	"qnaboard/internal/model"
	"qnaboard/internal/repository"
	"qnaboard/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QnA Board API
// @version 1.0
// @description Q&A board: questions, answers, cascading soft delete with audit histories.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
			repository.NewDeleteHistoryRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewQnaService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewQuestionController,
			controller.NewAnswerController,
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

	// Request logging through the global zerolog instance.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
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

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authSvc service.AuthService,
	authCtrl *controller.AuthController,
	questionCtrl *controller.QuestionController,
	answerCtrl *controller.AnswerController,
) {
	api := router.Group("/api")
	{
		api.POST("/users", authCtrl.Register)
		api.POST("/login", authCtrl.Login)

		api.GET("/questions", questionCtrl.GetQuestions)
		api.GET("/questions/:id", questionCtrl.GetQuestion)
	}

	protected := router.Group("/api", middleware.Auth(authSvc))
	{
		protected.POST("/questions", questionCtrl.CreateQuestion)
		protected.PUT("/questions/:id", questionCtrl.UpdateQuestion)
		protected.DELETE("/questions/:id", questionCtrl.DeleteQuestion)

		protected.POST("/questions/:id/answers", answerCtrl.AddAnswer)
		protected.DELETE("/answers/:id", answerCtrl.DeleteAnswer)

		protected.GET("/deleted-histories", questionCtrl.GetDeleteHistories)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QnA board server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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
		&model.Question{},
		&model.Answer{},
		&model.DeleteHistory{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
