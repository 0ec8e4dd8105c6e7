package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/douaasabha91-ops/quiz-project/internal/config"
	"github.com/douaasabha91-ops/quiz-project/internal/database"
	"github.com/douaasabha91-ops/quiz-project/internal/handlers"
	"github.com/douaasabha91-ops/quiz-project/internal/middleware"
	"github.com/douaasabha91-ops/quiz-project/internal/models"
	"github.com/douaasabha91-ops/quiz-project/internal/services"

	_ "github.com/douaasabha91-ops/quiz-project/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Live Quiz API
// @version         1.0
// @description     API for a live quiz platform: presenters author quizzes and launch joinable sessions, participants submit one answer per question, presenters poll aggregated results.
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelInfo})))

	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	userService := services.NewUserService(db)
	authService := services.NewAuthService(userService, cfg.JWTSecret)
	quizService := services.NewQuizService(db)
	sessionService := services.NewSessionService(db)
	responseService := services.NewResponseService(db)
	resultsService := services.NewResultsService(db)

	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)
	questionHandler := handlers.NewQuestionHandler(quizService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	responseHandler := handlers.NewResponseHandler(responseService)
	resultsHandler := handlers.NewResultsHandler(resultsService, sessionService)

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		quizzes := api.Group("/quizzes")
		quizzes.Use(middleware.JWTAuth(authService))
		{
			quizzes.GET("", quizHandler.ListQuizzes)
			quizzes.GET("/:id", quizHandler.GetQuiz)
			quizzes.GET("/:id/questions", questionHandler.ListQuestions)

			presenter := quizzes.Group("")
			presenter.Use(middleware.RequireRole(models.RolePresenter))
			{
				presenter.POST("", quizHandler.CreateQuiz)
				presenter.POST("/:id/questions", questionHandler.CreateQuestion)
			}
		}

		sessions := api.Group("/sessions")
		sessions.Use(middleware.JWTAuth(authService))
		{
			sessions.GET("/active", sessionHandler.ListActiveSessions)
			sessions.GET("/code/:code", sessionHandler.GetSessionByCode)
			sessions.POST("/:id/responses", responseHandler.SubmitResponse)
			sessions.GET("/:id/questions/:questionId/response", responseHandler.GetMyResponse)
			sessions.GET("/:id/questions/:questionId/tally", resultsHandler.GetTally)
			sessions.GET("/:id/questions/:questionId/detail", resultsHandler.GetDetail)

			presenter := sessions.Group("")
			presenter.Use(middleware.RequireRole(models.RolePresenter))
			{
				presenter.POST("", sessionHandler.LaunchSession)
				presenter.POST("/:id/end", sessionHandler.EndSession)
				presenter.GET("/:id/responses", resultsHandler.ListSessionResponses)
			}
		}
	}

	slog.Info("server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
