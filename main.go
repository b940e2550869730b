package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/projectpulse/projectpulse-api/api"
	"github.com/projectpulse/projectpulse-api/internal/config"
	"github.com/projectpulse/projectpulse-api/internal/database"
	"github.com/projectpulse/projectpulse-api/internal/handlers"
	"github.com/projectpulse/projectpulse-api/internal/logger"
	"github.com/projectpulse/projectpulse-api/internal/middleware"
	"github.com/projectpulse/projectpulse-api/internal/services"
	"github.com/projectpulse/projectpulse-api/internal/utils"
)

func main() {
	// 1. Load configuration
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		logrus.Fatalf("Error loading config: %v", err)
	}

	// 2. Initialize logging
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	// 3. Initialize mailer
	if err := utils.InitMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword); err != nil {
		logrus.Fatalf("Error initializing mailer: %v", err)
	}

	// 4. Connect to MongoDB
	client, err := database.ConnectMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		logrus.Fatalf("Error connecting to MongoDB: %v", err)
	}
	defer func() {
		if err = client.Disconnect(context.Background()); err != nil {
			logrus.Errorf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := client.Database(cfg.DBName)

	// 5. Seed default roles if they don't exist
	if err := database.SeedDefaultRoles(db); err != nil {
		logrus.Fatalf("Error seeding default roles: %v", err)
	}

	// 6. Initialize services
	userService := services.NewUserService(db)
	authService := services.NewAuthService(userService, []byte(cfg.JWTSecret), []byte(cfg.PasswordResetSecret))
	projectService := services.NewProjectService(db)
	taskService := services.NewTaskService(db)
	commentService := services.NewCommentService(db)
	dashboardService := services.NewDashboardService(db)
	analyticsService := services.NewAnalyticsService(db)
	uploadService, err := services.NewUploadService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		logrus.Fatalf("Error initializing upload service: %v", err)
	}

	// 7. Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	commentHandler := handlers.NewCommentHandler(commentService, taskService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// 8. Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.JWTSecret), authService)

	// 9. Setup router
	router := mux.NewRouter()
	api.SetupRoutes(router, authMiddleware, authHandler, userHandler, projectHandler,
		taskHandler, commentHandler, dashboardHandler, analyticsHandler, uploadHandler)

	c := cors.AllowAll()
	handlerWithCORS := c.Handler(router)

	// 10. Start HTTP server
	logrus.Infof("Server starting on port %s", cfg.Port)
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlerWithCORS,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("Could not listen on %s: %v", cfg.Port, err)
	}
}
