package api

import (
	"github.com/gorilla/mux"

	"github.com/projectpulse/projectpulse-api/internal/handlers"
	"github.com/projectpulse/projectpulse-api/internal/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	router *mux.Router,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	projectHandler *handlers.ProjectHandler,
	taskHandler *handlers.TaskHandler,
	commentHandler *handlers.CommentHandler,
	dashboardHandler *handlers.DashboardHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	uploadHandler *handlers.UploadHandler,
) {
	v1 := router.PathPrefix("/api/v1").Subrouter()

	// Authentication routes (public)
	v1.HandleFunc("/auth/register", authHandler.RegisterUser).Methods("POST")
	v1.HandleFunc("/auth/login", authHandler.LoginUser).Methods("POST")
	v1.HandleFunc("/auth/forgot_password", authHandler.ForgotPassword).Methods("POST")
	v1.HandleFunc("/auth/reset_password", authHandler.ResetPassword).Methods("POST")

	// User routes (protected)
	v1.HandleFunc("/users", authMiddleware.JWTAuth(userHandler.ListUsers, "user:read")).Methods("GET")
	v1.HandleFunc("/users/{uid}", authMiddleware.JWTAuth(userHandler.GetUserByUID, "user:read")).Methods("GET")
	v1.HandleFunc("/users/{uid}/role", authMiddleware.JWTAuth(userHandler.UpdateUserRole, "user:update_role")).Methods("PUT")

	// Project routes (protected)
	v1.HandleFunc("/projects", authMiddleware.JWTAuth(projectHandler.CreateProject, "project:create")).Methods("POST")
	v1.HandleFunc("/projects", authMiddleware.JWTAuth(projectHandler.GetProjects, "project:read")).Methods("GET")
	v1.HandleFunc("/projects/{id}", authMiddleware.JWTAuth(projectHandler.GetProjectByID, "project:read")).Methods("GET")
	v1.HandleFunc("/projects/{id}", authMiddleware.JWTAuth(projectHandler.UpdateProject, "project:update")).Methods("PUT")
	v1.HandleFunc("/projects/{id}", authMiddleware.JWTAuth(projectHandler.DeleteProject, "project:delete")).Methods("DELETE")

	// Task routes (protected)
	v1.HandleFunc("/tasks", authMiddleware.JWTAuth(taskHandler.CreateTask, "task:create")).Methods("POST")
	v1.HandleFunc("/tasks", authMiddleware.JWTAuth(taskHandler.GetTasks, "task:read")).Methods("GET")
	v1.HandleFunc("/tasks/{id}", authMiddleware.JWTAuth(taskHandler.GetTaskByID, "task:read")).Methods("GET")
	v1.HandleFunc("/tasks/{id}", authMiddleware.JWTAuth(taskHandler.UpdateTask, "task:update")).Methods("PUT")
	v1.HandleFunc("/tasks/{id}", authMiddleware.JWTAuth(taskHandler.DeleteTask, "task:delete")).Methods("DELETE")

	// Comment routes, nested under tasks (protected)
	v1.HandleFunc("/tasks/{id}/comments", authMiddleware.JWTAuth(commentHandler.CreateComment, "comment:create")).Methods("POST")
	v1.HandleFunc("/tasks/{id}/comments", authMiddleware.JWTAuth(commentHandler.GetComments, "comment:read")).Methods("GET")

	// Dashboard and analytics routes (protected)
	v1.HandleFunc("/dashboard/stats", authMiddleware.JWTAuth(dashboardHandler.GetStats, "dashboard:read")).Methods("GET")
	v1.HandleFunc("/analytics", authMiddleware.JWTAuth(analyticsHandler.GetOverview, "analytics:read")).Methods("GET")

	// File uploads (protected)
	v1.HandleFunc("/upload", authMiddleware.JWTAuth(uploadHandler.UploadFile, "upload:create")).Methods("POST")
}
