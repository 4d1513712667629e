package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Hadjerbacha/cetic-ged/internal/adapter/http/handlers"
	"github.com/Hadjerbacha/cetic-ged/internal/adapter/http/middleware"
	"github.com/Hadjerbacha/cetic-ged/internal/adapter/storage"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Task     *handlers.TaskHandler
	User     *handlers.UserHandler
	Document *handlers.DocumentHandler
}

func RegisterRoutes(r *gin.Engine, uploadDir string, jwtSecret string, h Handlers) {
	// Uploaded files are served straight from the shared upload directory.
	r.Static(storage.PublicPrefix, uploadDir)

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.GET("/users", h.Auth.ListUsers)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			tasks := protected.Group("/tasks")
			{
				tasks.POST("", h.Task.CreateTask)
				tasks.GET("", h.Task.ListTasks)
				tasks.POST("/assign-task", h.Task.AssignTask)
				tasks.PUT("/:id", h.Task.UpdateTask)
				tasks.PATCH("/:id/status", h.Task.ChangeStatus)
				tasks.DELETE("/:id", h.Task.DeleteTask)
			}

			documents := protected.Group("/documents")
			{
				documents.GET("", h.Document.ListDocuments)
				documents.POST("", h.Document.UploadDocument)
				documents.DELETE("/:id", h.Document.DeleteDocument)
			}

			users := protected.Group("/users")
			{
				users.GET("/:id", h.User.GetUser)
				users.PUT("/:id", h.User.UpdateUser)
				users.DELETE("/:id", h.User.DeleteUser)
			}
		}
	}
}
