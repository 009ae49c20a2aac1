package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/config"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/handlers"
	"github.com/yukikurage/todo-api/internal/middleware"
)

// NewRouter maps every route to its handler. ctx bounds background work
// started by middleware such as the rate limiter janitor.
func NewRouter(ctx context.Context, state *AppState, cfg config.ServerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTracing(state.Log))

	if cfg.RateLimit > 0 {
		r.Use(middleware.NewRateLimiter(ctx, cfg.RateLimit, cfg.RateBurst).Handler())
	}

	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "Route not found")
	})
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		apierrors.RespondWithError(c, http.StatusMethodNotAllowed,
			apierrors.NewAPIError(apierrors.ErrCodeInvalidInput, "Method not allowed"))
	})

	taskHandler := handlers.NewTaskHandler(state.Tasks)
	userHandler := handlers.NewUserHandler(state.Users)
	requireAPIKey := middleware.RequireAPIKey(state.Auth)

	// Health check endpoint
	r.GET("/health", handlers.Health)

	v1 := r.Group("/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.GET("/me", requireAPIKey, userHandler.GetCurrentUser)
		}

		todos := v1.Group("/todos")
		todos.Use(requireAPIKey)
		{
			todos.GET("", taskHandler.ListTasks)
			todos.POST("", taskHandler.CreateTask)
			todos.GET("/:id", taskHandler.GetTask)
			todos.PUT("/:id", taskHandler.UpdateTask)
			todos.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	return r
}
