package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"movie-app/internal/shared/middleware"
	"movie-app/internal/web"
	"movie-app/pkg/container"
)

const (
	rootPageTitle  = "Movies Management"
	moviePageTitle = "Movies"
)

// SetupRouter wires middleware, templates, static assets and routes.
func SetupRouter(c *container.Container) (*gin.Engine, error) {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	if err := web.RegisterStatic(router, web.PublicFS()); err != nil {
		return nil, fmt.Errorf("failed to register static files: %w", err)
	}

	router.GET("/health", healthCheckHandler(c))

	setupPageRoutes(router, c)
	setupAPIRoutes(router, c)

	return router, nil
}

// ========================================
// HTML ROUTES
// ========================================
func setupPageRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/", c.MovieHandler.List(rootPageTitle))

	movies := router.Group("/movies")
	{
		movies.GET("", c.MovieHandler.List(moviePageTitle))
		movies.POST("/add", c.MovieHandler.Create)
	}
}

// ========================================
// JSON ROUTES
// ========================================
func setupAPIRoutes(router *gin.Engine, c *container.Container) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/movies", c.APIHandler.List)
		v1.POST("/movies", c.APIHandler.Create)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		}

		dbStatus := "ok"
		if appCtx.DB == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
			}
			if stats, err := appCtx.DB.Stats(); err == nil {
				health["pool"] = stats
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
