package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recitation-backend/internal/shared/middleware"
	"recitation-backend/pkg/container"
)

// SetupRouter wires the HTTP surface. The legacy browser routes keep their
// historical paths, methods and redirects; the rest of the API nests under
// resource groups.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	webAuth := middleware.WebAuthMiddleware(c.JWTManager, c.Sessions)
	apiAuth := middleware.AuthMiddleware(c.JWTManager, c.Sessions)

	router.GET("/health", healthCheckHandler(c))

	setupWebRoutes(router, c, webAuth)
	setupReferenceRoutes(router, c)
	setupProjectRoutes(router, c, apiAuth)

	return router
}

// ========================================
// WEB ROUTES (LEGACY SURFACE)
// ========================================
// Unauthenticated visitors to / and /create_project are redirected to
// /sign_in rather than given a 401.
func setupWebRoutes(router *gin.Engine, c *container.Container, webAuth gin.HandlerFunc) {
	router.GET("/", webAuth, c.ProjectHandler.Home)

	router.GET("/sign_up", c.UserHandler.SignUpForm)
	router.POST("/sign_up", c.UserHandler.SignUp)

	router.GET("/sign_in", c.UserHandler.SignInForm)
	router.POST("/sign_in", c.UserHandler.SignIn)

	router.POST("/create_project", webAuth, c.ProjectHandler.CreateProject)

	// Logout works even with an expired or missing token; a live token gets
	// its JTI revoked, and the cookie is cleared either way.
	optionalAuth := middleware.OptionalAuthMiddleware(c.JWTManager, c.Sessions)
	router.GET("/logout", optionalAuth, c.UserHandler.Logout)
}

// ========================================
// REFERENCE DATA ROUTES
// ========================================
func setupReferenceRoutes(router *gin.Engine, c *container.Container) {
	voices := router.Group("/voices")
	{
		voices.POST("", c.VoiceHandler.Create)
		voices.GET("", c.VoiceHandler.List)
	}

	tags := router.Group("/tags")
	{
		tags.POST("", c.TagHandler.Create)
		tags.GET("", c.TagHandler.List)
	}

	versions := router.Group("/versions")
	{
		versions.POST("", c.CorpusHandler.CreateVersion)
		versions.GET("", c.CorpusHandler.ListVersions)
		versions.POST("/:version_id/surahs", c.CorpusHandler.AddSurah)
		versions.GET("/:version_id/surahs", c.CorpusHandler.ListSurahs)
		versions.POST("/:version_id/surahs/:surah_id/verses", c.CorpusHandler.AddVerse)
		versions.GET("/:version_id/surahs/:surah_id/verses", c.CorpusHandler.ListVerses)
	}
}

// ========================================
// PROJECT ROUTES
// ========================================
// Every project route resolves ownership from the verified identity; a
// project id belonging to someone else is indistinguishable from a missing
// one.
func setupProjectRoutes(router *gin.Engine, c *container.Container, apiAuth gin.HandlerFunc) {
	projects := router.Group("/projects")
	projects.Use(apiAuth)
	{
		projects.GET("", c.ProjectHandler.ListProjects)
		projects.GET("/:project_id", c.ProjectHandler.GetProject)

		projects.POST("/:project_id/audio_requests", c.AudioRequestHandler.Create)
		projects.GET("/:project_id/audio_requests", c.AudioRequestHandler.List)
		projects.GET("/:project_id/audio_requests/:request_id", c.AudioRequestHandler.Get)
		projects.PATCH("/:project_id/audio_requests/:request_id/status", c.AudioRequestHandler.UpdateStatus)

		projects.POST("/:project_id/verse_tags", c.VerseTagHandler.Create)
		projects.GET("/:project_id/verse_tags", c.VerseTagHandler.List)
	}

	me := router.Group("/me")
	me.Use(apiAuth)
	{
		me.GET("", c.UserHandler.Me)
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
			"version":   getEnv("APP_VERSION", "1.0.0"),
			"services":  gin.H{},
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Redis only degrades logout revocation, never readiness.
		redisStatus := "ok"
		if appCtx.Sessions == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Sessions.HealthCheck(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
