package router

import (
	"log"

	"seeker/config"
	"seeker/controllers"
	"seeker/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public routes, optional-
// identity reads, and authenticated mutations.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	controllers.SetJWTSecret(cfg.Security.JwtSecret)
	controllers.SetTokenValidDays(cfg.Security.TokenValidDays)
	controllers.SetListLimits(cfg.Search.RecentLimit, cfg.Search.ListLimit)

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "ok")
	})

	api := r.Group("/api")

	// Public (no auth)
	api.POST("/users", Logger(), controllers.CreateUser)
	api.POST("/login", Logger(), controllers.Login)

	// History reads degrade to empty lists without a session.
	reads := api.Group("")
	reads.Use(controllers.IdentityOptional())
	reads.GET("/searches/recent", Logger(), controllers.GetRecentSearches)
	reads.GET("/searches", Logger(), controllers.GetSearches)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())
	auth.GET("/me", Logger(), controllers.Me)
	auth.POST("/search", Logger(), controllers.PerformSearch)
	auth.DELETE("/searches/:id", Logger(), controllers.DeleteSearch)
	auth.GET("/searches/events", controllers.SearchEvents)

	log.Printf("Routes initialized")
}
