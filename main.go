package main

import (
	"log"
	"os"
	"strings"

	"seeker/config"
	"seeker/db"
	"seeker/router"
	"seeker/search"
	"seeker/tools"

	"github.com/gin-gonic/gin"
)

// =====================
// Expected ENV
// =====================
//
// Server
// - SEEKER_CONFIG        (path to config.json, default "config.json")
// - AUTOMIGRATE          (set to 1 to run schema migration on boot)
// - JWT_SECRET           (overrides config jwt_secret)
//
// Perplexity
// - PERPLEXITY_API_KEY   (required to actually perform searches; its
//                         absence surfaces as a configuration error on
//                         every /api/search call, never at boot)
//
// =====================

func main() {
	cfg := config.Get(getenv("SEEKER_CONFIG", "config.json"))

	db.SetConfigurations(cfg)
	database, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	provider := tools.NewPerplexityClient(
		cfg.Search.ProviderURL,
		cfg.Search.Model,
		os.Getenv("PERPLEXITY_API_KEY"),
	)
	svc := search.NewService(database, provider)

	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	r.Use(search.SetServiceToContext(svc))
	router.Initialize(r, cfg)

	log.Printf("Seeker listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
