package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`

	Database string `json:"database"` // "sqlite3" or "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Security struct {
		JwtSecret      string `json:"jwt_secret"`
		TokenValidDays int    `json:"token_valid_days"`
	} `json:"security"`

	Search struct {
		ProviderURL string `json:"provider_url"`
		Model       string `json:"model"`
		RecentLimit int    `json:"recent_limit"`
		ListLimit   int    `json:"list_limit"`
	} `json:"search"`
}

// Get loads the JSON configuration file. A missing file is not fatal:
// every field has a usable default, so a bare dev setup only needs
// PERPLEXITY_API_KEY exported.
func Get(path string) Configuration {
	var c Configuration

	b, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(b, &c); err != nil {
			log.Fatal(err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatal(err)
	}

	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = "CHANGE_ME"
	}
	if c.Security.TokenValidDays <= 0 {
		c.Security.TokenValidDays = 30
	}
	if c.Search.ProviderURL == "" {
		c.Search.ProviderURL = "https://api.perplexity.ai"
	}
	if c.Search.Model == "" {
		c.Search.Model = "sonar"
	}
	if c.Search.RecentLimit <= 0 {
		c.Search.RecentLimit = 5
	}
	if c.Search.ListLimit <= 0 {
		c.Search.ListLimit = 20
	}

	return c
}
