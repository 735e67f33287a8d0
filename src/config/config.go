package config

import (
	"log"
	"os"
	"strconv"

	"github.com/scout-plus/scout-ai/src/data"
	"gorm.io/gorm"
)

// Config carries everything the three front-ends need. A missing AI key is a
// degraded-mode condition, not a startup failure; MySQL and Redis are
// optional and only enable the settings overlay and the shared lookup cache.
type Config struct {
	Port    string
	WebPort string

	AIProvider string
	OpenAIKey  string
	ClaudeKey  string

	DiscordToken string

	MySQLDSN  string
	RedisURL  string
	CacheSize int
}

// Load builds the configuration from the settings table (when db is non-nil)
// with environment fallbacks, then defaults.
func Load(db *gorm.DB) Config {
	if db != nil {
		if err := data.LoadSettings(db); err != nil {
			log.Printf("settings: %v (using env only)", err)
		}
	}

	cacheSize, _ := strconv.Atoi(getSetting("cache_size", "CACHE_SIZE", "256"))

	return Config{
		Port:         getSetting("port", "PORT", "8000"),
		WebPort:      getSetting("web_port", "WEB_PORT", "8001"),
		AIProvider:   getSetting("ai_provider", "AI_PROVIDER", "openai"),
		OpenAIKey:    getSetting("openai_api_key", "OPENAI_API_KEY", ""),
		ClaudeKey:    getSetting("claude_api_key", "CLAUDE_API_KEY", ""),
		DiscordToken: getSetting("discord_token", "DISCORD_TOKEN", ""),
		MySQLDSN:     os.Getenv("MYSQL_DSN"),
		RedisURL:     getSetting("redis_url", "REDIS_URL", ""),
		CacheSize:    cacheSize,
	}
}

// getSetting retrieves a setting with env fallback.
func getSetting(name, envKey, defaultValue string) string {
	val := data.GetSetting(name)
	if val == "" {
		val = os.Getenv(envKey)
	}
	if val == "" {
		val = defaultValue
	}
	return val
}
