package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/scout-plus/scout-ai/src/ai/core"
	_ "github.com/scout-plus/scout-ai/src/ai/providers"
	"github.com/scout-plus/scout-ai/src/bot/bot"
	"github.com/scout-plus/scout-ai/src/cache"
	"github.com/scout-plus/scout-ai/src/config"
	"github.com/scout-plus/scout-ai/src/data"
	"github.com/scout-plus/scout-ai/src/qa"
	"github.com/scout-plus/scout-ai/src/search"
)

func main() {
	_ = godotenv.Load()

	var db *gorm.DB
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		var err error
		db, err = data.ConnectMySQL(dsn)
		if err != nil {
			log.Fatalf("mysql: %v", err)
		}
	}

	cfg := config.Load(db)
	if cfg.DiscordToken == "" {
		log.Fatalf("discord token not configured")
	}

	client, err := core.NewClient(core.FactoryConfig{
		Provider:  cfg.AIProvider,
		OpenAIKey: cfg.OpenAIKey,
		ClaudeKey: cfg.ClaudeKey,
	})
	if err != nil {
		log.Printf("ai: %v (answers will degrade to the not-configured message)", err)
		client = nil
	}

	var store cache.Store
	if cfg.RedisURL != "" {
		store = cache.NewRedis(data.MustRedis(cfg.RedisURL), 0)
	} else {
		store = cache.NewMemory(cfg.CacheSize)
	}
	lookup := search.NewCached(search.NewDuckDuckGo(), store)

	b, err := bot.New(cfg.DiscordToken, qa.New(lookup, client))
	if err != nil {
		log.Fatalf("bot: %v", err)
	}
	if err := b.Start(); err != nil {
		log.Fatalf("bot start: %v", err)
	}
	log.Printf("Scout AI bot running")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	b.Stop()
}
