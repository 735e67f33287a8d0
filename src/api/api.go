package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/scout-plus/scout-ai/src/ai/core"
	_ "github.com/scout-plus/scout-ai/src/ai/providers"
	"github.com/scout-plus/scout-ai/src/api/webserver"
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

	client, err := core.NewClient(core.FactoryConfig{
		Provider:  cfg.AIProvider,
		OpenAIKey: cfg.OpenAIKey,
		ClaudeKey: cfg.ClaudeKey,
	})
	if err != nil {
		log.Printf("ai: %v (answers will degrade to the not-configured message)", err)
		client = nil
	}

	svc := qa.New(search.NewDuckDuckGo(), client)

	router := webserver.New(svc)
	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Printf("Scout AI API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
