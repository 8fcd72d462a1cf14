// Licensed under the MIT License

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mednews/internal/api"
	"mednews/internal/cache"
	"mednews/internal/config"
	"mednews/internal/database"
	"mednews/internal/portal"
	"mednews/internal/store"

	_ "mednews/docs"
)

func main() {
	configFile := flag.String("config", "", "path to the configuration file")
	flag.Parse()

	// Load configuration
	loader, err := config.NewLoader(*configFile)
	if err != nil {
		log.Fatal("Failed to create config loader:", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize cache for store snapshots
	cacheManager := cache.NewManager(cfg.Portal.ArticlesCacheTTL)

	// Open the MySQL pool; connections are lazy, so an unreachable store
	// surfaces per query through the retry path instead of at startup.
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	newsStore := store.New(db, cfg.Portal.ArticleLimit, cfg.Portal.RetryAttempts, cfg.Portal.RetryDelay)

	// Initialize the portal pipeline
	newsPortal := portal.New(cacheManager, newsStore, cfg.Portal.ArticlesCacheTTL, cfg.Portal.TagsCacheTTL)

	// Initialize API server
	server := api.NewServer(newsPortal, cfg)

	log.Printf("Starting Medical News Portal server on port %d", cfg.Port)
	log.Printf("Article snapshot TTL: %v", cfg.Portal.ArticlesCacheTTL)
	log.Printf("Tag snapshot TTL: %v", cfg.Portal.TagsCacheTTL)
	log.Printf("Store retry policy: %d attempts, %v apart", cfg.Portal.RetryAttempts, cfg.Portal.RetryDelay)

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, stopping server...")
		cancel()
	}()

	if err := server.StartWithContext(ctx); err != nil && err != context.Canceled {
		log.Fatal("Failed to start server:", err)
	}
}
