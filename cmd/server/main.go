package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/valeevte/PriceTracker/internal/config"
	"github.com/valeevte/PriceTracker/internal/database"
	"github.com/valeevte/PriceTracker/internal/scraper"
	"github.com/valeevte/PriceTracker/internal/tracks"

	"github.com/gin-gonic/gin"
)

func main() {
	_ = godotenv.Load() // .env необязателен

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	extractor := scraper.NewExtractor(
		scraper.WithUserAgent(cfg.UserAgent),
		scraper.WithTimeout(cfg.FetchTimeout),
	)
	h := tracks.NewHandler(tracks.NewService(extractor, store))

	gin.SetMode(cfg.GinMode)
	r := newRouter(h)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server started on :%s (store=%s)", cfg.Port, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server ListenAndServe: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutdown signal received")

	// перестаём принимать запросы, 15s на завершение текущих
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server Shutdown: %v", err)
	}

	if err := store.Close(); err != nil {
		log.Printf("store Close: %v", err)
	}

	log.Println("graceful shutdown complete")
}

func newRouter(h *tracks.Handler) *gin.Engine {
	r := gin.Default()
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	h.Register(r.Group("/api"))
	return r
}

func openStore(ctx context.Context, cfg config.Config) (tracks.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := database.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return tracks.NewRepository(pool), nil
	case config.DriverSQLite:
		return tracks.OpenSQLite(cfg.SQLitePath)
	case config.DriverMemory:
		log.Println("using in-memory store; records are lost on restart")
		return tracks.NewMemoryStore(), nil
	}
	return nil, errors.New("unknown store driver " + cfg.StoreDriver)
}
