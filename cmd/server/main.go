package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/audiophile/storefront/internal/adapter/handler"
	"github.com/audiophile/storefront/internal/adapter/notifier"
	"github.com/audiophile/storefront/internal/adapter/storage"
	"github.com/audiophile/storefront/internal/catalog"
	"github.com/audiophile/storefront/internal/core/domain"
	"github.com/audiophile/storefront/internal/core/service"
	"github.com/audiophile/storefront/internal/port"
)

const (
	notifyWorkers = 3
	queueSize     = 1000
)

type Config struct {
	HTTPPort     string
	MongoURI     string
	MongoDB      string
	RedisAddr    string
	ResendAPIKey string
	EmailFrom    string
	AppURL       string
}

func loadConfig() Config {
	return Config{
		HTTPPort:     getEnv("HTTP_PORT", ":8080"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "storefront"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		EmailFrom:    getEnv("EMAIL_FROM", "Audiophile <onboarding@resend.dev>"),
		AppURL:       getEnv("APP_URL", "http://localhost:3000"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := loadConfig()

	// Initialize MongoDB
	db, err := storage.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("failed to connect mongodb: %v", err)
	}
	log.Println("connected to mongodb")

	mongoAdapter := storage.NewMongoAdapter(db)
	if err := mongoAdapter.CreateIndexes(ctx); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	log.Println("connected to redis")

	redisAdapter := storage.NewRedisAdapter(rdb)

	// Initialize services
	carts := service.NewCartStore()
	checkoutService := service.NewCheckoutService(mongoAdapter, queueSize)
	viewerService := service.NewViewerService(mongoAdapter, redisAdapter)
	emailClient := notifier.NewResendClient(cfg.ResendAPIKey, cfg.EmailFrom, cfg.AppURL)

	// Start notification workers
	var wg sync.WaitGroup
	for i := 0; i < notifyWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			notifyLoop(id, checkoutService.NotificationQueue(), emailClient)
		}(i)
	}
	log.Printf("started %d notification workers", notifyWorkers)

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(carts, checkoutService, viewerService, emailClient, catalog.New())

	httpServer := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: httpHandler.Router(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	// Close notification queue and wait for pending sends
	checkoutService.Close()
	wg.Wait()
	log.Println("notification workers stopped")

	rdb.Close()
	log.Println("connections closed")
}

// notifyLoop drains persisted orders and attempts one confirmation send
// each. Failures are logged only: the order already stands as confirmed.
func notifyLoop(id int, queue <-chan domain.Order, n port.Notifier) {
	for order := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)

		if err := n.SendConfirmation(ctx, order); err != nil {
			log.Printf("worker %d: failed to send confirmation for order %s: %v", id, order.OrderID, err)
		} else {
			log.Printf("worker %d: sent confirmation for order %s", id, order.OrderID)
		}

		cancel()
	}
}
