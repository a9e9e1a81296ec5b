// README: Entry point; loads config, wires services, starts the HTTP server.
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

	"skylift/internal/ai"
	"skylift/internal/config"
	httptransport "skylift/internal/http"
	"skylift/internal/infra"
	"skylift/internal/modules/chat"
	"skylift/internal/modules/lookup"
	"skylift/internal/modules/usage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	usageStore := usage.NewStore(dbPool)
	usageSvc := usage.NewService(usageStore)

	gateway := lookup.NewProcessGateway(cfg.Lookup, logger)

	conversations := chat.NewStore(redisClient)
	engine := chat.NewEngine(
		provider,
		gateway,
		usageSvc,
		logger,
		time.Duration(cfg.AI.RetryBaseDelayMS)*time.Millisecond,
	)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Engine:        engine,
		Conversations: conversations,
		Gateway:       gateway,
		Logger:        logger,
		LookupTimeout: time.Duration(cfg.Lookup.TimeoutSeconds) * time.Second,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
