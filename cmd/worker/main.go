package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/orderline/pkg/app"
	"github.com/ghuser/orderline/pkg/cache"
	"github.com/ghuser/orderline/pkg/config"
	"github.com/ghuser/orderline/pkg/database"
	"github.com/ghuser/orderline/pkg/events"
	"github.com/ghuser/orderline/pkg/logger"
	"github.com/ghuser/orderline/pkg/telemetry"
	orderEvents "github.com/ghuser/orderline/services/records/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, orderEvents.TopicOrderCreated, handleOrderCreated(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", orderEvents.TopicOrderCreated,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{orderEvents.TopicOrderCreated})
	return nil
}

// handleOrderCreated returns a handler for order.created events.
// EventBus retries up to 3× on failure, so the rollup may overcount during
// redelivery; it is a hint, not a ledger.
// Maintains the per-customer order-count rollup in Redis.
func handleOrderCreated(a *app.Application) func(context.Context, *message.Message) error {
	custCache := cache.NewCustomerCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderEvents.OrderCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		count, err := custCache.IncrOrderCount(ctx, evt.CustID)
		if err != nil {
			// Rollup is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "order count rollup failed",
				"order_id", evt.OrderID, "cust_id", evt.CustID, "error", err)
			return nil
		}

		a.Logger.InfoContext(ctx, "order count updated",
			"order_id", evt.OrderID, "cust_id", evt.CustID, "count", count)
		return nil
	}
}
