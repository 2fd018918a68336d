package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prasetya/fulfillment/internal/order/app"
	"github.com/prasetya/fulfillment/internal/order/infra/adapter"
	"github.com/prasetya/fulfillment/internal/order/infra/memstore"
	"github.com/prasetya/fulfillment/internal/order/infra/rabbit"
	"github.com/prasetya/fulfillment/internal/order/rest"
	"github.com/prasetya/fulfillment/pkg/config"
	"github.com/prasetya/fulfillment/pkg/logger"
	"github.com/prasetya/fulfillment/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "order",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	var events app.EventPublisher = app.NopPublisher{}
	if cfg.RabbitURL != "" {
		pub, err := rabbit.Connect(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Error("rabbit connect failed, order events disabled", slog.Any("err", err))
		} else {
			defer pub.Close()
			events = pub
		}
	}

	cartClient := adapter.NewCartClient(cfg.CartBaseURL, nil)
	shippingClient := adapter.NewShippingClient(cfg.ShippingBaseURL, nil)
	svc := app.NewService(cartClient, shippingClient, memstore.New(), events, log)
	handler := rest.NewHandler(svc, log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler.Register(mux)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting",
			slog.String("addr", addr),
			slog.String("cart", cfg.CartBaseURL),
			slog.String("shipping", cfg.ShippingBaseURL),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
