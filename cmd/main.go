package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-hub/infrastructure/ws"
	"chat-hub/internal"
	"chat-hub/moderation"
	"chat-hub/repositories"
	"chat-hub/runtime"
	"chat-hub/sink"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so deferred cleanup (database closes)
// always executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Durable store (SQLite) & audit log (BadgerDB)
	db, err := repositories.Open(config.SQLiteFilepath)
	if err != nil {
		return fmt.Errorf("store opening failed: %w", err)
	}
	store := repositories.NewStore(db, log)

	auditDB, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("audit database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = auditDB.Close()
	}()

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Coordination core
	hub := ws.NewHub(log)
	registry := runtime.NewRegistry()
	presence := runtime.NewPresence(registry, hub)

	moderator, err := moderation.NewModerator(config.CensoredWords, '*', log)
	if err != nil {
		return fmt.Errorf("moderation setup failed: %w", err)
	}
	router := runtime.NewRouter(log, store, registry, presence, moderator)

	auditSink := sink.NewAuditSink(log, repositories.NewAuditRepository(auditDB, log), config.AuditBufferSize)
	go func() {
		if err := auditSink.Run(ctx); err != nil {
			log.Error("audit sink stopped", "error", err)
		}
	}()

	coordinator := runtime.NewCoordinator(log, registry, presence, router, store, hub, auditSink)
	handler := ws.NewHandler(log, coordinator, config.ConnectionBufferSize)

	// 5. HTTP server
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", handler.ServeWS(hub))

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{Addr: address, Handler: mux}

	serveErr := make(chan error, 1)
	go func() {
		log.Info(fmt.Sprintf("Listening on %s", address))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	}
}
