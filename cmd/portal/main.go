package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autolist/portal/internal/config"
	"autolist/portal/internal/httpapi"
	"autolist/portal/internal/store"
	"autolist/portal/internal/store/memory"
	"autolist/portal/internal/store/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	var st store.Store
	var closer func()

	if cfg.DatabaseURL != "" {
		pg, err := postgres.NewStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("failed to init postgres store", zap.Error(err))
		}
		st = pg
		closer = pg.Close
		log.Info("using postgres store")
	} else {
		st = memory.NewStore()
		log.Warn("DATABASE_URL not set, using memory store")
	}

	if closer != nil {
		defer closer()
	}

	srv := httpapi.NewServer(cfg, st, log)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("portal listening", zap.String("addr", cfg.ListenAddr()))
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutdown requested")
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	_ = httpServer.Shutdown(ctxShutdown)
}
