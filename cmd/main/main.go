package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"netsize-service/internal/catalog"
	"netsize-service/internal/config"
	serverhttp "netsize-service/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	holder := catalog.NewHolder()
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	// каталог грузится в фоне; до загрузки /calculate отвечает 503
	go loadCatalog(ctx, cfg, logger, holder)

	r := serverhttp.NewRouter(cfg, logger, holder)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r, ReadHeaderTimeout: 10 * time.Second}
	logger.Info().Str("addr", cfg.Addr()).Str("catalog", cfg.CatalogSource).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	stop()
	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shCtx)
	logger.Info().Msg("bye")
}

func loadCatalog(ctx context.Context, cfg config.Config, logger zerolog.Logger, holder *catalog.Holder) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, cfg.CatalogTimeout)
	defer cancel()

	cat, st, err := catalog.Load(ctx, cfg.CatalogSource, cfg.CatalogHeaderRow)
	if err != nil {
		holder.Fail(err)
		logger.Error().Err(err).Str("source", cfg.CatalogSource).Msg("catalog load failed")
		return
	}
	holder.Set(cat)

	ev := logger.Info()
	if len(st.Skipped) > 0 {
		ev = logger.Warn().Interface("skipped", st.Skipped)
	}
	ev.
		Str("source", cfg.CatalogSource).
		Int("rows", st.Rows).
		Int("entries", st.Entries).
		Dur("elapsed", time.Since(start)).
		Msg("catalog loaded")
}
