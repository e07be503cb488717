package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"netsize-service/internal/catalog"
	"netsize-service/internal/config"
	"netsize-service/internal/middleware"
	sizeHnd "netsize-service/internal/sizing/handler"
	"netsize-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, holder *catalog.Holder) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health(holder))

	r.Get("/catalog", sizeHnd.Catalog(logger, holder))
	r.Post("/calculate", sizeHnd.Calculate(cfg, logger, holder))

	return r
}
