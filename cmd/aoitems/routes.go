package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getslot "aoitems/http-server/equipment/get"
	getitem "aoitems/http-server/items/get"
	saveitem "aoitems/http-server/items/save"
	searchitems "aoitems/http-server/items/search"
	exportreport "aoitems/http-server/report/export"
	"aoitems/internal/config"
	"aoitems/internal/middleware/auth"
	"aoitems/internal/middleware/metrics"
	"aoitems/internal/service/equipment"
	"aoitems/internal/service/interpolation"
	"aoitems/internal/service/report"
	"aoitems/internal/storage/sqlstore"
)

func routes(
	cfg config.Config,
	log *slog.Logger,
	storage *sqlstore.Storage,
	engine *interpolation.Engine,
	slots *equipment.Service,
	reports *report.ReportService,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(metrics.New())

	timeout := cfg.RequestTimeout

	router.Get("/healthz", healthz(log, storage))
	router.With(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPassHash)).Handle("/metrics", metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/items", searchitems.SearchItems(log, timeout, storage))
		r.Get("/items/{id}", getitem.GetItem(log, timeout, engine, storage))
		r.Get("/items/{id}/interpolation", getitem.GetItemInterpolation(log, timeout, engine))
		r.Get("/items/{id}/report", exportreport.ExportItemReport(log, timeout, reports))
		r.Get("/equipment/{slot}", getslot.GetSlotItems(log, timeout, slots))

		adminRouter := chi.NewRouter()
		adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPassHash))
		adminRouter.Put("/items/{id}", saveitem.SaveItemAdmin(log, timeout, storage))

		r.Mount("/admin", adminRouter)
	})

	return router
}

type pinger interface {
	Ping(ctx context.Context) error
}

func healthz(log *slog.Logger, db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.Error("health check failed", slog.String("error", err.Error()))
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}

		w.Write([]byte("ok"))
	}
}
