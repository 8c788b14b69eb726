package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"aoitems/internal/service/interpolation"
	"aoitems/internal/storage"
)

// fallbackTimeout bounds the refetch of the stored item after a failed
// interpolation.
const fallbackTimeout = 2 * time.Second

type ItemInterpolator interface {
	Interpolate(ctx context.Context, id int64, targetQL int) (*storage.InterpolatedItem, error)
	RangeReport(ctx context.Context, id int64) (interpolation.RangeReport, error)
}

type ItemGetter interface {
	GetItemByID(ctx context.Context, id int64) (*storage.Item, error)
}

// GetItem returns the item at the requested QL, or at its own QL when none is
// given. If interpolation breaks, the stored item is served unmodified.
func GetItem(log *slog.Logger, timeout time.Duration, engine ItemInterpolator, items ItemGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.items.GetItem"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "Invalid item id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		var stored *storage.Item
		var targetQL int

		if qlStr := r.URL.Query().Get("ql"); qlStr != "" {
			targetQL, err = strconv.Atoi(qlStr)
			if err != nil || targetQL < 1 {
				http.Error(w, "Invalid 'ql' query parameter", http.StatusBadRequest)
				return
			}
		} else {
			stored, err = items.GetItemByID(ctx, id)
			if err != nil {
				if errors.Is(err, storage.ErrItemNotFound) {
					http.Error(w, "Item not found", http.StatusNotFound)
					return
				}
				log.Error("Failed to fetch item", slog.Int64("id", id), slog.String("error", err.Error()))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			targetQL = stored.QL
		}

		result, err := engine.Interpolate(ctx, id, targetQL)
		if err == nil {
			render.JSON(w, r, result)
			return
		}
		if errors.Is(err, storage.ErrItemNotFound) {
			http.Error(w, "Item not found", http.StatusNotFound)
			return
		}

		log.Warn("Interpolation failed, serving stored item",
			slog.Int64("id", id),
			slog.Int("ql", targetQL),
			slog.String("error", err.Error()),
		)

		if stored == nil {
			// the request deadline may be what broke interpolation
			fbCtx, fbCancel := context.WithTimeout(r.Context(), fallbackTimeout)
			defer fbCancel()

			stored, err = items.GetItemByID(fbCtx, id)
			if err != nil {
				if errors.Is(err, storage.ErrItemNotFound) {
					http.Error(w, "Item not found", http.StatusNotFound)
					return
				}
				log.Error("Failed to fetch item", slog.Int64("id", id), slog.String("error", err.Error()))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
		}

		render.JSON(w, r, storage.InterpolatedItem{
			Item:     *stored,
			LowQL:    stored.QL,
			HighQL:   stored.QL,
			TargetQL: targetQL,
		})
	}
}

func GetItemInterpolation(log *slog.Logger, timeout time.Duration, engine ItemInterpolator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.items.GetItemInterpolation"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "Invalid item id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		report, err := engine.RangeReport(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrItemNotFound) {
				http.Error(w, "Item not found", http.StatusNotFound)
				return
			}
			log.With(
				slog.String("op", op),
				slog.Int64("id", id),
				slog.String("error", err.Error()),
			).Error("Failed to build interpolation ranges")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, report)
	}
}
