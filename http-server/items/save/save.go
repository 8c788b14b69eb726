package save

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"aoitems/internal/storage"
)

type ItemSaver interface {
	SaveItem(ctx context.Context, item *storage.Item) error
}

type Response struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

// SaveItemAdmin replaces one stored variant with the request body. The id in
// the URL overrides any id in the body.
func SaveItemAdmin(log *slog.Logger, timeout time.Duration, items ItemSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.items.SaveItemAdmin"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "Invalid item id", http.StatusBadRequest)
			return
		}

		var item storage.Item
		if err := render.DecodeJSON(r.Body, &item); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		item.ID = id

		if strings.TrimSpace(item.Name) == "" {
			http.Error(w, "Item name is required", http.StatusBadRequest)
			return
		}
		if item.QL < 1 {
			http.Error(w, "Item ql must be positive", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := items.SaveItem(ctx, &item); err != nil {
			log.With(slog.String("op", op), slog.Int64("id", id), slog.String("error", err.Error())).Error("Failed to save item")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.With(slog.String("op", op)).Info("Item saved", slog.Int64("id", id), slog.String("name", item.Name), slog.Int("ql", item.QL))

		render.JSON(w, r, Response{Status: "ok", ID: id})
	}
}
