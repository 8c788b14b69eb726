package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"aoitems/internal/storage"
)

type ItemExporter interface {
	ExportItemQLTable(ctx context.Context, id int64, step int) ([]byte, error)
}

// ExportItemReport streams the item's QL table as an xlsx download. The
// export gets twice the regular request timeout.
func ExportItemReport(log *slog.Logger, timeout time.Duration, exporter ItemExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.ExportItemReport"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "Invalid item id", http.StatusBadRequest)
			return
		}

		step := 0
		if v := r.URL.Query().Get("step"); v != "" {
			step, err = strconv.Atoi(v)
			if err != nil || step < 1 {
				http.Error(w, "Invalid 'step' query parameter", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*timeout)
		defer cancel()

		data, err := exporter.ExportItemQLTable(ctx, id, step)
		if err != nil {
			if errors.Is(err, storage.ErrItemNotFound) {
				http.Error(w, "Item not found", http.StatusNotFound)
				return
			}
			log.Error("failed to generate excel", "op", op, "id", id, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("item_%d_ql_table.xlsx", id)

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(data)
	}
}
