package search

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"aoitems/internal/storage"
)

type ItemSearcher interface {
	SearchItems(ctx context.Context, filter storage.ItemFilter) (*storage.ItemPage, error)
}

func SearchItems(log *slog.Logger, timeout time.Duration, items ItemSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.items.SearchItems"

		filter, err := parseFilter(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		page, err := items.SearchItems(ctx, filter)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to search items")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, page)
	}
}

type paramError string

func (e paramError) Error() string {
	return "Invalid '" + string(e) + "' query parameter"
}

func parseFilter(q url.Values) (storage.ItemFilter, error) {
	filter := storage.ItemFilter{Search: q.Get("search")}

	ints := []struct {
		name string
		dst  *int
	}{
		{"min_ql", &filter.MinQL},
		{"max_ql", &filter.MaxQL},
		{"page", &filter.Page},
		{"page_size", &filter.PageSize},
	}
	for _, p := range ints {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return storage.ItemFilter{}, paramError(p.name)
		}
		*p.dst = n
	}

	if v := q.Get("class"); v != "" {
		class, err := strconv.Atoi(v)
		if err != nil {
			return storage.ItemFilter{}, paramError("class")
		}
		filter.ItemClass = &class
	}

	if v := q.Get("nano"); v != "" {
		nano, err := strconv.ParseBool(v)
		if err != nil {
			return storage.ItemFilter{}, paramError("nano")
		}
		filter.IsNano = &nano
	}

	if filter.MinQL > 0 && filter.MaxQL > 0 && filter.MinQL > filter.MaxQL {
		return storage.ItemFilter{}, paramError("min_ql")
	}

	return filter, nil
}
