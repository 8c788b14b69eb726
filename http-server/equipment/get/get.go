package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"aoitems/internal/service/equipment"
	"aoitems/internal/storage"
)

type SlotFinder interface {
	FindSlotItems(ctx context.Context, q equipment.SlotQuery) ([]*storage.InterpolatedItem, error)
}

type Response struct {
	Slot      string                      `json:"slot"`
	QL        int                         `json:"ql"`
	Modifiers []int                       `json:"modifiers"`
	Items     []*storage.InterpolatedItem `json:"items"`
}

func GetSlotItems(log *slog.Logger, timeout time.Duration, finder SlotFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.equipment.GetSlotItems"

		slot := chi.URLParam(r, "slot")

		ql, err := strconv.Atoi(r.URL.Query().Get("ql"))
		if err != nil || ql < 1 {
			http.Error(w, "Missing or invalid 'ql' query parameter", http.StatusBadRequest)
			return
		}

		mods, err := parseModifiers(r.URL.Query().Get("mods"))
		if err != nil {
			http.Error(w, "Invalid 'mods' query parameter", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := finder.FindSlotItems(ctx, equipment.SlotQuery{Slot: slot, QL: ql, Modifiers: mods})
		if err != nil {
			if errors.Is(err, equipment.ErrUnknownSlot) {
				http.Error(w, "Unknown equipment slot", http.StatusNotFound)
				return
			}
			log.With(
				slog.String("op", op),
				slog.String("slot", slot),
				slog.String("error", err.Error()),
			).Error("Failed to look up slot items")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if items == nil {
			items = []*storage.InterpolatedItem{}
		}

		render.JSON(w, r, Response{Slot: slot, QL: ql, Modifiers: mods, Items: items})
	}
}

func parseModifiers(raw string) ([]int, error) {
	mods := []int{}
	if strings.TrimSpace(raw) == "" {
		return mods, nil
	}
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		mods = append(mods, id)
	}
	return mods, nil
}
