package get

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aoitems/internal/service/equipment"
	"aoitems/internal/storage"
)

type MockSlotFinder struct {
	mock.Mock
}

func (m *MockSlotFinder) FindSlotItems(ctx context.Context, q equipment.SlotQuery) ([]*storage.InterpolatedItem, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.InterpolatedItem), args.Error(1)
}

func newRouter(finder SlotFinder) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/equipment/{slot}", GetSlotItems(slog.New(slog.NewTextHandler(io.Discard, nil)), time.Second, finder))
	return r
}

func TestGetSlotItems_Success(t *testing.T) {
	finder := new(MockSlotFinder)

	finder.On("FindSlotItems", mock.Anything, equipment.SlotQuery{Slot: "feet", QL: 150, Modifiers: []int{16, 17}}).
		Return([]*storage.InterpolatedItem{{
			Item:          storage.Item{ID: 10, Name: "Nanite Boots", QL: 100},
			Interpolating: true,
			TargetQL:      150,
		}}, nil)

	rr := httptest.NewRecorder()
	newRouter(finder).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/equipment/feet?ql=150&mods=16,%2017", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, "feet", resp.Slot)
	assert.Equal(t, []int{16, 17}, resp.Modifiers)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 150, resp.Items[0].TargetQL)

	finder.AssertExpectations(t)
}

func TestGetSlotItems_EmptyResult(t *testing.T) {
	finder := new(MockSlotFinder)
	finder.On("FindSlotItems", mock.Anything, equipment.SlotQuery{Slot: "head", QL: 5, Modifiers: []int{}}).Return(nil, nil)

	rr := httptest.NewRecorder()
	newRouter(finder).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/equipment/head?ql=5", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"items":[]`)
}

func TestGetSlotItems_Errors(t *testing.T) {
	finder := new(MockSlotFinder)
	finder.On("FindSlotItems", mock.Anything, mock.MatchedBy(func(q equipment.SlotQuery) bool { return q.Slot == "tail" })).
		Return(nil, fmt.Errorf("service.equipment.FindSlotItems: %w", equipment.ErrUnknownSlot))
	finder.On("FindSlotItems", mock.Anything, mock.MatchedBy(func(q equipment.SlotQuery) bool { return q.Slot == "legs" })).
		Return(nil, errors.New("db down"))

	tests := []struct {
		url  string
		want int
	}{
		{url: "/api/equipment/feet", want: http.StatusBadRequest},
		{url: "/api/equipment/feet?ql=0", want: http.StatusBadRequest},
		{url: "/api/equipment/feet?ql=10&mods=16,x", want: http.StatusBadRequest},
		{url: "/api/equipment/tail?ql=10", want: http.StatusNotFound},
		{url: "/api/equipment/legs?ql=10", want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rr := httptest.NewRecorder()
		newRouter(finder).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.url, nil))
		assert.Equal(t, tt.want, rr.Code, tt.url)
	}
}
