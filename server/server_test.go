package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SergioFerreira2020/GestorLotes/database"
	"github.com/SergioFerreira2020/GestorLotes/internal/config"
	"github.com/SergioFerreira2020/GestorLotes/server/services"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Port:           "0",
		DatabasePath:   ":memory:",
		LogLevel:       "error",
		LoteCount:      5,
		LowStockLimit:  2,
		ShoeSizeMin:    16,
		ShoeSizeMax:    59,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		MaxOpenConns:   1,
		MaxIdleConns:   1,
	}
	require.NoError(t, cfg.Validate())

	logger := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewServer(cfg, database.NewMemoryStore(), services.NopNotifier{}, logger)
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestLotLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPut, "/api/lotes/1/description", map[string]string{"value": "casaco menina 4-8 meses"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var lot services.Lot
	rec = doJSON(t, srv, http.MethodGet, "/api/lotes/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &lot)
	require.Equal(t, "casaco menina 4-8 meses", lot.Description)
	require.False(t, lot.Delivered)

	var client services.Client
	rec = doJSON(t, srv, http.MethodPost, "/api/clients", map[string]string{
		"name":    "Maria Santos",
		"contact": "912345678",
		"address": "Rua das Flores 12, Braga",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	decode(t, rec, &client)
	require.NotEmpty(t, client.ID)

	rec = doJSON(t, srv, http.MethodPost, "/api/lotes/1/assign", map[string]string{"clientId": client.ID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodGet, "/api/lotes/pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pending []services.Lot
	decode(t, rec, &pending)
	require.Len(t, pending, 1)

	var record services.HistoryRecord
	rec = doJSON(t, srv, http.MethodPost, "/api/lotes/1/deliver", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &record)
	require.Equal(t, "1", record.Lote)
	require.Equal(t, client.ID, record.Client)
	require.Equal(t, "jacket", record.Category)

	rec = doJSON(t, srv, http.MethodGet, "/api/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []services.HistoryRecord
	decode(t, rec, &history)
	require.Len(t, history, 1)
	require.Equal(t, "Maria Santos", history[0].ClientName)
}

func TestListFiltersAndValidation(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPut, "/api/lotes/2/description", map[string]string{"value": "vestido M senhora"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/lotes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []services.Lot
	decode(t, rec, &all)
	require.Len(t, all, 5)

	// Only the filled, unreserved lot is free; the empty shells of the other
	// numbers are not offered for assignment.
	rec = doJSON(t, srv, http.MethodGet, "/api/lotes?filter=free", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var free []services.Lot
	decode(t, rec, &free)
	require.Len(t, free, 1)
	require.Equal(t, "2", free[0].ID)

	var client services.Client
	rec = doJSON(t, srv, http.MethodPost, "/api/clients", map[string]string{
		"name":    "Ana Costa",
		"contact": "961112223",
		"address": "Rua Nova 3, Guimarães",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	decode(t, rec, &client)

	rec = doJSON(t, srv, http.MethodPost, "/api/lotes/2/assign", map[string]string{"clientId": client.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	// Once reserved the lot leaves the free list and shows up as assigned.
	rec = doJSON(t, srv, http.MethodGet, "/api/lotes?filter=free", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &free)
	require.Empty(t, free)

	rec = doJSON(t, srv, http.MethodGet, "/api/lotes?filter=assigned", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var assigned []services.Lot
	decode(t, rec, &assigned)
	require.Len(t, assigned, 1)
	require.Equal(t, "2", assigned[0].ID)

	rec = doJSON(t, srv, http.MethodGet, "/api/lotes?filter=banana", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/lotes/999", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/lotes/3/deliver", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStockEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for i := 1; i <= 2; i++ {
		rec := doJSON(t, srv, http.MethodPut, fmt.Sprintf("/api/lotes/%d/description", i), map[string]string{"value": "sapato homem 42"})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/stock/low", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var low struct {
		Threshold int `json:"threshold"`
		Entries   []struct {
			Key   string `json:"key"`
			Count int    `json:"count"`
		} `json:"entries"`
	}
	decode(t, rec, &low)
	require.Equal(t, 2, low.Threshold)
	require.Len(t, low.Entries, 1)
	require.Equal(t, "shoes-M-42", low.Entries[0].Key)
	require.Equal(t, 2, low.Entries[0].Count)

	rec = doJSON(t, srv, http.MethodGet, "/api/stock/low/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Disposition"), "stock-baixo-")
	require.NotZero(t, rec.Body.Len())

	rec = doJSON(t, srv, http.MethodGet, "/api/extract?text=camisola+L+menino", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var extracted struct {
		Matched    bool `json:"matched"`
		Attributes *struct {
			Size     string `json:"size"`
			Gender   string `json:"gender"`
			Category string `json:"category"`
		} `json:"attributes"`
	}
	decode(t, rec, &extracted)
	require.True(t, extracted.Matched)
	require.Equal(t, "L", extracted.Attributes.Size)
	require.Equal(t, "BOY", extracted.Attributes.Gender)

	rec = doJSON(t, srv, http.MethodGet, "/api/extract", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndDiagnostics(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var health map[string]interface{}
	decode(t, rec, &health)
	require.Equal(t, "ok", health["status"])

	// provoke one error so the diagnostics endpoint has something to show
	rec = doJSON(t, srv, http.MethodGet, "/api/lotes/999", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/diagnostics/errors", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var metrics map[string]interface{}
	decode(t, rec, &metrics)
	require.GreaterOrEqual(t, metrics["total_errors"].(float64), float64(1))
}

func TestGracefulShutdownBeforeStart(t *testing.T) {
	srv := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
}
