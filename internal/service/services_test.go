package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-omnisearch/internal/adapter"
	"github.com/MKhiriev/go-omnisearch/internal/logger"
	"github.com/MKhiriev/go-omnisearch/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeOmniSearch поднимает минимальный сервер с маршрутами API v1
func newFakeOmniSearch(t *testing.T) *httptest.Server {
	t.Helper()

	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if req.URL.Query().Get("key") != "test-key" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, req)
			})
		})

		r.Get("/hello", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, map[string]any{"message": "Hello"})
		})
		r.Post("/records", func(w http.ResponseWriter, req *http.Request) {
			var rec models.Record
			if err := json.NewDecoder(req.Body).Decode(&rec); err != nil {
				w.WriteHeader(http.StatusUnprocessableEntity)
				return
			}
			writeJSON(w, map[string]any{"uid": "r1", "type": rec.Type, "name": rec.Name})
		})
		r.Get("/records/{uid}", func(w http.ResponseWriter, req *http.Request) {
			if chi.URLParam(req, "uid") != "r1" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			writeJSON(w, map[string]any{"uid": "r1"})
		})
		r.Delete("/records/{uid}", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, map[string]any{"message": "Record deleted"})
		})
		r.Get("/search/{type}", func(w http.ResponseWriter, req *http.Request) {
			q := req.URL.Query()
			writeJSON(w, map[string]any{
				"type":      chi.URLParam(req, "type"),
				"query":     q.Get("query"),
				"page":      q.Get("page"),
				"page_size": q.Get("page_size"),
				"has_sort":  q.Has("sort_by"),
				"filters":   q.Get("filters"),
			})
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newTestServices(t *testing.T, srv *httptest.Server) *Services {
	t.Helper()
	transport, err := adapter.NewHTTPTransport(adapter.Config{
		Host:    srv.URL + "/api/",
		Version: "v1",
		Key:     "test-key",
	}, logger.Nop())
	require.NoError(t, err)
	return NewServices(transport, logger.Nop())
}

// ── End to end ───────────────────────────────────────────────────────────────

func TestServices_EndToEnd_Hello(t *testing.T) {
	svc := newTestServices(t, newFakeOmniSearch(t)).OmniSearch

	got, err := svc.Hello(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"message": "Hello"}, got)
}

func TestServices_EndToEnd_CreateGetDelete(t *testing.T) {
	svc := newTestServices(t, newFakeOmniSearch(t)).OmniSearch
	ctx := context.Background()

	created, err := svc.CreateRecord(ctx, models.Record{Type: "article", Name: "Test"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"uid": "r1", "type": "article", "name": "Test"}, created)

	got, err := svc.Record(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"uid": "r1"}, got)

	missing, err := svc.Record(ctx, "r2")
	assert.Nil(t, missing)
	assert.ErrorIs(t, err, ErrNotFound)

	deleted, err := svc.DeleteRecord(ctx, "r1")
	require.NoError(t, err)
	assert.NotNil(t, deleted)
}

func TestServices_EndToEnd_Search(t *testing.T) {
	svc := newTestServices(t, newFakeOmniSearch(t)).OmniSearch

	got, err := svc.Search(context.Background(), models.SearchQuery{
		RecordType: "article",
		Query:      "big cats",
		Filters:    models.Filters{models.NewFilter("price", "lessthan", 10)},
		Pagination: models.Pagination{Page: 2, PageSize: 20},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"type":      "article",
		"query":     "big cats",
		"page":      "2",
		"page_size": "20",
		"has_sort":  false,
		"filters":   `[["price","lessthan",10]]`,
	}, got)
}

func TestServices_EndToEnd_WrongKey(t *testing.T) {
	srv := newFakeOmniSearch(t)
	transport, err := adapter.NewHTTPTransport(adapter.Config{Host: srv.URL + "/api", Version: "v1", Key: "nope"}, nil)
	require.NoError(t, err)
	svc := NewServices(transport, logger.Nop()).OmniSearch

	got, err := svc.Search(context.Background(), models.SearchQuery{RecordType: "article"})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrRemoteCallFailed)
	assert.NotErrorIs(t, err, ErrNotFound)
}
