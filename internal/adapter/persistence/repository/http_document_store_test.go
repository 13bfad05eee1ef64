package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase/interfaces"
)

func newStoreServer(t *testing.T, handler http.HandlerFunc) *HTTPDocumentStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPDocumentStore(srv.Client(), srv.URL+"/", "proj-1")
}

func writeEnvelope(w http.ResponseWriter, status int, env map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func TestHTTPDocumentStore_Create(t *testing.T) {
	t.Run("sends project and owner", func(t *testing.T) {
		store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/create" {
				t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			}
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode body: %v", err)
			}
			if body["projectId"] != "proj-1" || body["userEmail"] != "admin@x.com" || body["collection"] != "quote_requests" {
				t.Errorf("unexpected body %v", body)
			}
			writeEnvelope(w, http.StatusOK, map[string]any{
				"success": true,
				"data":    map[string]any{"id": "doc-1", "collection": "quote_requests", "data": map[string]any{"name": "A"}, "metadata": map[string]any{"version": 1}},
			})
		})

		doc, err := store.Create(context.Background(), "admin@x.com", "quote_requests", map[string]string{"name": "A"}, []string{"quote"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if doc.ID != "doc-1" || doc.Metadata.Version != 1 || string(doc.Data) != `{"name":"A"}` {
			t.Fatalf("unexpected doc %+v", doc)
		}
	})

	t.Run("server message is surfaced", func(t *testing.T) {
		store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusBadRequest, map[string]any{"success": false, "message": "collection is required"})
		})

		_, err := store.Create(context.Background(), "a@x.com", "", nil, nil)
		var se *StoreError
		if !errors.As(err, &se) || se.Message != "collection is required" || se.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected StoreError with server message, got %v", err)
		}
	})

	t.Run("default message without body", func(t *testing.T) {
		store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := store.Create(context.Background(), "a@x.com", "x", nil, nil)
		var se *StoreError
		if !errors.As(err, &se) || se.Message != "Failed to create data" {
			t.Fatalf("expected default message, got %v", err)
		}
	})

	t.Run("success false on 200", func(t *testing.T) {
		store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusOK, map[string]any{"success": false, "error": "quota exceeded"})
		})

		_, err := store.Create(context.Background(), "a@x.com", "x", nil, nil)
		var se *StoreError
		if !errors.As(err, &se) || se.Message != "quota exceeded" {
			t.Fatalf("expected quota error, got %v", err)
		}
	})
}

func TestHTTPDocumentStore_Read(t *testing.T) {
	t.Run("query parameters", func(t *testing.T) {
		store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if r.URL.Path != "/read" || q.Get("projectId") != "proj-1" || q.Get("userEmail") != "o@x.com" ||
				q.Get("collection") != "users" || q.Get("limit") != "100" || q.Has("skip") || q.Has("id") {
				t.Errorf("unexpected request %s", r.URL.String())
			}
			writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": []map[string]any{{"id": "u1"}, {"id": "u2"}}})
		})

		docs, err := store.Read(context.Background(), "o@x.com", entities.ReadQuery{Collection: "users", Limit: 100})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(docs) != 2 || docs[1].ID != "u2" {
			t.Fatalf("unexpected docs %+v", docs)
		}
	})

	t.Run("single document by id", func(t *testing.T) {
		store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"id": "q1"}})
		})

		docs, err := store.Read(context.Background(), "o@x.com", entities.ReadQuery{ID: "q1"})
		if err != nil || len(docs) != 1 || docs[0].ID != "q1" {
			t.Fatalf("unexpected result %+v %v", docs, err)
		}
	})

	t.Run("missing data is empty", func(t *testing.T) {
		store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusOK, map[string]any{"success": true})
		})

		docs, err := store.Read(context.Background(), "o@x.com", entities.ReadQuery{Collection: "x"})
		if err != nil || docs == nil || len(docs) != 0 {
			t.Fatalf("unexpected result %+v %v", docs, err)
		}
	})
}

func TestHTTPDocumentStore_UpdateDelete(t *testing.T) {
	t.Run("update sends increment flag", func(t *testing.T) {
		store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			if r.Method != http.MethodPut || body["id"] != "q1" || body["incrementVersion"] != true {
				t.Errorf("unexpected request %s %v", r.Method, body)
			}
			writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"id": "q1", "metadata": map[string]any{"version": 2}}})
		})

		doc, err := store.Update(context.Background(), "o@x.com", "q1", map[string]any{"status": "approved"}, []string{"quote", "approved"}, true)
		if err != nil || doc.Metadata.Version != 2 {
			t.Fatalf("unexpected result %+v %v", doc, err)
		}
	})

	t.Run("not found maps to sentinel", func(t *testing.T) {
		store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusNotFound, map[string]any{"success": false, "message": "Item not found"})
		})

		if err := store.Delete(context.Background(), "o@x.com", "nope", true); !errors.Is(err, interfaces.ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})
}

func TestHTTPDocumentStore_Introspection(t *testing.T) {
	store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/collections":
			writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": []any{"users", map[string]any{"name": "quote_requests", "count": 4}}})
		case "/stats":
			writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"totalDocuments": 9, "collections": 2}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	cols, err := store.Collections(context.Background(), "o@x.com")
	if err != nil || len(cols) != 2 || cols[0].Name != "users" || cols[1].Count != 4 {
		t.Fatalf("unexpected collections %+v %v", cols, err)
	}
	stats, err := store.Stats(context.Background(), "o@x.com")
	if err != nil || stats.TotalDocuments != 9 || stats.Collections != 2 {
		t.Fatalf("unexpected stats %+v %v", stats, err)
	}
}

func TestNewHTTPClient(t *testing.T) {
	t.Run("zero keeps client default", func(t *testing.T) {
		c, ok := NewHTTPClient(0).(*http.Client)
		if !ok || c.Timeout != 0 {
			t.Fatalf("expected http.Client without timeout, got %+v", c)
		}
	})

	t.Run("configured timeout", func(t *testing.T) {
		c, ok := NewHTTPClient(3 * time.Second).(*http.Client)
		if !ok || c.Timeout != 3*time.Second {
			t.Fatalf("expected 3s timeout, got %+v", c)
		}
	})
}
