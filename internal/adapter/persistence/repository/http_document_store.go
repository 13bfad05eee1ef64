package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase/interfaces"
)


// HTTPClient is the subset of *http.Client used by the store.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StoreError is a failed store call. Message is the server's message when it
// sent one, otherwise a generic "Failed to <op>" text.
type StoreError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *StoreError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("store %s: %s (status %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("store %s: %s", e.Op, e.Message)
}

var defaultStoreMessages = map[string]string{
	"create":      "Failed to create data",
	"read":        "Failed to read data",
	"update":      "Failed to update data",
	"delete":      "Failed to delete data",
	"collections": "Failed to get collections",
	"stats":       "Failed to get stats",
}

type storeEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// HTTPDocumentStore talks to the hosted project-db service.
//
// Endpoints (relative to baseURL):
//   - POST /create, GET /read, PUT /update, DELETE /delete
//   - GET /collections, GET /stats
//
// Every request carries projectId and userEmail.
type HTTPDocumentStore struct {
	client    HTTPClient
	baseURL   string
	projectID string
}

var _ interfaces.IDocumentStore = (*HTTPDocumentStore)(nil)

// NewHTTPClient returns the store client. A zero or negative timeout keeps
// the http.Client default of no timeout.
func NewHTTPClient(timeout time.Duration) HTTPClient {
	if timeout <= 0 {
		return &http.Client{}
	}
	return &http.Client{Timeout: timeout}
}

func NewHTTPDocumentStore(client HTTPClient, baseURL, projectID string) *HTTPDocumentStore {
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &HTTPDocumentStore{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		projectID: projectID,
	}
}

type createRequest struct {
	ProjectID  string   `json:"projectId"`
	Collection string   `json:"collection"`
	Data       any      `json:"data"`
	UserEmail  string   `json:"userEmail"`
	Tags       []string `json:"tags,omitempty"`
}

type updateRequest struct {
	ProjectID        string   `json:"projectId"`
	ID               string   `json:"id"`
	Data             any      `json:"data"`
	UserEmail        string   `json:"userEmail"`
	Tags             []string `json:"tags,omitempty"`
	IncrementVersion bool     `json:"incrementVersion,omitempty"`
}

type deleteRequest struct {
	ProjectID  string `json:"projectId"`
	ID         string `json:"id"`
	UserEmail  string `json:"userEmail"`
	HardDelete bool   `json:"hardDelete,omitempty"`
}

func (s *HTTPDocumentStore) Create(ctx context.Context, owner string, collection string, data any, tags []string) (entities.Document, error) {
	body := createRequest{ProjectID: s.projectID, Collection: collection, Data: data, UserEmail: owner, Tags: tags}
	var doc entities.Document
	if err := s.do(ctx, "create", http.MethodPost, "/create", nil, body, &doc); err != nil {
		return entities.Document{}, err
	}
	return doc, nil
}

func (s *HTTPDocumentStore) Read(ctx context.Context, owner string, query entities.ReadQuery) ([]entities.Document, error) {
	params := s.ownerParams(owner)
	if query.Collection != "" {
		params.Set("collection", query.Collection)
	}
	if query.ID != "" {
		params.Set("id", query.ID)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Skip > 0 {
		params.Set("skip", strconv.Itoa(query.Skip))
	}

	var raw json.RawMessage
	if err := s.do(ctx, "read", http.MethodGet, "/read", params, nil, &raw); err != nil {
		return nil, err
	}
	return decodeDocuments(raw)
}

func (s *HTTPDocumentStore) Update(ctx context.Context, owner string, id string, data any, tags []string, incrementVersion bool) (entities.Document, error) {
	body := updateRequest{ProjectID: s.projectID, ID: id, Data: data, UserEmail: owner, Tags: tags, IncrementVersion: incrementVersion}
	var doc entities.Document
	if err := s.do(ctx, "update", http.MethodPut, "/update", nil, body, &doc); err != nil {
		return entities.Document{}, err
	}
	return doc, nil
}

func (s *HTTPDocumentStore) Delete(ctx context.Context, owner string, id string, hardDelete bool) error {
	body := deleteRequest{ProjectID: s.projectID, ID: id, UserEmail: owner, HardDelete: hardDelete}
	return s.do(ctx, "delete", http.MethodDelete, "/delete", nil, body, nil)
}

func (s *HTTPDocumentStore) Collections(ctx context.Context, owner string) ([]entities.CollectionInfo, error) {
	var raw []json.RawMessage
	if err := s.do(ctx, "collections", http.MethodGet, "/collections", s.ownerParams(owner), nil, &raw); err != nil {
		return nil, err
	}
	out := make([]entities.CollectionInfo, 0, len(raw))
	for _, r := range raw {
		// The service lists either bare names or {name, count} objects.
		var name string
		if err := json.Unmarshal(r, &name); err == nil {
			out = append(out, entities.CollectionInfo{Name: name})
			continue
		}
		var info entities.CollectionInfo
		if err := json.Unmarshal(r, &info); err != nil {
			return nil, &StoreError{Op: "collections", Message: "unexpected collection entry"}
		}
		out = append(out, info)
	}
	return out, nil
}

func (s *HTTPDocumentStore) Stats(ctx context.Context, owner string) (entities.StoreStats, error) {
	var stats entities.StoreStats
	if err := s.do(ctx, "stats", http.MethodGet, "/stats", s.ownerParams(owner), nil, &stats); err != nil {
		return entities.StoreStats{}, err
	}
	return stats, nil
}

func (s *HTTPDocumentStore) ownerParams(owner string) url.Values {
	v := url.Values{}
	v.Set("projectId", s.projectID)
	v.Set("userEmail", owner)
	return v
}

func (s *HTTPDocumentStore) do(ctx context.Context, op, method, path string, params url.Values, body any, out any) error {
	target := s.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", &StoreError{Op: op, Message: defaultStoreMessages[op]}, err)
	}
	defer resp.Body.Close()

	var env storeEnvelope
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 32<<20)).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := defaultStoreMessages[op]
		if decodeErr == nil && env.Message != "" {
			msg = env.Message
		}
		if resp.StatusCode == http.StatusNotFound && (op == "update" || op == "delete") {
			return fmt.Errorf("%w: %s", interfaces.ErrDocumentNotFound, msg)
		}
		return &StoreError{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return &StoreError{Op: op, StatusCode: resp.StatusCode, Message: "invalid response body"}
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = defaultStoreMessages[op]
		}
		return &StoreError{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &StoreError{Op: op, StatusCode: resp.StatusCode, Message: "invalid response data"}
	}
	return nil
}

// decodeDocuments accepts a document list or a single document; reads by id
// return the latter.
func decodeDocuments(raw json.RawMessage) ([]entities.Document, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []entities.Document{}, nil
	}
	var list []entities.Document
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var one entities.Document
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, &StoreError{Op: "read", Message: "invalid response data"}
	}
	return []entities.Document{one}, nil
}

