package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gundeepm/portfolio-backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock repositories
// ---------------------------------------------------------------------------

type mockSubscriberRepo struct {
	listFunc func(ctx context.Context, opts model.ListOptions) ([]*model.Subscriber, error)
}

func (m *mockSubscriberRepo) Create(ctx context.Context, sub *model.Subscriber) error { return nil }

func (m *mockSubscriberRepo) FindByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	return nil, nil
}

func (m *mockSubscriberRepo) List(ctx context.Context, opts model.ListOptions) ([]*model.Subscriber, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockSubscriberRepo) All(ctx context.Context) ([]*model.Subscriber, error) {
	return nil, nil
}

type mockContactRepo struct {
	listFunc func(ctx context.Context, opts model.ListOptions) ([]*model.ContactMessage, error)
}

func (m *mockContactRepo) Save(ctx context.Context, msg *model.ContactMessage) error { return nil }

func (m *mockContactRepo) List(ctx context.Context, opts model.ListOptions) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

const testSecret = "s3cret"

func adminGet(t *testing.T, h http.HandlerFunc, path, secret string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if secret != "" {
		req.Header.Set("X-Admin-Secret", secret)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// Authorization
// ---------------------------------------------------------------------------

func TestAdmin_MissingSecret(t *testing.T) {
	h := NewAdminHandler(&mockSubscriberRepo{}, &mockContactRepo{}, testSecret)

	rec := adminGet(t, h.ListSubscribers, "/api/subscribers", "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAdmin_WrongSecret(t *testing.T) {
	h := NewAdminHandler(&mockSubscriberRepo{}, &mockContactRepo{}, testSecret)

	rec := adminGet(t, h.ListContacts, "/api/contacts", "wrong")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestAdmin_UnconfiguredSecret verifies an empty configured secret
// rejects every request rather than accepting an empty header.
func TestAdmin_UnconfiguredSecret(t *testing.T) {
	h := NewAdminHandler(&mockSubscriberRepo{}, &mockContactRepo{}, "")

	rec := adminGet(t, h.ListSubscribers, "/api/subscribers", "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// GET /api/subscribers
// ---------------------------------------------------------------------------

func TestAdmin_ListSubscribers(t *testing.T) {
	subs := &mockSubscriberRepo{
		listFunc: func(ctx context.Context, opts model.ListOptions) ([]*model.Subscriber, error) {
			return []*model.Subscriber{
				{ID: "1", Email: "a@example.com"},
				{ID: "2", Email: "b@example.com"},
			}, nil
		},
	}
	h := NewAdminHandler(subs, &mockContactRepo{}, testSecret)

	rec := adminGet(t, h.ListSubscribers, "/api/subscribers", testSecret)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Subscribers []*model.Subscriber `json:"subscribers"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Subscribers) != 2 {
		t.Errorf("expected 2 subscribers, got %d", len(resp.Subscribers))
	}
}

func TestAdmin_ListSubscribers_EmptyIsArray(t *testing.T) {
	h := NewAdminHandler(&mockSubscriberRepo{}, &mockContactRepo{}, testSecret)

	rec := adminGet(t, h.ListSubscribers, "/api/subscribers", testSecret)

	var resp map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(resp["subscribers"]) != "[]" {
		t.Errorf("expected empty array, got %s", resp["subscribers"])
	}
}

func TestAdmin_ListSubscribers_Pagination(t *testing.T) {
	var gotOpts model.ListOptions
	subs := &mockSubscriberRepo{
		listFunc: func(ctx context.Context, opts model.ListOptions) ([]*model.Subscriber, error) {
			gotOpts = opts
			return nil, nil
		},
	}
	h := NewAdminHandler(subs, &mockContactRepo{}, testSecret)

	adminGet(t, h.ListSubscribers, "/api/subscribers?limit=50&offset=10", testSecret)
	if gotOpts.Limit != 50 || gotOpts.Offset != 10 {
		t.Errorf("expected limit=50 offset=10, got %+v", gotOpts)
	}

	// Over the cap: clamp to 100.
	adminGet(t, h.ListSubscribers, "/api/subscribers?limit=9999", testSecret)
	if gotOpts.Limit != 100 {
		t.Errorf("expected limit clamped to 100, got %d", gotOpts.Limit)
	}

	// Garbage values fall back to the default.
	adminGet(t, h.ListSubscribers, "/api/subscribers?limit=abc&offset=-5", testSecret)
	if gotOpts.Limit != 20 || gotOpts.Offset != 0 {
		t.Errorf("expected defaults for garbage input, got %+v", gotOpts)
	}
}

func TestAdmin_ListSubscribers_RepoError(t *testing.T) {
	subs := &mockSubscriberRepo{
		listFunc: func(ctx context.Context, opts model.ListOptions) ([]*model.Subscriber, error) {
			return nil, errors.New("db down")
		},
	}
	h := NewAdminHandler(subs, &mockContactRepo{}, testSecret)

	rec := adminGet(t, h.ListSubscribers, "/api/subscribers", testSecret)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// GET /api/contacts
// ---------------------------------------------------------------------------

func TestAdmin_ListContacts(t *testing.T) {
	contacts := &mockContactRepo{
		listFunc: func(ctx context.Context, opts model.ListOptions) ([]*model.ContactMessage, error) {
			return []*model.ContactMessage{
				{ID: "1", Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello"},
			}, nil
		},
	}
	h := NewAdminHandler(&mockSubscriberRepo{}, contacts, testSecret)

	rec := adminGet(t, h.ListContacts, "/api/contacts", testSecret)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Contacts []*model.ContactMessage `json:"contacts"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Contacts) != 1 || resp.Contacts[0].Name != "Jane" {
		t.Errorf("unexpected contacts %+v", resp.Contacts)
	}
}

func TestAdmin_ListContacts_EmptyIsArray(t *testing.T) {
	h := NewAdminHandler(&mockSubscriberRepo{}, &mockContactRepo{}, testSecret)

	rec := adminGet(t, h.ListContacts, "/api/contacts", testSecret)

	var resp map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(resp["contacts"]) != "[]" {
		t.Errorf("expected empty array, got %s", resp["contacts"])
	}
}
