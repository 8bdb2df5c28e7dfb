package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gundeepm/portfolio-backend/internal/model"
	"github.com/gundeepm/portfolio-backend/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// AdminHandler serves the read-only admin listings. Every request must
// carry the shared secret in the X-Admin-Secret header.
type AdminHandler struct {
	subscribers repository.SubscriberRepository
	contacts    repository.ContactRepository
	secret      string
}

func NewAdminHandler(subscribers repository.SubscriberRepository, contacts repository.ContactRepository, secret string) *AdminHandler {
	return &AdminHandler{subscribers: subscribers, contacts: contacts, secret: secret}
}

// authorized compares the presented secret in constant time. An empty
// configured secret disables the admin surface entirely.
func (h *AdminHandler) authorized(r *http.Request) bool {
	if h.secret == "" {
		return false
	}
	got := r.Header.Get("X-Admin-Secret")
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) == 1
}

// ListSubscribers handles GET /api/subscribers.
func (h *AdminHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	subs, err := h.subscribers.List(r.Context(), listOptions(r))
	if err != nil {
		slog.Error("listing subscribers failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list subscribers")
		return
	}
	if subs == nil {
		subs = []*model.Subscriber{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"subscribers": subs})
}

// ListContacts handles GET /api/contacts.
func (h *AdminHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	msgs, err := h.contacts.List(r.Context(), listOptions(r))
	if err != nil {
		slog.Error("listing contact messages failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list contact messages")
		return
	}
	if msgs == nil {
		msgs = []*model.ContactMessage{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"contacts": msgs})
}

// listOptions parses limit and offset query parameters, clamping to
// sane bounds.
func listOptions(r *http.Request) model.ListOptions {
	opts := model.ListOptions{Limit: defaultPageSize}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			opts.Limit = min(n, maxPageSize)
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			opts.Offset = n
		}
	}
	return opts
}
