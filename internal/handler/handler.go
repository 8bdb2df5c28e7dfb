package handler

import (
	"context"
	"net/http"
	"strings"
)

// StorePinger checks persistence-store connectivity. *pgxpool.Pool
// satisfies it.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// ConfiguredReporter reports whether the notification provider has
// credentials. mail.Sender satisfies it.
type ConfiguredReporter interface {
	Configured() bool
}

// Handler carries the cross-cutting HTTP concerns: CORS and health.
type Handler struct {
	db             StorePinger
	sender         ConfiguredReporter
	allowedOrigins []string
}

// New creates the root Handler. allowedOrigins is the CORS allow-list;
// an empty list allows any origin (development default).
func New(db StorePinger, sender ConfiguredReporter, allowedOrigins []string) *Handler {
	return &Handler{db: db, sender: sender, allowedOrigins: allowedOrigins}
}

// CORS wraps next with origin filtering and preflight handling.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The ACAO header depends on the request origin, so caches must
		// key on it.
		w.Header().Add("Vary", "Origin")

		origin := r.Header.Get("Origin")
		if allowed := h.corsOrigin(origin); allowed != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowed)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Secret")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) corsOrigin(origin string) string {
	if len(h.allowedOrigins) == 0 {
		return "*"
	}
	for _, allowed := range h.allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}
