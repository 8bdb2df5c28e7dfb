package handler

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status        string `json:"status"`
	Store         string `json:"store"`
	Notifications string `json:"notifications"`
}

// Health reports store and notification-provider status. It always
// answers 200 — the probe is informational and never gates traffic.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Store: "ok", Notifications: "ok"}

	if err := h.db.Ping(r.Context()); err != nil {
		resp.Status = "degraded"
		resp.Store = err.Error()
	}
	if !h.sender.Configured() {
		resp.Status = "degraded"
		resp.Notifications = "unconfigured"
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
