package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gundeepm/portfolio-backend/internal/service"
)

// IntakeHandler serves the public subscription and contact endpoints.
type IntakeHandler struct {
	intake service.IntakeService
}

func NewIntakeHandler(intake service.IntakeService) *IntakeHandler {
	return &IntakeHandler{intake: intake}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /api/subscribe.
func (h *IntakeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Email required")
		return
	}

	result, err := h.intake.Subscribe(r.Context(), req.Email)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, "Email required")
		case errors.Is(err, service.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, "Invalid email")
		case errors.Is(err, service.ErrAlreadySubscribed):
			writeError(w, http.StatusBadRequest, "Email already subscribed")
		default:
			slog.Error("subscribe failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to process subscription")
		}
		return
	}

	writeSuccess(w, "Subscription successful", result.EmailWarning())
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Contact handles POST /api/contact.
func (h *IntakeHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMissing(w, []string{"name", "email", "subject", "message"})
		return
	}

	result, err := h.intake.SubmitContact(r.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeMissing(w, verr.Missing)
		case errors.Is(err, service.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, "Invalid email")
		default:
			slog.Error("contact submission failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to process your message")
		}
		return
	}

	writeSuccess(w, "Message sent successfully", result.EmailWarning())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeMissing(w http.ResponseWriter, missing []string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":   "All fields are required",
		"missing": missing,
	})
}

func writeSuccess(w http.ResponseWriter, msg, warning string) {
	payload := map[string]any{"success": true, "message": msg}
	if warning != "" {
		payload["emailWarning"] = warning
	}
	writeJSON(w, http.StatusOK, payload)
}
