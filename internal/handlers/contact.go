package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"natnails.dev/internal/middleware"
	"natnails.dev/internal/models"
	"natnails.dev/internal/services"
)

// maxFormBytes caps contact request bodies
const maxFormBytes = 64 << 10

// ContactHandler accepts contact submissions over JSON
type ContactHandler struct {
	contacts *services.ContactService
	metrics  *middleware.Metrics
	log      *slog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService, m *middleware.Metrics, log *slog.Logger) *ContactHandler {
	return &ContactHandler{contacts: cs, metrics: m, log: log}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if h.contacts == nil {
		respondError(w, http.StatusServiceUnavailable, "Contact form unavailable")
		return
	}

	var form models.ContactForm
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, err := h.contacts.Submit(r.Context(), form, clientIP(r))
	outcome := contactOutcome(err)
	if h.metrics != nil {
		h.metrics.ContactOutcome(outcome)
	}

	var verr *services.ValidationError
	switch {
	case err == nil:
		respondJSON(w, http.StatusCreated, map[string]string{"id": sub.ID})
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "Invalid contact form",
			"fields": verr.Fields,
		})
	case errors.Is(err, services.ErrRateLimited):
		setRetryAfter(w, err)
		respondError(w, http.StatusTooManyRequests, "Too many submissions, try again later")
	default:
		h.log.Error("contact submission failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not save submission")
	}
}

// contactOutcome names err for the submissions counter
func contactOutcome(err error) string {
	var verr *services.ValidationError
	switch {
	case err == nil:
		return "stored"
	case errors.As(err, &verr):
		return "invalid"
	case errors.Is(err, services.ErrRateLimited):
		return "rate_limited"
	default:
		return "error"
	}
}

// setRetryAfter sets Retry-After in whole seconds, rounding up
func setRetryAfter(w http.ResponseWriter, err error) {
	var rerr *services.RateLimitError
	if !errors.As(err, &rerr) {
		return
	}
	secs := int64((rerr.RetryAfter + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	w.Header().Set("Retry-After", strconv.FormatInt(secs, 10))
}

// clientIP strips the port that RemoteAddr carries when RealIP did not
// rewrite it
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
