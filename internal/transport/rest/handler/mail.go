package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"readiness/internal/model"
	"readiness/internal/service"
)

// MailHandler exposes the email relay and its configuration test
type MailHandler struct {
	sender *service.ResendSender
	client *service.MailClient
}

// NewMailHandler creates a new mail handler
func NewMailHandler(sender *service.ResendSender, client *service.MailClient) *MailHandler {
	return &MailHandler{
		sender: sender,
		client: client,
	}
}

// Send handles POST /v1/mail/send: the relay side of the email contract.
// The response body always carries a success flag; callers key off it.
func (h *MailHandler) Send(w http.ResponseWriter, r *http.Request) {
	var payload model.ReportPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, service.SendResult{Success: false, Error: "invalid request body"})
		return
	}

	if err := h.sender.Deliver(r.Context(), &payload); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrMissingMailFields) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, service.SendResult{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, service.SendResult{Success: true})
}

// Test handles POST /v1/mail/test: runs the fixed-payload configuration test
func (h *MailHandler) Test(w http.ResponseWriter, r *http.Request) {
	if !h.sender.Enabled() {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"error":   "RESEND_API_KEY not configured",
		})
		return
	}

	if err := h.client.TestConfiguration(r.Context()); err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Email function is properly configured",
	})
}
