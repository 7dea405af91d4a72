package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/nexoradevlabs/site/internal/model"
	"github.com/nexoradevlabs/site/internal/service"
	"github.com/nexoradevlabs/site/pkg/mail"
)

const (
	maxMessageLength = 5000
	maxContactBody   = 64 << 10
)

// ContactHandler relays contact form submissions to the mail provider.
type ContactHandler struct {
	contactService service.ContactService
	log            *slog.Logger
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		log:            slog.Default().With(slog.String("component", "contact")),
	}
}

// submitResponse is the JSON body for a relayed submission.
type submitResponse struct {
	Success bool         `json:"success"`
	Result  *mail.Result `json:"result"`
}

// Submit handles POST /api/contact.
// name, email and message are all required; message max 5000 chars.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	var req model.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON", "")
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "Missing required fields", strings.Join(missing, ", "))
		return
	}

	if utf8.RuneCountInString(req.Trimmed().Message) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "Message too long", "")
		return
	}

	result, err := h.contactService.Submit(r.Context(), req)
	if err != nil {
		h.log.Error("contact email failed",
			slog.String("error", err.Error()),
			slog.String("reply_to", req.Email))
		writeError(w, http.StatusInternalServerError, "Failed to send email", providerMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{Success: true, Result: result})
}

// providerMessage exposes the provider's error text, except for local
// configuration problems which only the logs should carry.
func providerMessage(err error) string {
	if err == nil || errors.Is(err, mail.ErrNotConfigured) {
		return "Unknown error"
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Unknown error"
}
