package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/runocole/geomart/internal/domain"
)

// ContactHandler takes contact-page form submissions. There is no mail
// backend in scope; valid submissions are logged for manual follow-up.
type ContactHandler struct{}

func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

type ContactRequestDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "validation_failed", "name is required")
		return
	}
	if !domain.ValidEmail(req.Email) {
		respondError(w, http.StatusBadRequest, "validation_failed", "email format is invalid")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "validation_failed", "message is required")
		return
	}

	log.Printf("contact submission from %s <%s> (request %s)", req.Name, req.Email, getRequestID(r.Context()))
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "received"})
}
