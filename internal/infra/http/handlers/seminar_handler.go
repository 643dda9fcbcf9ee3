package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/santaan/crm-api/internal/infra/http/middleware"
	"github.com/santaan/crm-api/internal/usecase"
)

type SeminarHandler struct {
	uc          *usecase.RegisterSeminarUseCase
	rateLimiter *RateLimiter
}

func NewSeminarHandler(uc *usecase.RegisterSeminarUseCase, rl *RateLimiter) *SeminarHandler {
	return &SeminarHandler{uc: uc, rateLimiter: rl}
}

func (h *SeminarHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.RegisterSeminarInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.uc.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, "seminar/register", err)
		return
	}

	middleware.RecordContactCaptured("seminar")
	writeJSON(w, http.StatusOK, output)
}
