package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/santaan/crm-api/internal/infra/http/middleware"
	"github.com/santaan/crm-api/internal/usecase"
)

type CallHandler struct {
	uc          *usecase.TrackCallUseCase
	rateLimiter *RateLimiter
}

func NewCallHandler(uc *usecase.TrackCallUseCase, rl *RateLimiter) *CallHandler {
	return &CallHandler{uc: uc, rateLimiter: rl}
}

func (h *CallHandler) Track(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	// Every field is optional here; an unreadable body is treated as an
	// empty submission rather than rejected.
	var input usecase.TrackCallInput
	json.NewDecoder(r.Body).Decode(&input)

	output, err := h.uc.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, "track-call", err)
		return
	}

	middleware.RecordContactCaptured("call")
	writeJSON(w, http.StatusOK, output)
}
