package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/santaan/crm-api/internal/infra/http/middleware"
	"github.com/santaan/crm-api/internal/usecase"
)

type NewsletterHandler struct {
	uc          *usecase.SubscribeNewsletterUseCase
	rateLimiter *RateLimiter
}

func NewNewsletterHandler(uc *usecase.SubscribeNewsletterUseCase, rl *RateLimiter) *NewsletterHandler {
	return &NewsletterHandler{uc: uc, rateLimiter: rl}
}

func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.SubscribeNewsletterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.uc.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, "newsletter/subscribe", err)
		return
	}

	middleware.RecordContactCaptured("newsletter")
	writeJSON(w, http.StatusOK, output)
}
