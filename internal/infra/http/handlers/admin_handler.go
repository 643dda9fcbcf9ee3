package handlers

import (
	"net/http"
	"strconv"

	"github.com/santaan/crm-api/internal/usecase"
)

// AdminHandler serves the dashboard's read endpoints. The route gate has
// already authorized the caller by the time these run.
type AdminHandler struct {
	contactRepo usecase.ContactRepositoryInterface
}

func NewAdminHandler(contactRepo usecase.ContactRepositoryInterface) *AdminHandler {
	return &AdminHandler{contactRepo: contactRepo}
}

func (h *AdminHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	if limit > 200 {
		limit = 200
	}
	offset := queryInt(r, "offset", 0)

	contacts, err := h.contactRepo.List(r.Context(), limit, offset)
	if err != nil {
		writeUseCaseError(w, "admin/contacts", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"contacts": contacts,
		"limit":    limit,
		"offset":   offset,
	})
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.contactRepo.CountByRole(r.Context())
	if err != nil {
		writeUseCaseError(w, "admin/stats", err)
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total":   total,
		"by_role": counts,
	})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
