package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/santaan/crm-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeUseCaseError maps usecase failures to the wire: validation problems
// are the caller's to fix (400), everything else is a generic 500 with the
// detail kept server-side.
func writeUseCaseError(w http.ResponseWriter, endpoint string, err error) {
	if usecase.IsValidationError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("[%s] %v", endpoint, err)
	writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
