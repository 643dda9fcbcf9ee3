package handlers

import (
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/santaan/crm-api/internal/entity"
	"github.com/santaan/crm-api/internal/infra/auth"
	"github.com/santaan/crm-api/internal/usecase"
)

type AuthHandler struct {
	sessions    *auth.SessionManager
	provider    *auth.GoogleProvider
	authorizer  *usecase.AuthorizeAdminUseCase
	frontendURL string
}

func NewAuthHandler(sessions *auth.SessionManager, provider *auth.GoogleProvider, authorizer *usecase.AuthorizeAdminUseCase, frontendURL string) *AuthHandler {
	return &AuthHandler{
		sessions:    sessions,
		provider:    provider,
		authorizer:  authorizer,
		frontendURL: frontendURL,
	}
}

// Login starts the Google OAuth flow. Already-authenticated visitors are
// bounced straight back to the site.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Identity(r); ok {
		http.Redirect(w, r, h.frontendURL, http.StatusFound)
		return
	}

	state := uuid.New().String()
	if err := h.sessions.SetState(w, r, state); err != nil {
		log.Printf("[auth] saving state: %v", err)
		writeError(w, http.StatusInternalServerError, "Unable to start login")
		return
	}

	http.Redirect(w, r, h.provider.AuthCodeURL(state), http.StatusFound)
}

// Callback finishes the OAuth flow and attaches the typed identity to the
// session. The role claim is derived once here, then re-checked by the route
// gate on every admin request.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" || state != h.sessions.State(r) {
		writeError(w, http.StatusBadRequest, "Invalid OAuth state")
		return
	}

	info, err := h.provider.FetchUser(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		log.Printf("[auth] callback: %v", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	identity := auth.Identity{
		Email: entity.NormalizeEmail(info.Email),
		Name:  info.Name,
	}
	if h.authorizer.Execute(r.Context(), identity.Email) {
		identity.Role = entity.RoleAdmin
	}

	if err := h.sessions.SaveIdentity(w, r, identity); err != nil {
		log.Printf("[auth] saving session: %v", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	http.Redirect(w, r, h.frontendURL, http.StatusFound)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		log.Printf("[auth] clearing session: %v", err)
	}
	http.Redirect(w, r, h.frontendURL, http.StatusFound)
}

// Me returns the logged-in identity, for the frontend to render nav state.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.sessions.Identity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	writeJSON(w, http.StatusOK, identity)
}
