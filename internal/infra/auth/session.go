package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// Identity is the typed claims structure attached to a logged-in session.
// It is built once at the provider boundary; nothing downstream touches raw
// token claims.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

const (
	sessionName = "santaan_session"

	keyEmail = "email"
	keyName  = "name"
	keyRole  = "role"
	keyState = "oauth_state"
)

// SessionManager wraps a signed cookie store. Sessions hold only the Identity
// fields and the in-flight OAuth state nonce.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(secret string) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store}
}

// Identity returns the logged-in identity for the request, if any.
func (m *SessionManager) Identity(r *http.Request) (*Identity, bool) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		// A tampered or stale cookie is the same as no session.
		return nil, false
	}

	email, ok := session.Values[keyEmail].(string)
	if !ok || email == "" {
		return nil, false
	}

	name, _ := session.Values[keyName].(string)
	role, _ := session.Values[keyRole].(string)

	return &Identity{Email: email, Name: name, Role: role}, true
}

func (m *SessionManager) SaveIdentity(w http.ResponseWriter, r *http.Request, id Identity) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values[keyEmail] = id.Email
	session.Values[keyName] = id.Name
	session.Values[keyRole] = id.Role
	delete(session.Values, keyState)
	return session.Save(r, w)
}

// SetState stashes the OAuth state nonce for the in-flight login.
func (m *SessionManager) SetState(w http.ResponseWriter, r *http.Request, state string) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values[keyState] = state
	return session.Save(r, w)
}

func (m *SessionManager) State(r *http.Request) string {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return ""
	}
	state, _ := session.Values[keyState].(string)
	return state
}

func (m *SessionManager) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	session.Options.MaxAge = -1
	session.Values = make(map[interface{}]interface{})
	return session.Save(r, w)
}
