package session

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"torchline_portal/internal/domain/entities"

	"github.com/gorilla/sessions"
)

const (
	CookieName = "torchline_session"
	userKey    = "torchline_user"
	maxAge     = 86400 * 7

	devSecret = "torchline-dev-session-secret-change-me"
)

var ErrNoSession = errors.New("no session user")

// NewCookieStore builds the signed cookie store. An empty secret falls back to
// a development key.
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	if secret == "" {
		log.Printf("[session] SESSION_SECRET not set; using development key")
		secret = devSecret
	}
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Manager keeps the logged-in user in a session cookie.
type Manager struct {
	store sessions.Store
}

func NewManager(store sessions.Store) *Manager {
	return &Manager{store: store}
}

func (m *Manager) Save(w http.ResponseWriter, r *http.Request, user entities.SessionUser) error {
	sess, _ := m.store.Get(r, CookieName)
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	sess.Values[userKey] = string(raw)
	return sess.Save(r, w)
}

// Load returns ErrNoSession when the request carries no valid user.
func (m *Manager) Load(r *http.Request) (entities.SessionUser, error) {
	sess, err := m.store.Get(r, CookieName)
	if err != nil {
		return entities.SessionUser{}, ErrNoSession
	}
	raw, ok := sess.Values[userKey].(string)
	if !ok || raw == "" {
		return entities.SessionUser{}, ErrNoSession
	}
	var user entities.SessionUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.Email == "" {
		return entities.SessionUser{}, ErrNoSession
	}
	return user, nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, CookieName)
	delete(sess.Values, userKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
