package sessions

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"
)

const cookieName = "session"

// Manager issues and resolves the session cookie. The cookie value is the
// store token plus an HMAC over it, so a forged or tampered cookie never
// reaches the store.
type Manager struct {
	store  *Store
	secret []byte
	ttl    time.Duration
}

// NewManager creates a Manager signing cookies with secret.
func NewManager(store *Store, secret string, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: []byte(secret), ttl: ttl}
}

// Login establishes a session for the user and sets the signed cookie.
func (m *Manager) Login(w http.ResponseWriter, userID int64) error {
	token, err := m.store.Create(userID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token + "." + m.sign(token),
		Path:     "/",
		Expires:  time.Now().Add(m.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Logout ends the request's session, if any, and clears the cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := m.token(r); ok {
		m.store.Delete(token)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// UserID resolves the request's session to a user id. The second return is
// false for anonymous requests: no cookie, bad signature, or expired
// session.
func (m *Manager) UserID(r *http.Request) (int64, bool) {
	token, ok := m.token(r)
	if !ok {
		return 0, false
	}
	userID, err := m.store.Get(token)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// token extracts and verifies the store token from the cookie.
func (m *Manager) token(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return "", false
	}
	token, sig, ok := strings.Cut(cookie.Value, ".")
	if !ok || !hmac.Equal([]byte(sig), []byte(m.sign(token))) {
		return "", false
	}
	return token, true
}

func (m *Manager) sign(token string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
