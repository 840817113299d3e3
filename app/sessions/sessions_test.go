package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db, ttl)
}

func TestStoreLifecycle(t *testing.T) {
	store := setupStore(t, time.Hour)

	token, err := store.Create(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Get(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	require.NoError(t, store.Delete(token))
	_, err = store.Get(token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStoreUnknownToken(t *testing.T) {
	store := setupStore(t, time.Hour)
	_, err := store.Get("not-a-token")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStoreExpiry(t *testing.T) {
	store := setupStore(t, time.Second)

	token, err := store.Create(7)
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)
	_, err = store.Get(token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManagerRoundTrip(t *testing.T) {
	store := setupStore(t, time.Hour)
	manager := NewManager(store, "test-secret", time.Hour)

	w := httptest.NewRecorder()
	require.NoError(t, manager.Login(w, 42))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(cookies[0])

	userID, ok := manager.UserID(r)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestManagerRejectsTamperedCookie(t *testing.T) {
	store := setupStore(t, time.Hour)
	manager := NewManager(store, "test-secret", time.Hour)

	w := httptest.NewRecorder()
	require.NoError(t, manager.Login(w, 42))
	cookie := w.Result().Cookies()[0]

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value + "00"})

	_, ok := manager.UserID(r)
	assert.False(t, ok)
}

func TestManagerLogout(t *testing.T) {
	store := setupStore(t, time.Hour)
	manager := NewManager(store, "test-secret", time.Hour)

	w := httptest.NewRecorder()
	require.NoError(t, manager.Login(w, 42))
	cookie := w.Result().Cookies()[0]

	r := httptest.NewRequest("GET", "/logout", nil)
	r.AddCookie(cookie)
	w2 := httptest.NewRecorder()
	manager.Logout(w2, r)

	r2 := httptest.NewRequest("GET", "/", nil)
	r2.AddCookie(cookie)
	_, ok := manager.UserID(r2)
	assert.False(t, ok)
}

func TestFlashIsOneShot(t *testing.T) {
	w := httptest.NewRecorder()
	SetFlash(w, "Hello, notice!")
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()
	assert.Equal(t, "Hello, notice!", TakeFlash(w2, r))

	// Taking the flash clears the cookie.
	cleared := w2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].MaxAge < 0)
}

func TestFlashMissing(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	assert.Equal(t, "", TakeFlash(w, r))
}
