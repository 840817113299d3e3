package sessions

import (
	"errors"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

var ErrNoSession = errors.New("session not found")

const keyPrefix = "session:"

// Store keeps server-side sessions in badger. Entries carry a TTL so
// expired sessions vanish without a sweeper.
type Store struct {
	db  *badger.DB
	ttl time.Duration
}

// NewStore creates a session store on the given badger DB.
func NewStore(db *badger.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl}
}

// Create starts a session bound to the user id and returns its token.
func (s *Store) Create(userID int64) (string, error) {
	token := uuid.New().String()
	err := s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(keyPrefix+token), []byte(strconv.FormatInt(userID, 10))).
			WithTTL(s.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token to the bound user id. Missing or expired sessions
// return ErrNoSession.
func (s *Store) Get(token string) (int64, error) {
	var userID int64
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + token))
		if err == badger.ErrKeyNotFound {
			return ErrNoSession
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			userID, err = strconv.ParseInt(string(val), 10, 64)
			return err
		})
	})
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// Delete ends a session. Deleting an unknown token is not an error.
func (s *Store) Delete(token string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + token))
	})
}
