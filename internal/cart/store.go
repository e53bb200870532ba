package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golden-thread/internal/domain"

	bolt "go.etcd.io/bbolt"
)

// Keys under which client state is stored
const (
	keyCart  = "gt_cart2"
	keyToken = "gt_token"
	keyUser  = "gt_user"
)

var bucketName = []byte("golden-thread")

// Session is the signed-in state kept between runs
type Session struct {
	Token string              `json:"token"`
	User  *domain.UserProfile `json:"user,omitempty"`
}

// SignedIn reports whether a token is present
func (s Session) SignedIn() bool {
	return s.Token != ""
}

// Store persists the cart and session across runs
type Store interface {
	LoadCart() (*Cart, error)
	SaveCart(c *Cart) error
	LoadSession() (Session, error)
	SaveSession(s Session) error
	ClearSession() error
	Close() error
}

// BoltStore keeps client state in a single bbolt file
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens or creates the state file at path
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open state file %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create state bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// LoadCart returns the saved cart. A missing or unreadable cart is empty.
func (s *BoltStore) LoadCart() (*Cart, error) {
	c := New()
	err := s.get(keyCart, &c.Lines)
	if errors.Is(err, errCorrupt) {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}
	if c.Lines == nil {
		c.Lines = []domain.LineItem{}
	}
	return c, nil
}

func (s *BoltStore) SaveCart(c *Cart) error {
	return s.put(map[string]interface{}{keyCart: c.Lines})
}

// LoadSession returns the saved session. Unreadable state counts as signed out.
func (s *BoltStore) LoadSession() (Session, error) {
	var session Session
	for key, v := range map[string]interface{}{keyToken: &session.Token, keyUser: &session.User} {
		if err := s.get(key, v); err != nil {
			if errors.Is(err, errCorrupt) {
				return Session{}, nil
			}
			return Session{}, err
		}
	}
	return session, nil
}

func (s *BoltStore) SaveSession(session Session) error {
	return s.put(map[string]interface{}{
		keyToken: session.Token,
		keyUser:  session.User,
	})
}

// ClearSession signs out; the cart is kept
func (s *BoltStore) ClearSession() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if err := b.Delete([]byte(keyToken)); err != nil {
			return err
		}
		return b.Delete([]byte(keyUser))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

var errCorrupt = errors.New("corrupt state value")

// get decodes the JSON value at key into v. A missing key leaves v untouched.
func (s *BoltStore) get(key string, v interface{}) error {
	return s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketName).Get([]byte(key))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("%w: %s: %v", errCorrupt, key, err)
		}
		return nil
	})
}

// put writes every entry in one transaction
func (s *BoltStore) put(entries map[string]interface{}) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		for key, v := range entries {
			raw, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", key, err)
			}
			if err := b.Put([]byte(key), raw); err != nil {
				return err
			}
		}
		return nil
	})
}
