// Package store caches retrieved texts (e.g. FASTA files downloaded
// from a URL) in a bolt database.
package store

import (
	"encoding/json"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the global logging variable.
var log = logging.MustGetLogger("store")

// TEXTS is the bucket name for all the cached texts.
var TEXTS = []byte("texts")

// Entry is a single cached text.
type Entry struct {
	Text        string `json:"text"`
	RetrievedAt int64  `json:"retrievedAt"`
}

// Store is a text cache. A nil Store caches nothing.
type Store struct {
	db  *bolt.DB
	ttl time.Duration
	// now is replaced in tests.
	now func() time.Time
}

// Open opens (or creates) the cache database at path. Entries older
// than ttl are ignored, ttl=0 means entries never expire.
func Open(path string, ttl time.Duration) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return &Store{db: db, ttl: ttl, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Save stores text under the key.
func (s *Store) Save(key, text string) error {
	if s == nil {
		return nil
	}
	dataB, err := json.Marshal(Entry{Text: text, RetrievedAt: s.now().Unix()})
	if err != nil {
		log.Error("Error serializing cache entry", err)
		return err
	}
	err = s.put([]byte(key), dataB)
	if err != nil {
		log.Error("Error saving cache entry", err)
	}
	return err
}

// Load returns the text stored under the key. The second value is
// false if there is no entry or if it is expired.
func (s *Store) Load(key string) (string, bool, error) {
	if s == nil {
		return "", false, nil
	}
	b, err := s.get([]byte(key))
	if err != nil || b == nil {
		return "", false, err
	}

	var e Entry
	if err := json.Unmarshal(b, &e); err != nil {
		return "", false, err
	}

	age := s.now().Sub(time.Unix(e.RetrievedAt, 0))
	if s.ttl > 0 && age > s.ttl {
		log.Debugf("Cache entry for %s is expired (age=%v)", key, age)
		return "", false, nil
	}
	log.Debugf("Found cache entry for %s (age=%v)", key, age)
	return e.Text, true, nil
}

// put saves data under the key in the texts bucket.
func (s *Store) put(key, data []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(TEXTS)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// get returns a copy of the data stored under the key, nil if there
// is none.
func (s *Store) get(key []byte) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(TEXTS)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			// v is only valid during the transaction
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
