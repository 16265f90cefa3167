// ABOUTME: Badger-backed key-value implementation of the storage repository.
// ABOUTME: Records live under type-prefixed keys as JSON; queries filter client-side.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/myndness/mynd/internal/storage"
)

const (
	moodPrefix        = "mood:"
	episodePrefix     = "episode:"
	bpPrefix          = "bp:"
	activityPrefix    = "activity:"
	libraryPrefix     = "library:"
	thoughtPrefix     = "thought:"
	experimentPrefix  = "experiment:"
	hierarchyPrefix   = "hierarchy:"
	mindfulnessPrefix = "mindfulness:"
	energyPrefix      = "energy:"
	taskPrefix        = "task:"
	routinePrefix     = "routine:"
	interestPrefix    = "interest:"

	// Not "interest-session:"; no record prefix may extend another or
	// prefix scans would cross collections.
	interestSessionPrefix = "isession:"

	settingsKey = "settings"
	profileKey  = "profile"

	seqBandwidth = 16
)

// Store is the key-value backend. It satisfies storage.Repository with the
// same ordering and error semantics as the SQLite backend.
type Store struct {
	db *badger.DB

	mu   sync.Mutex
	seqs map[string]*badger.Sequence
}

var _ storage.Repository = (*Store)(nil)

// Open opens (creating if needed) a Badger store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return nil, fmt.Errorf("create kv directory: %w", err)
	}

	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open kv store at %s: %w", path, err)
	}
	return &Store{db: db, seqs: make(map[string]*badger.Sequence)}, nil
}

// OpenDefault opens the store in the default data directory.
func OpenDefault() (*Store, error) {
	return Open(filepath.Join(storage.DataDir(), "kv"))
}

// Initialize seeds default data into empty collections.
func (s *Store) Initialize() error {
	return storage.Seed(s)
}

// Close releases id sequences and closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	for _, seq := range s.seqs {
		_ = seq.Release()
	}
	s.seqs = make(map[string]*badger.Sequence)
	s.mu.Unlock()
	return s.db.Close()
}

// nextID allocates the next integer id for a collection. Sequences start
// at 0 internally; stored ids start at 1 to match SQLite autoincrement.
func (s *Store) nextID(prefix string) (int64, error) {
	s.mu.Lock()
	seq, ok := s.seqs[prefix]
	if !ok {
		var err error
		seq, err = s.db.GetSequence([]byte("seq:"+prefix), seqBandwidth)
		if err != nil {
			s.mu.Unlock()
			return 0, fmt.Errorf("sequence for %s: %w", prefix, err)
		}
		s.seqs[prefix] = seq
	}
	s.mu.Unlock()

	n, err := seq.Next()
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", prefix, err)
	}
	return int64(n) + 1, nil
}

// recordKey builds the fixed-width key for a record so prefix scans return
// records in id order.
func recordKey(prefix string, id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", prefix, id))
}

// put stores one marshaled record.
func (s *Store) put(key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// getRecord loads one record, mapping a missing key to storage.ErrNotFound.
func getRecord[T any](s *Store, key []byte) (*T, error) {
	var v T
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(data []byte) error {
			return json.Unmarshal(data, &v)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, fmt.Errorf("get %s: %w", key, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return &v, nil
}

// listPrefix decodes every record under a key prefix, in key order.
func listPrefix[T any](s *Store, prefix string) ([]T, error) {
	var out []T
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var v T
			err := it.Item().Value(func(data []byte) error {
				return json.Unmarshal(data, &v)
			})
			if err != nil {
				return err
			}
			out = append(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", prefix, err)
	}
	return out, nil
}

// deleteKey removes one record, mapping a missing key to storage.ErrNotFound.
func (s *Store) deleteKey(key []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete %s: %w", key, storage.ErrNotFound)
		}
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// inRange reports whether a yyyy-mm-dd date falls in the inclusive range.
func inRange(date, start, end string) bool {
	return date >= start && date <= end
}
