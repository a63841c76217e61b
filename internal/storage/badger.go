// ABOUTME: Badger key/value Repository for the state blob.
// ABOUTME: The blob lives under StateKey; writes go through a single transaction.
package storage

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/sirupsen/logrus"
)

// BadgerStore is the Badger-backed Repository.
type BadgerStore struct {
	db  *badger.DB
	dir string
	mu  sync.RWMutex
}

// OpenBadger opens or creates a Badger database in dir. A nil logger silences
// Badger's own logging.
func OpenBadger(dir string, log logrus.FieldLogger) (*BadgerStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create badger directory: %w", err)
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if log != nil {
		opts = opts.WithLogger(log)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db, dir: dir}, nil
}

// LoadState reads the state blob. Returns nil when no state has been saved.
func (b *BadgerStore) LoadState() ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(StateKey))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return out, nil
}

// SaveState replaces the state blob.
func (b *BadgerStore) SaveState(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(StateKey), append([]byte(nil), data...))
	})
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Close closes the Badger database.
func (b *BadgerStore) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
