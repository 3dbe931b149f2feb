package store

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/zerr"
)

// Badger stores entries in an embedded badger database.
type Badger struct {
	db *badger.DB
}

// OpenBadger opens or creates a badger database in dir.
func OpenBadger(dir string) (*Badger, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", dir)
	}
	return &Badger{db: db}, nil
}

// Get returns the value stored under key.
func (s *Badger) Get(_ context.Context, key string) (string, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return string(value), true, nil
}

// Set stores value under key.
func (s *Badger) Set(_ context.Context, key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

// BytesInUse sums key and value sizes of the live entries.
func (s *Badger) BytesInUse(_ context.Context) (int64, error) {
	var n int64
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			n += int64(item.KeySize()) + item.ValueSize()
		}
		return nil
	})
	if err != nil {
		return 0, zerr.Wrap(err, domain.ErrStoreSizeFailed.Error())
	}
	return n, nil
}

// Clear removes every entry.
func (s *Badger) Clear(_ context.Context) error {
	if err := s.db.DropAll(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreClearFailed.Error())
	}
	return nil
}

// Close closes the database.
func (s *Badger) Close() error {
	return s.db.Close()
}
