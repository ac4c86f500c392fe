// Package keyValStore is the badger backed table storage used by the local
// account directory.
package keyValStore

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

var ErrClosed = errors.New("key value store is closed")

// inMemoryTableSize keeps ephemeral stores small; the account table is a
// few bytes per row.
const inMemoryTableSize = 8 << 20

type StoreConfig struct {
	// Path is the badger directory. Ignored when InMemory is set.
	Path     string
	InMemory bool
	// MinimumFreeSpace in GB. Zero disables the check.
	MinimumFreeSpace uint64
	// Logger receives badger's own log output. Nil silences badger.
	Logger *logrus.Logger
}

type KeyValStore struct {
	config       StoreConfig
	badgerDB     *badger.DB
	closed       atomic.Bool
	readCounter  uint64
	writeCounter uint64
}

// NewKeyValStore opens or creates the store. It returns once badger has
// replayed its log, so the caller may serve reads immediately.
func NewKeyValStore(config StoreConfig) (*KeyValStore, error) { // A
	if config.Logger == nil {
		config.Logger = logrus.New()
		config.Logger.SetLevel(logrus.WarnLevel)
	}

	var opts badger.Options
	if config.InMemory {
		opts = badger.DefaultOptions("").
			WithInMemory(true).
			WithMemTableSize(inMemoryTableSize)
	} else {
		if err := config.checkConfig(); err != nil {
			return nil, fmt.Errorf("error checking config for KeyValStore: %w", err)
		}
		opts = badger.DefaultOptions(config.Path)
		opts.SyncWrites = true
	}
	opts.Logger = config.Logger

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	if !config.InMemory {
		if err := displayDiskUsage(config.Logger, config.Path); err != nil {
			config.Logger.WithError(err).Warn("disk usage unavailable")
		}
	}

	return &KeyValStore{
		config:   config,
		badgerDB: db,
	}, nil
}

// Read returns the value stored under key. found is false when the key is
// absent.
func (k *KeyValStore) Read(key []byte) (value []byte, found bool, err error) {
	if k.closed.Load() {
		return nil, false, ErrClosed
	}
	atomic.AddUint64(&k.readCounter, 1)
	err = k.badgerDB.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("read key %q: %w", key, err)
	}
	return value, found, nil
}

// WriteBatch applies every pair inside a single transaction. Either all
// pairs become visible or none do.
func (k *KeyValStore) WriteBatch(batch [][2][]byte) error { // A
	if k.closed.Load() {
		return ErrClosed
	}
	err := k.badgerDB.Update(func(txn *badger.Txn) error {
		for _, kv := range batch {
			if err := txn.Set(kv[0], kv[1]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("write batch of %d: %w", len(batch), err)
	}
	atomic.AddUint64(&k.writeCounter, uint64(len(batch)))
	return nil
}

// GetItemsWithPrefix returns all keys and values under prefix, read from a
// single consistent snapshot.
func (k *KeyValStore) GetItemsWithPrefix(prefix []byte) ([][2][]byte, error) {
	if k.closed.Load() {
		return nil, ErrClosed
	}
	var items [][2][]byte
	atomic.AddUint64(&k.readCounter, 1)
	err := k.badgerDB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			v, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			items = append(items, [2][]byte{item.KeyCopy(nil), v})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate prefix %q: %w", prefix, err)
	}
	return items, nil
}

// Counters returns the number of reads and written keys since open.
func (k *KeyValStore) Counters() (reads, writes uint64) {
	return atomic.LoadUint64(&k.readCounter), atomic.LoadUint64(&k.writeCounter)
}

func (k *KeyValStore) Close() error {
	if !k.closed.CompareAndSwap(false, true) {
		return nil
	}
	return k.badgerDB.Close()
}
