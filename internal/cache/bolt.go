package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var Buckets = struct {
	Metadata    []byte
	Transcripts []byte
}{
	Metadata:    []byte("__metadata__"),
	Transcripts: []byte("transcripts"),
}

var MetadataKeys = struct {
	Version []byte
}{
	Version: []byte("version"),
}

const currentVersion = 1

// BoltStore keeps all entries in a single bbolt database. The database file is only created on the first Put; until
// then every Get is a miss.
type BoltStore struct {
	path string
	db   *bbolt.DB
}

func NewBoltStore(path string) *BoltStore {
	return &BoltStore{path: path}
}

func (s *BoltStore) open(create bool) (*bbolt.DB, error) {
	if s.db != nil {
		return s.db, nil
	}
	if !create {
		if _, err := os.Stat(s.path); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	db, err := bbolt.Open(s.path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) (err error) {
		// Ensure buckets exist
		var metadata *bbolt.Bucket
		if metadata, err = tx.CreateBucketIfNotExists(Buckets.Metadata); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(Buckets.Transcripts); err != nil {
			return err
		}

		// Get the current version of the database
		var version int
		if versionBytes := metadata.Get(MetadataKeys.Version); versionBytes == nil {
			version = 0
		} else if err = msgpack.Unmarshal(versionBytes, &version); err != nil {
			return err
		}
		if version > currentVersion {
			return fmt.Errorf("cache database version %d is newer than supported version %d", version, currentVersion)
		}

		// Set the current version of the database
		if versionBytes, err := msgpack.Marshal(currentVersion); err != nil {
			return err
		} else if err = metadata.Put(MetadataKeys.Version, versionBytes); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.db = db
	return db, nil
}

func (s *BoltStore) Get(key Key) (*Entry, error) {
	db, err := s.open(false)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrMiss
	} else if err != nil {
		return nil, err
	}
	var data []byte
	err = db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(Buckets.Transcripts).Get([]byte(key.String())); v != nil {
			// Only valid for the lifetime of the transaction
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrMiss
	}
	return decode(data)
}

func (s *BoltStore) Put(key Key, entry *Entry) error {
	data, err := encode(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	db, err := s.open(true)
	if err != nil {
		return err
	}
	return db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(Buckets.Transcripts).Put([]byte(key.String()), data)
	})
}

func (s *BoltStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
