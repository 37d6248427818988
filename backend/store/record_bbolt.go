package store

import (
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var recordsBucket = []byte("records")

type BoltRecordStore struct {
	db *bbolt.DB
}

// OpenRecordStore opens (or creates) the record database. FirstRun reports
// whether the file existed before, so the caller can seed demo data exactly
// once. Reopening is idempotent.
func OpenRecordStore(path string) (*BoltRecordStore, bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, false, err
	}

	firstRun := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		firstRun = true
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, false, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(recordsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, false, err
	}

	return &BoltRecordStore{db: db}, firstRun, nil
}

func (s *BoltRecordStore) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(recordsBucket).Get([]byte(key))
		if v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *BoltRecordStore) Set(key string, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(recordsBucket).Put([]byte(key), value)
	})
}

func (s *BoltRecordStore) Close() error {
	return s.db.Close()
}
