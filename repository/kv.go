package repository

import (
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/entity"
)

// Logical keys of the three persisted records.
const (
	KeyMenu  = "menu"
	KeyCart  = "cart"
	KeySales = "sales"
)

// Store is the key-value substrate the ledgers persist into. Get reports
// whether the key existed; Put overwrites unconditionally.
type Store interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
	Delete(key string) error
}

// GormStore keeps each record as one row in the kv_records table.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) Get(key string) (string, bool, error) {
	var rec entity.KVRecord
	err := s.DB.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

func (s *GormStore) Put(key, value string) error {
	return s.DB.Save(&entity.KVRecord{Key: key, Value: value}).Error
}

func (s *GormStore) Delete(key string) error {
	return s.DB.Delete(&entity.KVRecord{}, "key = ?", key).Error
}

// envelope versions every persisted value so a schema change (or garbage in
// the store) is detected on load and replaced by the documented default.
type envelope struct {
	V    int             `json:"v"`
	Data json.RawMessage `json:"data"`
}

const schemaVersion = 1

// loadJSON reads key into out and reports whether a valid value was found.
// Absent key, unreadable store, malformed JSON and version mismatch all
// return false: a corrupt store is never fatal, callers substitute their
// default.
func loadJSON(store Store, key string, out any) bool {
	raw, found, err := store.Get(key)
	if err != nil {
		log.Printf("store: read %q failed, using default: %v", key, err)
		return false
	}
	if !found {
		return false
	}
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil || env.V != schemaVersion {
		log.Printf("store: %q holds unusable data, using default", key)
		return false
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		log.Printf("store: %q payload malformed, using default: %v", key, err)
		return false
	}
	return true
}

func saveJSON(store Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(envelope{V: schemaVersion, Data: data})
	if err != nil {
		return err
	}
	return store.Put(key, string(raw))
}
