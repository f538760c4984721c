package datastore

import (
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// KeyValueStore is the storage the profile repository is built on.
// Get returns a NoRowsError for keys that are missing or expired.
type KeyValueStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// ExpiringStore is a KeyValueStore whose keys can carry an expiry.
type ExpiringStore interface {
	KeyValueStore
	SetWithExpiry(key, value string, expiry time.Time) error
	PurgeExpired(now time.Time) (int64, error)
}

type KeyValueDatabase struct {
	database *sql.DB
}

func NewKeyValueDatabase(db *sql.DB) (KeyValueDatabase, error) {
	if db == nil {
		return KeyValueDatabase{}, fmt.Errorf("nil database")
	}
	return KeyValueDatabase{database: db}, nil
}

func (kv KeyValueDatabase) Get(key string) (string, error) {
	sqlStatement := `
	SELECT value
	FROM kv_store
	WHERE key=$1 AND (expires_at IS NULL OR expires_at > NOW());`

	var value string
	scanErr := kv.database.QueryRow(sqlStatement, key).Scan(&value)
	if scanErr == sql.ErrNoRows {
		return "", NoRowsError{NoRows: true, Err: scanErr}
	}
	if scanErr != nil {
		return "", scanErr
	}
	return value, nil
}

func (kv KeyValueDatabase) Set(key, value string) error {
	return kv.set(key, value, sql.NullTime{})
}

func (kv KeyValueDatabase) SetWithExpiry(key, value string, expiry time.Time) error {
	return kv.set(key, value, sql.NullTime{Time: expiry, Valid: true})
}

func (kv KeyValueDatabase) set(key, value string, expiry sql.NullTime) error {
	_, err := kv.database.Exec(`
		INSERT INTO kv_store (key, value, expires_at, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
			expires_at = EXCLUDED.expires_at,
			updated_at = NOW()`,
		key, value, expiry,
	)
	return err
}

func (kv KeyValueDatabase) Remove(key string) error {
	_, err := kv.database.Exec(`DELETE FROM kv_store WHERE key=$1`, key)
	return err
}

func (kv KeyValueDatabase) PurgeExpired(now time.Time) (int64, error) {
	result, err := kv.database.Exec(`DELETE FROM kv_store WHERE expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type memoryEntry struct {
	value  string
	expiry time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiry.IsZero() && !now.Before(e.expiry)
}

// MemoryStore keeps keys in process. It is used when DB_TYPE is "memory".
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]memoryEntry{}, now: time.Now}
}

func (m *MemoryStore) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[key]
	if !ok || entry.expired(m.now()) {
		return "", NoRowsError{NoRows: true, Err: fmt.Errorf("key %q not found", key)}
	}
	return entry.value, nil
}

func (m *MemoryStore) Set(key, value string) error {
	return m.SetWithExpiry(key, value, time.Time{})
}

func (m *MemoryStore) SetWithExpiry(key, value string, expiry time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{value: value, expiry: expiry}
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *MemoryStore) PurgeExpired(now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var purged int64
	for key, entry := range m.entries {
		if entry.expired(now) {
			delete(m.entries, key)
			purged++
		}
	}
	return purged, nil
}
