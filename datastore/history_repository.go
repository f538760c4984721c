package datastore

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/colorsense/api/models"
)

// ErrColorAlreadySaved is returned by Create when the profile already saved the hex.
var ErrColorAlreadySaved = errors.New("color already saved for this profile")

type HistoryRepository interface {
	Create(color models.SavedColor) (models.SavedColor, error)
	GetByProfile(profileID string) ([]models.SavedColor, error)
	GetByProfileAndHex(profileID, hex string) (models.SavedColor, error)
	Delete(profileID, colorID string) error
}

type HistoryDatabase struct {
	database *sql.DB
}

func NewHistoryDatabase(db *sql.DB) (HistoryDatabase, error) {
	if db == nil {
		return HistoryDatabase{}, fmt.Errorf("nil database")
	}
	return HistoryDatabase{database: db}, nil
}

const historyColumns = `
		color_id,
		profile_id,
		hex,
		r,
		g,
		b,
		h,
		s,
		l,
		name,
		description,
		saved_at`

func (hdb HistoryDatabase) Create(color models.SavedColor) (models.SavedColor, error) {
	result, insertErr := hdb.database.Exec(`
		INSERT INTO color_history (`+historyColumns+`
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (profile_id, hex) DO NOTHING`,
		color.ID,
		color.ProfileID,
		color.Hex,
		color.RGB.R,
		color.RGB.G,
		color.RGB.B,
		color.HSL.H,
		color.HSL.S,
		color.HSL.L,
		color.Name,
		color.Description,
		color.Timestamp,
	)
	if insertErr != nil {
		return color, insertErr
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return color, err
	}
	if inserted == 0 {
		return color, ErrColorAlreadySaved
	}
	return color, nil
}

func (hdb HistoryDatabase) GetByProfile(profileID string) ([]models.SavedColor, error) {
	rows, err := hdb.database.Query(`
	SELECT`+historyColumns+`
	FROM color_history
	WHERE profile_id=$1
	ORDER BY saved_at DESC;`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	saved := []models.SavedColor{}
	for rows.Next() {
		color, scanErr := scanSavedColor(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		saved = append(saved, color)
	}
	return saved, rows.Err()
}

func (hdb HistoryDatabase) GetByProfileAndHex(profileID, hex string) (models.SavedColor, error) {
	row := hdb.database.QueryRow(`
	SELECT`+historyColumns+`
	FROM color_history
	WHERE profile_id=$1 AND hex=$2
	LIMIT 1;`, profileID, strings.ToUpper(hex))

	color, scanErr := scanSavedColor(row)
	if scanErr == sql.ErrNoRows {
		return models.SavedColor{}, NoRowsError{NoRows: true, Err: scanErr}
	}
	if scanErr != nil {
		return models.SavedColor{}, scanErr
	}
	return color, nil
}

func (hdb HistoryDatabase) Delete(profileID, colorID string) error {
	result, err := hdb.database.Exec(`DELETE FROM color_history WHERE profile_id=$1 AND color_id=$2`, profileID, colorID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return NoRowsError{NoRows: true, Err: sql.ErrNoRows}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSavedColor(row scanner) (models.SavedColor, error) {
	var color models.SavedColor
	err := row.Scan(
		&color.ID,
		&color.ProfileID,
		&color.Hex,
		&color.RGB.R,
		&color.RGB.G,
		&color.RGB.B,
		&color.HSL.H,
		&color.HSL.S,
		&color.HSL.L,
		&color.Name,
		&color.Description,
		&color.Timestamp,
	)
	return color, err
}

// MemoryHistory is the in-process HistoryRepository used with DB_TYPE=memory.
type MemoryHistory struct {
	mu    sync.RWMutex
	saved []models.SavedColor
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

func (mh *MemoryHistory) Create(color models.SavedColor) (models.SavedColor, error) {
	mh.mu.Lock()
	defer mh.mu.Unlock()
	for _, c := range mh.saved {
		if c.ProfileID == color.ProfileID && strings.EqualFold(c.Hex, color.Hex) {
			return color, ErrColorAlreadySaved
		}
	}
	mh.saved = append(mh.saved, color)
	return color, nil
}

func (mh *MemoryHistory) GetByProfile(profileID string) ([]models.SavedColor, error) {
	mh.mu.RLock()
	defer mh.mu.RUnlock()
	saved := []models.SavedColor{}
	for _, c := range mh.saved {
		if c.ProfileID == profileID {
			saved = append(saved, c)
		}
	}
	sort.SliceStable(saved, func(i, j int) bool {
		return saved[i].Timestamp.After(saved[j].Timestamp)
	})
	return saved, nil
}

func (mh *MemoryHistory) GetByProfileAndHex(profileID, hex string) (models.SavedColor, error) {
	mh.mu.RLock()
	defer mh.mu.RUnlock()
	for _, c := range mh.saved {
		if c.ProfileID == profileID && strings.EqualFold(c.Hex, hex) {
			return c, nil
		}
	}
	return models.SavedColor{}, NoRowsError{NoRows: true, Err: sql.ErrNoRows}
}

func (mh *MemoryHistory) Delete(profileID, colorID string) error {
	mh.mu.Lock()
	defer mh.mu.Unlock()
	for i, c := range mh.saved {
		if c.ProfileID == profileID && c.ID == colorID {
			mh.saved = append(mh.saved[:i], mh.saved[i+1:]...)
			return nil
		}
	}
	return NoRowsError{NoRows: true, Err: sql.ErrNoRows}
}
