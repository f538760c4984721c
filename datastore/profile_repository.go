package datastore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/colorsense/api/models"
)

const (
	profilePrefix   = "profiles:"
	profileIDPrefix = "profile-ids:"
	sessionPrefix   = "sessions:"
	settingsPrefix  = "settings:"
)

var (
	ErrProfileExists      = errors.New("a profile with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type ProfileRepository interface {
	Create(profile models.Profile) (models.Profile, error)
	Get(profileID string) (models.Profile, error)
	GetByEmail(email string) (models.Profile, error)
	ValidateAndGetProfile(credentials models.Credentials) (models.Profile, error)

	// Sessions
	CreateSession(session models.Session) error
	GetSession(sessionID string) (models.Session, error)
	DeleteSession(sessionID string) error

	// Settings
	GetSettings(profileID string) (models.AccessibilitySettings, error)
	SaveSettings(profileID string, settings models.AccessibilitySettings) (models.AccessibilitySettings, error)
}

// storedProfile keeps the hash, which models.Profile hides from JSON.
type storedProfile struct {
	models.Profile
	HashedPassword string `json:"hashedPassword"`
}

type ProfileStore struct {
	store ExpiringStore
}

func NewProfileStore(store ExpiringStore) (ProfileStore, error) {
	if store == nil {
		return ProfileStore{}, fmt.Errorf("nil key value store")
	}
	return ProfileStore{store: store}, nil
}

func (ps ProfileStore) Create(profile models.Profile) (models.Profile, error) {
	profile.Email = models.NormalizeEmail(profile.Email)
	if _, err := ps.store.Get(profilePrefix + profile.Email); err == nil {
		return models.Profile{}, ErrProfileExists
	} else if !IsNoRows(err) {
		return models.Profile{}, err
	}

	if err := ps.putJSON(profilePrefix+profile.Email, storedProfile{Profile: profile, HashedPassword: profile.HashedPassword}); err != nil {
		return models.Profile{}, err
	}
	if err := ps.store.Set(profileIDPrefix+profile.ID, profile.Email); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (ps ProfileStore) Get(profileID string) (models.Profile, error) {
	email, err := ps.store.Get(profileIDPrefix + profileID)
	if err != nil {
		return models.Profile{}, err
	}
	return ps.GetByEmail(email)
}

func (ps ProfileStore) GetByEmail(email string) (models.Profile, error) {
	var stored storedProfile
	if err := ps.getJSON(profilePrefix+models.NormalizeEmail(email), &stored); err != nil {
		return models.Profile{}, err
	}
	stored.Profile.HashedPassword = stored.HashedPassword
	return stored.Profile, nil
}

func (ps ProfileStore) ValidateAndGetProfile(credentials models.Credentials) (models.Profile, error) {
	profile, err := ps.GetByEmail(credentials.Email)
	if IsNoRows(err) {
		return models.Profile{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Profile{}, err
	}
	if err := profile.CheckPassword(credentials.Password); err != nil {
		return models.Profile{}, ErrInvalidCredentials
	}
	return profile, nil
}

func (ps ProfileStore) CreateSession(session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding session %v", err)
	}
	return ps.store.SetWithExpiry(sessionPrefix+session.ID, string(data), session.Expiry)
}

func (ps ProfileStore) GetSession(sessionID string) (models.Session, error) {
	var session models.Session
	if err := ps.getJSON(sessionPrefix+sessionID, &session); err != nil {
		return models.Session{}, err
	}
	if session.Expired(time.Now()) {
		return models.Session{}, NoRowsError{NoRows: true, Err: fmt.Errorf("session %s expired", sessionID)}
	}
	return session, nil
}

func (ps ProfileStore) DeleteSession(sessionID string) error {
	return ps.store.Remove(sessionPrefix + sessionID)
}

// GetSettings returns the defaults for profiles that never saved settings.
func (ps ProfileStore) GetSettings(profileID string) (models.AccessibilitySettings, error) {
	settings := models.DefaultSettings()
	err := ps.getJSON(settingsPrefix+profileID, &settings)
	if IsNoRows(err) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.AccessibilitySettings{}, err
	}
	return settings.Normalize(), nil
}

func (ps ProfileStore) SaveSettings(profileID string, settings models.AccessibilitySettings) (models.AccessibilitySettings, error) {
	settings = settings.Normalize()
	if err := ps.putJSON(settingsPrefix+profileID, settings); err != nil {
		return models.AccessibilitySettings{}, err
	}
	return settings, nil
}

func (ps ProfileStore) getJSON(key string, v any) error {
	raw, err := ps.store.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("error decoding %s: %w", key, err)
	}
	return nil
}

func (ps ProfileStore) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", key, err)
	}
	return ps.store.Set(key, string(data))
}
