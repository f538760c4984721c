package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const passwordHashCost = 8

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Profile partitions saved colors and settings between people sharing the
// service. It is not an identity system: there are no roles or permissions.
type Profile struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Validate checks the signup fields before a profile is created.
func (req SignupRequest) Validate() error {
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	if len(req.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (profile Profile) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(profile.HashedPassword), []byte(password)); err != nil {
		return fmt.Errorf("error in compare of hash %v", err)
	}
	return nil
}

// NormalizeEmail lower-cases and trims an email so lookups are stable.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NewProfile(signup SignupRequest) (Profile, error) {
	hashedPassword, hashErr := GenerateHash(signup.Password)
	if hashErr != nil {
		return Profile{}, hashErr
	}
	return Profile{
		ID:             uuid.New().String(),
		Email:          NormalizeEmail(signup.Email),
		Name:           strings.TrimSpace(signup.Name),
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

func GenerateHash(password string) (string, error) {
	hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if hashErr != nil {
		return "", fmt.Errorf("error hashing password %v", hashErr)
	}
	return string(hashedPassword), nil
}
