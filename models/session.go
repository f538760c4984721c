package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionCookieName = "colorsense_session"

// Session is a logged in profile on one client. Removing it logs the client out.
type Session struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profileId"`
	UserAgent string    `json:"userAgent"`
	Expiry    time.Time `json:"expiry"`
}

type SessionClaims struct {
	SessionID string `json:"sessionId"`
	ProfileID string `json:"profileId"`
	jwt.RegisteredClaims
}

func NewSession(profileID, userAgent string, duration time.Duration) Session {
	return Session{
		ID:        uuid.New().String(),
		ProfileID: profileID,
		UserAgent: userAgent,
		Expiry:    time.Now().Add(duration),
	}
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.Expiry)
}

// SignSessionToken issues an HS256 token referencing the session.
func SignSessionToken(session Session, secret string) (string, error) {
	claims := SessionClaims{
		SessionID: session.ID,
		ProfileID: session.ProfileID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(session.Expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateSessionToken(tokenString string, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.SessionID == "" {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
