package models_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/colorsense/api/models"
)

func TestSignupValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SignupRequest
		wantErr bool
	}{
		{"valid", models.SignupRequest{Email: "a@b.co", Password: "secret1", Name: "Ana"}, false},
		{"bad email", models.SignupRequest{Email: "ab.co", Password: "secret1", Name: "Ana"}, true},
		{"short password", models.SignupRequest{Email: "a@b.co", Password: "123", Name: "Ana"}, true},
		{"blank name", models.SignupRequest{Email: "a@b.co", Password: "secret1", Name: "  "}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewProfileHashesPassword(t *testing.T) {
	p, err := models.NewProfile(models.SignupRequest{Email: "  Ana@Example.COM ", Password: "secret1", Name: " Ana "})
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	if p.Email != "ana@example.com" || p.Name != "Ana" {
		t.Errorf("fields not normalized: %+v", p)
	}
	if p.HashedPassword == "secret1" {
		t.Fatal("password stored in clear")
	}
	if err := p.CheckPassword("secret1"); err != nil {
		t.Errorf("CheckPassword(correct) = %v", err)
	}
	if err := p.CheckPassword("wrong"); err == nil {
		t.Error("CheckPassword(wrong) = nil, want error")
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), p.HashedPassword) {
		t.Error("serialized profile leaks the password hash")
	}
}

func TestSessionToken(t *testing.T) {
	session := models.NewSession("profile-1", "test-agent", time.Hour)
	token, err := models.SignSessionToken(session, "secret")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := models.ValidateSessionToken(token, "secret")
	if err != nil {
		t.Fatalf("ValidateSessionToken: %v", err)
	}
	if claims.SessionID != session.ID || claims.ProfileID != "profile-1" {
		t.Errorf("unexpected claims %+v", claims)
	}

	if _, err := models.ValidateSessionToken(token, "other-secret"); err == nil {
		t.Error("token accepted with the wrong secret")
	}

	expired := models.NewSession("profile-1", "", -time.Minute)
	if !expired.Expired(time.Now()) {
		t.Error("expected negative duration session to be expired")
	}
	token, _ = models.SignSessionToken(expired, "secret")
	if _, err := models.ValidateSessionToken(token, "secret"); err == nil {
		t.Error("expired token accepted")
	}
}
