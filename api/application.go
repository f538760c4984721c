package api

import (
	"context"

	"github.com/colorsense/api/assistant"
	"github.com/colorsense/api/colors"
	"github.com/colorsense/api/datastore"
	"github.com/colorsense/api/models"
)

type Config struct {
	HTTPPort          string
	DatabaseType      string
	DatabaseUser      string
	DatabasePassword  string
	DatabaseName      string
	SSLMode           string
	JwtSecret         string
	JwtSessionLength  int // seconds
	JwtDomain         string
	AllowedOrigins    []string
	PublicOrigin      string
	GeminiAPIKey      string
	GeminiModel       string
	GeminiEndpoint    string
	MigrationsDir     string
	LogLevel          string
	SessionSweepHours int
	DevMode           bool
}

// ChatClient forwards a conversation to a generative model.
type ChatClient interface {
	Reply(ctx context.Context, messages []models.ChatMessage, detected *colors.ColorInfo) (string, error)
}

type Application struct {
	Config      Config
	ProfileRepo datastore.ProfileRepository
	HistoryRepo datastore.HistoryRepository
	Assistant   *assistant.Assistant
	Chat        ChatClient
}
