package main

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"fortio.org/log"
	"github.com/joho/godotenv"

	"github.com/colorsense/api/api"
	"github.com/colorsense/api/assistant"
	"github.com/colorsense/api/datastore"
	"github.com/colorsense/api/migrations"
	"github.com/colorsense/api/scheduler"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := api.Config{
		HTTPPort:          getEnv("HTTP_PORT", ":8080"),
		DatabaseType:      getEnv("DB_TYPE", "postgres"),
		DatabaseUser:      getEnv("DB_USER", "postgres"),
		DatabasePassword:  getEnv("DB_PASSWORD", ""),
		DatabaseName:      getEnv("DB_NAME", "colorsense"),
		SSLMode:           getEnv("SSL_MODE", "disable"),
		JwtSecret:         getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JwtSessionLength:  getEnvInt("JWT_SESSION_DURATION", 604800), // 7 days
		JwtDomain:         getEnv("JWT_DOMAIN", ""),
		AllowedOrigins:    getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		PublicOrigin:      getEnv("PUBLIC_ORIGIN", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", assistant.DefaultGeminiModel),
		GeminiEndpoint:    getEnv("GEMINI_ENDPOINT", assistant.DefaultGeminiEndpoint),
		MigrationsDir:     getEnv("MIGRATIONS_DIR", "migrations"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		SessionSweepHours: getEnvInt("SESSION_SWEEP_HOURS", 24),
		DevMode:           getEnvBool("DEV_MODE", true),
	}

	level, err := log.ValidateLevel(config.LogLevel)
	if err != nil {
		log.Fatalf("Invalid LOG_LEVEL %q: %v", config.LogLevel, err)
	}
	log.SetLogLevel(level)

	if config.GeminiAPIKey == "" {
		log.Warnf("GEMINI_API_KEY is not set, /v1/chat will answer 500")
	}

	store, historyRepo, closeDB := openStorage(config)
	defer closeDB()

	profileRepo, err := datastore.NewProfileStore(store)
	if err != nil {
		log.Fatalf("Failed to create profile repository: %v", err)
	}

	app := &api.Application{
		Config:      config,
		ProfileRepo: profileRepo,
		HistoryRepo: historyRepo,
		Assistant:   assistant.New(nil),
		Chat:        assistant.NewGeminiClient(config.GeminiAPIKey, config.GeminiModel, config.GeminiEndpoint),
	}

	// Sweep expired sessions out of the key value store
	sweeper := scheduler.NewScheduler(store, time.Duration(config.SessionSweepHours)*time.Hour)
	sweeper.Start()

	mux := http.NewServeMux()

	log.Infof("ColorSense API Starting...")
	if err := app.Serve(mux, sweeper.Stop); err != nil {
		log.Errf("Server error: %v", err)
	}
}

// openStorage returns the session/profile store and history repository for
// DB_TYPE, running migrations first when a SQL database is used.
func openStorage(config api.Config) (datastore.ExpiringStore, datastore.HistoryRepository, func()) {
	if config.DatabaseType == datastore.MemoryDBType {
		log.Warnf("DB_TYPE=%s: profiles and history are kept in memory and lost on restart", datastore.MemoryDBType)
		return datastore.NewMemoryStore(), datastore.NewMemoryHistory(), func() {}
	}

	connStr := datastore.BuildDBConnStr(
		config.DatabasePassword,
		config.DatabaseUser,
		config.DatabaseName,
		config.SSLMode,
	)

	dbConn, err := datastore.NewDB(config.DatabaseType, connStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migrations.RunMigrations(dbConn, config.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	kvStore, err := datastore.NewKeyValueDatabase(dbConn)
	if err != nil {
		log.Fatalf("Failed to create key value store: %v", err)
	}

	historyRepo, err := datastore.NewHistoryDatabase(dbConn)
	if err != nil {
		log.Fatalf("Failed to create history repository: %v", err)
	}

	return kvStore, historyRepo, func() { dbConn.Close() }
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
