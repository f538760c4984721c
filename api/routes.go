package api

import (
	"net/http"
	"regexp"
	"strings"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "wss://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string) bool {
	cleanedRequest := cleanOrigin(origin)

	// Allow localhost for development
	if localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		if cleanOrigin(allowed) == cleanedRequest {
			return true
		}
	}

	return false
}

func wrapMuxWithCorsAndOrigins(mux *http.ServeMux, app *Application) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = r.Header.Get("Referer")
		}

		if origin == "" || isAllowedOrigin(origin, app.Config.AllowedOrigins) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	})
}

func (app *Application) BuildRoutes(mux *http.ServeMux) http.Handler {
	finalMux := http.NewServeMux()

	// Public endpoints
	mux.HandleFunc("/", app.home)
	mux.HandleFunc("/v1/auth/signup", app.signup)
	mux.HandleFunc("/v1/auth/login", app.login)
	mux.HandleFunc("/v1/auth/logout", app.logout)
	mux.HandleFunc("/v1/colors/detect", app.detectColor)
	mux.HandleFunc("/v1/colors/hex", app.colorFromHex)
	mux.HandleFunc("/v1/colors/describe", app.describeColor)
	mux.HandleFunc("/v1/colors/names", app.getColorNames)
	mux.HandleFunc("/v1/colors/palette", app.generatePalette)
	mux.HandleFunc("/v1/colors/sample", app.sampleFrame)
	mux.HandleFunc("/v1/assistant", app.askAssistant)
	mux.HandleFunc("/v1/chat", app.chat)
	mux.HandleFunc("/v1/share", app.getShareLinks)
	mux.HandleFunc("/v1/share/card", app.getShareCard)

	// Authenticated endpoints
	mux.HandleFunc("/v1/profile/me", app.authenticate(app.getCurrentProfile))
	mux.HandleFunc("/v1/profile/settings", app.authenticate(app.settings))
	mux.HandleFunc("/v1/history", app.authenticate(app.history))

	// Wrap entire mux with CORS and origins check
	finalMux.Handle("/", wrapMuxWithCorsAndOrigins(mux, app))

	return logRequests(finalMux)
}
