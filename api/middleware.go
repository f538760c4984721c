package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fortio.org/log"

	"github.com/colorsense/api/models"
)

type contextKey string

const profileContextKey contextKey = "profile"

func handleCors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Access-Control-Allow-Credentials, Access-Control-Allow-Origin, Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if r.Method == http.MethodOptions {
			return
		}
		h.ServeHTTP(w, r)
	}
}

// getProfileFromSession resolves the session cookie to its stored session and profile.
func (app *Application) getProfileFromSession(r *http.Request) (models.Profile, models.Session, error) {
	cookie, err := r.Cookie(models.SessionCookieName)
	if err != nil {
		return models.Profile{}, models.Session{}, errors.New("no session cookie found")
	}

	claims, err := models.ValidateSessionToken(cookie.Value, app.Config.JwtSecret)
	if err != nil {
		return models.Profile{}, models.Session{}, err
	}

	// The stored session is authoritative: logging out removes it before the token expires.
	session, err := app.ProfileRepo.GetSession(claims.SessionID)
	if err != nil {
		return models.Profile{}, models.Session{}, errors.New("session not found")
	}
	if session.ProfileID != claims.ProfileID {
		return models.Profile{}, models.Session{}, errors.New("session does not match token")
	}

	profile, err := app.ProfileRepo.Get(session.ProfileID)
	if err != nil {
		return models.Profile{}, models.Session{}, err
	}
	return profile, session, nil
}

// authenticate that the profile exists and stash it on the request context
func (app *Application) authenticate(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, _, err := app.getProfileFromSession(r)
		if err != nil {
			log.Debugf("rejecting %s %s: %v", r.Method, r.URL.Path, err)
			app.invalidAuthorization(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), profileContextKey, profile)
		h.ServeHTTP(w, r.WithContext(ctx))
	}
}

func currentProfile(r *http.Request) (models.Profile, bool) {
	profile, ok := r.Context().Value(profileContextKey).(models.Profile)
	return profile, ok
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// logRequests writes one structured access log line per request.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.S(log.Info, "request",
			log.Str("method", r.Method),
			log.Str("path", r.URL.Path),
			log.Attr("status", rec.status),
			log.Str("duration", time.Since(start).String()),
			log.Str("remote", r.RemoteAddr),
		)
	})
}
