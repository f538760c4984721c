package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fortio.org/log"

	"github.com/colorsense/api/datastore"
	"github.com/colorsense/api/models"
)

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.notFound(w, r, fmt.Errorf("no route for %s", r.URL.Path))
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "ColorSense API")
}

// POST /v1/auth/signup
func (app *Application) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	signupReq := &models.SignupRequest{}
	if err := json.NewDecoder(r.Body).Decode(signupReq); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if err := signupReq.Validate(); err != nil {
		app.badRequest(w, r, err)
		return
	}

	newProfile, err := models.NewProfile(*signupReq)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	storedProfile, err := app.ProfileRepo.Create(newProfile)
	if errors.Is(err, datastore.ErrProfileExists) {
		app.profileAlreadyExists(w, r, err)
		return
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	log.Infof("created profile %s", storedProfile.ID)
	writeJSON(w, http.StatusOK, storedProfile)
}

// POST /v1/auth/login
func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	creds := &models.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(creds); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	profile, err := app.ProfileRepo.ValidateAndGetProfile(*creds)
	if errors.Is(err, datastore.ErrInvalidCredentials) {
		app.invalidCredentials(w, r, err)
		return
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	session := models.NewSession(profile.ID, r.Header.Get("User-Agent"), time.Second*time.Duration(app.Config.JwtSessionLength))
	if err := app.ProfileRepo.CreateSession(session); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	token, err := models.SignSessionToken(session, app.Config.JwtSecret)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	http.SetCookie(w, app.sessionCookie(token, session.Expiry))
	writeJSON(w, http.StatusOK, profile)
}

// POST /v1/auth/logout
func (app *Application) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	if _, session, err := app.getProfileFromSession(r); err == nil {
		if err := app.ProfileRepo.DeleteSession(session.ID); err != nil {
			app.internalServerError(w, r, err)
			return
		}
	}

	cookie := app.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
	w.WriteHeader(http.StatusOK)
}

func (app *Application) sessionCookie(value string, expires time.Time) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}
	// Plain http during development: SameSite=None would require Secure.
	secure := !app.Config.DevMode
	if !secure && sameSite == http.SameSiteNoneMode {
		sameSite = http.SameSiteLaxMode
	}
	return &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    value,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  expires,
	}
}

// GET /v1/profile/me
func (app *Application) getCurrentProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	profile, _ := currentProfile(r)
	writeJSON(w, http.StatusOK, profile)
}
