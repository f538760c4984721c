package api

import (
	"encoding/json"
	"net/http"
)

// GET, PUT /v1/profile/settings
func (app *Application) settings(w http.ResponseWriter, r *http.Request) {
	profile, _ := currentProfile(r)

	switch r.Method {
	case http.MethodGet:
		settings, err := app.ProfileRepo.GetSettings(profile.ID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, settings)

	case http.MethodPut:
		// Start from the stored values so partial bodies only change what they name.
		settings, err := app.ProfileRepo.GetSettings(profile.ID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			app.badJSONRequest(w, r, err)
			return
		}
		saved, err := app.ProfileRepo.SaveSettings(profile.ID, settings)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, saved)

	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPut)
	}
}
