package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/colorsense/api/colors"
	"github.com/colorsense/api/datastore"
	"github.com/colorsense/api/models"
)

// GET, POST, DELETE /v1/history
func (app *Application) history(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		app.listHistory(w, r)
	case http.MethodPost:
		app.saveToHistory(w, r)
	case http.MethodDelete:
		app.deleteFromHistory(w, r)
	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPost, http.MethodDelete)
	}
}

// GET /v1/history?search=&name=
func (app *Application) listHistory(w http.ResponseWriter, r *http.Request) {
	profile, _ := currentProfile(r)

	saved, err := app.HistoryRepo.GetByProfile(profile.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	query := r.URL.Query()
	filtered := models.FilterHistory(saved, query.Get("search"), query.Get("name"))
	writeJSON(w, http.StatusOK, models.HistoryResponse{
		Total:  len(saved),
		Names:  models.UniqueNames(saved),
		Colors: filtered,
	})
}

// POST /v1/history with a ColorInfo body. Only the hex is trusted; the rest is re-derived.
func (app *Application) saveToHistory(w http.ResponseWriter, r *http.Request) {
	profile, _ := currentProfile(r)

	var info colors.ColorInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}
	rgb, err := colors.HexToRGB(info.Hex)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	resp, err := app.saveColor(profile.ID, colors.Detect(rgb))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	status := http.StatusCreated
	if resp.AlreadySaved {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

// DELETE /v1/history?id=
func (app *Application) deleteFromHistory(w http.ResponseWriter, r *http.Request) {
	profile, _ := currentProfile(r)

	id := r.URL.Query().Get("id")
	if id == "" {
		app.badRequest(w, r, errors.New("query parameter id is required"))
		return
	}

	err := app.HistoryRepo.Delete(profile.ID, id)
	if datastore.IsNoRows(err) {
		app.notFound(w, r, errors.New("no saved color with this id"))
		return
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// saveColor stores info unless the profile already saved the same hex. A
// concurrent save that wins the insert is reported as already saved.
func (app *Application) saveColor(profileID string, info colors.ColorInfo) (models.SaveColorResponse, error) {
	existing, err := app.HistoryRepo.GetByProfileAndHex(profileID, info.Hex)
	if err == nil {
		return models.SaveColorResponse{Color: existing, AlreadySaved: true}, nil
	}
	if !datastore.IsNoRows(err) {
		return models.SaveColorResponse{}, err
	}

	created, err := app.HistoryRepo.Create(models.NewSavedColor(profileID, info))
	if errors.Is(err, datastore.ErrColorAlreadySaved) {
		existing, err = app.HistoryRepo.GetByProfileAndHex(profileID, info.Hex)
		if err != nil {
			return models.SaveColorResponse{}, err
		}
		return models.SaveColorResponse{Color: existing, AlreadySaved: true}, nil
	}
	if err != nil {
		return models.SaveColorResponse{}, err
	}
	return models.SaveColorResponse{Color: created}, nil
}
