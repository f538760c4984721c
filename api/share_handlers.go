package api

import (
	"bytes"
	"mime"
	"net/http"

	"github.com/colorsense/api/colors"
	"github.com/colorsense/api/share"
)

// GET /v1/share?color=&name=&r=&g=&b=&message=
func (app *Application) getShareLinks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	query, info, ok := app.parseShareQuery(w, r)
	if !ok {
		return
	}

	links, err := share.BuildLinks(app.publicOrigin(r), info, query.Message)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

// GET /v1/share/card?color=&name=&r=&g=&b=&message=
func (app *Application) getShareCard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	query, info, ok := app.parseShareQuery(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := share.WriteCard(&buf, info, query.Message); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": share.CardFilename(info)}))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (app *Application) parseShareQuery(w http.ResponseWriter, r *http.Request) (share.Query, colors.ColorInfo, bool) {
	query, err := share.ParseQuery(r.URL.Query())
	if err != nil {
		app.badRequest(w, r, err)
		return share.Query{}, colors.ColorInfo{}, false
	}
	info, err := share.FromQuery(query)
	if err != nil {
		app.badRequest(w, r, err)
		return share.Query{}, colors.ColorInfo{}, false
	}
	return query, info, true
}

// publicOrigin is PUBLIC_ORIGIN, or the origin the request was made to.
func (app *Application) publicOrigin(r *http.Request) string {
	if app.Config.PublicOrigin != "" {
		return app.Config.PublicOrigin
	}
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	return scheme + "://" + r.Host
}
