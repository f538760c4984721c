package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strconv"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"fortio.org/log"

	"github.com/colorsense/api/colors"
	"github.com/colorsense/api/models"
)

const maxFrameBytes = 10 << 20

// GET /v1/colors/detect?r=&g=&b=, POST /v1/colors/detect
func (app *Application) detectColor(w http.ResponseWriter, r *http.Request) {
	req := models.DetectRequest{}

	switch r.Method {
	case http.MethodGet:
		channels := []*float64{&req.R, &req.G, &req.B}
		for i, key := range []string{"r", "g", "b"} {
			raw := r.URL.Query().Get(key)
			if raw == "" {
				app.badRequest(w, r, fmt.Errorf("query parameter %s is required", key))
				return
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				app.badRequest(w, r, fmt.Errorf("query parameter %s must be a number", key))
				return
			}
			*channels[i] = v
		}
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			app.badJSONRequest(w, r, err)
			return
		}
	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		return
	}

	writeJSON(w, http.StatusOK, colors.Detect(req.RGB()))
}

// GET /v1/colors/hex?value=
func (app *Application) colorFromHex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	rgb, err := colors.HexToRGB(r.URL.Query().Get("value"))
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, colors.Detect(rgb))
}

// GET /v1/colors/describe?name=
func (app *Application) describeColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	name := r.URL.Query().Get("name")
	writeJSON(w, http.StatusOK, models.DescribeResponse{Name: name, Description: colors.Describe(name)})
}

// GET /v1/colors/names
func (app *Application) getColorNames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	writeJSON(w, http.StatusOK, colors.NamedColors)
}

// GET /v1/colors/palette?hex=&scheme=
func (app *Application) generatePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	base, err := colors.HexToRGB(r.URL.Query().Get("hex"))
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	scheme := colors.Complementary
	if raw := r.URL.Query().Get("scheme"); raw != "" {
		if scheme, err = colors.ParseScheme(raw); err != nil {
			app.badRequest(w, r, err)
			return
		}
	}

	palette, err := colors.GeneratePalette(base, scheme)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.PaletteResponse{
		Scheme: scheme,
		Base:   colors.Detect(base),
		Colors: palette,
	})
}

// POST /v1/colors/sample?size=&save= with a multipart "frame" image
func (app *Application) sampleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	size := colors.DefaultSampleSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			app.badRequest(w, r, errors.New("size must be a positive integer"))
			return
		}
		size = n
	}

	save, _ := strconv.ParseBool(r.URL.Query().Get("save"))
	var profile models.Profile
	if save {
		var err error
		if profile, _, err = app.getProfileFromSession(r); err != nil {
			app.invalidAuthorization(w, r, err)
			return
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFrameBytes)
	file, _, err := r.FormFile("frame")
	if err != nil {
		app.badRequest(w, r, fmt.Errorf("multipart field frame is required: %v", err))
		return
	}
	defer file.Close()

	frame, format, err := image.Decode(file)
	if err != nil {
		app.badRequest(w, r, fmt.Errorf("could not decode frame: %v", err))
		return
	}
	log.Debugf("sampling %s frame %v with size %d", format, frame.Bounds(), size)

	var saveErr error
	var saved *models.SaveColorResponse
	var onDetect func(colors.ColorInfo)
	if save {
		onDetect = func(info colors.ColorInfo) {
			resp, err := app.saveColor(profile.ID, info)
			saved, saveErr = &resp, err
		}
	}

	info := colors.NewDetector(onDetect).WithSampleSize(size).DetectImage(frame)
	if saveErr != nil {
		app.internalServerError(w, r, saveErr)
		return
	}
	if saved != nil {
		writeJSON(w, http.StatusOK, saved)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
