package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"fortio.org/log"

	"github.com/colorsense/api/assistant"
	"github.com/colorsense/api/models"
)

// GET /v1/assistant returns the opening message, POST /v1/assistant answers one message.
func (app *Application) askAssistant(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, assistant.Reply{Content: assistant.Greeting})
		return
	case http.MethodPost:
	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		return
	}

	req := models.AssistantRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, app.Assistant.Respond(req.Message, req.DetectedColor))
}

// POST /v1/chat
func (app *Application) chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := models.ChatRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}
	if len(req.Messages) == 0 {
		app.badRequest(w, r, errors.New("at least one message is required"))
		return
	}

	reply, err := app.Chat.Reply(r.Context(), req.Messages, req.DetectedColor)
	if errors.Is(err, assistant.ErrMissingAPIKey) {
		app.internalServerError(w, r, err)
		return
	}
	if err != nil {
		log.Errf("Gemini chat error: %v", err)
		app.badGateway(w, r, errors.New("the generative model did not answer"))
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}
