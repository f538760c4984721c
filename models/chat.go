package models

import "github.com/colorsense/api/colors"

const (
	RoleUser  = "user"
	RoleModel = "model"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is forwarded to the generative model together with the
// detected color, which may be nil.
type ChatRequest struct {
	Messages      []ChatMessage     `json:"messages"`
	DetectedColor *colors.ColorInfo `json:"detectedColor"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type AssistantRequest struct {
	Message       string            `json:"message"`
	DetectedColor *colors.ColorInfo `json:"detectedColor"`
}
