package models

import "github.com/colorsense/api/colors"

// DetectRequest carries one sampled color. Channels outside [0,255] are clamped.
type DetectRequest struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

func (req DetectRequest) RGB() colors.RGB {
	return colors.FromFloat(req.R, req.G, req.B)
}

type DescribeResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PaletteResponse struct {
	Scheme colors.Scheme         `json:"scheme"`
	Base   colors.ColorInfo      `json:"base"`
	Colors []colors.PaletteColor `json:"colors"`
}
