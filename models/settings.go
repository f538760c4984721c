package models

// AccessibilitySettings are per-profile presentation preferences.
type AccessibilitySettings struct {
	HighContrast       bool    `json:"highContrast"`
	LargeText          bool    `json:"largeText"`
	ReducedMotion      bool    `json:"reducedMotion"`
	VoiceEnabled       bool    `json:"voiceEnabled"`
	VoiceSpeed         float64 `json:"voiceSpeed"`
	VoiceVolume        float64 `json:"voiceVolume"`
	FontSize           int     `json:"fontSize"`
	AnnounceColors     bool    `json:"announceColors"`
	KeyboardNavigation bool    `json:"keyboardNavigation"`
}

func DefaultSettings() AccessibilitySettings {
	return AccessibilitySettings{
		VoiceEnabled:       true,
		VoiceSpeed:         1,
		VoiceVolume:        1,
		FontSize:           16,
		AnnounceColors:     true,
		KeyboardNavigation: true,
	}
}

// Normalize clamps the numeric settings into the ranges the client offers.
func (s AccessibilitySettings) Normalize() AccessibilitySettings {
	s.VoiceSpeed = clamp(s.VoiceSpeed, 0.5, 2)
	s.VoiceVolume = clamp(s.VoiceVolume, 0, 1)
	if s.FontSize < 12 {
		s.FontSize = 12
	}
	if s.FontSize > 24 {
		s.FontSize = 24
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
