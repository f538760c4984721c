package models_test

import (
	"testing"

	"github.com/colorsense/api/models"
	"github.com/google/go-cmp/cmp"
)

func TestDefaultSettingsAreNormalized(t *testing.T) {
	d := models.DefaultSettings()
	if diff := cmp.Diff(d, d.Normalize()); diff != "" {
		t.Errorf("defaults changed by Normalize (-want +got):\n%s", diff)
	}
	if d.HighContrast || d.LargeText || d.ReducedMotion {
		t.Errorf("visual toggles should default off: %+v", d)
	}
	if !d.VoiceEnabled || d.FontSize != 16 {
		t.Errorf("unexpected defaults %+v", d)
	}
}

func TestNormalizeClamps(t *testing.T) {
	in := models.AccessibilitySettings{VoiceSpeed: 5, VoiceVolume: -1, FontSize: 40}
	got := in.Normalize()
	if got.VoiceSpeed != 2 || got.VoiceVolume != 0 || got.FontSize != 24 {
		t.Errorf("upper clamp failed: %+v", got)
	}

	in = models.AccessibilitySettings{VoiceSpeed: 0.1, VoiceVolume: 3, FontSize: 2}
	got = in.Normalize()
	if got.VoiceSpeed != 0.5 || got.VoiceVolume != 1 || got.FontSize != 12 {
		t.Errorf("lower clamp failed: %+v", got)
	}
}
