package models_test

import (
	"testing"

	"github.com/colorsense/api/colors"
	"github.com/colorsense/api/models"
	"github.com/google/go-cmp/cmp"
)

func saved(name, hex string) models.SavedColor {
	return models.SavedColor{ColorInfo: colors.ColorInfo{Name: name, Hex: hex}}
}

func names(list []models.SavedColor) []string {
	out := []string{}
	for _, c := range list {
		out = append(out, c.Name+" "+c.Hex)
	}
	return out
}

func TestFilterHistory(t *testing.T) {
	history := []models.SavedColor{
		saved("Red", "#FF0000"),
		saved("Sky Blue", "#87CEEB"),
		saved("Red", "#FE0101"),
		saved("Navy", "#000080"),
	}

	tests := []struct {
		name   string
		search string
		filter string
		want   []string
	}{
		{"no filters", "", "", []string{"Red #FF0000", "Sky Blue #87CEEB", "Red #FE0101", "Navy #000080"}},
		{"all keyword", "", "all", []string{"Red #FF0000", "Sky Blue #87CEEB", "Red #FE0101", "Navy #000080"}},
		{"search by name is case-insensitive", "BLUE", "", []string{"Sky Blue #87CEEB"}},
		{"search by hex", "fe01", "", []string{"Red #FE0101"}},
		{"exact name", "", "Red", []string{"Red #FF0000", "Red #FE0101"}},
		{"name and search combined", "ff", "Red", []string{"Red #FF0000"}},
		{"no match", "purple", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(models.FilterHistory(history, tt.search, tt.filter))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterHistory(%q, %q) mismatch (-want +got):\n%s", tt.search, tt.filter, diff)
			}
		})
	}
}

func TestUniqueNames(t *testing.T) {
	history := []models.SavedColor{
		saved("Red", "#FF0000"),
		saved("Navy", "#000080"),
		saved("Red", "#FE0101"),
		saved("Teal", "#008080"),
	}
	want := []string{"Red", "Navy", "Teal"}
	if diff := cmp.Diff(want, models.UniqueNames(history)); diff != "" {
		t.Errorf("UniqueNames mismatch (-want +got):\n%s", diff)
	}
	if got := models.UniqueNames(nil); len(got) != 0 {
		t.Errorf("UniqueNames(nil) = %v, want empty", got)
	}
}

func TestNewSavedColor(t *testing.T) {
	info := colors.Detect(colors.RGB{R: 255})
	c := models.NewSavedColor("profile-1", info)
	if c.ID == "" {
		t.Error("expected an id")
	}
	if c.ProfileID != "profile-1" || c.Hex != "#FF0000" || c.Name != "Red" {
		t.Errorf("unexpected saved color %+v", c)
	}
	if c.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}
}
