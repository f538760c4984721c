package models

import (
	"strings"
	"time"

	"github.com/colorsense/api/colors"
	"github.com/google/uuid"
)

// AllNames disables the name filter of FilterHistory.
const AllNames = "all"

// SavedColor is a detection stored in a profile's history.
type SavedColor struct {
	ID        string `json:"id"`
	ProfileID string `json:"profileId"`
	colors.ColorInfo
	Timestamp time.Time `json:"timestamp"`
}

type SaveColorResponse struct {
	Color        SavedColor `json:"color"`
	AlreadySaved bool       `json:"alreadySaved"`
}

type HistoryResponse struct {
	Total  int          `json:"total"`
	Names  []string     `json:"names"`
	Colors []SavedColor `json:"colors"`
}

func NewSavedColor(profileID string, info colors.ColorInfo) SavedColor {
	return SavedColor{
		ID:        uuid.New().String(),
		ProfileID: profileID,
		ColorInfo: info,
		Timestamp: time.Now().UTC(),
	}
}

// FilterHistory keeps the colors whose name or hex contains search
// (case-insensitive) and whose name equals name. An empty name or "all"
// matches every name.
func FilterHistory(saved []SavedColor, search, name string) []SavedColor {
	search = strings.ToLower(strings.TrimSpace(search))
	name = strings.TrimSpace(name)

	filtered := []SavedColor{}
	for _, c := range saved {
		matchesSearch := strings.Contains(strings.ToLower(c.Name), search) ||
			strings.Contains(strings.ToLower(c.Hex), search)
		matchesName := name == "" || strings.EqualFold(name, AllNames) || strings.EqualFold(c.Name, name)
		if matchesSearch && matchesName {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// UniqueNames lists the distinct color names in first-seen order.
func UniqueNames(saved []SavedColor) []string {
	seen := make(map[string]bool, len(saved))
	names := []string{}
	for _, c := range saved {
		if !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
	}
	return names
}
