// Package assistant answers questions about a detected color, either from
// local keyword-routed templates or through a generative model.
package assistant

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/colorsense/api/colors"
)

type Category string

const (
	Explainer     Category = "explainer"
	Advisor       Category = "advisor"
	Accessibility Category = "accessibility"
	Creative      Category = "creative"
	Palette       Category = "palette"
)

const (
	Greeting = "Hi! I'm your ColorSense assistant. I can help explain colors, suggest design combinations, " +
		"provide accessibility guidance, create poetic descriptions, and build color palettes. How can I help you today?"
	NoColorMessage = "Please detect a color first using the camera, then I can provide detailed information about it!"
)

// Reply is one assistant answer. Category is empty for help and no-color answers.
type Reply struct {
	Content  string   `json:"content"`
	Category Category `json:"category,omitempty"`
}

// TemplatePicker chooses one of n templates, returning an index in [0, n).
type TemplatePicker interface {
	Pick(n int) int
}

// PickerFunc adapts a function to TemplatePicker.
type PickerFunc func(n int) int

func (f PickerFunc) Pick(n int) int { return f(n) }

type randomPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomPicker picks uniformly using src. It is safe for concurrent use.
func NewRandomPicker(src rand.Source) TemplatePicker {
	return &randomPicker{rnd: rand.New(src)}
}

func (p *randomPicker) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Intn(n)
}

type route struct {
	category Category
	keywords []string
	respond  func(a *Assistant, c colors.ColorInfo) string
}

// Order matters: the first route with a matching keyword answers.
var routes = []route{
	{Explainer, []string{"explain", "history", "meaning", "symbolism"}, (*Assistant).explain},
	{Advisor, []string{"design", "match", "pair", "brand", "outfit"}, (*Assistant).advise},
	{Accessibility, []string{"accessibility", "contrast", "blind", "vision"}, (*Assistant).accessibility},
	{Creative, []string{"creative", "poetic", "quote", "poem", "social"}, (*Assistant).creative},
	{Palette, []string{"palette", "combination", "scheme", "colors"}, (*Assistant).palette},
}

type Assistant struct {
	picker TemplatePicker
}

// New builds an Assistant. A nil picker picks randomly.
func New(picker TemplatePicker) *Assistant {
	if picker == nil {
		picker = NewRandomPicker(rand.NewSource(time.Now().UnixNano()))
	}
	return &Assistant{picker: picker}
}

// Respond routes message by keyword against the detected color.
func (a *Assistant) Respond(message string, color *colors.ColorInfo) Reply {
	if color == nil {
		return Reply{Content: NoColorMessage}
	}
	message = strings.ToLower(message)
	for _, r := range routes {
		for _, keyword := range r.keywords {
			if strings.Contains(message, keyword) {
				return Reply{Content: r.respond(a, *color), Category: r.category}
			}
		}
	}
	return Reply{Content: help(*color)}
}
