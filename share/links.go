// Package share builds share links, captions and downloadable cards for a
// detected color.
package share

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/schema"

	"github.com/colorsense/api/colors"
)

const hashtags = "ColorSense,ColorDetection,Design"

// Longest name and message, in runes, a shared link may carry.
const (
	MaxNameLength    = 64
	MaxMessageLength = 280
)

// Query is the query string contract of a shared color link.
type Query struct {
	Color   string `schema:"color,required"`
	Name    string `schema:"name,required"`
	R       int    `schema:"r,required"`
	G       int    `schema:"g,required"`
	B       int    `schema:"b,required"`
	Message string `schema:"message,omitempty"`
}

var (
	decoder = newDecoder()
	encoder = schema.NewEncoder()
)

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// ParseQuery decodes and validates a shared link's query. All five color
// fields are required and color must be a valid hex string. Channels are
// clamped. Names and messages longer than MaxNameLength and MaxMessageLength
// are rejected.
func ParseQuery(values url.Values) (Query, error) {
	var q Query
	if err := decoder.Decode(&q, values); err != nil {
		return Query{}, fmt.Errorf("invalid share query: %v", err)
	}
	if _, err := colors.HexToRGB(q.Color); err != nil {
		return Query{}, err
	}
	q.Name = strings.TrimSpace(q.Name)
	if q.Name == "" {
		return Query{}, fmt.Errorf("invalid share query: name is empty")
	}
	if n := utf8.RuneCountInString(q.Name); n > MaxNameLength {
		return Query{}, fmt.Errorf("invalid share query: name is %d characters, at most %d allowed", n, MaxNameLength)
	}
	if n := utf8.RuneCountInString(q.Message); n > MaxMessageLength {
		return Query{}, fmt.Errorf("invalid share query: message is %d characters, at most %d allowed", n, MaxMessageLength)
	}
	rgb := colors.NewRGB(q.R, q.G, q.B)
	q.R, q.G, q.B = rgb.R, rgb.G, rgb.B
	return q, nil
}

// FromQuery rebuilds the ColorInfo a link was made from. The description is
// looked up from the name; HSL is derived from the channels.
func FromQuery(q Query) (colors.ColorInfo, error) {
	hex, err := colors.HexToRGB(q.Color)
	if err != nil {
		return colors.ColorInfo{}, err
	}
	rgb := colors.NewRGB(q.R, q.G, q.B)
	return colors.ColorInfo{
		Hex:         hex.Hex(),
		RGB:         rgb,
		HSL:         rgb.HSL(),
		Name:        q.Name,
		Description: colors.Describe(q.Name),
	}, nil
}

// QueryFor is the inverse of FromQuery.
func QueryFor(info colors.ColorInfo) Query {
	return Query{
		Color: info.Hex,
		Name:  info.Name,
		R:     info.RGB.R,
		G:     info.RGB.G,
		B:     info.RGB.B,
	}
}

// ShareURL is origin with the color encoded in the query string.
func ShareURL(origin string, info colors.ColorInfo) (string, error) {
	values := url.Values{}
	if err := encoder.Encode(QueryFor(info), values); err != nil {
		return "", err
	}
	return strings.TrimSuffix(origin, "/") + "/?" + values.Encode(), nil
}

func TwitterURL(origin string, info colors.ColorInfo, message string) string {
	if message == "" {
		message = fmt.Sprintf("Just discovered this beautiful %s color using ColorSense! %s", info.Name, info.Hex)
	}
	values := url.Values{}
	values.Set("text", message)
	values.Set("url", origin)
	values.Set("hashtags", hashtags)
	return "https://twitter.com/intent/tweet?" + values.Encode()
}

func FacebookURL(origin string, info colors.ColorInfo, message string) string {
	if message == "" {
		message = fmt.Sprintf("Check out this %s color I found with ColorSense! %s", info.Name, info.Hex)
	}
	values := url.Values{}
	values.Set("u", origin)
	values.Set("quote", message)
	return "https://www.facebook.com/sharer/sharer.php?" + values.Encode()
}

// InstagramCaption is pasted by hand since Instagram has no share URL.
func InstagramCaption(info colors.ColorInfo, message string) string {
	if message != "" {
		return message
	}
	return fmt.Sprintf("Just discovered this beautiful %s color using ColorSense! %s #ColorSense #ColorDetection #Design", info.Name, info.Hex)
}

func CopyText(origin string, info colors.ColorInfo, message string) string {
	if message == "" {
		message = fmt.Sprintf("Check out this %s color I discovered with ColorSense! %s", info.Name, info.Hex)
	}
	return fmt.Sprintf("%s\n\nTry ColorSense: %s", message, origin)
}

func DefaultMessages(info colors.ColorInfo) []string {
	return []string{
		fmt.Sprintf("Just discovered this stunning %s color! %s", info.Name, info.Hex),
		fmt.Sprintf("Found the perfect %s shade using ColorSense! %s", info.Name, info.Hex),
		fmt.Sprintf("This %s color caught my eye today! %s", info.Name, info.Hex),
		fmt.Sprintf("ColorSense helped me identify this beautiful %s! %s", info.Name, info.Hex),
		fmt.Sprintf("Loving this %s color palette inspiration! %s", info.Name, info.Hex),
	}
}

// CardFilename is colorsense-<lower name>-<hex digits>.png.
func CardFilename(info colors.ColorInfo) string {
	return fmt.Sprintf("colorsense-%s-%s.png", strings.ToLower(info.Name), strings.TrimPrefix(info.Hex, "#"))
}

// Links bundles everything a client needs to share one color.
type Links struct {
	Color           colors.ColorInfo `json:"color"`
	ShareURL        string           `json:"shareUrl"`
	Twitter         string           `json:"twitter"`
	Facebook        string           `json:"facebook"`
	Instagram       string           `json:"instagramCaption"`
	CopyText        string           `json:"copyText"`
	CardFilename    string           `json:"cardFilename"`
	DefaultMessages []string         `json:"defaultMessages"`
}

func BuildLinks(origin string, info colors.ColorInfo, message string) (Links, error) {
	shareURL, err := ShareURL(origin, info)
	if err != nil {
		return Links{}, err
	}
	return Links{
		Color:           info,
		ShareURL:        shareURL,
		Twitter:         TwitterURL(origin, info, message),
		Facebook:        FacebookURL(origin, info, message),
		Instagram:       InstagramCaption(info, message),
		CopyText:        CopyText(origin, info, message),
		CardFilename:    CardFilename(info),
		DefaultMessages: DefaultMessages(info),
	}, nil
}
