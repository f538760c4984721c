package colors

// FallbackDescription is returned for names without a dedicated description.
const FallbackDescription = "A unique color with its own special character."

var descriptions = map[string]string{
	"Red":          "A warm, energetic color often associated with passion, love, and power.",
	"Green":        "A natural, calming color representing growth, harmony, and freshness.",
	"Blue":         "A cool, trustworthy color symbolizing stability, depth, and tranquility.",
	"Yellow":       "A bright, cheerful color associated with happiness, optimism, and creativity.",
	"Orange":       "A vibrant, enthusiastic color representing energy, warmth, and adventure.",
	"Purple":       "A royal, mysterious color symbolizing luxury, creativity, and spirituality.",
	"White":        "A pure, clean color representing simplicity, peace, and new beginnings.",
	"Black":        "A sophisticated, powerful color symbolizing elegance, mystery, and strength.",
	"Gray":         "A neutral, balanced color representing practicality, stability, and composure.",
	"Magenta":      "A bold, creative color combining the energy of red with the calm of blue.",
	"Cyan":         "A refreshing, modern color representing clarity, communication, and innovation.",
	"Crimson":      "A deep red color often associated with strong emotions and passion.",
	"Pink":         "A soft, pastel red color symbolizing love and femininity.",
	"Rose":         "A light, delicate red color representing grace and elegance.",
	"Coral":        "A bright, warm orange color symbolizing energy and enthusiasm.",
	"Peach":        "A soft, warm orange color representing comfort and coziness.",
	"Gold":         "A rich, warm yellow color symbolizing wealth and luxury.",
	"Cream":        "A light, neutral yellow color representing purity and simplicity.",
	"Lime":         "A bright, greenish yellow color symbolizing freshness and vitality.",
	"Forest Green": "A deep, earthy green color representing nature and harmony.",
	"Mint":         "A light, refreshing green color symbolizing purity and growth.",
	"Teal":         "A cool, greenish blue color symbolizing calmness and balance.",
	"Sky Blue":     "A light, airy blue color symbolizing freedom and openness.",
	"Navy":         "A deep, rich blue color symbolizing depth and mystery.",
	"Royal Blue":   "A luxurious, deep blue color symbolizing royalty and sophistication.",
	"Lavender":     "A soft, pastel purple color symbolizing elegance and grace.",
	"Violet":       "A rich, deep purple color symbolizing luxury and mystery.",
	"Brown":        "A warm, earthy color symbolizing stability and practicality.",
	"Tan":          "A light, warm brown color representing comfort and warmth.",
	"Beige":        "A light, neutral color symbolizing purity and simplicity.",
}

// Describe returns a one sentence description of a color name. Lookup is exact.
func Describe(name string) string {
	if d, ok := descriptions[name]; ok {
		return d
	}
	return FallbackDescription
}
