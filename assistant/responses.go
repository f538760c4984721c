package assistant

import (
	"fmt"
	"strings"

	"github.com/colorsense/api/colors"
)

var explanations = map[string]string{
	"Red":    "Red (%s) is a primary color with a wavelength of approximately 700nm. Historically, red has been associated with power and passion across cultures. In ancient Rome, red was the color of Mars, the god of war. Red increases heart rate and creates urgency, which is why it marks stop signs and emergency signals.",
	"Blue":   "Blue (%s) sits near the short end of the visible spectrum at around 475nm. Ancient Egyptians valued blue so highly they created the first synthetic pigment, Egyptian Blue. Blue represents trust and stability, which is why many tech companies and banks use it in their branding.",
	"Green":  "Green (%s) sits in the middle of the visible spectrum at 530nm, making it the most restful color for human eyes. It is the color of chlorophyll and represents growth and renewal. In many cultures, green symbolizes prosperity and good fortune.",
	"Yellow": "Yellow (%s) has a wavelength of about 580nm and is the most visible color to the human eye. Ancient cultures associated yellow with the sun and divinity. It stimulates mental activity, making it perfect for grabbing attention.",
	"Orange": "Orange (%s) combines the energy of red and the happiness of yellow. It is a secondary color that represents enthusiasm and warmth. In many Eastern cultures, orange is considered sacred and is associated with spiritual enlightenment.",
	"Purple": "Purple (%s) was historically the most expensive color to produce, made from murex shells. It became associated with royalty and luxury. Purple combines the stability of blue with the energy of red.",
	"White":  "White (%s) reflects all wavelengths of visible light equally. It represents purity and new beginnings across most cultures. In design, white creates space and makes other colors appear more vibrant.",
	"Black":  "Black (%s) absorbs all wavelengths of light. It is associated with elegance and mystery. In design, black provides contrast and conveys premium quality.",
	"Gray":   "Gray (%s) is a neutral color that represents balance and sophistication. It is created by mixing black and white and is often used in professional settings for its calm, stable qualities.",
}

var advice = map[string]string{
	"Red":    "For Red (%s): Pair with white or cream for a classic look, or with navy blue for sophistication. For branding, red works well for food, sports and emergency services. Avoid using it with green unless the contrast is intentional.",
	"Blue":   "For Blue (%s): Combine with white for trust and professionalism, or with orange for dynamic contrast. Blue suits tech, healthcare and finance branding. Pair with gray for a modern, clean look.",
	"Green":  "For Green (%s): Match with earth tones like brown and beige for natural harmony. Great for eco-friendly brands, health and wellness. Combine with white for freshness or with gold for luxury.",
	"Yellow": "For Yellow (%s): Balance with navy blue or deep purple so it does not overwhelm. Excellent for children's brands, food and energy companies. Use it sparingly as an accent for maximum impact.",
	"Orange": "For Orange (%s): Pair with blue for vibrant contrast or with brown for warmth. Perfect for creative industries, sports and food brands. Combine with white for a fresh, energetic look.",
	"Purple": "For Purple (%s): Match with gold for luxury or with green for creativity. Great for beauty, wellness and premium brands. Pair with white or light gray for elegance.",
	"White":  "For White (%s): Works with any color as a neutral base. Perfect for minimalist designs, medical and luxury brands. Add colorful accents to prevent sterility.",
	"Black":  "For Black (%s): Combine with white for classic contrast or with gold for luxury. Excellent for fashion, technology and premium brands. Use colorful accents to add personality.",
}

var quotes = []string{
	`"%[1]s whispers secrets of %[2]s, painting dreams across the canvas of imagination."`,
	`Like %[2]s dancing in the light, %[1]s tells stories of passion and wonder.`,
	`In the language of %[1]s, %[2]s speaks volumes about beauty and emotion.`,
	`%[1]s (%[2]s): where art meets soul, and color becomes poetry.`,
	`Behold %[1]s, wearing %[2]s like a crown of pure creative energy.`,
}

var paletteUses = map[string]string{
	"Blue":  "Professional websites, healthcare",
	"Red":   "Food brands, emergency services",
	"Green": "Eco-friendly brands, wellness",
}

func (a *Assistant) explain(c colors.ColorInfo) string {
	if text, ok := explanations[c.Name]; ok {
		return fmt.Sprintf(text, c.Hex)
	}
	return fmt.Sprintf("%s (%s) is a unique color with its own special characteristics and cultural significance.", c.Name, c.Hex)
}

func (a *Assistant) advise(c colors.ColorInfo) string {
	if text, ok := advice[c.Name]; ok {
		return fmt.Sprintf(text, c.Hex)
	}
	return fmt.Sprintf("For %s (%s): This unique color can be paired with neutrals for balance or with complementary colors for contrast. "+
		"Consider the emotional impact and brand message when choosing combinations.", c.Name, c.Hex)
}

func (a *Assistant) accessibility(c colors.ColorInfo) string {
	luminance := PerceivedLuminance(c.RGB)
	light := luminance > 0.5

	text := "Use light text (white or light gray) for proper contrast."
	brightness := "dark"
	if light {
		text = "Use dark text (black or dark gray) for proper contrast."
		brightness = "bright"
	}

	visibility := "moderately visible"
	switch {
	case luminance > 0.7:
		visibility = "highly visible"
	case luminance < 0.3:
		visibility = "low visibility"
	}

	black := ContrastRatio(c.RGB, colors.RGB{})
	white := ContrastRatio(c.RGB, colors.RGB{R: 255, G: 255, B: 255})

	return fmt.Sprintf("Accessibility info for %s (%s): This color has a luminance of %.1f%%. %s "+
		"Contrast ratio is %.2f:1 against black text (%s) and %.2f:1 against white text (%s). "+
		"For colorblind users, this color may appear differently, so always provide text labels alongside color coding. "+
		"The color has RGB values of %d, %d, %d, making it %s and %s.",
		c.Name, c.Hex, luminance*100, text,
		black, WCAGLevel(black), white, WCAGLevel(white),
		c.RGB.R, c.RGB.G, c.RGB.B, brightness, visibility)
}

func (a *Assistant) creative(c colors.ColorInfo) string {
	i := a.picker.Pick(len(quotes))
	if i < 0 || i >= len(quotes) {
		i = 0
	}
	return fmt.Sprintf(quotes[i], c.Name, c.Hex)
}

func (a *Assistant) palette(c colors.ColorInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Color palette based on %s (%s):\n", c.Name, c.Hex)
	for _, scheme := range []colors.Scheme{colors.Complementary, colors.Analogous, colors.Triadic} {
		palette, err := colors.GeneratePalette(c.RGB, scheme)
		if err != nil {
			continue
		}
		hexes := make([]string, 0, len(palette))
		for _, p := range palette {
			hexes = append(hexes, p.Hex)
		}
		fmt.Fprintf(&b, "- %s: %s\n", scheme.Label(), strings.Join(hexes, " + "))
	}
	use, ok := paletteUses[c.Name]
	if !ok {
		use = "Creative projects and branding"
	}
	fmt.Fprintf(&b, "This palette works great for: %s.", use)
	return b.String()
}

func help(c colors.ColorInfo) string {
	return fmt.Sprintf(`I can help you with the detected %[1]s color in several ways:
- Color Explainer: ask me to "explain this color" for history and symbolism
- Design Advisor: ask "what colors match this?" for design suggestions
- Accessibility Buddy: ask about "accessibility" for contrast guidance
- Creative Partner: ask for "creative quotes" for poetic descriptions
- Palette Builder: ask about "color palettes" for combination ideas
What would you like to know about %[1]s (%[2]s)?`, c.Name, c.Hex)
}
