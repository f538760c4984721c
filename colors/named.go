package colors

// NamedColor is one entry of the reference table used for classification.
type NamedColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// NamedColors is a subset of the CSS named colors. Order matters: on equal
// distance the earlier entry wins.
var NamedColors = []NamedColor{
	{Name: "Black", Hex: "#000000"},
	{Name: "White", Hex: "#FFFFFF"},
	{Name: "Gray", Hex: "#808080"},
	{Name: "Light Gray", Hex: "#D3D3D3"},
	{Name: "Dim Gray", Hex: "#696969"},
	{Name: "Red", Hex: "#FF0000"},
	{Name: "Crimson", Hex: "#DC143C"},
	{Name: "Salmon", Hex: "#FA8072"},
	{Name: "Tomato", Hex: "#FF6347"},
	{Name: "Coral", Hex: "#FF7F50"},
	{Name: "Orange", Hex: "#FFA500"},
	{Name: "Dark Orange", Hex: "#FF8C00"},
	{Name: "Gold", Hex: "#FFD700"},
	{Name: "Yellow", Hex: "#FFFF00"},
	{Name: "Khaki", Hex: "#F0E68C"},
	{Name: "Olive", Hex: "#808000"},
	{Name: "Lawn Green", Hex: "#7CFC00"},
	{Name: "Chartreuse", Hex: "#7FFF00"},
	{Name: "Lime", Hex: "#00FF00"},
	{Name: "Lime Green", Hex: "#32CD32"},
	{Name: "Green", Hex: "#008000"},
	{Name: "Forest Green", Hex: "#228B22"},
	{Name: "Sea Green", Hex: "#2E8B57"},
	{Name: "Teal", Hex: "#008080"},
	{Name: "Turquoise", Hex: "#40E0D0"},
	{Name: "Cyan", Hex: "#00FFFF"},
	{Name: "Light Cyan", Hex: "#E0FFFF"},
	{Name: "Sky Blue", Hex: "#87CEEB"},
	{Name: "Deep Sky Blue", Hex: "#00BFFF"},
	{Name: "Dodger Blue", Hex: "#1E90FF"},
	{Name: "Cornflower Blue", Hex: "#6495ED"},
	{Name: "Royal Blue", Hex: "#4169E1"},
	{Name: "Blue", Hex: "#0000FF"},
	{Name: "Medium Blue", Hex: "#0000CD"},
	{Name: "Navy", Hex: "#000080"},
	{Name: "Indigo", Hex: "#4B0082"},
	{Name: "Blue Violet", Hex: "#8A2BE2"},
	{Name: "Violet", Hex: "#EE82EE"},
	{Name: "Purple", Hex: "#800080"},
	{Name: "Magenta", Hex: "#FF00FF"},
	{Name: "Hot Pink", Hex: "#FF69B4"},
	{Name: "Deep Pink", Hex: "#FF1493"},
	{Name: "Orchid", Hex: "#DA70D6"},
	{Name: "Plum", Hex: "#DDA0DD"},
	{Name: "Lavender", Hex: "#E6E6FA"},
	{Name: "Beige", Hex: "#F5F5DC"},
	{Name: "Wheat", Hex: "#F5DEB3"},
	{Name: "Tan", Hex: "#D2B48C"},
	{Name: "Chocolate", Hex: "#D2691E"},
	{Name: "Sienna", Hex: "#A0522D"},
	{Name: "Brown", Hex: "#A52A2A"},
	{Name: "Maroon", Hex: "#800000"},
	{Name: "Silver", Hex: "#C0C0C0"},
	{Name: "Slate Gray", Hex: "#708090"},
	{Name: "Dark Slate Gray", Hex: "#2F4F4F"},
	{Name: "Light Sea Green", Hex: "#20B2AA"},
	{Name: "Medium Aquamarine", Hex: "#66CDAA"},
	{Name: "Aquamarine", Hex: "#7FFFD4"},
	{Name: "Pale Green", Hex: "#98FB98"},
	{Name: "Spring Green", Hex: "#00FF7F"},
	{Name: "Medium Spring Green", Hex: "#00FA9A"},
	{Name: "Seashell", Hex: "#FFF5EE"},
	{Name: "Mint Cream", Hex: "#F5FFFA"},
	{Name: "Ivory", Hex: "#FFFFF0"},
	{Name: "Snow", Hex: "#FFFAFA"},
}
