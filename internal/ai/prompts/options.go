package prompts

// Palette is a named color scheme with its preview swatches.
type Palette struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// Options lists the selectable values offered by the prompt form.
type Options struct {
	Categories []string  `json:"categories"`
	Styles     []string  `json:"styles"`
	Moods      []string  `json:"moods"`
	Palettes   []Palette `json:"palettes"`
	Fonts      []string  `json:"fonts"`
}

// GetOptions returns a fresh copy of the form catalog; callers may modify it.
func GetOptions() Options {
	return Options{
		Categories: []string{"Chart", "Landing Page", "Dashboard", "Form", "E-commerce", "Blog", "Portfolio", "Marketing"},
		Styles:     []string{"Minimalist", "Modern", "Retro", "Futuristic", "Elegant", "Playful", "Corporate", "Artistic"},
		Moods:      []string{"Professional", "Cheerful", "Serious", "Relaxed", "Energetic", "Mysterious", "Luxurious", "Friendly"},
		Palettes: []Palette{
			{Name: "Classic Blue", Colors: []string{"#0a192f", "#172a45", "#303C55", "#8892b0", "#ccd6f6"}},
			{Name: "Earthy Tones", Colors: []string{"#d4a373", "#fefae0", "#faedcd", "#e9edc9", "#ccd5ae"}},
			{Name: "Pastel Dream", Colors: []string{"#f9e2af", "#fdf6e3", "#f8e2cf", "#f5cac3", "#f28482"}},
			{Name: "Vibrant Pop", Colors: []string{"#ff595e", "#ffca3a", "#8ac926", "#1982c4", "#6a4c93"}},
			{Name: "Monochrome Gray", Colors: []string{"#f8f9fa", "#e9ecef", "#dee2e6", "#ced4da", "#adb5bd"}},
			{Name: "Ocean Breeze", Colors: []string{"#05668d", "#028090", "#00a896", "#02c39a", "#f0f3bd"}},
		},
		Fonts: []string{"Sans-serif", "Serif", "Monospace", "Display", "Handwriting"},
	}
}
