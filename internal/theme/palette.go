package theme

// Palette is the set of colors the terminal surface draws with. The values
// follow the page's gray-50/gray-900 backgrounds and blue-600 accent.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Border     string
}

var (
	Light = Palette{
		Background: "#F9FAFB",
		Surface:    "#FFFFFF",
		Text:       "#111827",
		Muted:      "#4B5563",
		Accent:     "#2563EB",
		Border:     "#E5E7EB",
	}

	Dark = Palette{
		Background: "#111827",
		Surface:    "#1F2937",
		Text:       "#FFFFFF",
		Muted:      "#D1D5DB",
		Accent:     "#60A5FA",
		Border:     "#374151",
	}
)
