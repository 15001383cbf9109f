package plan

// Fixed palette, chosen for contrast against the dark map canvas.
const (
	ColorInline   = "#00BFFF" // inline family
	ColorXline    = "#FFA500" // crossline family
	ColorSelected = "#FFFF00"
	ColorHovered  = "#FFFFFF"
	ColorBoundary = "#FF4136"
	ColorTick     = "#CCCCCC"
	ColorCompass  = "#FFD700"

	ColorLabelBackground = "rgba(0,0,0,0.75)"
)

// Trace widths per highlight level.
const (
	WidthDefault  = 1.0
	WidthHovered  = 2.5
	WidthSelected = 4.0
)

// StylePalette holds the colors and widths used to derive per-line styling.
type StylePalette struct {
	InlineColor   string
	XlineColor    string
	SelectedColor string
	HoveredColor  string

	DefaultWidth  float64
	HoveredWidth  float64
	SelectedWidth float64
}

// DefaultPalette returns the built-in palette.
func DefaultPalette() StylePalette {
	return StylePalette{
		InlineColor:   ColorInline,
		XlineColor:    ColorXline,
		SelectedColor: ColorSelected,
		HoveredColor:  ColorHovered,
		DefaultWidth:  WidthDefault,
		HoveredWidth:  WidthHovered,
		SelectedWidth: WidthSelected,
	}
}
