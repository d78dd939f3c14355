package constants

// FontOption is an entry of the bundled font catalogue.
type FontOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DefaultFontStack is used by sections and the theme until changed.
const DefaultFontStack = "'Noto Sans JP', sans-serif"

var fontOptions = []FontOption{
	{Name: "Noto Sans JP", Value: DefaultFontStack},
	{Name: "Inter", Value: "'Inter', sans-serif"},
	{Name: "Poppins", Value: "'Poppins', sans-serif"},
	{Name: "Roboto", Value: "'Roboto', sans-serif"},
	{Name: "Open Sans", Value: "'Open Sans', sans-serif"},
	{Name: "Montserrat", Value: "'Montserrat', sans-serif"},
	{Name: "Playfair Display", Value: "'Playfair Display', serif"},
	{Name: "Lora", Value: "'Lora', serif"},
	{Name: "Zen Kaku Gothic New", Value: "'Zen Kaku Gothic New', sans-serif"},
	{Name: "M PLUS 1p", Value: "'M PLUS 1p', sans-serif"},
}

// FontOptions returns the font catalogue.
func FontOptions() []FontOption {
	options := make([]FontOption, len(fontOptions))
	copy(options, fontOptions)
	return options
}

var genericFontFamilies = map[string]struct{}{
	"serif":         {},
	"sans-serif":    {},
	"monospace":     {},
	"cursive":       {},
	"fantasy":       {},
	"system-ui":     {},
	"ui-sans-serif": {},
	"ui-serif":      {},
	"ui-monospace":  {},
	"inherit":       {},
	"initial":       {},
	"-apple-system": {},
}

// IsGenericFontFamily reports whether the family is a CSS generic or keyword that never needs a font link.
func IsGenericFontFamily(family string) bool {
	_, ok := genericFontFamilies[family]
	return ok
}

// FontStylesheetBase is the Google Fonts css2 endpoint.
const FontStylesheetBase = "https://fonts.googleapis.com/css2"

// FontWeightsQuery is appended to every family in font links.
const FontWeightsQuery = "wght@400;500;600;700"

// FontPreconnects are emitted once ahead of font links.
var FontPreconnects = []string{"https://fonts.googleapis.com", "https://fonts.gstatic.com"}
