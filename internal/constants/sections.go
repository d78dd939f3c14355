package constants

import "strings"

const (
	// HistoryLimit caps the number of retained undo snapshots.
	HistoryLimit = 50

	// DefaultSectionPaddingY defines the default vertical padding (in pixels) of a section.
	DefaultSectionPaddingY = 80
	// DefaultSectionPaddingX defines the default horizontal padding (in pixels) of a section.
	DefaultSectionPaddingX = 24
	// HeroSectionPaddingY is the taller vertical padding used by hero sections.
	HeroSectionPaddingY = 120
	// HeroMinHeight is the default minimum height of a hero section.
	HeroMinHeight = 600

	// DefaultFontSize is the body font size in pixels.
	DefaultFontSize = 16
	// DefaultHeadingSize is the base heading size in pixels that derived sizes scale from.
	DefaultHeadingSize = 48
	// DefaultLineHeight is the unitless body line height.
	DefaultLineHeight = 1.6
	// DefaultFontWeight is the body font weight.
	DefaultFontWeight = 400

	// DefaultGap is the grid gap in pixels.
	DefaultGap = 32
	// MaxColumns bounds grid column counts.
	MaxColumns = 6

	// DefaultAnimationDuration is expressed in seconds.
	DefaultAnimationDuration = 0.6
	// MinAnimationDuration keeps durations strictly positive.
	MinAnimationDuration = 0.1

	// DefaultGradientAngle is expressed in degrees.
	DefaultGradientAngle = 135
	// DefaultOverlayOpacity applies to image backgrounds.
	DefaultOverlayOpacity = 0.5
)

// Derived size multipliers shared by the live and static renderers.
const (
	SectionHeadingScale = 0.75
	PriceScale          = 0.6
	StatValueScale      = 0.8
	SubtitleScale       = 1.25
	PlanNameScale       = 1.5
	QuoteScale          = 1.125
	SmallTextScale      = 0.875
	CardTitleScale      = 1.25
)

// Layout widths map to a max-width of the section's inner container.
const (
	LayoutFull      = "full"
	LayoutContained = "contained"
	LayoutNarrow    = "narrow"
)

var layoutMaxWidths = map[string]string{
	LayoutFull:      "100%",
	LayoutContained: "1200px",
	LayoutNarrow:    "800px",
}

// LayoutMaxWidth returns the CSS max-width for a layout width value.
func LayoutMaxWidth(layout string) string {
	if width, ok := layoutMaxWidths[NormaliseLayoutWidth(layout)]; ok {
		return width
	}
	return layoutMaxWidths[LayoutContained]
}

// Breakpoints used by visibility flags.
const (
	BreakpointMobile  = "mobile"
	BreakpointTablet  = "tablet"
	BreakpointDesktop = "desktop"

	// MobileMaxWidth and TabletMaxWidth are the upper bounds of the media queries in pixels.
	MobileMaxWidth = 767
	TabletMaxWidth = 1023
)

// NormaliseBreakpoint falls back to desktop for unknown values.
func NormaliseBreakpoint(value string) string {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case BreakpointMobile:
		return BreakpointMobile
	case BreakpointTablet:
		return BreakpointTablet
	default:
		return BreakpointDesktop
	}
}

var textAligns = []string{"left", "center", "right", "justify"}
var verticalAligns = []string{"top", "center", "bottom"}
var layoutWidths = []string{LayoutFull, LayoutContained, LayoutNarrow}
var borderStyles = []string{"solid", "dashed", "dotted"}
var backgroundTypes = []string{"solid", "gradient", "image"}
var hoverEffects = []string{"none", "lift", "scale", "glow"}

// TextAlignOptions returns the allowed text alignments.
func TextAlignOptions() []string { return copyStrings(textAligns) }

// VerticalAlignOptions returns the allowed vertical alignments.
func VerticalAlignOptions() []string { return copyStrings(verticalAligns) }

// LayoutWidthOptions returns the allowed layout widths.
func LayoutWidthOptions() []string { return copyStrings(layoutWidths) }

// BorderStyleOptions returns the allowed border styles.
func BorderStyleOptions() []string { return copyStrings(borderStyles) }

// BackgroundTypeOptions returns the allowed background types.
func BackgroundTypeOptions() []string { return copyStrings(backgroundTypes) }

// HoverEffectOptions returns the allowed button hover effects.
func HoverEffectOptions() []string { return copyStrings(hoverEffects) }

// NormaliseTextAlign returns the value when allowed, otherwise "".
func NormaliseTextAlign(value string) string { return pick(value, textAligns) }

// NormaliseVerticalAlign returns the value when allowed, otherwise "".
func NormaliseVerticalAlign(value string) string { return pick(value, verticalAligns) }

// NormaliseLayoutWidth returns the value when allowed, otherwise "".
func NormaliseLayoutWidth(value string) string { return pick(value, layoutWidths) }

// NormaliseBorderStyle returns the value when allowed, otherwise "".
func NormaliseBorderStyle(value string) string { return pick(value, borderStyles) }

// NormaliseBackgroundType returns the value when allowed, otherwise "".
func NormaliseBackgroundType(value string) string { return pick(value, backgroundTypes) }

// NormaliseHoverEffect returns the value when allowed, otherwise "".
func NormaliseHoverEffect(value string) string { return pick(value, hoverEffects) }

func pick(value string, allowed []string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	for _, candidate := range allowed {
		if candidate == value {
			return candidate
		}
	}
	return ""
}

func copyStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
