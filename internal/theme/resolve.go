package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
)

// Declaration is one CSS property and value.
type Declaration struct {
	Property string
	Value    string
}

// ResolvedButton holds the final button presentation values.
type ResolvedButton struct {
	Background  string
	Color       string
	Radius      string
	Padding     string
	FontSize    string
	FontWeight  string
	Border      string
	Shadow      string
	HoverEffect string
}

// Resolved is the fully defaulted and theme-merged presentation of one
// section. Renderers read only this value, never the raw style.
type Resolved struct {
	Background     string
	HasOverlay     bool
	OverlayColor   string
	OverlayOpacity string
	TextColor      string
	Dark           bool
	SurfaceColor   string
	SurfaceBorder  string
	LinkColor      string

	Padding string
	Margin  string
	Border  string
	Radius  string
	Shadow  string

	BodyFont      string
	HeadingFont   string
	FontSize      float64
	FontWeight    string
	HeadingSize   float64
	LineHeight    string
	LetterSpacing string

	TextAlign      string
	JustifyContent string
	VerticalAlign  string
	MaxWidth       string
	Columns        int
	Gap            string
	MinHeight      string
	CardRadius     string

	AnimationKind string
	Animation     string

	Button ResolvedButton

	PrimaryColor   string
	SecondaryColor string
	AccentColor    string
	AccentGradient string

	HiddenOn  []string
	CustomCSS string
}

// Resolve computes the final presentation of a section. Button colour,
// fonts, card radius and gap fall back to the theme only while the section
// still carries the kind default for that field.
func Resolve(style, defaults models.SectionStyle, global models.GlobalStyles) Resolved {
	r := Resolved{
		TextColor:      style.TextColor,
		Padding:        box(style.Padding),
		Margin:         box(style.Margin),
		FontSize:       float64(style.Font.Size),
		FontWeight:     strconv.Itoa(style.Font.Weight),
		HeadingSize:    float64(style.Font.HeadingSize),
		LineHeight:     number(style.Font.LineHeight),
		LetterSpacing:  px(style.Font.LetterSpacing),
		TextAlign:      style.TextAlign,
		JustifyContent: justify(style.TextAlign),
		VerticalAlign:  flexAlign(style.VerticalAlign),
		MaxWidth:       constants.LayoutMaxWidth(style.LayoutWidth),
		Columns:        style.Columns,
		PrimaryColor:   global.PrimaryColor,
		SecondaryColor: global.SecondaryColor,
		AccentColor:    global.AccentColor,
		AccentGradient: fmt.Sprintf("linear-gradient(135deg, %s, %s)", global.PrimaryColor, global.SecondaryColor),
		CustomCSS:      strings.TrimSpace(style.CustomCSS),
	}

	switch style.Background.Type {
	case "gradient":
		g := style.Background.Gradient
		r.Background = fmt.Sprintf("linear-gradient(%sdeg, %s, %s)", number(g.Angle), g.From, g.To)
	case "image":
		img := style.Background.Image
		r.Background = fmt.Sprintf("%s url('%s') %s / %s no-repeat", style.Background.Color, cssURL(img.URL), img.Position, img.Size)
		r.HasOverlay = img.OverlayOpacity > 0
		r.OverlayColor = img.OverlayColor
		r.OverlayOpacity = number(img.OverlayOpacity)
	default:
		r.Background = style.Background.Color
	}

	r.Dark = isDarkColor(style.Background.Color) || (style.Background.Type == "image" && r.HasOverlay)
	if r.Dark {
		r.SurfaceColor = "rgba(255, 255, 255, 0.06)"
		r.SurfaceBorder = "rgba(255, 255, 255, 0.12)"
		r.LinkColor = style.TextColor
	} else {
		r.SurfaceColor = "#f8fafc"
		r.SurfaceBorder = "#e5e7eb"
		r.LinkColor = global.PrimaryColor
	}

	if style.Border.Width > 0 {
		r.Border = fmt.Sprintf("%dpx %s %s", style.Border.Width, style.Border.Style, style.Border.Color)
	}
	if style.Border.Radius > 0 {
		r.Radius = fmt.Sprintf("%dpx", style.Border.Radius)
	}
	if s := style.Shadow; s.Blur > 0 {
		r.Shadow = fmt.Sprintf("%dpx %dpx %dpx %dpx %s", s.OffsetX, s.OffsetY, s.Blur, s.Spread, s.Color)
	}

	r.BodyFont = style.Font.Family
	r.HeadingFont = style.Font.Family
	if style.Font.Family == defaults.Font.Family {
		r.BodyFont = global.BodyFont
		r.HeadingFont = global.HeadingFont
	}

	if style.Border.Radius == defaults.Border.Radius {
		r.CardRadius = fmt.Sprintf("%dpx", global.BorderRadius)
	} else {
		r.CardRadius = fmt.Sprintf("%dpx", style.Border.Radius)
	}

	gap := style.Gap
	if gap == defaults.Gap {
		gap = global.BaseSpacing * 4
	}
	r.Gap = fmt.Sprintf("%dpx", gap)

	if style.MinHeight > 0 {
		r.MinHeight = fmt.Sprintf("%dpx", style.MinHeight)
	}

	r.AnimationKind = style.Animation.Kind
	if style.Animation.Kind != constants.AnimationNone {
		r.Animation = fmt.Sprintf("%s %ss ease-out %ss", style.Animation.Kind, number(style.Animation.Duration), number(style.Animation.DelaySeconds))
	}

	b := style.Button
	background := b.BackgroundColor
	if background == defaults.Button.BackgroundColor {
		background = global.PrimaryColor
	}
	border := "none"
	if b.BorderWidth > 0 {
		border = fmt.Sprintf("%dpx solid %s", b.BorderWidth, b.BorderColor)
	}
	r.Button = ResolvedButton{
		Background:  background,
		Color:       b.TextColor,
		Radius:      fmt.Sprintf("%dpx", b.BorderRadius),
		Padding:     fmt.Sprintf("%dpx %dpx", b.PaddingY, b.PaddingX),
		FontSize:    fmt.Sprintf("%dpx", b.FontSize),
		FontWeight:  strconv.Itoa(b.FontWeight),
		Border:      border,
		Shadow:      b.Shadow,
		HoverEffect: b.HoverEffect,
	}

	if !style.Visibility.Mobile {
		r.HiddenOn = append(r.HiddenOn, constants.BreakpointMobile)
	}
	if !style.Visibility.Tablet {
		r.HiddenOn = append(r.HiddenOn, constants.BreakpointTablet)
	}
	if !style.Visibility.Desktop {
		r.HiddenOn = append(r.HiddenOn, constants.BreakpointDesktop)
	}

	return r
}

// SectionDeclarations returns the inline declarations of the section wrapper.
func (r Resolved) SectionDeclarations() []Declaration {
	decls := []Declaration{
		{"position", "relative"},
		{"background", r.Background},
		{"color", r.TextColor},
		{"padding", r.Padding},
		{"margin", r.Margin},
		{"font-family", r.BodyFont},
		{"font-size", px(r.FontSize)},
		{"font-weight", r.FontWeight},
		{"line-height", r.LineHeight},
		{"letter-spacing", r.LetterSpacing},
		{"text-align", r.TextAlign},
		{"display", "flex"},
		{"flex-direction", "column"},
		{"justify-content", r.VerticalAlign},
	}
	if r.MinHeight != "" {
		decls = append(decls, Declaration{"min-height", r.MinHeight})
	}
	if r.Border != "" {
		decls = append(decls, Declaration{"border", r.Border})
	}
	if r.Radius != "" {
		decls = append(decls, Declaration{"border-radius", r.Radius}, Declaration{"overflow", "hidden"})
	}
	if r.Shadow != "" {
		decls = append(decls, Declaration{"box-shadow", r.Shadow})
	}
	if r.Animation != "" {
		decls = append(decls, Declaration{"animation", r.Animation})
	}
	return decls
}

// ContainerDeclarations returns the inner width-limiting container style.
func (r Resolved) ContainerDeclarations() []Declaration {
	return []Declaration{
		{"position", "relative"},
		{"z-index", "1"},
		{"width", "100%"},
		{"max-width", r.MaxWidth},
		{"margin", "0 auto"},
	}
}

// GridDeclarations lays items out in columns, capped by the item count.
func (r Resolved) GridDeclarations(columns int) []Declaration {
	if columns <= 0 {
		columns = r.Columns
	}
	if columns < 1 {
		columns = 1
	}
	return []Declaration{
		{"display", "grid"},
		{"grid-template-columns", fmt.Sprintf("repeat(auto-fit, minmax(min(100%%, %dpx), 1fr))", gridMinWidth(columns))},
		{"gap", r.Gap},
	}
}

// ButtonDeclarations styles a primary button.
func (r Resolved) ButtonDeclarations() []Declaration {
	b := r.Button
	decls := []Declaration{
		{"display", "inline-flex"},
		{"align-items", "center"},
		{"justify-content", "center"},
		{"background", b.Background},
		{"color", b.Color},
		{"border-radius", b.Radius},
		{"padding", b.Padding},
		{"font-size", b.FontSize},
		{"font-weight", b.FontWeight},
		{"border", b.Border},
		{"text-decoration", "none"},
		{"cursor", "pointer"},
	}
	if strings.TrimSpace(b.Shadow) != "" {
		decls = append(decls, Declaration{"box-shadow", b.Shadow})
	}
	return decls
}

// SecondaryButtonDeclarations styles an outlined button in the text colour.
func (r Resolved) SecondaryButtonDeclarations() []Declaration {
	b := r.Button
	return []Declaration{
		{"display", "inline-flex"},
		{"align-items", "center"},
		{"justify-content", "center"},
		{"background", "transparent"},
		{"color", r.TextColor},
		{"border-radius", b.Radius},
		{"padding", b.Padding},
		{"font-size", b.FontSize},
		{"font-weight", b.FontWeight},
		{"border", "2px solid currentColor"},
		{"text-decoration", "none"},
	}
}

// CardDeclarations styles an item card on the section surface.
func (r Resolved) CardDeclarations() []Declaration {
	return []Declaration{
		{"background", r.SurfaceColor},
		{"border", "1px solid " + r.SurfaceBorder},
		{"border-radius", r.CardRadius},
		{"padding", "32px"},
		{"text-align", r.TextAlign},
	}
}

// HeadingDeclarations styles a heading scaled from the heading size.
func (r Resolved) HeadingDeclarations(scale float64) []Declaration {
	return []Declaration{
		{"font-family", r.HeadingFont},
		{"font-size", r.Heading(scale)},
		{"font-weight", "700"},
		{"line-height", "1.2"},
		{"margin", "0 0 16px"},
	}
}

// HeroTitleSize caps a fluid title at the heading size.
func (r Resolved) HeroTitleSize() string {
	return fmt.Sprintf("clamp(2rem, 5vw, %s)", px(r.HeadingSize))
}

// Heading returns headingSize scaled, in pixels.
func (r Resolved) Heading(scale float64) string {
	return px(r.HeadingSize * scale)
}

// Text returns the body font size scaled, in pixels.
func (r Resolved) Text(scale float64) string {
	return px(r.FontSize * scale)
}

// InlineStyle serialises declarations for a style attribute.
func InlineStyle(decls ...Declaration) string {
	var sb strings.Builder
	for _, decl := range decls {
		if decl.Value == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(decl.Property)
		sb.WriteString(":")
		sb.WriteString(decl.Value)
	}
	return sb.String()
}

func gridMinWidth(columns int) int {
	switch {
	case columns >= 5:
		return 160
	case columns == 4:
		return 220
	case columns == 3:
		return 280
	case columns == 2:
		return 360
	default:
		return 560
	}
}

func box(b models.SpacingBox) string {
	return fmt.Sprintf("%dpx %dpx %dpx %dpx", b.Top, b.Right, b.Bottom, b.Left)
}

func px(value float64) string {
	return number(value) + "px"
}

func number(value float64) string {
	return strconv.FormatFloat(math.Round(value*1000)/1000, 'f', -1, 64)
}

func justify(align string) string {
	switch align {
	case "left":
		return "flex-start"
	case "right":
		return "flex-end"
	default:
		return "center"
	}
}

func flexAlign(align string) string {
	switch align {
	case "top":
		return "flex-start"
	case "bottom":
		return "flex-end"
	default:
		return "center"
	}
}

func cssURL(value string) string {
	replacer := strings.NewReplacer("'", "%27", "\n", "", "\r", "")
	return replacer.Replace(value)
}

// isDarkColor estimates luminance of a #rgb or #rrggbb colour.
func isDarkColor(color string) bool {
	hex := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) < 6 {
		return false
	}
	value, err := strconv.ParseUint(hex[:6], 16, 32)
	if err != nil {
		return false
	}
	red := float64(value >> 16 & 0xff)
	green := float64(value >> 8 & 0xff)
	blue := float64(value & 0xff)
	return 0.299*red+0.587*green+0.114*blue < 128
}
