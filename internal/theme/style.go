package theme

import (
	"math"
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/pkg/validator"
)

const (
	lightBackground = "#ffffff"
	lightText       = "#1f2937"
	darkBackground  = "#0f172a"
	darkText        = "#ffffff"
	defaultAccent   = "#0ea5e9"
	defaultBorder   = "#e5e7eb"
)

// DefaultStyle returns the complete style a new section of kind starts with.
func DefaultStyle(kind models.SectionKind) models.SectionStyle {
	background, text := lightBackground, lightText
	if kind.IsDark() {
		background, text = darkBackground, darkText
	}

	paddingY := constants.DefaultSectionPaddingY
	minHeight := 0
	animation := "fadeIn"
	switch kind {
	case models.KindHero:
		paddingY = constants.HeroSectionPaddingY
		minHeight = constants.HeroMinHeight
	case models.KindSpacer:
		paddingY = 0
		animation = constants.AnimationNone
	case models.KindDivider:
		paddingY = constants.DefaultSectionPaddingX
		animation = constants.AnimationNone
	}

	columns := 1
	switch kind {
	case models.KindFeatures, models.KindPricing, models.KindTestimonials, models.KindGallery:
		columns = 3
	case models.KindStats:
		columns = 4
	case models.KindLogos:
		columns = 5
	case models.KindFooter:
		columns = 4
	}

	return models.SectionStyle{
		Background: models.Background{
			Type:  "solid",
			Color: background,
			Gradient: models.GradientSpec{
				From:  "#0ea5e9",
				To:    "#8b5cf6",
				Angle: constants.DefaultGradientAngle,
			},
			Image: models.ImageBackground{
				Size:           "cover",
				Position:       "center",
				OverlayColor:   "#000000",
				OverlayOpacity: constants.DefaultOverlayOpacity,
			},
		},
		TextColor: text,
		Padding: models.SpacingBox{
			Top:    paddingY,
			Right:  constants.DefaultSectionPaddingX,
			Bottom: paddingY,
			Left:   constants.DefaultSectionPaddingX,
		},
		Margin: models.SpacingBox{},
		Border: models.BorderSpec{
			Width: 0,
			Style: "solid",
			Color: defaultBorder,
		},
		Shadow: models.ShadowSpec{
			OffsetY: 4,
			Color:   "rgba(0, 0, 0, 0.1)",
		},
		Font: models.FontSpec{
			Family:      constants.DefaultFontStack,
			Size:        constants.DefaultFontSize,
			Weight:      constants.DefaultFontWeight,
			LineHeight:  constants.DefaultLineHeight,
			HeadingSize: constants.DefaultHeadingSize,
		},
		TextAlign: "center",
		Animation: models.AnimationSpec{
			Kind:     animation,
			Duration: constants.DefaultAnimationDuration,
		},
		LayoutWidth:   constants.LayoutContained,
		Columns:       columns,
		Gap:           constants.DefaultGap,
		VerticalAlign: "center",
		MinHeight:     minHeight,
		Visibility:    models.Visibility{Mobile: true, Tablet: true, Desktop: true},
		Button: models.ButtonStyle{
			BackgroundColor: defaultAccent,
			TextColor:       "#ffffff",
			BorderRadius:    8,
			PaddingX:        32,
			PaddingY:        16,
			FontSize:        constants.DefaultFontSize,
			FontWeight:      600,
			BorderColor:     defaultAccent,
			Shadow:          "0 4px 14px rgba(14, 165, 233, 0.4)",
			HoverEffect:     "lift",
		},
	}
}

// PatchStyle merges the non-nil fields of patch into style. Nested records are
// merged field by field. Out-of-range numbers are clamped and unknown enum or
// colour values keep the current value.
func PatchStyle(style models.SectionStyle, patch models.StylePatch) models.SectionStyle {
	next := style

	if bg := patch.Background; bg != nil {
		setString(&next.Background.Type, bg.Type)
		setString(&next.Background.Color, bg.Color)
		if g := bg.Gradient; g != nil {
			setString(&next.Background.Gradient.From, g.From)
			setString(&next.Background.Gradient.To, g.To)
			setFloat(&next.Background.Gradient.Angle, g.Angle)
		}
		if img := bg.Image; img != nil {
			setRawString(&next.Background.Image.URL, img.URL)
			setString(&next.Background.Image.Size, img.Size)
			setString(&next.Background.Image.Position, img.Position)
			setString(&next.Background.Image.OverlayColor, img.OverlayColor)
			setFloat(&next.Background.Image.OverlayOpacity, img.OverlayOpacity)
		}
	}
	setString(&next.TextColor, patch.TextColor)
	patchSpacing(&next.Padding, patch.Padding)
	patchSpacing(&next.Margin, patch.Margin)
	if b := patch.Border; b != nil {
		setInt(&next.Border.Width, b.Width)
		setString(&next.Border.Style, b.Style)
		setString(&next.Border.Color, b.Color)
		setInt(&next.Border.Radius, b.Radius)
	}
	if s := patch.Shadow; s != nil {
		setInt(&next.Shadow.OffsetX, s.OffsetX)
		setInt(&next.Shadow.OffsetY, s.OffsetY)
		setInt(&next.Shadow.Blur, s.Blur)
		setInt(&next.Shadow.Spread, s.Spread)
		setString(&next.Shadow.Color, s.Color)
	}
	if f := patch.Font; f != nil {
		setString(&next.Font.Family, f.Family)
		setInt(&next.Font.Size, f.Size)
		setInt(&next.Font.Weight, f.Weight)
		setFloat(&next.Font.LineHeight, f.LineHeight)
		setFloat(&next.Font.LetterSpacing, f.LetterSpacing)
		setInt(&next.Font.HeadingSize, f.HeadingSize)
	}
	setString(&next.TextAlign, patch.TextAlign)
	if a := patch.Animation; a != nil {
		setString(&next.Animation.Kind, a.Kind)
		setFloat(&next.Animation.Duration, a.Duration)
		setFloat(&next.Animation.DelaySeconds, a.DelaySeconds)
	}
	setString(&next.LayoutWidth, patch.LayoutWidth)
	setInt(&next.Columns, patch.Columns)
	setInt(&next.Gap, patch.Gap)
	setString(&next.VerticalAlign, patch.VerticalAlign)
	setInt(&next.MinHeight, patch.MinHeight)
	if v := patch.Visibility; v != nil {
		setBool(&next.Visibility.Mobile, v.Mobile)
		setBool(&next.Visibility.Tablet, v.Tablet)
		setBool(&next.Visibility.Desktop, v.Desktop)
	}
	if b := patch.Button; b != nil {
		setString(&next.Button.BackgroundColor, b.BackgroundColor)
		setString(&next.Button.TextColor, b.TextColor)
		setInt(&next.Button.BorderRadius, b.BorderRadius)
		setInt(&next.Button.PaddingX, b.PaddingX)
		setInt(&next.Button.PaddingY, b.PaddingY)
		setInt(&next.Button.FontSize, b.FontSize)
		setInt(&next.Button.FontWeight, b.FontWeight)
		setInt(&next.Button.BorderWidth, b.BorderWidth)
		setString(&next.Button.BorderColor, b.BorderColor)
		setRawString(&next.Button.Shadow, b.Shadow)
		setString(&next.Button.HoverEffect, b.HoverEffect)
	}
	setRawString(&next.CustomCSS, patch.CustomCSS)

	return Clamp(next, style)
}

// Clamp forces every numeric field into range and replaces unknown enum or
// colour values with the matching value of fallback.
func Clamp(style, fallback models.SectionStyle) models.SectionStyle {
	out := style

	out.Background.Type = enumOr(constants.NormaliseBackgroundType(out.Background.Type), fallback.Background.Type)
	out.Background.Color = colorOr(out.Background.Color, fallback.Background.Color)
	out.Background.Gradient.From = colorOr(out.Background.Gradient.From, fallback.Background.Gradient.From)
	out.Background.Gradient.To = colorOr(out.Background.Gradient.To, fallback.Background.Gradient.To)
	out.Background.Gradient.Angle = wrapAngle(out.Background.Gradient.Angle)
	out.Background.Image.OverlayColor = colorOr(out.Background.Image.OverlayColor, fallback.Background.Image.OverlayColor)
	out.Background.Image.OverlayOpacity = clampFloat(out.Background.Image.OverlayOpacity, 0, 1)
	out.Background.Image.Size = enumOr(strings.TrimSpace(out.Background.Image.Size), fallback.Background.Image.Size)
	out.Background.Image.Position = enumOr(strings.TrimSpace(out.Background.Image.Position), fallback.Background.Image.Position)

	out.TextColor = colorOr(out.TextColor, fallback.TextColor)
	out.Padding = clampSpacing(out.Padding)
	out.Margin = clampSpacing(out.Margin)

	out.Border.Width = atLeast(out.Border.Width, 0)
	out.Border.Radius = atLeast(out.Border.Radius, 0)
	out.Border.Style = enumOr(constants.NormaliseBorderStyle(out.Border.Style), fallback.Border.Style)
	out.Border.Color = colorOr(out.Border.Color, fallback.Border.Color)

	out.Shadow.Blur = atLeast(out.Shadow.Blur, 0)
	out.Shadow.Color = colorOr(out.Shadow.Color, fallback.Shadow.Color)

	out.Font.Family = enumOr(strings.TrimSpace(out.Font.Family), fallback.Font.Family)
	out.Font.Size = atLeast(out.Font.Size, 1)
	out.Font.HeadingSize = atLeast(out.Font.HeadingSize, 1)
	out.Font.Weight = snapWeight(out.Font.Weight)
	if out.Font.LineHeight <= 0 || math.IsNaN(out.Font.LineHeight) {
		out.Font.LineHeight = 0.1
	}

	out.TextAlign = enumOr(constants.NormaliseTextAlign(out.TextAlign), fallback.TextAlign)
	out.VerticalAlign = enumOr(constants.NormaliseVerticalAlign(out.VerticalAlign), fallback.VerticalAlign)
	out.LayoutWidth = enumOr(constants.NormaliseLayoutWidth(out.LayoutWidth), fallback.LayoutWidth)

	out.Animation.Kind = enumOr(constants.NormaliseSectionAnimation(out.Animation.Kind), fallback.Animation.Kind)
	if out.Animation.Duration <= 0 || math.IsNaN(out.Animation.Duration) {
		out.Animation.Duration = constants.MinAnimationDuration
	}
	if out.Animation.DelaySeconds < 0 || math.IsNaN(out.Animation.DelaySeconds) {
		out.Animation.DelaySeconds = 0
	}

	out.Columns = clampInt(out.Columns, 1, constants.MaxColumns)
	out.Gap = atLeast(out.Gap, 0)
	out.MinHeight = atLeast(out.MinHeight, 0)

	out.Button.BackgroundColor = colorOr(out.Button.BackgroundColor, fallback.Button.BackgroundColor)
	out.Button.TextColor = colorOr(out.Button.TextColor, fallback.Button.TextColor)
	out.Button.BorderColor = colorOr(out.Button.BorderColor, fallback.Button.BorderColor)
	out.Button.BorderRadius = atLeast(out.Button.BorderRadius, 0)
	out.Button.PaddingX = atLeast(out.Button.PaddingX, 0)
	out.Button.PaddingY = atLeast(out.Button.PaddingY, 0)
	out.Button.BorderWidth = atLeast(out.Button.BorderWidth, 0)
	out.Button.FontSize = atLeast(out.Button.FontSize, 1)
	out.Button.FontWeight = snapWeight(out.Button.FontWeight)
	out.Button.HoverEffect = enumOr(constants.NormaliseHoverEffect(out.Button.HoverEffect), fallback.Button.HoverEffect)

	return out
}

func patchSpacing(box *models.SpacingBox, patch *models.SpacingPatch) {
	if patch == nil {
		return
	}
	setInt(&box.Top, patch.Top)
	setInt(&box.Right, patch.Right)
	setInt(&box.Bottom, patch.Bottom)
	setInt(&box.Left, patch.Left)
}

func clampSpacing(box models.SpacingBox) models.SpacingBox {
	return models.SpacingBox{
		Top:    atLeast(box.Top, 0),
		Right:  atLeast(box.Right, 0),
		Bottom: atLeast(box.Bottom, 0),
		Left:   atLeast(box.Left, 0),
	}
}

func setString(dst *string, value *string) {
	if value == nil {
		return
	}
	if trimmed := strings.TrimSpace(*value); trimmed != "" {
		*dst = trimmed
	}
}

// setRawString accepts empty values so free-form fields can be cleared.
func setRawString(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}

func setInt(dst *int, value *int) {
	if value != nil {
		*dst = *value
	}
}

func setFloat(dst *float64, value *float64) {
	if value != nil && !math.IsNaN(*value) && !math.IsInf(*value, 0) {
		*dst = *value
	}
}

func setBool(dst *bool, value *bool) {
	if value != nil {
		*dst = *value
	}
}

func enumOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func colorOr(value, fallback string) string {
	value = strings.TrimSpace(value)
	if validator.IsCSSColor(value) {
		return value
	}
	return fallback
}

func atLeast(value, min int) int {
	if value < min {
		return min
	}
	return value
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func clampFloat(value, min, max float64) float64 {
	if math.IsNaN(value) || value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// wrapAngle maps any angle into [0, 360).
func wrapAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	if angle >= 360 {
		angle = 0
	}
	return angle
}

func snapWeight(weight int) int {
	snapped := int(math.Round(float64(weight)/100)) * 100
	return clampInt(snapped, 100, 900)
}
