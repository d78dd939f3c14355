package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"landing-builder-backend/internal/models"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string  { return &v }

func TestDefaultStyleIsValidForEveryKind(t *testing.T) {
	RegisterValidations()

	for _, kind := range models.SectionKinds() {
		style := DefaultStyle(kind)
		require.NoError(t, ValidateStyle(style), "kind %s", kind)
		require.Equal(t, style, Clamp(style, style), "defaults of %s should already be in range", kind)
		require.NotEmpty(t, style.Font.Family)
		require.NotEmpty(t, style.TextColor)
	}
}

func TestDefaultStyleDarkKinds(t *testing.T) {
	for _, kind := range []models.SectionKind{models.KindHero, models.KindCTA, models.KindFooter, models.KindStats} {
		style := DefaultStyle(kind)
		require.Equal(t, darkBackground, style.Background.Color, "kind %s", kind)
		require.Equal(t, darkText, style.TextColor, "kind %s", kind)
	}
	require.Equal(t, lightBackground, DefaultStyle(models.KindFAQ).Background.Color)
	require.Equal(t, 120, DefaultStyle(models.KindHero).Padding.Top)
	require.Equal(t, 0, DefaultStyle(models.KindSpacer).Padding.Top)
	require.Equal(t, 80, DefaultStyle(models.KindPricing).Padding.Top)
}

func TestPatchStyleKeepsSiblingFields(t *testing.T) {
	style := DefaultStyle(models.KindFeatures)
	style.Padding = models.SpacingBox{Top: 10, Right: 20, Bottom: 30, Left: 40}

	patched := PatchStyle(style, models.StylePatch{Padding: &models.SpacingPatch{Top: intPtr(99)}})

	require.Equal(t, 99, patched.Padding.Top)
	require.Equal(t, 20, patched.Padding.Right)
	require.Equal(t, 30, patched.Padding.Bottom)
	require.Equal(t, 40, patched.Padding.Left)
	require.Equal(t, style.Font, patched.Font)
	require.Equal(t, style.Border, patched.Border)
}

func TestPatchStyleClampsOutOfRangeValues(t *testing.T) {
	style := DefaultStyle(models.KindHero)

	patched := PatchStyle(style, models.StylePatch{
		Padding: &models.SpacingPatch{Left: intPtr(-5)},
		Background: &models.BackgroundPatch{
			Gradient: &models.GradientPatch{Angle: floatPtr(370)},
			Image:    &models.ImagePatch{OverlayOpacity: floatPtr(1.5)},
		},
		Font:      &models.FontPatch{Weight: intPtr(450), Size: intPtr(0)},
		Columns:   intPtr(0),
		TextAlign: stringPtr("diagonal"),
		Animation: &models.AnimationPatch{Duration: floatPtr(-1), DelaySeconds: floatPtr(-2), Kind: stringPtr("wobble")},
		Shadow:    &models.ShadowPatch{Blur: intPtr(-3)},
		TextColor: stringPtr("not a colour!"),
	})

	require.Equal(t, 0, patched.Padding.Left)
	require.Equal(t, 10.0, patched.Background.Gradient.Angle)
	require.Equal(t, 1.0, patched.Background.Image.OverlayOpacity)
	require.Equal(t, 500, patched.Font.Weight)
	require.Equal(t, 1, patched.Font.Size)
	require.Equal(t, 1, patched.Columns)
	require.Equal(t, style.TextAlign, patched.TextAlign)
	require.Equal(t, style.Animation.Kind, patched.Animation.Kind)
	require.Greater(t, patched.Animation.Duration, 0.0)
	require.Equal(t, 0.0, patched.Animation.DelaySeconds)
	require.Equal(t, 0, patched.Shadow.Blur)
	require.Equal(t, style.TextColor, patched.TextColor)
}

func TestWrapAngle(t *testing.T) {
	tests := map[float64]float64{0: 0, 360: 0, -90: 270, 725: 5, 359.5: 359.5}
	for input, want := range tests {
		require.Equal(t, want, wrapAngle(input), "angle %v", input)
	}
}

func TestPatchGlobalStylesIsShallow(t *testing.T) {
	global := DefaultGlobalStyles()
	patched := PatchGlobalStyles(global, models.GlobalStylesPatch{
		PrimaryColor: stringPtr("#ff0000"),
		BorderRadius: intPtr(-4),
	})

	require.Equal(t, "#ff0000", patched.PrimaryColor)
	require.Equal(t, 0, patched.BorderRadius)
	require.Equal(t, global.SecondaryColor, patched.SecondaryColor)
	require.Equal(t, global.HeadingFont, patched.HeadingFont)
}

func TestResolveFallsBackToThemeWhileDefault(t *testing.T) {
	defaults := DefaultStyle(models.KindCTA)
	global := DefaultGlobalStyles()
	global.PrimaryColor = "#123456"
	global.HeadingFont = "'Lora', serif"
	global.BodyFont = "'Inter', sans-serif"

	resolved := Resolve(defaults, defaults, global)
	require.Equal(t, "#123456", resolved.Button.Background)
	require.Equal(t, "'Lora', serif", resolved.HeadingFont)
	require.Equal(t, "'Inter', sans-serif", resolved.BodyFont)
	require.Equal(t, "12px", resolved.CardRadius)

	custom := PatchStyle(defaults, models.StylePatch{
		Button: &models.ButtonPatch{BackgroundColor: stringPtr("#abcdef")},
		Font:   &models.FontPatch{Family: stringPtr("'Poppins', sans-serif")},
	})
	resolved = Resolve(custom, defaults, global)
	require.Equal(t, "#abcdef", resolved.Button.Background)
	require.Equal(t, "'Poppins', sans-serif", resolved.HeadingFont)
	require.Equal(t, "'Poppins', sans-serif", resolved.BodyFont)
}

func TestResolveDerivedSizes(t *testing.T) {
	style := DefaultStyle(models.KindPricing)
	resolved := Resolve(style, style, DefaultGlobalStyles())

	require.Equal(t, "36px", resolved.Heading(0.75))
	require.Equal(t, "28.8px", resolved.Heading(0.6))
	require.Equal(t, "20px", resolved.Text(1.25))
	require.Equal(t, "clamp(2rem, 5vw, 48px)", resolved.HeroTitleSize())
	require.Equal(t, "fadeIn 0.6s ease-out 0s", resolved.Animation)
	require.Empty(t, resolved.Shadow, "zero blur disables the shadow")
}

func TestResolveVisibility(t *testing.T) {
	style := DefaultStyle(models.KindFAQ)
	style.Visibility.Mobile = false
	resolved := Resolve(style, DefaultStyle(models.KindFAQ), DefaultGlobalStyles())
	require.Equal(t, []string{"mobile"}, resolved.HiddenOn)
}

func TestInlineStyleSkipsEmptyValues(t *testing.T) {
	got := InlineStyle(
		Declaration{Property: "color", Value: "red"},
		Declaration{Property: "border", Value: ""},
		Declaration{Property: "margin", Value: "0"},
	)
	require.Equal(t, "color:red;margin:0", got)
}

func TestFontStylesheetsDeduplicates(t *testing.T) {
	links := FontStylesheets(
		"'Noto Sans JP', sans-serif",
		"'Inter', sans-serif",
		"'Noto Sans JP', sans-serif",
		"sans-serif",
		"\"Inter\", system-ui",
	)
	require.Equal(t, []string{
		"https://fonts.googleapis.com/css2?family=Noto+Sans+JP:wght@400;500;600;700&display=swap",
		"https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap",
	}, links)
}

func TestKeyframesOnlyReferenced(t *testing.T) {
	css := Keyframes([]string{"zoomIn", "none", "fadeIn", "zoomIn"})
	require.Contains(t, css, "@keyframes fadeIn{")
	require.Contains(t, css, "@keyframes zoomIn{")
	require.Equal(t, 2, strings.Count(css, "@keyframes"))
	require.NotContains(t, css, "bounce")
}
