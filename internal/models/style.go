package models

// SpacingBox holds pixel spacing for the four sides of a box.
type SpacingBox struct {
	Top    int `json:"top" validate:"gte=0"`
	Right  int `json:"right" validate:"gte=0"`
	Bottom int `json:"bottom" validate:"gte=0"`
	Left   int `json:"left" validate:"gte=0"`
}

// BorderSpec describes the section border and its corner radius.
type BorderSpec struct {
	Width  int    `json:"width" validate:"gte=0"`
	Style  string `json:"style" validate:"oneof=solid dashed dotted"`
	Color  string `json:"color" validate:"css_color"`
	Radius int    `json:"radius" validate:"gte=0"`
}

// ShadowSpec describes a box shadow. A zero blur disables the shadow.
type ShadowSpec struct {
	OffsetX int    `json:"offsetX"`
	OffsetY int    `json:"offsetY"`
	Blur    int    `json:"blur" validate:"gte=0"`
	Spread  int    `json:"spread"`
	Color   string `json:"color" validate:"css_color"`
}

// FontSpec describes section typography. HeadingSize is the base every derived
// heading size is computed from.
type FontSpec struct {
	Family        string  `json:"family" validate:"required"`
	Size          int     `json:"size" validate:"gt=0"`
	Weight        int     `json:"weight" validate:"oneof=100 200 300 400 500 600 700 800 900"`
	LineHeight    float64 `json:"lineHeight" validate:"gt=0"`
	LetterSpacing float64 `json:"letterSpacing"`
	HeadingSize   int     `json:"headingSize" validate:"gt=0"`
}

// GradientSpec is a two-stop linear gradient.
type GradientSpec struct {
	From  string  `json:"from" validate:"css_color"`
	To    string  `json:"to" validate:"css_color"`
	Angle float64 `json:"angle" validate:"gte=0,lt=360"`
}

// ImageBackground is an image with an optional colour overlay.
type ImageBackground struct {
	URL            string  `json:"url"`
	Size           string  `json:"size"`
	Position       string  `json:"position"`
	OverlayColor   string  `json:"overlayColor" validate:"css_color"`
	OverlayOpacity float64 `json:"overlayOpacity" validate:"gte=0,lte=1"`
}

// Background keeps every variant populated; Type selects the active one.
type Background struct {
	Type     string          `json:"type" validate:"oneof=solid gradient image"`
	Color    string          `json:"color" validate:"css_color"`
	Gradient GradientSpec    `json:"gradient"`
	Image    ImageBackground `json:"image"`
}

// AnimationSpec configures the entrance animation of a section.
type AnimationSpec struct {
	Kind         string  `json:"kind" validate:"animation_kind"`
	Duration     float64 `json:"duration" validate:"gt=0"`
	DelaySeconds float64 `json:"delaySeconds" validate:"gte=0"`
}

// Visibility flags per breakpoint. Hidden sections are kept in the document.
type Visibility struct {
	Mobile  bool `json:"mobile"`
	Tablet  bool `json:"tablet"`
	Desktop bool `json:"desktop"`
}

// VisibleAt reports whether the section is shown on the breakpoint.
func (v Visibility) VisibleAt(breakpoint string) bool {
	switch breakpoint {
	case "mobile":
		return v.Mobile
	case "tablet":
		return v.Tablet
	default:
		return v.Desktop
	}
}

// ButtonStyle styles the call-to-action buttons rendered inside a section.
type ButtonStyle struct {
	BackgroundColor string `json:"backgroundColor" validate:"css_color"`
	TextColor       string `json:"textColor" validate:"css_color"`
	BorderRadius    int    `json:"borderRadius" validate:"gte=0"`
	PaddingX        int    `json:"paddingX" validate:"gte=0"`
	PaddingY        int    `json:"paddingY" validate:"gte=0"`
	FontSize        int    `json:"fontSize" validate:"gt=0"`
	FontWeight      int    `json:"fontWeight" validate:"oneof=100 200 300 400 500 600 700 800 900"`
	BorderWidth     int    `json:"borderWidth" validate:"gte=0"`
	BorderColor     string `json:"borderColor" validate:"css_color"`
	Shadow          string `json:"shadow"`
	HoverEffect     string `json:"hoverEffect" validate:"oneof=none lift scale glow"`
}

// SectionStyle is the complete visual configuration of one section.
type SectionStyle struct {
	Background    Background    `json:"background"`
	TextColor     string        `json:"textColor" validate:"css_color"`
	Padding       SpacingBox    `json:"padding"`
	Margin        SpacingBox    `json:"margin"`
	Border        BorderSpec    `json:"border"`
	Shadow        ShadowSpec    `json:"shadow"`
	Font          FontSpec      `json:"font"`
	TextAlign     string        `json:"textAlign" validate:"oneof=left center right justify"`
	Animation     AnimationSpec `json:"animation"`
	LayoutWidth   string        `json:"layoutWidth" validate:"oneof=full contained narrow"`
	Columns       int           `json:"columns" validate:"gte=1"`
	Gap           int           `json:"gap" validate:"gte=0"`
	VerticalAlign string        `json:"verticalAlign" validate:"oneof=top center bottom"`
	MinHeight     int           `json:"minHeight" validate:"gte=0"`
	Visibility    Visibility    `json:"visibility"`
	Button        ButtonStyle   `json:"button"`
	CustomCSS     string        `json:"customCSS"`
}

// SpacingPatch is a partial SpacingBox.
type SpacingPatch struct {
	Top    *int `json:"top,omitempty"`
	Right  *int `json:"right,omitempty"`
	Bottom *int `json:"bottom,omitempty"`
	Left   *int `json:"left,omitempty"`
}

// BorderPatch is a partial BorderSpec.
type BorderPatch struct {
	Width  *int    `json:"width,omitempty"`
	Style  *string `json:"style,omitempty"`
	Color  *string `json:"color,omitempty"`
	Radius *int    `json:"radius,omitempty"`
}

// ShadowPatch is a partial ShadowSpec.
type ShadowPatch struct {
	OffsetX *int    `json:"offsetX,omitempty"`
	OffsetY *int    `json:"offsetY,omitempty"`
	Blur    *int    `json:"blur,omitempty"`
	Spread  *int    `json:"spread,omitempty"`
	Color   *string `json:"color,omitempty"`
}

// FontPatch is a partial FontSpec.
type FontPatch struct {
	Family        *string  `json:"family,omitempty"`
	Size          *int     `json:"size,omitempty"`
	Weight        *int     `json:"weight,omitempty"`
	LineHeight    *float64 `json:"lineHeight,omitempty"`
	LetterSpacing *float64 `json:"letterSpacing,omitempty"`
	HeadingSize   *int     `json:"headingSize,omitempty"`
}

// GradientPatch is a partial GradientSpec.
type GradientPatch struct {
	From  *string  `json:"from,omitempty"`
	To    *string  `json:"to,omitempty"`
	Angle *float64 `json:"angle,omitempty"`
}

// ImagePatch is a partial ImageBackground.
type ImagePatch struct {
	URL            *string  `json:"url,omitempty"`
	Size           *string  `json:"size,omitempty"`
	Position       *string  `json:"position,omitempty"`
	OverlayColor   *string  `json:"overlayColor,omitempty"`
	OverlayOpacity *float64 `json:"overlayOpacity,omitempty"`
}

// BackgroundPatch is a partial Background.
type BackgroundPatch struct {
	Type     *string        `json:"type,omitempty"`
	Color    *string        `json:"color,omitempty"`
	Gradient *GradientPatch `json:"gradient,omitempty"`
	Image    *ImagePatch    `json:"image,omitempty"`
}

// AnimationPatch is a partial AnimationSpec.
type AnimationPatch struct {
	Kind         *string  `json:"kind,omitempty"`
	Duration     *float64 `json:"duration,omitempty"`
	DelaySeconds *float64 `json:"delaySeconds,omitempty"`
}

// VisibilityPatch is a partial Visibility.
type VisibilityPatch struct {
	Mobile  *bool `json:"mobile,omitempty"`
	Tablet  *bool `json:"tablet,omitempty"`
	Desktop *bool `json:"desktop,omitempty"`
}

// ButtonPatch is a partial ButtonStyle.
type ButtonPatch struct {
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	TextColor       *string `json:"textColor,omitempty"`
	BorderRadius    *int    `json:"borderRadius,omitempty"`
	PaddingX        *int    `json:"paddingX,omitempty"`
	PaddingY        *int    `json:"paddingY,omitempty"`
	FontSize        *int    `json:"fontSize,omitempty"`
	FontWeight      *int    `json:"fontWeight,omitempty"`
	BorderWidth     *int    `json:"borderWidth,omitempty"`
	BorderColor     *string `json:"borderColor,omitempty"`
	Shadow          *string `json:"shadow,omitempty"`
	HoverEffect     *string `json:"hoverEffect,omitempty"`
}

// StylePatch is a partial SectionStyle. Nil fields are left untouched.
type StylePatch struct {
	Background    *BackgroundPatch `json:"background,omitempty"`
	TextColor     *string          `json:"textColor,omitempty"`
	Padding       *SpacingPatch    `json:"padding,omitempty"`
	Margin        *SpacingPatch    `json:"margin,omitempty"`
	Border        *BorderPatch     `json:"border,omitempty"`
	Shadow        *ShadowPatch     `json:"shadow,omitempty"`
	Font          *FontPatch       `json:"font,omitempty"`
	TextAlign     *string          `json:"textAlign,omitempty"`
	Animation     *AnimationPatch  `json:"animation,omitempty"`
	LayoutWidth   *string          `json:"layoutWidth,omitempty"`
	Columns       *int             `json:"columns,omitempty"`
	Gap           *int             `json:"gap,omitempty"`
	VerticalAlign *string          `json:"verticalAlign,omitempty"`
	MinHeight     *int             `json:"minHeight,omitempty"`
	Visibility    *VisibilityPatch `json:"visibility,omitempty"`
	Button        *ButtonPatch     `json:"button,omitempty"`
	CustomCSS     *string          `json:"customCSS,omitempty"`
}
