package theme

import (
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
)

// DefaultGlobalStyles returns the theme layer of a new document.
func DefaultGlobalStyles() models.GlobalStyles {
	return models.GlobalStyles{
		PrimaryColor:    "#0ea5e9",
		SecondaryColor:  "#8b5cf6",
		AccentColor:     "#f59e0b",
		BackgroundColor: lightBackground,
		TextColor:       lightText,
		HeadingFont:     constants.DefaultFontStack,
		BodyFont:        constants.DefaultFontStack,
		BorderRadius:    12,
		BaseSpacing:     8,
	}
}

// DefaultPageMeta returns the head metadata of a new document.
func DefaultPageMeta(lang string) models.PageMeta {
	if strings.TrimSpace(lang) == "" {
		lang = "en"
	}
	return models.PageMeta{
		ThemeColor: "#0ea5e9",
		Lang:       lang,
	}
}

// NewDocument returns an empty document with default theme and metadata.
func NewDocument(title, lang string) models.Document {
	if strings.TrimSpace(title) == "" {
		title = "My Landing Page"
	}
	return models.Document{
		Version:      models.DocumentVersion,
		PageTitle:    title,
		Meta:         DefaultPageMeta(lang),
		GlobalStyles: DefaultGlobalStyles(),
		Sections:     []models.Section{},
	}
}

// PatchGlobalStyles shallow-merges the non-nil fields of patch.
func PatchGlobalStyles(global models.GlobalStyles, patch models.GlobalStylesPatch) models.GlobalStyles {
	next := global
	next.PrimaryColor = colorOr(deref(patch.PrimaryColor, next.PrimaryColor), global.PrimaryColor)
	next.SecondaryColor = colorOr(deref(patch.SecondaryColor, next.SecondaryColor), global.SecondaryColor)
	next.AccentColor = colorOr(deref(patch.AccentColor, next.AccentColor), global.AccentColor)
	next.BackgroundColor = colorOr(deref(patch.BackgroundColor, next.BackgroundColor), global.BackgroundColor)
	next.TextColor = colorOr(deref(patch.TextColor, next.TextColor), global.TextColor)
	setString(&next.HeadingFont, patch.HeadingFont)
	setString(&next.BodyFont, patch.BodyFont)
	if patch.BorderRadius != nil {
		next.BorderRadius = atLeast(*patch.BorderRadius, 0)
	}
	if patch.BaseSpacing != nil {
		next.BaseSpacing = atLeast(*patch.BaseSpacing, 0)
	}
	return next
}

// ClampGlobalStyles repairs an imported theme against the defaults.
func ClampGlobalStyles(global models.GlobalStyles) models.GlobalStyles {
	defaults := DefaultGlobalStyles()
	global.PrimaryColor = colorOr(global.PrimaryColor, defaults.PrimaryColor)
	global.SecondaryColor = colorOr(global.SecondaryColor, defaults.SecondaryColor)
	global.AccentColor = colorOr(global.AccentColor, defaults.AccentColor)
	global.BackgroundColor = colorOr(global.BackgroundColor, defaults.BackgroundColor)
	global.TextColor = colorOr(global.TextColor, defaults.TextColor)
	global.HeadingFont = enumOr(strings.TrimSpace(global.HeadingFont), defaults.HeadingFont)
	global.BodyFont = enumOr(strings.TrimSpace(global.BodyFont), defaults.BodyFont)
	global.BorderRadius = atLeast(global.BorderRadius, 0)
	global.BaseSpacing = atLeast(global.BaseSpacing, 0)
	return global
}

// PatchPageMeta merges the non-nil fields of patch. The title is handled by the caller.
func PatchPageMeta(meta models.PageMeta, patch models.PageMetaPatch) models.PageMeta {
	next := meta
	setRawString(&next.Description, patch.Description)
	setRawString(&next.Favicon, patch.Favicon)
	setRawString(&next.OGImage, patch.OGImage)
	if patch.ThemeColor != nil {
		next.ThemeColor = colorOr(*patch.ThemeColor, meta.ThemeColor)
	}
	setString(&next.Lang, patch.Lang)
	setRawString(&next.CustomHead, patch.CustomHead)
	setRawString(&next.CustomCSS, patch.CustomCSS)
	return next
}

func deref(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
