package sections

import (
	"fmt"
	"strings"

	"landing-builder-backend/internal/content"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/theme"
	"landing-builder-backend/pkg/validator"
)

func dividerDescriptor() *SectionDescriptor {
	return describe[models.DividerContent](SectionMetadata{
		Kind:        models.KindDivider,
		Name:        "Divider",
		Description: "Horizontal rule between sections",
		Category:    "layout",
		Icon:        "minus",
	}, renderDivider)
}

func spacerDescriptor() *SectionDescriptor {
	return describe[models.SpacerContent](SectionMetadata{
		Kind:        models.KindSpacer,
		Name:        "Spacer",
		Description: "Empty vertical space",
		Category:    "layout",
		Icon:        "move-vertical",
	}, renderSpacer)
}

func customDescriptor() *SectionDescriptor {
	return describe[models.CustomContent](SectionMetadata{
		Kind:        models.KindCustom,
		Name:        "Custom HTML",
		Description: "Free-form HTML or markdown block",
		Category:    "advanced",
		Icon:        "code",
	}, renderCustom)
}

func renderDivider(m *markup, c models.DividerContent, r theme.Resolved) {
	height := c.Height
	if height <= 0 {
		height = 1
	}
	lineStyle := dividerLineStyle(c.Style)
	color := c.Color
	if !validator.IsCSSColor(color) {
		color = r.SurfaceBorder
	}
	width := strings.TrimSpace(c.Width)
	if width == "" {
		width = "100%"
	}
	m.void("hr", m.class("line"), []theme.Declaration{
		decl("border", "0"),
		decl("border-top", fmt.Sprintf("%dpx %s %s", height, lineStyle, color)),
		decl("width", width),
		decl("margin", marginForAlign(r.TextAlign)),
	})
}

func renderSpacer(m *markup, c models.SpacerContent, _ theme.Resolved) {
	height := c.Height
	if height < 0 {
		height = 0
	}
	m.open("div", m.class("space"), []theme.Declaration{decl("height", fmt.Sprintf("%dpx", height))}, `aria-hidden="true"`)
	m.close("div")
}

func renderCustom(m *markup, c models.CustomContent, r theme.Resolved) {
	body := c.Body
	if strings.EqualFold(c.Format, content.FormatMarkdown) {
		body = m.ctx.Markdown(body)
	} else {
		body = m.ctx.SanitizeHTML(body)
	}
	m.open("div", m.class("body"), []theme.Declaration{decl("text-align", r.TextAlign)})
	m.raw(body)
	m.close("div")
}

func dividerLineStyle(style string) string {
	switch style {
	case "dashed", "dotted", "double":
		return style
	default:
		return "solid"
	}
}
