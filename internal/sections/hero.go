package sections

import (
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/theme"
)

func heroDescriptor() *SectionDescriptor {
	return describe[models.HeroContent](SectionMetadata{
		Kind:        models.KindHero,
		Name:        "Hero",
		Description: "Headline banner with subtitle and call-to-action buttons",
		Category:    "marketing",
		Icon:        "star",
	}, renderHero)
}

func ctaDescriptor() *SectionDescriptor {
	return describe[models.CTAContent](SectionMetadata{
		Kind:        models.KindCTA,
		Name:        "Call to action",
		Description: "Conversion band with a primary and secondary button",
		Category:    "marketing",
		Icon:        "megaphone",
	}, renderCTA)
}

func renderHero(m *markup, c models.HeroContent, r theme.Resolved) {
	m.open("div", m.class("content"), nil)
	m.text("h1", m.class("title"), []theme.Declaration{
		decl("font-family", r.HeadingFont),
		decl("font-size", r.HeroTitleSize()),
		decl("font-weight", "800"),
		decl("line-height", "1.1"),
		decl("margin", "0 0 24px"),
	}, c.Title, "title")
	m.text("p", m.class("subtitle"), []theme.Declaration{
		decl("font-size", r.Text(constants.SubtitleScale)),
		decl("opacity", "0.9"),
		decl("max-width", "720px"),
		decl("margin", marginForAlign(r.TextAlign)),
		decl("margin-bottom", "40px"),
	}, c.Subtitle, "subtitle")
	renderButtonRow(m, r, c.CTAText, c.CTALink, "ctaText", c.SecondaryCTAText, c.SecondaryCTALink, "secondaryCtaText")
	if strings.TrimSpace(c.Image) != "" {
		m.void("img", m.class("image"), []theme.Declaration{
			decl("margin", "48px auto 0"),
			decl("border-radius", r.CardRadius),
			decl("max-width", "100%"),
		}, attr("src", c.Image), attr("alt", c.Title))
	}
	m.close("div")
}

func renderCTA(m *markup, c models.CTAContent, r theme.Resolved) {
	m.open("div", m.class("content"), nil)
	m.text("h2", m.class("title"), r.HeadingDeclarations(constants.SectionHeadingScale), c.Title, "title")
	m.text("p", m.class("subtitle"), []theme.Declaration{
		decl("font-size", r.Text(constants.SubtitleScale)),
		decl("opacity", "0.9"),
		decl("margin-bottom", "32px"),
	}, c.Subtitle, "subtitle")
	renderButtonRow(m, r, c.ButtonText, c.ButtonLink, "buttonText", c.SecondaryText, c.SecondaryLink, "secondaryText")
	m.close("div")
}

func renderButtonRow(m *markup, r theme.Resolved, primary, primaryHref, primaryField, secondary, secondaryHref, secondaryField string) {
	if strings.TrimSpace(primary) == "" && strings.TrimSpace(secondary) == "" {
		return
	}
	m.open("div", m.class("actions"), []theme.Declaration{
		decl("display", "flex"),
		decl("flex-wrap", "wrap"),
		decl("gap", "16px"),
		decl("justify-content", r.JustifyContent),
	})
	m.button(r, false, primary, primaryHref, primaryField)
	m.button(r, true, secondary, secondaryHref, secondaryField)
	m.close("div")
}
