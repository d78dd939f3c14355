package sections

import (
	"html/template"
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/theme"
)

func pricingDescriptor() *SectionDescriptor {
	return describe[models.PricingContent](SectionMetadata{
		Kind:        models.KindPricing,
		Name:        "Pricing",
		Description: "Plan comparison cards with price, features and a button",
		Category:    "conversion",
		Icon:        "tag",
	}, renderPricing)
}

func renderPricing(m *markup, c models.PricingContent, r theme.Resolved) {
	m.header(r, c.Title, c.Subtitle)
	m.openList("div", m.class("grid"), with(r.GridDeclarations(r.Columns), decl("align-items", "stretch")), "plans")
	for _, plan := range c.Plans {
		renderPlan(m, plan, r)
	}
	m.close("div")
}

func renderPlan(m *markup, plan models.PricingPlan, r theme.Resolved) {
	card := with(r.CardDeclarations(),
		decl("position", "relative"),
		decl("display", "flex"),
		decl("flex-direction", "column"),
	)
	class := m.class("plan")
	if plan.IsPopular {
		card = with(card, decl("border", "2px solid "+r.PrimaryColor), decl("transform", "scale(1.03)"))
		class += " " + m.class("plan--popular")
	}
	m.openItem("div", class, card, "plans", plan.ID)

	if plan.IsPopular {
		m.open("span", m.class("badge"), []theme.Declaration{
			decl("position", "absolute"),
			decl("top", "-14px"),
			decl("left", "50%"),
			decl("transform", "translateX(-50%)"),
			decl("background", r.AccentColor),
			decl("color", "#ffffff"),
			decl("font-size", r.Text(constants.SmallTextScale)),
			decl("font-weight", "600"),
			decl("padding", "4px 12px"),
			decl("border-radius", "999px"),
		})
		m.raw("Most popular")
		m.close("span")
	}

	m.itemText("h3", m.class("plan-name"), []theme.Declaration{
		decl("font-family", r.HeadingFont),
		decl("font-size", r.Text(constants.PlanNameScale)),
		decl("font-weight", "600"),
		decl("margin", "0 0 8px"),
	}, plan.Name, "plans", plan.ID, "name")

	m.open("div", m.class("price-row"), []theme.Declaration{decl("margin-bottom", "16px")})
	m.itemText("span", m.class("price"), []theme.Declaration{
		decl("font-family", r.HeadingFont),
		decl("font-size", r.Heading(constants.PriceScale)),
		decl("font-weight", "800"),
	}, plan.Price, "plans", plan.ID, "price")
	m.itemText("span", m.class("period"), []theme.Declaration{decl("opacity", "0.7")}, plan.Period, "plans", plan.ID, "period")
	m.close("div")

	m.itemText("p", m.class("plan-description"), []theme.Declaration{
		decl("opacity", "0.8"),
		decl("margin", "0 0 24px"),
	}, plan.Description, "plans", plan.ID, "description")

	if len(plan.Features) > 0 {
		m.open("ul", m.class("features"), []theme.Declaration{
			decl("list-style", "none"),
			decl("padding", "0"),
			decl("margin", "0 0 32px"),
			decl("text-align", "left"),
			decl("flex", "1"),
		})
		for _, feature := range plan.Features {
			m.open("li", m.class("feature"), []theme.Declaration{decl("padding", "6px 0")})
			m.raw(`<span aria-hidden="true">✓</span> ` + template.HTMLEscapeString(feature))
			m.close("li")
		}
		m.close("ul")
	}

	if strings.TrimSpace(plan.CTAText) != "" {
		m.open("a", "lp-button lp-button--"+r.Button.HoverEffect, planButton(r, plan.IsPopular),
			attr("href", safeHref(plan.CTALink)), m.itemField("plans", plan.ID, "ctaText"))
		m.raw(template.HTMLEscapeString(plan.CTAText))
		m.close("a")
	}
	m.close("div")
}

func planButton(r theme.Resolved, popular bool) []theme.Declaration {
	if popular {
		return r.ButtonDeclarations()
	}
	return r.SecondaryButtonDeclarations()
}
