package sections

import (
	"html/template"
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/theme"
)

func footerDescriptor() *SectionDescriptor {
	return describe[models.FooterContent](SectionMetadata{
		Kind:        models.KindFooter,
		Name:        "Footer",
		Description: "Company details, link columns and social links",
		Category:    "navigation",
		Icon:        "layout",
	}, renderFooter)
}

func renderFooter(m *markup, c models.FooterContent, r theme.Resolved) {
	m.open("div", m.class("top"), []theme.Declaration{
		decl("display", "grid"),
		decl("grid-template-columns", "repeat(auto-fit, minmax(min(100%, 200px), 1fr))"),
		decl("gap", r.Gap),
		decl("text-align", "left"),
	})

	m.open("div", m.class("brand"), nil)
	if strings.TrimSpace(c.Logo) != "" {
		m.void("img", m.class("logo"), []theme.Declaration{
			decl("max-height", "40px"),
			decl("margin-bottom", "12px"),
		}, attr("src", c.Logo), attr("alt", c.CompanyName))
	}
	m.text("div", m.class("company"), []theme.Declaration{
		decl("font-family", r.HeadingFont),
		decl("font-weight", "700"),
		decl("font-size", r.Text(constants.CardTitleScale)),
		decl("margin-bottom", "8px"),
	}, c.CompanyName, "companyName")
	m.text("p", m.class("description"), []theme.Declaration{
		decl("opacity", "0.7"),
		decl("font-size", r.Text(constants.SmallTextScale)),
		decl("margin", "0"),
	}, c.Description, "description")
	m.close("div")

	m.openList("div", m.class("groups"), []theme.Declaration{decl("display", "contents")}, "linkGroups")
	for _, group := range c.LinkGroups {
		m.openItem("nav", m.class("group"), nil, "linkGroups", group.ID)
		m.itemText("h4", m.class("group-title"), []theme.Declaration{
			decl("font-weight", "600"),
			decl("margin", "0 0 12px"),
		}, group.Title, "linkGroups", group.ID, "title")
		m.open("ul", m.class("links"), []theme.Declaration{
			decl("list-style", "none"),
			decl("padding", "0"),
			decl("margin", "0"),
		})
		for _, link := range group.Links {
			m.open("li", "", []theme.Declaration{decl("margin-bottom", "8px")})
			m.open("a", m.class("link"), []theme.Declaration{
				decl("color", "inherit"),
				decl("opacity", "0.7"),
				decl("text-decoration", "none"),
			}, attr("href", safeHref(link.URL)))
			m.raw(template.HTMLEscapeString(link.Label))
			m.close("a")
			m.close("li")
		}
		m.close("ul")
		m.close("nav")
	}
	m.close("div")
	m.close("div")

	m.open("div", m.class("bottom"), []theme.Declaration{
		decl("display", "flex"),
		decl("flex-wrap", "wrap"),
		decl("justify-content", "space-between"),
		decl("align-items", "center"),
		decl("gap", "16px"),
		decl("margin-top", "48px"),
		decl("padding-top", "24px"),
		decl("border-top", "1px solid "+r.SurfaceBorder),
	})
	m.text("p", m.class("copyright"), []theme.Declaration{
		decl("opacity", "0.6"),
		decl("font-size", r.Text(constants.SmallTextScale)),
		decl("margin", "0"),
	}, c.Copyright, "copyright")
	m.openList("div", m.class("social"), []theme.Declaration{
		decl("display", "flex"),
		decl("gap", "16px"),
	}, "social")
	for _, social := range c.Social {
		m.open("a", m.class("social-link"), []theme.Declaration{
			decl("color", r.LinkColor),
			decl("text-decoration", "none"),
		}, attr("href", safeHref(social.URL)), attr("aria-label", social.Platform), m.item("social", social.ID))
		m.raw(template.HTMLEscapeString(social.Platform))
		m.close("a")
	}
	m.close("div")
	m.close("div")
}
