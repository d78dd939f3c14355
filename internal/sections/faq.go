package sections

import (
	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/theme"
)

func faqDescriptor() *SectionDescriptor {
	return describe[models.FAQContent](SectionMetadata{
		Kind:        models.KindFAQ,
		Name:        "FAQ",
		Description: "Expandable questions and answers",
		Category:    "content",
		Icon:        "help-circle",
	}, renderFAQ)
}

func renderFAQ(m *markup, c models.FAQContent, r theme.Resolved) {
	m.header(r, c.Title, c.Subtitle)
	m.openList("div", m.class("list"), []theme.Declaration{
		decl("display", "flex"),
		decl("flex-direction", "column"),
		decl("gap", "12px"),
		decl("max-width", "800px"),
		decl("margin", "0 auto"),
		decl("text-align", "left"),
	}, "items")
	for _, item := range c.Items {
		m.openItem("details", m.class("item"), []theme.Declaration{
			decl("background", r.SurfaceColor),
			decl("border", "1px solid "+r.SurfaceBorder),
			decl("border-radius", r.CardRadius),
			decl("padding", "20px 24px"),
		}, "items", item.ID)
		m.open("summary", m.class("question"), []theme.Declaration{
			decl("font-weight", "600"),
			decl("font-size", r.Text(constants.CardTitleScale)),
			decl("cursor", "pointer"),
		})
		m.itemText("span", "", nil, item.Question, "items", item.ID, "question")
		m.close("summary")
		m.itemText("p", m.class("answer"), []theme.Declaration{
			decl("margin", "12px 0 0"),
			decl("opacity", "0.8"),
		}, item.Answer, "items", item.ID, "answer")
		m.close("details")
	}
	m.close("div")
}
