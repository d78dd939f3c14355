package sections

import (
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/theme"
)

func featuresDescriptor() *SectionDescriptor {
	return describe[models.FeaturesContent](SectionMetadata{
		Kind:        models.KindFeatures,
		Name:        "Features",
		Description: "Grid of feature cards with icon, title and description",
		Category:    "content",
		Icon:        "grid",
	}, renderFeatures)
}

func statsDescriptor() *SectionDescriptor {
	return describe[models.StatsContent](SectionMetadata{
		Kind:        models.KindStats,
		Name:        "Stats",
		Description: "Key figures displayed in a row",
		Category:    "social-proof",
		Icon:        "bar-chart",
	}, renderStats)
}

func renderFeatures(m *markup, c models.FeaturesContent, r theme.Resolved) {
	m.header(r, c.Title, c.Subtitle)
	m.openList("div", m.class("grid"), r.GridDeclarations(r.Columns), "items")
	for _, item := range c.Items {
		m.openItem("div", m.class("item"), r.CardDeclarations(), "items", item.ID)
		if strings.TrimSpace(item.Icon) != "" {
			m.itemText("div", m.class("icon"), []theme.Declaration{
				decl("font-size", "32px"),
				decl("margin-bottom", "16px"),
				decl("color", r.PrimaryColor),
			}, item.Icon, "items", item.ID, "icon")
		}
		m.itemText("h3", m.class("item-title"), []theme.Declaration{
			decl("font-family", r.HeadingFont),
			decl("font-size", r.Text(constants.CardTitleScale)),
			decl("font-weight", "600"),
			decl("margin", "0 0 8px"),
		}, item.Title, "items", item.ID, "title")
		m.itemText("p", m.class("item-description"), []theme.Declaration{
			decl("opacity", "0.8"),
			decl("margin", "0"),
		}, item.Description, "items", item.ID, "description")
		m.close("div")
	}
	m.close("div")
}

func renderStats(m *markup, c models.StatsContent, r theme.Resolved) {
	m.header(r, c.Title, c.Subtitle)
	m.openList("div", m.class("grid"), r.GridDeclarations(r.Columns), "items")
	for _, item := range c.Items {
		m.openItem("div", m.class("item"), []theme.Declaration{decl("text-align", "center")}, "items", item.ID)
		m.itemText("div", m.class("value"), []theme.Declaration{
			decl("font-family", r.HeadingFont),
			decl("font-size", r.Heading(constants.StatValueScale)),
			decl("font-weight", "800"),
			decl("line-height", "1"),
			decl("margin-bottom", "8px"),
			decl("background", r.AccentGradient),
			decl("-webkit-background-clip", "text"),
			decl("background-clip", "text"),
			decl("-webkit-text-fill-color", "transparent"),
		}, item.Value, "items", item.ID, "value")
		m.itemText("div", m.class("label"), []theme.Declaration{
			decl("opacity", "0.8"),
			decl("font-size", r.Text(constants.SmallTextScale)),
		}, item.Label, "items", item.ID, "label")
		m.close("div")
	}
	m.close("div")
}
