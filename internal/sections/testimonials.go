package sections

import (
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/theme"
)

const maxRating = 5

func testimonialsDescriptor() *SectionDescriptor {
	return describe[models.TestimonialsContent](SectionMetadata{
		Kind:        models.KindTestimonials,
		Name:        "Testimonials",
		Description: "Customer quotes with name, role and rating",
		Category:    "social-proof",
		Icon:        "message-circle",
	}, renderTestimonials)
}

func renderTestimonials(m *markup, c models.TestimonialsContent, r theme.Resolved) {
	m.header(r, c.Title, c.Subtitle)
	m.openList("div", m.class("grid"), r.GridDeclarations(r.Columns), "items")
	for _, item := range c.Items {
		m.openItem("figure", m.class("item"), with(r.CardDeclarations(), decl("margin", "0")), "items", item.ID)
		if stars := ratingStars(item.Rating); stars != "" {
			m.open("div", m.class("rating"), []theme.Declaration{
				decl("color", r.AccentColor),
				decl("margin-bottom", "12px"),
				decl("letter-spacing", "2px"),
			}, attr("aria-label", stars))
			m.raw(stars)
			m.close("div")
		}
		m.itemText("blockquote", m.class("quote"), []theme.Declaration{
			decl("font-size", r.Text(constants.QuoteScale)),
			decl("font-style", "italic"),
			decl("margin", "0 0 24px"),
		}, item.Content, "items", item.ID, "content")

		m.open("figcaption", m.class("author"), []theme.Declaration{
			decl("display", "flex"),
			decl("align-items", "center"),
			decl("gap", "12px"),
			decl("justify-content", r.JustifyContent),
		})
		if strings.TrimSpace(item.Avatar) != "" {
			m.void("img", m.class("avatar"), []theme.Declaration{
				decl("width", "48px"),
				decl("height", "48px"),
				decl("border-radius", "50%"),
				decl("object-fit", "cover"),
			}, attr("src", item.Avatar), attr("alt", item.Name))
		}
		m.open("div", "", nil)
		m.itemText("div", m.class("name"), []theme.Declaration{decl("font-weight", "600")}, item.Name, "items", item.ID, "name")
		m.itemText("div", m.class("role"), []theme.Declaration{
			decl("opacity", "0.7"),
			decl("font-size", r.Text(constants.SmallTextScale)),
		}, joinNonEmpty(", ", item.Role, item.Company), "items", item.ID, "role")
		m.close("div")
		m.close("figcaption")
		m.close("figure")
	}
	m.close("div")
}

func ratingStars(rating int) string {
	if rating <= 0 {
		return ""
	}
	if rating > maxRating {
		rating = maxRating
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", maxRating-rating)
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, sep)
}
