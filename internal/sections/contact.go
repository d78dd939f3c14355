package sections

import (
	"html/template"
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/theme"
)

func contactDescriptor() *SectionDescriptor {
	return describe[models.ContactContent](SectionMetadata{
		Kind:        models.KindContact,
		Name:        "Contact form",
		Description: "Form with configurable fields and a submit button",
		Category:    "conversion",
		Icon:        "mail",
	}, renderContact)
}

func renderContact(m *markup, c models.ContactContent, r theme.Resolved) {
	m.header(r, c.Title, c.Subtitle)

	action := strings.TrimSpace(c.Action)
	attrs := []string{`method="post"`}
	if action != "" {
		attrs = append(attrs, attr("action", safeHref(action)))
	}
	m.open("form", m.class("form"), []theme.Declaration{
		decl("max-width", "640px"),
		decl("margin", "0 auto"),
		decl("text-align", "left"),
	}, attrs...)

	m.openList("div", m.class("fields"), []theme.Declaration{
		decl("display", "flex"),
		decl("flex-wrap", "wrap"),
		decl("gap", "16px"),
	}, "fields")
	for _, field := range c.Fields {
		renderFormField(m, field, r)
	}
	m.close("div")

	if strings.TrimSpace(c.SubmitText) != "" {
		m.open("div", m.class("actions"), []theme.Declaration{
			decl("margin-top", "24px"),
			decl("text-align", r.TextAlign),
		})
		m.open("button", "lp-button lp-button--"+r.Button.HoverEffect, with(r.ButtonDeclarations(), decl("border-style", "solid")),
			`type="submit"`, m.field("submitText"))
		m.raw(template.HTMLEscapeString(c.SubmitText))
		m.close("button")
		m.close("div")
	}
	m.close("form")
}

func renderFormField(m *markup, field models.FormField, r theme.Resolved) {
	width := "100%"
	if field.Width == "half" {
		width = "calc(50% - 8px)"
	}
	m.openItem("div", m.class("field"), []theme.Declaration{
		decl("flex", "1 1 "+width),
		decl("min-width", "200px"),
	}, "fields", field.ID)

	name := field.ID
	label := field.Label
	if field.Required && label != "" {
		label += " *"
	}
	m.open("label", m.class("label"), []theme.Declaration{
		decl("display", "block"),
		decl("font-weight", "500"),
		decl("font-size", r.Text(constants.SmallTextScale)),
		decl("margin-bottom", "6px"),
	}, attr("for", "field-"+name), m.itemField("fields", field.ID, "label"))
	m.raw(template.HTMLEscapeString(label))
	m.close("label")

	input := []theme.Declaration{
		decl("width", "100%"),
		decl("padding", "12px 16px"),
		decl("border", "1px solid "+r.SurfaceBorder),
		decl("border-radius", r.Button.Radius),
		decl("background", r.SurfaceColor),
		decl("color", "inherit"),
		decl("font", "inherit"),
		decl("box-sizing", "border-box"),
	}
	common := []string{attr("id", "field-"+name), attr("name", name)}
	if field.Required {
		common = append(common, "required")
	}

	switch field.Type {
	case "textarea":
		m.open("textarea", m.class("input"), input, append(common, `rows="5"`, attr("placeholder", field.Placeholder))...)
		m.close("textarea")
	case "select":
		m.open("select", m.class("input"), input, common...)
		for _, option := range field.Options {
			m.raw("<option " + attr("value", option) + ">" + template.HTMLEscapeString(option) + "</option>")
		}
		m.close("select")
	case "checkbox":
		m.void("input", m.class("checkbox"), nil, append(common, `type="checkbox"`)...)
	default:
		inputType := field.Type
		if !isTextInputType(inputType) {
			inputType = "text"
		}
		m.void("input", m.class("input"), input, append(common, attr("type", inputType), attr("placeholder", field.Placeholder))...)
	}
	m.close("div")
}

func isTextInputType(kind string) bool {
	switch kind {
	case "text", "email", "tel", "number", "url", "date":
		return true
	}
	return false
}
