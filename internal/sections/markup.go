package sections

import (
	"html/template"
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/theme"
)

// EditBinder produces the attributes that make an element editable in the
// live preview. Static rendering uses no binder, so the same markup function
// yields inert output.
type EditBinder interface {
	Field(sectionID, field string) string
	List(sectionID, list string) string
	Item(sectionID, list, itemID string) string
	ItemField(sectionID, list, itemID, field string) string
}

// RenderContext exposes the capabilities section markup needs beyond the
// resolved style.
type RenderContext interface {
	// SanitizeHTML cleans operator markup before embedding. Identity when trusted.
	SanitizeHTML(input string) string
	// Markdown converts markdown to HTML.
	Markdown(input string) string
}

type markup struct {
	sb        strings.Builder
	sectionID string
	kind      models.SectionKind
	binder    EditBinder
	ctx       RenderContext
}

func (m *markup) String() string { return m.sb.String() }

func (m *markup) raw(s string) { m.sb.WriteString(s) }

func (m *markup) open(tag, class string, decls []theme.Declaration, attrs ...string) {
	m.sb.WriteString("<" + tag)
	if class != "" {
		m.sb.WriteString(` class="` + template.HTMLEscapeString(class) + `"`)
	}
	if style := theme.InlineStyle(decls...); style != "" {
		m.sb.WriteString(` style="` + template.HTMLEscapeString(style) + `"`)
	}
	for _, attr := range attrs {
		if attr != "" {
			m.sb.WriteString(" " + attr)
		}
	}
	m.sb.WriteString(">")
}

func (m *markup) close(tag string) { m.sb.WriteString("</" + tag + ">") }

func (m *markup) void(tag, class string, decls []theme.Declaration, attrs ...string) {
	m.open(tag, class, decls, attrs...)
}

func (m *markup) field(field string) string {
	if m.binder == nil {
		return ""
	}
	return m.binder.Field(m.sectionID, field)
}

func (m *markup) list(list string) string {
	if m.binder == nil {
		return ""
	}
	return m.binder.List(m.sectionID, list)
}

func (m *markup) item(list, id string) string {
	if m.binder == nil {
		return ""
	}
	return m.binder.Item(m.sectionID, list, id)
}

func (m *markup) itemField(list, id, field string) string {
	if m.binder == nil {
		return ""
	}
	return m.binder.ItemField(m.sectionID, list, id, field)
}

// text writes an escaped text element. Empty values produce nothing.
func (m *markup) text(tag, class string, decls []theme.Declaration, value, field string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	m.open(tag, class, decls, m.field(field))
	m.sb.WriteString(template.HTMLEscapeString(value))
	m.close(tag)
}

func (m *markup) itemText(tag, class string, decls []theme.Declaration, value, list, id, field string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	m.open(tag, class, decls, m.itemField(list, id, field))
	m.sb.WriteString(template.HTMLEscapeString(value))
	m.close(tag)
}

func (m *markup) openItem(tag, class string, decls []theme.Declaration, list, id string) {
	m.open(tag, class, decls, m.item(list, id))
}

func (m *markup) openList(tag, class string, decls []theme.Declaration, list string) {
	m.open(tag, class, decls, m.list(list))
}

// button writes a primary or secondary call to action.
func (m *markup) button(r theme.Resolved, secondary bool, text, href, textField string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	decls := r.ButtonDeclarations()
	class := "lp-button lp-button--" + r.Button.HoverEffect
	if secondary {
		decls = r.SecondaryButtonDeclarations()
		class = "lp-button lp-button--secondary lp-button--" + r.Button.HoverEffect
	}
	m.open("a", class, decls, attr("href", safeHref(href)), m.field(textField))
	m.sb.WriteString(template.HTMLEscapeString(text))
	m.close("a")
}

// header writes the shared section title and subtitle block.
func (m *markup) header(r theme.Resolved, title, subtitle string) {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(subtitle) == "" {
		return
	}
	m.open("div", m.class("header"), []theme.Declaration{{Property: "margin-bottom", Value: "48px"}})
	m.text("h2", m.class("title"), r.HeadingDeclarations(constants.SectionHeadingScale), title, "title")
	m.text("p", m.class("subtitle"), []theme.Declaration{
		{Property: "font-size", Value: r.Text(constants.SubtitleScale)},
		{Property: "opacity", Value: "0.8"},
		{Property: "max-width", Value: "720px"},
		{Property: "margin", Value: marginForAlign(r.TextAlign)},
	}, subtitle, "subtitle")
	m.close("div")
}

func (m *markup) class(element string) string {
	return "lp-" + string(m.kind) + "__" + element
}

// openSection writes the section wrapper and the width-limiting container.
func (m *markup) openSection(r theme.Resolved) {
	classes := []string{"lp-section", "lp-section--" + string(m.kind)}
	for _, breakpoint := range r.HiddenOn {
		classes = append(classes, "lp-hide-"+breakpoint)
	}
	style := theme.InlineStyle(r.SectionDeclarations()...)
	if r.CustomCSS != "" {
		style += ";" + r.CustomCSS
	}
	m.sb.WriteString(`<section id="section-` + template.HTMLEscapeString(m.sectionID) + `"`)
	m.sb.WriteString(` class="` + strings.Join(classes, " ") + `"`)
	m.sb.WriteString(` data-kind="` + string(m.kind) + `"`)
	m.sb.WriteString(` style="` + template.HTMLEscapeString(style) + `">`)
	if r.HasOverlay {
		m.open("div", "lp-overlay", []theme.Declaration{
			{Property: "position", Value: "absolute"},
			{Property: "inset", Value: "0"},
			{Property: "background", Value: r.OverlayColor},
			{Property: "opacity", Value: r.OverlayOpacity},
			{Property: "pointer-events", Value: "none"},
		})
		m.close("div")
	}
	m.open("div", "lp-container", r.ContainerDeclarations())
}

func (m *markup) closeSection() {
	m.close("div")
	m.close("section")
}

func attr(name, value string) string {
	return name + `="` + template.HTMLEscapeString(value) + `"`
}

func safeHref(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return "#"
	}
	if strings.HasPrefix(strings.ToLower(href), "javascript:") {
		return "#"
	}
	return href
}

func marginForAlign(align string) string {
	switch align {
	case "left":
		return "0"
	case "right":
		return "0 0 0 auto"
	default:
		return "0 auto"
	}
}

func decl(property, value string) theme.Declaration {
	return theme.Declaration{Property: property, Value: value}
}

// with returns a copy of decls extended by extra.
func with(decls []theme.Declaration, extra ...theme.Declaration) []theme.Declaration {
	out := make([]theme.Declaration, 0, len(decls)+len(extra))
	out = append(out, decls...)
	return append(out, extra...)
}
