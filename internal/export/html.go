package export

import (
	"fmt"
	"html/template"
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
	"landing-builder-backend/internal/theme"
	"landing-builder-backend/pkg/utils"
	"landing-builder-backend/pkg/validator"
)

// Exporter produces the standalone static page for a document.
type Exporter struct {
	registry *sections.Registry
	ctx      sections.RenderContext
}

// NewExporter creates an exporter over the registry. A nil context embeds
// custom markup as-is.
func NewExporter(registry *sections.Registry, ctx sections.RenderContext) *Exporter {
	if ctx == nil {
		ctx = sections.TrustedContext{}
	}
	return &Exporter{registry: registry, ctx: ctx}
}

// Filename returns the download name for the document.
func Filename(doc models.Document) string {
	return utils.ExportFilename(doc.PageTitle, "html")
}

// HTML renders the document as one self-contained page: inline styles, the
// base stylesheet, keyframes for the animations in use and one font link per
// distinct family. Sections appear in document order and carry no editing
// affordances.
func (e *Exporter) HTML(doc models.Document) string {
	assets := theme.CollectAssets(doc, e.renderable)

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&sb, "<html lang=\"%s\">\n<head>\n", escape(langOf(doc.Meta)))
	WriteHead(&sb, doc, assets, true)
	sb.WriteString("</head>\n<body>\n<main class=\"lp-page\">\n")

	for _, section := range doc.Sections {
		out := e.registry.RenderStatic(e.ctx, section, doc.GlobalStyles)
		if out == "" {
			continue
		}
		sb.WriteString(out)
		sb.WriteString("\n")
	}

	sb.WriteString("</main>\n</body>\n</html>\n")
	return sb.String()
}

func (e *Exporter) renderable(section models.Section) bool {
	_, ok := e.registry.Get(section.Kind)
	return ok
}

// WriteHead writes the page metadata, font links and the shared stylesheet.
// Breakpoint visibility rules are included only when visibilityRules is set.
func WriteHead(sb *strings.Builder, doc models.Document, assets theme.PageAssets, visibilityRules bool) {
	meta := doc.Meta
	// The strict policy strips tags and escapes the remaining text.
	title := validator.SanitizeString(doc.PageTitle)
	description := validator.SanitizeString(meta.Description)

	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(sb, "<title>%s</title>\n", title)
	if description != "" {
		fmt.Fprintf(sb, "<meta name=\"description\" content=\"%s\">\n", description)
	}
	if validator.IsCSSColor(meta.ThemeColor) {
		fmt.Fprintf(sb, "<meta name=\"theme-color\" content=\"%s\">\n", escape(meta.ThemeColor))
	}
	if title != "" {
		fmt.Fprintf(sb, "<meta property=\"og:title\" content=\"%s\">\n", title)
	}
	if description != "" {
		fmt.Fprintf(sb, "<meta property=\"og:description\" content=\"%s\">\n", description)
	}
	if image := strings.TrimSpace(meta.OGImage); image != "" {
		fmt.Fprintf(sb, "<meta property=\"og:image\" content=\"%s\">\n", escape(image))
	}
	if icon := strings.TrimSpace(meta.Favicon); icon != "" {
		fmt.Fprintf(sb, "<link rel=\"icon\" href=\"%s\">\n", escape(icon))
	}

	if len(assets.FontLinks) > 0 {
		for i, origin := range constants.FontPreconnects {
			if i > 0 {
				fmt.Fprintf(sb, "<link rel=\"preconnect\" href=\"%s\" crossorigin>\n", origin)
				continue
			}
			fmt.Fprintf(sb, "<link rel=\"preconnect\" href=\"%s\">\n", origin)
		}
		for _, link := range assets.FontLinks {
			fmt.Fprintf(sb, "<link rel=\"stylesheet\" href=\"%s\">\n", escape(link))
		}
	}

	sb.WriteString("<style>\n")
	sb.WriteString(theme.BaseStylesheet(doc.GlobalStyles))
	if visibilityRules {
		sb.WriteString(theme.VisibilityStylesheet())
	}
	sb.WriteString(theme.Keyframes(assets.Animations))
	if css := strings.TrimSpace(meta.CustomCSS); css != "" {
		sb.WriteString(strings.ReplaceAll(css, "</style", "<\\/style"))
		sb.WriteString("\n")
	}
	sb.WriteString("</style>\n")

	if head := strings.TrimSpace(meta.CustomHead); head != "" {
		sb.WriteString(head)
		sb.WriteString("\n")
	}
}

func langOf(meta models.PageMeta) string {
	if lang := strings.TrimSpace(meta.Lang); lang != "" {
		return lang
	}
	return "en"
}

func escape(value string) string {
	return template.HTMLEscapeString(value)
}
