package render

import (
	"fmt"
	"html/template"
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/export"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
	"landing-builder-backend/internal/theme"
)

// DefaultEndpoint is where the preview script sends edits.
const DefaultEndpoint = "/api/v1/editor"

// Renderer produces the interactive editor preview.
type Renderer struct {
	registry *sections.Registry
	ctx      sections.RenderContext
	endpoint string
}

// New creates a live renderer. A nil context embeds custom markup as-is and an
// empty endpoint uses DefaultEndpoint.
func New(registry *sections.Registry, ctx sections.RenderContext, endpoint string) *Renderer {
	if ctx == nil {
		ctx = sections.TrustedContext{}
	}
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Renderer{registry: registry, ctx: ctx, endpoint: endpoint}
}

// Section renders one section inside its editing wrapper. A section hidden at
// the breakpoint stays in the tree with display:none. Kinds without a renderer
// keep their wrapper and toolbar so they can still be moved or removed.
func (r *Renderer) Section(section models.Section, global models.GlobalStyles, index, total int, breakpoint string) string {
	breakpoint = constants.NormaliseBreakpoint(breakpoint)

	name := string(section.Kind)
	desc, known := r.registry.Get(section.Kind)
	if known {
		name = desc.Metadata.Name
	}

	classes := "lp-live-section"
	if !known {
		classes += " lp-live-section--unknown"
	}
	hidden := !section.Style.Visibility.VisibleAt(breakpoint)

	var sb strings.Builder
	sb.WriteString(`<div class="` + classes + `" ` + attr(AttrSection, section.ID) + ` ` + attr("data-section-kind", string(section.Kind)))
	if hidden {
		sb.WriteString(` data-hidden="true" style="display:none"`)
	}
	sb.WriteString(">")
	writeToolbar(&sb, section.ID, name, index, total)
	if known {
		sb.WriteString(desc.RenderLive(r.ctx, section, global, Binder{}))
	}
	sb.WriteString("</div>")
	return sb.String()
}

func writeToolbar(sb *strings.Builder, id, name string, index, total int) {
	sb.WriteString(`<div class="lp-live-toolbar" contenteditable="false">`)
	sb.WriteString(`<span class="lp-live-toolbar__name">` + template.HTMLEscapeString(name) + `</span>`)
	button := func(action, label string, disabled bool) {
		sb.WriteString(`<button type="button" ` + attr("data-lp-action", action) + ` ` + attr("data-target", id))
		if disabled {
			sb.WriteString(" disabled")
		}
		sb.WriteString(`>` + label + `</button>`)
	}
	button("move-up", "↑", index == 0)
	button("move-down", "↓", index >= total-1)
	button("duplicate", "⧉", false)
	button("remove", "✕", false)
	sb.WriteString(`</div>`)
}

// Sections renders every section in document order.
func (r *Renderer) Sections(doc models.Document, breakpoint string) string {
	var sb strings.Builder
	for i, section := range doc.Sections {
		sb.WriteString(r.Section(section, doc.GlobalStyles, i, len(doc.Sections), breakpoint))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Page renders the full preview document. The head matches the static export
// so fonts, keyframes and base rules resolve identically. Visibility comes
// from the wrapper's data-hidden flag for the chosen breakpoint, not from
// media rules on the editor window.
func (r *Renderer) Page(doc models.Document, breakpoint string) string {
	breakpoint = constants.NormaliseBreakpoint(breakpoint)
	assets := theme.CollectAssets(doc, func(section models.Section) bool {
		_, ok := r.registry.Get(section.Kind)
		return ok
	})

	lang := strings.TrimSpace(doc.Meta.Lang)
	if lang == "" {
		lang = "en"
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&sb, "<html lang=\"%s\">\n<head>\n", template.HTMLEscapeString(lang))
	export.WriteHead(&sb, doc, assets, false)
	sb.WriteString("<style>\n" + editorCSS + "</style>\n")
	sb.WriteString("</head>\n<body class=\"lp-editor\">\n")
	fmt.Fprintf(&sb, "<div class=\"lp-viewport lp-viewport--%s\" style=\"max-width:%s;margin:0 auto\">\n", breakpoint, viewportWidth(breakpoint))
	sb.WriteString("<main class=\"lp-page\">\n")
	if len(doc.Sections) == 0 {
		sb.WriteString("<div class=\"lp-live-empty\">Add a section to start building your page.</div>\n")
	}
	sb.WriteString(r.Sections(doc, breakpoint))
	sb.WriteString("</main>\n</div>\n")
	fmt.Fprintf(&sb, "<script>\n%s</script>\n", strings.ReplaceAll(editorScript, "{{endpoint}}", template.JSEscapeString(r.endpoint)))
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

func viewportWidth(breakpoint string) string {
	switch breakpoint {
	case constants.BreakpointMobile:
		return "375px"
	case constants.BreakpointTablet:
		return "768px"
	default:
		return "100%"
	}
}

const editorCSS = `.lp-live-section{position:relative;outline:2px solid transparent;outline-offset:-2px;transition:outline-color .15s}
.lp-live-section:hover{outline-color:#0ea5e9}
.lp-live-section--unknown{min-height:48px;background:repeating-linear-gradient(45deg,#f1f5f9,#f1f5f9 10px,#e2e8f0 10px,#e2e8f0 20px)}
.lp-live-toolbar{position:absolute;top:8px;right:8px;z-index:10;display:none;gap:4px;align-items:center;background:#0f172a;color:#fff;border-radius:8px;padding:4px 8px;font:12px/1.4 system-ui,sans-serif}
.lp-live-section:hover .lp-live-toolbar{display:flex}
.lp-live-toolbar button{background:transparent;border:0;color:inherit;cursor:pointer;padding:2px 6px;border-radius:4px}
.lp-live-toolbar button:hover{background:rgba(255,255,255,.15)}
.lp-live-toolbar button[disabled]{opacity:.3;cursor:default}
[contenteditable="true"]:hover{outline:1px dashed rgba(14,165,233,.6)}
[contenteditable="true"]:focus{outline:2px solid #0ea5e9}
.lp-live-empty{padding:96px 24px;text-align:center;color:#64748b;font:16px system-ui,sans-serif}
`

const editorScript = `(function () {
  var endpoint = "{{endpoint}}";
  function send(method, path, body) {
    return fetch(endpoint + path, {
      method: method,
      headers: {"Content-Type": "application/json"},
      body: body === undefined ? undefined : JSON.stringify(body)
    }).then(function (res) {
      if (!res.ok) { throw new Error("edit rejected: " + res.status); }
      return res;
    });
  }
  function reload() { window.location.reload(); }
  document.addEventListener("focusout", function (event) {
    var el = event.target.closest("[data-lp-field]");
    if (!el) { return; }
    var section = el.closest("[data-section-id]");
    var item = el.closest("[data-lp-item]");
    send("POST", "/edits", {
      sectionId: section.getAttribute("data-section-id"),
      action: "set",
      field: el.getAttribute("data-lp-field"),
      list: item ? item.getAttribute("data-lp-list") : "",
      itemId: item ? item.getAttribute("data-lp-item") : "",
      value: el.innerText
    }).catch(function (err) { console.error(err); });
  });
  document.addEventListener("click", function (event) {
    var button = event.target.closest("[data-lp-action]");
    if (button) {
      event.preventDefault();
      var id = encodeURIComponent(button.getAttribute("data-target"));
      var action = button.getAttribute("data-lp-action");
      var request;
      if (action === "move-up") { request = send("POST", "/sections/" + id + "/move", {direction: "up"}); }
      if (action === "move-down") { request = send("POST", "/sections/" + id + "/move", {direction: "down"}); }
      if (action === "duplicate") { request = send("POST", "/sections/" + id + "/duplicate"); }
      if (action === "remove") { request = send("DELETE", "/sections/" + id); }
      if (request) { request.then(reload).catch(function (err) { console.error(err); }); }
      return;
    }
    if (event.target.closest("[contenteditable=true], a")) { event.preventDefault(); }
  });
})();
`
