package render

import (
	"regexp"
	"strings"
	"testing"

	"landing-builder-backend/internal/builder"
	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/export"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
	"landing-builder-backend/internal/theme"
)

var liveAttrs = regexp.MustCompile(` (contenteditable="true"|spellcheck="false"|data-lp-(field|list|item)="[^"]*")`)

func buildDoc(t *testing.T, reg *sections.Registry, kinds ...models.SectionKind) models.Document {
	t.Helper()
	doc := theme.NewDocument("Preview", "en")
	for _, kind := range kinds {
		var err error
		doc, _, err = builder.AddSection(doc, reg, kind)
		if err != nil {
			t.Fatalf("AddSection(%s) returned error: %v", kind, err)
		}
	}
	return doc
}

func TestSectionWrapsWithBindings(t *testing.T) {
	reg := sections.DefaultRegistry()
	doc := buildDoc(t, reg, models.KindFeatures)
	section := doc.Sections[0]

	out := New(reg, nil, "").Section(section, doc.GlobalStyles, 0, 1, constants.BreakpointDesktop)

	if !strings.Contains(out, `data-section-id="`+section.ID+`"`) {
		t.Fatalf("expected wrapper with section id, got %s", out)
	}
	if !strings.Contains(out, `data-lp-field="title"`) {
		t.Fatal("expected the title to be editable")
	}
	if !strings.Contains(out, `data-lp-list="items"`) {
		t.Fatal("expected the item list to be bound")
	}
	items := section.Content.(models.FeaturesContent).Items
	if got := strings.Count(out, `data-lp-item="`+items[0].ID+`"`); got < 1 {
		t.Fatal("expected item bindings")
	}
	if strings.Contains(out, "display:none") {
		t.Fatal("did not expect a visible section to be hidden")
	}
}

func TestLiveMarkupMatchesStaticWithoutBindings(t *testing.T) {
	reg := sections.DefaultRegistry()
	doc := buildDoc(t, reg, models.SectionKinds()...)

	for _, section := range doc.Sections {
		desc, ok := reg.Get(section.Kind)
		if !ok {
			t.Fatalf("kind %s not registered", section.Kind)
		}
		live := desc.RenderLive(sections.TrustedContext{}, section, doc.GlobalStyles, Binder{})
		static := desc.RenderStatic(sections.TrustedContext{}, section, doc.GlobalStyles)
		if got := liveAttrs.ReplaceAllString(live, ""); got != static {
			t.Fatalf("%s: live markup without bindings differs from static\nlive:   %s\nstatic: %s", section.Kind, got, static)
		}
	}
}

func TestHiddenSectionsStayInTree(t *testing.T) {
	reg := sections.DefaultRegistry()
	doc := buildDoc(t, reg, models.KindHero, models.KindCTA)
	doc.Sections[1].Style.Visibility.Mobile = false

	renderer := New(reg, nil, "")
	mobile := renderer.Sections(doc, constants.BreakpointMobile)
	if strings.Count(mobile, `class="lp-live-section"`) != 2 {
		t.Fatal("expected both sections to be rendered")
	}
	if strings.Count(mobile, `data-hidden="true"`) != 1 {
		t.Fatal("expected the mobile-hidden section to be marked hidden")
	}

	desktop := renderer.Sections(doc, constants.BreakpointDesktop)
	if strings.Contains(desktop, `data-hidden="true"`) {
		t.Fatal("did not expect hidden sections on desktop")
	}
}

func TestPreviewVisibilityFollowsBreakpoint(t *testing.T) {
	reg := sections.DefaultRegistry()
	doc := buildDoc(t, reg, models.KindHero)
	doc.Sections[0].Style.Visibility.Desktop = false

	renderer := New(reg, nil, "")
	mobile := renderer.Page(doc, constants.BreakpointMobile)
	if strings.Contains(mobile, `data-hidden="true"`) {
		t.Fatal("expected the section to be visible in the mobile preview")
	}
	if strings.Contains(mobile, "{.lp-hide-desktop{display:none") {
		t.Fatal("did not expect viewport media rules in the preview")
	}

	desktop := renderer.Page(doc, constants.BreakpointDesktop)
	if strings.Count(desktop, `data-hidden="true"`) != 1 {
		t.Fatal("expected the section to be hidden in the desktop preview")
	}

	static := export.NewExporter(reg, nil).HTML(doc)
	if !strings.Contains(static, "{.lp-hide-desktop{display:none!important}}") {
		t.Fatal("expected the export to keep the media rules")
	}
}

func TestUnknownKindKeepsWrapper(t *testing.T) {
	reg := sections.DefaultRegistry()
	section := models.Section{ID: "odd", Kind: "carousel", Content: models.UnknownContent{SectionKind: "carousel"}}

	out := New(reg, nil, "").Section(section, theme.DefaultGlobalStyles(), 0, 1, "")
	if !strings.Contains(out, "lp-live-section--unknown") {
		t.Fatalf("expected unknown wrapper, got %s", out)
	}
	if strings.Contains(out, "<section") {
		t.Fatal("expected no section markup for an unknown kind")
	}
	if !strings.Contains(out, `data-lp-action="remove"`) {
		t.Fatal("expected the toolbar to allow removal")
	}
}

func TestToolbarDisablesBoundaryMoves(t *testing.T) {
	reg := sections.DefaultRegistry()
	doc := buildDoc(t, reg, models.KindHero, models.KindFooter)
	renderer := New(reg, nil, "")

	first := renderer.Section(doc.Sections[0], doc.GlobalStyles, 0, 2, "")
	if !strings.Contains(first, `data-lp-action="move-up" data-target="`+doc.Sections[0].ID+`" disabled`) {
		t.Fatal("expected move up to be disabled on the first section")
	}
	last := renderer.Section(doc.Sections[1], doc.GlobalStyles, 1, 2, "")
	if !strings.Contains(last, `data-lp-action="move-down" data-target="`+doc.Sections[1].ID+`" disabled`) {
		t.Fatal("expected move down to be disabled on the last section")
	}
}

func TestPageSharesHeadWithExport(t *testing.T) {
	reg := sections.DefaultRegistry()
	doc := buildDoc(t, reg, models.KindHero, models.KindPricing)
	doc.Sections[1].Style.Font.Family = "'Lora', serif"

	page := New(reg, nil, "/custom/").Page(doc, constants.BreakpointMobile)
	static := export.NewExporter(reg, nil).HTML(doc)

	for _, needle := range []string{"family=Lora", "family=Noto+Sans+JP", "@keyframes fadeIn"} {
		if strings.Count(page, needle) != strings.Count(static, needle) {
			t.Fatalf("expected %q to appear equally in preview and export", needle)
		}
	}
	if !strings.Contains(page, `var endpoint = "/custom";`) {
		t.Fatal("expected the configured endpoint in the script")
	}
	if !strings.Contains(page, "max-width:375px") {
		t.Fatal("expected the mobile viewport width")
	}
}
