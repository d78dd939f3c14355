package export

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"landing-builder-backend/internal/builder"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
	"landing-builder-backend/internal/theme"
	"landing-builder-backend/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func documentWithEveryKind(t *testing.T, reg *sections.Registry) models.Document {
	t.Helper()
	doc := theme.NewDocument("Every kind", "en")
	for _, kind := range models.SectionKinds() {
		var err error
		doc, _, err = builder.AddSection(doc, reg, kind)
		if err != nil {
			t.Fatalf("AddSection(%s) returned error: %v", kind, err)
		}
	}
	return doc
}

func TestJSONRoundTrip(t *testing.T) {
	reg := sections.DefaultRegistry()
	doc := documentWithEveryKind(t, reg)
	doc.Meta.Description = "All sections"
	doc.Sections[0].Style.Background.Type = "gradient"
	doc.Sections[1].Style.Padding.Top = 11

	data, err := ExportJSON(doc)
	if err != nil {
		t.Fatalf("ExportJSON returned error: %v", err)
	}
	imported, err := ImportJSON(data, ImportOptions{})
	if err != nil {
		t.Fatalf("ImportJSON returned error: %v", err)
	}
	if !reflect.DeepEqual(doc, imported) {
		t.Fatalf("round trip changed the document\nbefore: %+v\nafter:  %+v", doc, imported)
	}
}

func TestImportRejectsMissingKeys(t *testing.T) {
	cases := []struct {
		name     string
		payload  string
		expected error
	}{
		{name: "Not JSON", payload: "<html>", expected: ErrInvalidJSON},
		{name: "Array", payload: "[]", expected: ErrInvalidJSON},
		{name: "No sections", payload: `{"globalStyles": {}}`, expected: ErrMissingSections},
		{name: "No global styles", payload: `{"sections": []}`, expected: ErrMissingGlobalStyles},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ImportJSON([]byte(tc.payload), ImportOptions{})
			if !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestImportFillsAndClampsStyle(t *testing.T) {
	payload := `{
		"pageTitle": "Imported",
		"globalStyles": {"primaryColor": "not a colour"},
		"sections": [
			{"id": "a", "kind": "Hero", "content": {"title": "Hi"}, "style": {"columns": 40, "padding": {"top": -5}}},
			{"id": "a", "kind": "spacer", "content": {"height": 12}}
		]
	}`
	doc, err := ImportJSON([]byte(payload), ImportOptions{})
	if err != nil {
		t.Fatalf("ImportJSON returned error: %v", err)
	}

	if doc.GlobalStyles.PrimaryColor != theme.DefaultGlobalStyles().PrimaryColor {
		t.Fatalf("expected invalid colour to fall back, got %s", doc.GlobalStyles.PrimaryColor)
	}
	if doc.GlobalStyles.BodyFont == "" {
		t.Fatal("expected missing theme fields to take defaults")
	}

	hero := doc.Sections[0]
	if hero.Kind != models.KindHero {
		t.Fatalf("expected normalised kind, got %s", hero.Kind)
	}
	if hero.Style.Columns != 6 {
		t.Fatalf("expected columns clamped to 6, got %d", hero.Style.Columns)
	}
	if hero.Style.Padding.Top != 0 {
		t.Fatalf("expected negative padding clamped to 0, got %d", hero.Style.Padding.Top)
	}
	if hero.Style.Padding.Left != theme.DefaultStyle(models.KindHero).Padding.Left {
		t.Fatalf("expected missing padding to keep the default, got %d", hero.Style.Padding.Left)
	}
	if hero.Content.(models.HeroContent).Title != "Hi" {
		t.Fatalf("unexpected content %+v", hero.Content)
	}

	if doc.Sections[1].ID == "a" || doc.Sections[1].ID == "" {
		t.Fatalf("expected duplicate id to be replaced, got %q", doc.Sections[1].ID)
	}
	if doc.Sections[1].Style != theme.DefaultStyle(models.KindSpacer) {
		t.Fatal("expected missing style to equal the kind default")
	}
}

func TestImportedStylesPassValidation(t *testing.T) {
	hook := test.NewLocal(logger.Logger)
	payload := `{"pageTitle":"x","globalStyles":{},"sections":[{"id":"a","kind":"cta","style":{
		"padding":{"top":-5},"font":{"weight":1234,"lineHeight":-1},"border":{"style":"wavy"},
		"animation":{"kind":"spin","duration":0},"background":{"gradient":{"angle":-30}}}}]}`

	doc, err := ImportJSON([]byte(payload), ImportOptions{})
	if err != nil {
		t.Fatalf("ImportJSON returned error: %v", err)
	}
	if err := theme.ValidateStyle(doc.Sections[0].Style); err != nil {
		t.Fatalf("expected a valid clamped style, got %v", err)
	}
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			t.Fatalf("did not expect a validation warning, got %q", entry.Message)
		}
	}
}

func TestValidatedStyleFallsBackToDefaults(t *testing.T) {
	hook := test.NewLocal(logger.Logger)
	section := models.Section{ID: "a", Kind: models.KindFAQ, Style: theme.DefaultStyle(models.KindFAQ)}
	section.Style.Border.Style = "wavy"

	if got := validatedStyle(section); got != theme.DefaultStyle(models.KindFAQ) {
		t.Fatalf("expected the kind defaults, got %+v", got)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel || entry.Data["section_id"] != "a" {
		t.Fatalf("expected a warning for the section, got %+v", entry)
	}
}

func TestImportRegeneratesIDsOnRequest(t *testing.T) {
	reg := sections.DefaultRegistry()
	doc := documentWithEveryKind(t, reg)
	data, err := ExportJSON(doc)
	if err != nil {
		t.Fatalf("ExportJSON returned error: %v", err)
	}

	imported, err := ImportJSON(data, ImportOptions{RegenerateIDs: true})
	if err != nil {
		t.Fatalf("ImportJSON returned error: %v", err)
	}
	for i := range doc.Sections {
		if imported.Sections[i].ID == doc.Sections[i].ID {
			t.Fatalf("expected section %d to get a new id", i)
		}
		imported.Sections[i].ID = doc.Sections[i].ID
	}
	if !reflect.DeepEqual(doc, imported) {
		t.Fatal("expected everything except ids to survive")
	}
}

func TestImportAssignsMissingAndRepeatedItemIDs(t *testing.T) {
	payload := `{"pageTitle":"FAQ","globalStyles":{},"sections":[{"id":"faq","kind":"faq","content":{
		"title":"Questions","items":[{"question":"a"},{"question":"b"},{"id":"x","question":"c"},{"id":"x","question":"d"}]}}]}`

	doc, err := ImportJSON([]byte(payload), ImportOptions{})
	if err != nil {
		t.Fatalf("ImportJSON returned error: %v", err)
	}

	items := doc.Sections[0].Content.(models.FAQContent).Items
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	seen := map[string]bool{}
	for _, item := range items {
		if item.ID == "" || seen[item.ID] {
			t.Fatalf("expected unique non-empty item ids, got %+v", items)
		}
		seen[item.ID] = true
	}
	if items[2].ID != "x" || items[3].Question != "d" {
		t.Fatalf("expected the first x to keep its id and order to hold, got %+v", items)
	}
}

func TestUnknownKindSurvivesAndRendersEmpty(t *testing.T) {
	payload := `{"globalStyles": {}, "sections": [
		{"id": "x", "kind": "carousel", "content": {"slides": [1, 2, 3]}},
		{"id": "y", "kind": "cta", "content": {"title": "Join"}}
	]}`
	doc, err := ImportJSON([]byte(payload), ImportOptions{})
	if err != nil {
		t.Fatalf("ImportJSON returned error: %v", err)
	}

	data, err := ExportJSON(doc)
	if err != nil {
		t.Fatalf("ExportJSON returned error: %v", err)
	}
	var exported struct {
		Sections []struct {
			Content json.RawMessage `json:"content"`
		} `json:"sections"`
	}
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if got := string(exported.Sections[0].Content); !strings.Contains(got, `"slides"`) {
		t.Fatalf("expected unknown content to be preserved, got %s", got)
	}

	page := NewExporter(sections.DefaultRegistry(), nil).HTML(doc)
	if strings.Contains(page, "carousel") {
		t.Fatal("expected unknown section to render nothing")
	}
	if !strings.Contains(page, `id="section-y"`) {
		t.Fatal("expected the known section to still render")
	}
}

func TestHTMLExport(t *testing.T) {
	reg := sections.DefaultRegistry()
	doc := theme.NewDocument("Launch <Day>", "en")
	doc.Meta.Description = "Product & launch"

	var ids []string
	for _, kind := range []models.SectionKind{models.KindHero, models.KindFeatures, models.KindSpacer, models.KindFooter} {
		var (
			id  string
			err error
		)
		doc, id, err = builder.AddSection(doc, reg, kind)
		if err != nil {
			t.Fatalf("AddSection returned error: %v", err)
		}
		ids = append(ids, id)
	}
	doc.Sections[1].Style.Font.Family = "'Inter', sans-serif"
	doc.Sections[1].Style.Animation.Kind = "zoomIn"
	doc.Sections[3].Style.Font.Family = "'inter', sans-serif"

	page := NewExporter(reg, nil).HTML(doc)

	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Fatal("expected a doctype")
	}
	if strings.Contains(page, "<Day>") {
		t.Fatal("expected title markup to be stripped or escaped")
	}
	if strings.Count(page, "family=Noto+Sans+JP") != 1 {
		t.Fatalf("expected the theme font once, got %d", strings.Count(page, "family=Noto+Sans+JP"))
	}
	if strings.Count(page, "family=Inter") != 1 {
		t.Fatalf("expected Inter once, got %d", strings.Count(page, "family=Inter"))
	}
	if strings.Count(page, `rel="preconnect"`) != 2 {
		t.Fatalf("expected two preconnect links, got %d", strings.Count(page, `rel="preconnect"`))
	}
	if !strings.Contains(page, "@keyframes zoomIn") || !strings.Contains(page, "@keyframes fadeIn") {
		t.Fatal("expected keyframes for referenced animations")
	}
	if strings.Contains(page, "@keyframes bounce") {
		t.Fatal("did not expect keyframes for unused animations")
	}
	if strings.Contains(page, "contenteditable") || strings.Contains(page, "data-lp-") {
		t.Fatal("expected no editing affordances")
	}

	last := -1
	for _, id := range ids {
		index := strings.Index(page, `id="section-`+id+`"`)
		if index < 0 {
			t.Fatalf("section %s missing from export", id)
		}
		if index < last {
			t.Fatalf("section %s out of order", id)
		}
		last = index
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(models.Document{PageTitle: "Spring Sale 2025"}); got != "spring-sale-2025.html" {
		t.Fatalf("unexpected filename %q", got)
	}
	if got := Filename(models.Document{}); got != "page.html" {
		t.Fatalf("unexpected fallback filename %q", got)
	}
}
