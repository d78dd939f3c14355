package service

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"landing-builder-backend/internal/builder"
	"landing-builder-backend/internal/export"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/templates"
)

func newTestService(t *testing.T) *EditorService {
	t.Helper()
	svc, err := NewEditorService(EditorConfig{})
	if err != nil {
		t.Fatalf("NewEditorService returned error: %v", err)
	}
	return svc
}

func stringPtr(value string) *string { return &value }

func TestHeroEditUndoRedo(t *testing.T) {
	svc := newTestService(t)

	state, id, err := svc.AddSection(models.KindHero)
	if err != nil {
		t.Fatalf("AddSection returned error: %v", err)
	}
	original := state.Document.Sections[0].Content.(models.HeroContent).Title

	if _, err := svc.PatchSectionContent(id, map[string]interface{}{"title": "Hello"}); err != nil {
		t.Fatalf("PatchSectionContent returned error: %v", err)
	}
	doc := svc.PatchSectionStyle(id, models.StylePatch{Background: &models.BackgroundPatch{Color: stringPtr("#ff0000")}}).Document
	if doc.Sections[0].Style.Background.Color != "#ff0000" {
		t.Fatalf("expected red background, got %s", doc.Sections[0].Style.Background.Color)
	}

	state, ok := svc.Undo()
	if !ok {
		t.Fatal("expected undo to succeed")
	}
	doc = state.Document
	if doc.Sections[0].Style.Background.Color == "#ff0000" {
		t.Fatal("expected the colour change to be undone")
	}
	if got := doc.Sections[0].Content.(models.HeroContent).Title; got != "Hello" {
		t.Fatalf("expected title to survive the undo, got %q", got)
	}

	state, _ = svc.Undo()
	doc = state.Document
	if got := doc.Sections[0].Content.(models.HeroContent).Title; got != original {
		t.Fatalf("expected original title %q, got %q", original, got)
	}

	state, ok = svc.Redo()
	if !ok {
		t.Fatal("expected redo to succeed")
	}
	doc = state.Document
	if got := doc.Sections[0].Content.(models.HeroContent).Title; got != "Hello" {
		t.Fatalf("expected redo to restore the title, got %q", got)
	}
	if !reflect.DeepEqual(doc, svc.Document()) {
		t.Fatal("expected the returned document to be the current one")
	}
}

func TestEveryMutationPushesOnce(t *testing.T) {
	svc := newTestService(t)
	_, id, err := svc.AddSection(models.KindFeatures)
	if err != nil {
		t.Fatalf("AddSection returned error: %v", err)
	}

	steps := []struct {
		name string
		run  func()
	}{
		{name: "move at boundary", run: func() { svc.MoveSection(id, builder.DirectionUp) }},
		{name: "remove unknown", run: func() { svc.RemoveSection("missing") }},
		{name: "duplicate", run: func() { svc.DuplicateSection(id) }},
		{name: "blank title", run: func() { svc.SetPageTitle("  ") }},
		{name: "global styles", run: func() { svc.PatchGlobalStyles(models.GlobalStylesPatch{PrimaryColor: stringPtr("#111111")}) }},
		{name: "meta", run: func() { svc.PatchPageMeta(models.PageMetaPatch{Description: stringPtr("d")}) }},
		{name: "add item", run: func() { svc.AddContentItem(id, "items", nil) }},
		{name: "remove unknown item", run: func() { svc.RemoveContentItem(id, "items", "missing") }},
	}

	for _, step := range steps {
		before := svc.History().Entries
		step.run()
		if after := svc.History().Entries; after != before+1 {
			t.Fatalf("%s: expected one push, entries went from %d to %d", step.name, before, after)
		}
	}
}

func TestRejectedMutationsDoNotPush(t *testing.T) {
	svc := newTestService(t)
	_, id, err := svc.AddSection(models.KindSpacer)
	if err != nil {
		t.Fatalf("AddSection returned error: %v", err)
	}
	before := svc.History()

	if _, _, err := svc.AddSection("carousel"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := svc.PatchSectionContent(id, map[string]interface{}{"height": "tall"}); err == nil {
		t.Fatal("expected a mistyped patch to be rejected")
	}
	if _, err := svc.Batch("batch", func(doc models.Document) (models.Document, error) {
		return doc, errors.New("boom")
	}); err == nil {
		t.Fatal("expected the batch error")
	}

	if after := svc.History(); after != before {
		t.Fatalf("expected history unchanged, got %+v want %+v", after, before)
	}
}

func TestBatchRecordsOneEntry(t *testing.T) {
	svc := newTestService(t)
	before := svc.History().Entries

	state, err := svc.Batch("scaffold",
		func(doc models.Document) (models.Document, error) {
			next, _, err := builder.AddSection(doc, svc.registry, models.KindHero)
			return next, err
		},
		func(doc models.Document) (models.Document, error) {
			return builder.SetPageTitle(doc, "Launch"), nil
		},
	)
	if err != nil {
		t.Fatalf("Batch returned error: %v", err)
	}
	doc := state.Document
	if len(doc.Sections) != 1 || doc.PageTitle != "Launch" {
		t.Fatalf("unexpected document %+v", doc)
	}
	if got := svc.History().Entries; got != before+1 {
		t.Fatalf("expected one entry, got %d", got-before)
	}

	state, _ = svc.Undo()
	if len(state.Document.Sections) != 0 {
		t.Fatal("expected a single undo to revert the whole batch")
	}
}

func TestMutationsReturnCommittedHistory(t *testing.T) {
	svc := newTestService(t)

	state, id, err := svc.AddSection(models.KindHero)
	if err != nil {
		t.Fatalf("AddSection returned error: %v", err)
	}
	if state.History != svc.History() || state.History.Entries != 2 || !state.History.CanUndo {
		t.Fatalf("unexpected history %+v", state.History)
	}

	state = svc.SetPageTitle("Launch")
	if state.History.Entries != 3 || state.Document.PageTitle != "Launch" {
		t.Fatalf("unexpected state %+v", state.History)
	}

	state, _ = svc.Undo()
	if !state.History.CanRedo || state.History.Cursor != 1 {
		t.Fatalf("expected the undo cursor in the returned history, got %+v", state.History)
	}

	state, err = svc.PatchSectionContent(id, map[string]interface{}{"title": 1})
	if err == nil || state.History != svc.History() {
		t.Fatalf("expected the current history with a rejected patch, got %+v", state.History)
	}
}

func TestImportFailureLeavesDocument(t *testing.T) {
	svc := newTestService(t)
	svc.AddSection(models.KindHero)
	before := svc.Document()
	history := svc.History()

	if _, err := svc.Import([]byte(`{"sections": []}`), export.ImportOptions{}); !errors.Is(err, export.ErrMissingGlobalStyles) {
		t.Fatalf("expected ErrMissingGlobalStyles, got %v", err)
	}
	if !reflect.DeepEqual(before, svc.Document()) {
		t.Fatal("expected the document to be unchanged")
	}
	if svc.History() != history {
		t.Fatal("expected the history to be unchanged")
	}
}

func TestImportReplacesAndCanBeUndone(t *testing.T) {
	svc := newTestService(t)
	svc.AddSection(models.KindHero)

	state, err := svc.Import([]byte(`{"pageTitle":"Imported","globalStyles":{},"sections":[{"id":"a","kind":"cta","content":{"title":"Go"}}]}`), export.ImportOptions{})
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	doc := state.Document
	if doc.PageTitle != "Imported" || len(doc.Sections) != 1 || doc.Sections[0].Kind != models.KindCTA {
		t.Fatalf("unexpected imported document %+v", doc)
	}

	state, _ = svc.Undo()
	if doc = state.Document; len(doc.Sections) != 1 || doc.Sections[0].Kind != models.KindHero {
		t.Fatal("expected undo to restore the document before the import")
	}
}

func TestApplyEdit(t *testing.T) {
	svc := newTestService(t)
	state, id, err := svc.AddSection(models.KindFeatures)
	if err != nil {
		t.Fatalf("AddSection returned error: %v", err)
	}
	doc := state.Document
	itemID := doc.Sections[0].Content.(models.FeaturesContent).Items[0].ID

	state, err = svc.ApplyEdit(models.EditEvent{SectionID: id, Action: EditSet, Field: "title", Value: json.RawMessage(`"Why us"`)})
	if err != nil {
		t.Fatalf("ApplyEdit(set) returned error: %v", err)
	}
	doc = state.Document
	if got := doc.Sections[0].Content.(models.FeaturesContent).Title; got != "Why us" {
		t.Fatalf("expected title edit, got %q", got)
	}

	state, err = svc.ApplyEdit(models.EditEvent{SectionID: id, Action: EditSet, List: "items", ItemID: itemID, Field: "title", Value: json.RawMessage(`"Quick"`)})
	if err != nil {
		t.Fatalf("ApplyEdit(item set) returned error: %v", err)
	}
	doc = state.Document
	if got := doc.Sections[0].Content.(models.FeaturesContent).Items[0].Title; got != "Quick" {
		t.Fatalf("expected item title edit, got %q", got)
	}

	count := len(doc.Sections[0].Content.(models.FeaturesContent).Items)
	state, err = svc.ApplyEdit(models.EditEvent{SectionID: id, Action: EditAddItem, List: "items", Value: json.RawMessage(`{"title":"New"}`)})
	if err != nil {
		t.Fatalf("ApplyEdit(add_item) returned error: %v", err)
	}
	doc = state.Document
	items := doc.Sections[0].Content.(models.FeaturesContent).Items
	if len(items) != count+1 || items[len(items)-1].Title != "New" {
		t.Fatalf("expected a new item, got %+v", items)
	}

	state, err = svc.ApplyEdit(models.EditEvent{SectionID: id, Action: EditRemoveItem, List: "items", ItemID: itemID})
	if err != nil {
		t.Fatalf("ApplyEdit(remove_item) returned error: %v", err)
	}
	doc = state.Document
	if len(doc.Sections[0].Content.(models.FeaturesContent).Items) != count {
		t.Fatal("expected the item to be removed")
	}

	state, err = svc.ApplyEdit(models.EditEvent{SectionID: id, Action: EditStyle, Value: json.RawMessage(`{"columns": 2}`)})
	if err != nil {
		t.Fatalf("ApplyEdit(style) returned error: %v", err)
	}
	doc = state.Document
	if doc.Sections[0].Style.Columns != 2 {
		t.Fatalf("expected two columns, got %d", doc.Sections[0].Style.Columns)
	}

	cases := []struct {
		name     string
		event    models.EditEvent
		expected error
	}{
		{name: "Unknown action", event: models.EditEvent{SectionID: id, Action: "drag"}, expected: ErrUnsupportedEdit},
		{name: "Missing field", event: models.EditEvent{SectionID: id, Action: EditSet}, expected: ErrInvalidEdit},
		{name: "Bad value", event: models.EditEvent{SectionID: id, Action: EditSet, Field: "title", Value: json.RawMessage(`{`)}, expected: ErrInvalidEdit},
		{name: "Bad style", event: models.EditEvent{SectionID: id, Action: EditStyle, Value: json.RawMessage(`[]`)}, expected: ErrInvalidEdit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := svc.History()
			if _, err := svc.ApplyEdit(tc.event); !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}
			if svc.History() != before {
				t.Fatal("expected a rejected edit not to push")
			}
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	svc := newTestService(t)

	state, err := svc.LoadTemplate(templates.SaaSID)
	if err != nil {
		t.Fatalf("LoadTemplate returned error: %v", err)
	}
	doc := state.Document
	if len(doc.Sections) == 0 || doc.Sections[0].Kind != models.KindHero {
		t.Fatalf("expected the saas sections, got %d", len(doc.Sections))
	}

	if _, err := svc.LoadTemplate("missing"); !errors.Is(err, templates.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestInitialTemplate(t *testing.T) {
	svc, err := NewEditorService(EditorConfig{InitialTemplate: templates.CoachingID})
	if err != nil {
		t.Fatalf("NewEditorService returned error: %v", err)
	}
	if len(svc.Document().Sections) == 0 {
		t.Fatal("expected the coaching sections")
	}
	if svc.History().CanUndo {
		t.Fatal("expected the initial document to be the oldest entry")
	}

	if _, err := NewEditorService(EditorConfig{InitialTemplate: "missing"}); err == nil {
		t.Fatal("expected an unknown initial template to fail")
	}
}

func TestExportsAndPreview(t *testing.T) {
	svc := newTestService(t)
	svc.SetPageTitle("Spring Sale")
	svc.AddSection(models.KindHero)

	filename, page, err := svc.ExportHTML()
	if err != nil {
		t.Fatalf("ExportHTML returned error: %v", err)
	}
	if filename != "spring-sale.html" {
		t.Fatalf("unexpected filename %q", filename)
	}
	if strings.Contains(page, "contenteditable") {
		t.Fatal("expected no editing affordances in the export")
	}

	data, err := svc.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON returned error: %v", err)
	}
	if !strings.Contains(string(data), `"pageTitle": "Spring Sale"`) {
		t.Fatalf("unexpected JSON %s", data)
	}

	preview := svc.Preview("")
	if !strings.Contains(preview, "contenteditable") {
		t.Fatal("expected editing affordances in the preview")
	}
	if !strings.Contains(preview, "lp-viewport--desktop") {
		t.Fatal("expected the default breakpoint")
	}
}

func TestConfigListsEveryKind(t *testing.T) {
	cfg := newTestService(t).Config()
	if len(cfg.AvailableSections) != len(models.SectionKinds()) {
		t.Fatalf("expected %d kinds, got %d", len(models.SectionKinds()), len(cfg.AvailableSections))
	}
	if cfg.HistoryLimit != 50 {
		t.Fatalf("expected history limit 50, got %d", cfg.HistoryLimit)
	}
}
