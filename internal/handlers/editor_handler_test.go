package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/service"
	"landing-builder-backend/internal/theme"

	"github.com/gin-gonic/gin"
)

type documentResponse struct {
	Document  json.RawMessage     `json:"document"`
	History   models.HistoryState `json:"history"`
	SectionID string              `json:"sectionId"`
	ItemID    string              `json:"itemId"`
	Changed   bool                `json:"changed"`
	Error     string              `json:"error"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *service.EditorService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	theme.RegisterValidations()

	editor, err := service.NewEditorService(service.EditorConfig{})
	if err != nil {
		t.Fatalf("NewEditorService returned error: %v", err)
	}
	router := gin.New()
	NewEditorHandler(editor).RegisterRoutes(router.Group("/api/v1/editor"))
	return router, editor
}

func perform(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, documentResponse) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var resp documentResponse
	if strings.HasPrefix(recorder.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(recorder.Body.Bytes(), &resp)
	}
	return recorder, resp
}

func TestAddSectionEndpoint(t *testing.T) {
	router, editor := newTestRouter(t)

	cases := []struct {
		name     string
		body     string
		expected int
	}{
		{name: "Known kind", body: `{"kind":"hero"}`, expected: http.StatusCreated},
		{name: "Mixed case", body: `{"kind":"Pricing"}`, expected: http.StatusCreated},
		{name: "Unknown kind", body: `{"kind":"carousel"}`, expected: http.StatusBadRequest},
		{name: "Missing kind", body: `{}`, expected: http.StatusBadRequest},
		{name: "Malformed", body: `{`, expected: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder, resp := perform(t, router, http.MethodPost, "/api/v1/editor/sections", tc.body)
			if recorder.Code != tc.expected {
				t.Fatalf("expected status %d, got %d: %s", tc.expected, recorder.Code, recorder.Body.String())
			}
			if tc.expected == http.StatusCreated && resp.SectionID == "" {
				t.Fatal("expected the new section id")
			}
			if tc.expected == http.StatusBadRequest && resp.Error == "" {
				t.Fatal("expected an error message")
			}
		})
	}

	if got := len(editor.Document().Sections); got != 2 {
		t.Fatalf("expected two sections, got %d", got)
	}
}

func TestSectionLifecycleEndpoints(t *testing.T) {
	router, editor := newTestRouter(t)
	_, created := perform(t, router, http.MethodPost, "/api/v1/editor/sections", `{"kind":"features"}`)
	id := created.SectionID
	base := "/api/v1/editor/sections/" + id

	recorder, _ := perform(t, router, http.MethodPatch, base+"/content", `{"title":"Why us"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 from content patch, got %d", recorder.Code)
	}
	recorder, _ = perform(t, router, http.MethodPatch, base+"/content", `{"items":"nope"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a mistyped patch, got %d", recorder.Code)
	}

	recorder, _ = perform(t, router, http.MethodPatch, base+"/style", `{"columns":2,"background":{"color":"#ff0000"}}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 from style patch, got %d", recorder.Code)
	}
	style := editor.Document().Sections[0].Style
	if style.Columns != 2 || style.Background.Color != "#ff0000" {
		t.Fatalf("unexpected style %+v", style)
	}

	_, added := perform(t, router, http.MethodPost, base+"/items/items", `{"fields":{"title":"Fresh"}}`)
	if added.ItemID == "" {
		t.Fatal("expected an item id")
	}
	recorder, _ = perform(t, router, http.MethodPatch, base+"/items/items/"+added.ItemID, `{"title":"Renamed"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 from item patch, got %d", recorder.Code)
	}
	items := editor.Document().Sections[0].Content.(models.FeaturesContent).Items
	if items[len(items)-1].Title != "Renamed" {
		t.Fatalf("expected renamed item, got %+v", items[len(items)-1])
	}
	perform(t, router, http.MethodDelete, base+"/items/items/"+added.ItemID, "")
	if got := len(editor.Document().Sections[0].Content.(models.FeaturesContent).Items); got != len(items)-1 {
		t.Fatalf("expected the item to be removed, got %d items", got)
	}

	_, duplicated := perform(t, router, http.MethodPost, base+"/duplicate", "")
	if duplicated.SectionID == "" || duplicated.SectionID == id {
		t.Fatalf("expected a new id for the copy, got %q", duplicated.SectionID)
	}
	recorder, _ = perform(t, router, http.MethodPost, base+"/move", `{"direction":"sideways"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a bad direction, got %d", recorder.Code)
	}
	perform(t, router, http.MethodPost, base+"/move", `{"direction":"down"}`)
	if editor.Document().Sections[1].ID != id {
		t.Fatal("expected the section to move down")
	}

	recorder, _ = perform(t, router, http.MethodDelete, "/api/v1/editor/sections/missing", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected removing a missing section to be a no-op, got %d", recorder.Code)
	}
	perform(t, router, http.MethodDelete, base, "")
	if len(editor.Document().Sections) != 1 {
		t.Fatal("expected one section after removal")
	}
}

func TestUndoRedoEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	_, resp := perform(t, router, http.MethodPost, "/api/v1/editor/undo", "")
	if resp.Changed {
		t.Fatal("expected nothing to undo on a fresh session")
	}

	perform(t, router, http.MethodPost, "/api/v1/editor/sections", `{"kind":"cta"}`)
	_, resp = perform(t, router, http.MethodPost, "/api/v1/editor/undo", "")
	if !resp.Changed || !resp.History.CanRedo {
		t.Fatalf("expected a successful undo, got %+v", resp.History)
	}
	_, resp = perform(t, router, http.MethodPost, "/api/v1/editor/redo", "")
	if !resp.Changed || resp.History.CanRedo {
		t.Fatalf("expected a successful redo, got %+v", resp.History)
	}
}

func TestTemplateEndpoints(t *testing.T) {
	router, editor := newTestRouter(t)

	recorder, _ := perform(t, router, http.MethodGet, "/api/v1/editor/templates", "")
	var listing struct {
		Templates []models.PageTemplate `json:"templates"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decode templates: %v", err)
	}
	if len(listing.Templates) < 3 || listing.Templates[0].ID != "blank" {
		t.Fatalf("unexpected templates %+v", listing.Templates)
	}

	recorder, _ = perform(t, router, http.MethodPost, "/api/v1/editor/templates/saas", "")
	if recorder.Code != http.StatusOK || len(editor.Document().Sections) == 0 {
		t.Fatalf("expected the saas template to load, got %d", recorder.Code)
	}
	recorder, _ = perform(t, router, http.MethodPost, "/api/v1/editor/templates/nope", "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}

func TestEditEndpoint(t *testing.T) {
	router, editor := newTestRouter(t)
	_, created := perform(t, router, http.MethodPost, "/api/v1/editor/sections", `{"kind":"hero"}`)

	recorder, _ := perform(t, router, http.MethodPost, "/api/v1/editor/edits", `{"sectionId":"`+created.SectionID+`","action":"set","field":"title","value":"Edited"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if got := editor.Document().Sections[0].Content.(models.HeroContent).Title; got != "Edited" {
		t.Fatalf("expected edited title, got %q", got)
	}

	recorder, _ = perform(t, router, http.MethodPost, "/api/v1/editor/edits", `{"sectionId":"x","action":"drag"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown action, got %d", recorder.Code)
	}
}

func TestImportExportEndpoints(t *testing.T) {
	router, editor := newTestRouter(t)

	recorder, resp := perform(t, router, http.MethodPost, "/api/v1/editor/import", `{"sections":[]}`)
	if recorder.Code != http.StatusBadRequest || resp.Error == "" {
		t.Fatalf("expected 400 with an error, got %d", recorder.Code)
	}

	payload := `{"pageTitle":"Spring Sale","globalStyles":{},"sections":[{"id":"a","kind":"hero","content":{"title":"Hi"}}]}`
	recorder, _ = perform(t, router, http.MethodPost, "/api/v1/editor/import?regenerateIds=true", payload)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if id := editor.Document().Sections[0].ID; id == "a" {
		t.Fatal("expected the section id to be regenerated")
	}

	recorder, _ = perform(t, router, http.MethodGet, "/api/v1/editor/export/json", "")
	if !strings.Contains(recorder.Body.String(), `"pageTitle": "Spring Sale"`) {
		t.Fatalf("unexpected JSON export %s", recorder.Body.String())
	}

	recorder, _ = perform(t, router, http.MethodGet, "/api/v1/editor/export/html?download=true", "")
	if got := recorder.Header().Get("Content-Disposition"); got != `attachment; filename="spring-sale.html"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if !strings.HasPrefix(recorder.Body.String(), "<!DOCTYPE html>") {
		t.Fatal("expected an HTML document")
	}

	recorder, _ = perform(t, router, http.MethodGet, "/api/v1/editor/preview?breakpoint=mobile", "")
	if !strings.Contains(recorder.Body.String(), "lp-viewport--mobile") {
		t.Fatal("expected the mobile preview")
	}
}
