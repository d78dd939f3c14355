package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"landing-builder-backend/internal/builder"
	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/export"
	"landing-builder-backend/internal/history"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/render"
	"landing-builder-backend/internal/sections"
	"landing-builder-backend/internal/templates"
	"landing-builder-backend/internal/theme"
	"landing-builder-backend/pkg/cache"
	"landing-builder-backend/pkg/logger"
)

var (
	ErrUnknownKind     = builder.ErrUnknownKind
	ErrUnsupportedEdit = errors.New("unsupported edit action")
	ErrInvalidEdit     = errors.New("invalid edit value")
)

// Edit actions sent by the live preview.
const (
	EditSet        = "set"
	EditAddItem    = "add_item"
	EditRemoveItem = "remove_item"
	EditStyle      = "style"
)

const defaultPageTitle = "Untitled page"

// EditorConfig wires an EditorService.
type EditorConfig struct {
	Registry          *sections.Registry
	Catalog           *templates.Catalog
	Cache             *cache.Cache
	CacheTTL          time.Duration
	RenderContext     sections.RenderContext
	Endpoint          string
	Lang              string
	InitialTemplate   string
	DefaultBreakpoint string
	HistoryLimit      int
}

// EditorService owns the single editing session: the current document and
// its undo history. Every operation runs under one lock, so a mutation and
// its history push are never observed separately.
type EditorService struct {
	mu      sync.Mutex
	doc     models.Document
	history *history.Stack

	registry   *sections.Registry
	catalog    *templates.Catalog
	cache      *cache.Cache
	cacheTTL   time.Duration
	exporter   *export.Exporter
	live       *render.Renderer
	breakpoint string
}

func NewEditorService(cfg EditorConfig) (*EditorService, error) {
	initMetrics()

	if cfg.Registry == nil {
		cfg.Registry = sections.DefaultRegistry()
	}
	if err := cfg.Registry.Validate(models.SectionKinds()); err != nil {
		return nil, err
	}
	if cfg.Catalog == nil {
		catalog, err := templates.NewCatalog(cfg.Registry)
		if err != nil {
			return nil, fmt.Errorf("failed to build template catalog: %w", err)
		}
		cfg.Catalog = catalog
	}
	if cfg.RenderContext == nil {
		cfg.RenderContext = sections.TrustedContext{}
	}
	lang := strings.TrimSpace(cfg.Lang)
	if lang == "" {
		lang = "en"
	}

	doc := theme.NewDocument(defaultPageTitle, lang)
	if id := strings.TrimSpace(cfg.InitialTemplate); id != "" && id != templates.BlankID {
		preset, err := cfg.Catalog.Get(id)
		if err != nil {
			return nil, fmt.Errorf("initial template %q: %w", id, err)
		}
		doc = builder.LoadTemplate(doc, preset.Sections, preset.GlobalStyles)
	}

	s := &EditorService{
		doc:        doc,
		history:    history.New(cfg.HistoryLimit),
		registry:   cfg.Registry,
		catalog:    cfg.Catalog,
		cache:      cfg.Cache,
		cacheTTL:   cfg.CacheTTL,
		exporter:   export.NewExporter(cfg.Registry, cfg.RenderContext),
		live:       render.New(cfg.Registry, cfg.RenderContext, cfg.Endpoint),
		breakpoint: constants.NormaliseBreakpoint(cfg.DefaultBreakpoint),
	}
	s.history.Push(doc)
	historyEntries.Set(float64(s.history.Len()))
	return s, nil
}

// commit makes next the current document and records exactly one snapshot.
// Callers hold s.mu.
func (s *EditorService) commit(op, sectionID string, next models.Document) models.EditorState {
	s.doc = next
	s.history.Push(next)

	mutationsTotal.WithLabelValues(op).Inc()
	historyEntries.Set(float64(s.history.Len()))
	logger.Debug("Document mutated", map[string]interface{}{
		"op":             op,
		"section_id":     sectionID,
		"history_cursor": s.history.Cursor(),
	})
	return s.state()
}

// state snapshots the document and history. Callers hold s.mu.
func (s *EditorService) state() models.EditorState {
	return models.EditorState{Document: s.doc.Clone(), History: s.history.State()}
}

// State returns the current document and history from one lock acquisition.
func (s *EditorService) State() models.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *EditorService) Document() models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

func (s *EditorService) History() models.HistoryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.State()
}

// Config describes the available section kinds and style options.
func (s *EditorService) Config() models.PageBuilderConfig {
	metadata := s.registry.ListMetadata()
	available := make([]models.SectionTypeConfig, 0, len(metadata))
	for _, meta := range metadata {
		available = append(available, models.SectionTypeConfig{
			Kind:        meta.Kind,
			Name:        meta.Name,
			Description: meta.Description,
			Category:    meta.Category,
			Icon:        meta.Icon,
			Lists:       meta.Lists,
		})
	}

	return models.PageBuilderConfig{
		AvailableSections: available,
		Animations:        constants.SectionAnimationOptions(),
		Fonts:             constants.FontOptions(),
		TextAligns:        constants.TextAlignOptions(),
		VerticalAligns:    constants.VerticalAlignOptions(),
		BackgroundTypes:   constants.BackgroundTypeOptions(),
		LayoutWidths:      constants.LayoutWidthOptions(),
		BorderStyles:      constants.BorderStyleOptions(),
		HoverEffects:      constants.HoverEffectOptions(),
		HistoryLimit:      constants.HistoryLimit,
	}
}

func (s *EditorService) AddSection(kind models.SectionKind) (models.EditorState, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, id, err := builder.AddSection(s.doc, s.registry, kind)
	if err != nil {
		return s.state(), "", err
	}
	return s.commit("add_section", id, next), id, nil
}

func (s *EditorService) RemoveSection(id string) models.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit("remove_section", id, builder.RemoveSection(s.doc, id))
}

// DuplicateSection returns the id of the copy, or "" when id does not exist.
func (s *EditorService) DuplicateSection(id string) (models.EditorState, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, copyID := builder.DuplicateSection(s.doc, id)
	return s.commit("duplicate_section", id, next), copyID
}

func (s *EditorService) MoveSection(id, direction string) models.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit("move_section", id, builder.MoveSection(s.doc, id, direction))
}

func (s *EditorService) PatchSectionStyle(id string, patch models.StylePatch) models.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit("patch_style", id, builder.PatchSectionStyle(s.doc, id, patch))
}

// PatchSectionContent rejects patches that do not fit the section's content
// shape without touching the document or the history.
func (s *EditorService) PatchSectionContent(id string, partial map[string]interface{}) (models.EditorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := builder.PatchSectionContent(s.doc, id, partial)
	if err != nil {
		return s.state(), err
	}
	return s.commit("patch_content", id, next), nil
}

func (s *EditorService) AddContentItem(id, list string, fields map[string]interface{}) (models.EditorState, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, itemID := builder.AddContentItem(s.doc, id, list, fields)
	return s.commit("add_item", id, next), itemID
}

func (s *EditorService) UpdateContentItem(id, list, itemID string, partial map[string]interface{}) models.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit("update_item", id, builder.UpdateContentItem(s.doc, id, list, itemID, partial))
}

func (s *EditorService) RemoveContentItem(id, list, itemID string) models.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit("remove_item", id, builder.RemoveContentItem(s.doc, id, list, itemID))
}

func (s *EditorService) PatchGlobalStyles(patch models.GlobalStylesPatch) models.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit("patch_global_styles", "", builder.PatchGlobalStyles(s.doc, patch))
}

func (s *EditorService) SetPageTitle(title string) models.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit("set_page_title", "", builder.SetPageTitle(s.doc, title))
}

func (s *EditorService) PatchPageMeta(patch models.PageMetaPatch) models.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit("patch_page_meta", "", builder.PatchPageMeta(s.doc, patch))
}

// Batch applies ops as one mutation with a single history entry. A failing
// op leaves the document and history untouched.
func (s *EditorService) Batch(op string, ops ...builder.Op) (models.EditorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := builder.Apply(s.doc, ops...)
	if err != nil {
		return s.state(), err
	}
	return s.commit(op, "", next), nil
}

func (s *EditorService) Templates() []models.PageTemplate {
	return s.catalog.List()
}

// LoadTemplate replaces the sections and global styles with the preset's.
func (s *EditorService) LoadTemplate(id string) (models.EditorState, error) {
	preset, err := s.catalog.Get(id)
	if err != nil {
		return s.State(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit("load_template", "", builder.LoadTemplate(s.doc, preset.Sections, preset.GlobalStyles)), nil
}

// Undo restores the previous snapshot. It reports false at the oldest entry.
func (s *EditorService) Undo() (models.EditorState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.history.Undo()
	if !ok {
		return s.state(), false
	}
	s.doc = doc
	logger.Debug("Undo applied", map[string]interface{}{"history_cursor": s.history.Cursor()})
	return s.state(), true
}

// Redo reapplies the next snapshot. It reports false at the newest entry.
func (s *EditorService) Redo() (models.EditorState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.history.Redo()
	if !ok {
		return s.state(), false
	}
	s.doc = doc
	logger.Debug("Redo applied", map[string]interface{}{"history_cursor": s.history.Cursor()})
	return s.state(), true
}

// ApplyEdit routes an in-place edit from the live preview to the matching
// mutation.
func (s *EditorService) ApplyEdit(event models.EditEvent) (models.EditorState, error) {
	switch event.Action {
	case EditSet:
		if strings.TrimSpace(event.Field) == "" {
			return s.State(), fmt.Errorf("%w: field is required", ErrInvalidEdit)
		}
		value, err := decodeEditValue(event.Value)
		if err != nil {
			return s.State(), err
		}
		partial := map[string]interface{}{event.Field: value}
		if event.ItemID != "" {
			return s.UpdateContentItem(event.SectionID, event.List, event.ItemID, partial), nil
		}
		return s.PatchSectionContent(event.SectionID, partial)

	case EditAddItem:
		fields := map[string]interface{}{}
		if len(event.Value) > 0 && string(event.Value) != "null" {
			if err := json.Unmarshal(event.Value, &fields); err != nil {
				return s.State(), fmt.Errorf("%w: %v", ErrInvalidEdit, err)
			}
		}
		state, _ := s.AddContentItem(event.SectionID, event.List, fields)
		return state, nil

	case EditRemoveItem:
		return s.RemoveContentItem(event.SectionID, event.List, event.ItemID), nil

	case EditStyle:
		var patch models.StylePatch
		if err := json.Unmarshal(event.Value, &patch); err != nil {
			return s.State(), fmt.Errorf("%w: %v", ErrInvalidEdit, err)
		}
		return s.PatchSectionStyle(event.SectionID, patch), nil
	}

	return s.State(), fmt.Errorf("%w: %q", ErrUnsupportedEdit, event.Action)
}

func decodeEditValue(raw json.RawMessage) (interface{}, error) {
	if len(raw) == 0 {
		return "", nil
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEdit, err)
	}
	return value, nil
}

// Import replaces the document with the decoded payload. A payload that
// fails validation changes nothing.
func (s *EditorService) Import(data []byte, opts export.ImportOptions) (models.EditorState, error) {
	doc, err := export.ImportJSON(data, opts)
	if err != nil {
		logger.Warn("Document import rejected", map[string]interface{}{
			"error": err.Error(),
			"bytes": len(data),
		})
		return s.State(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit("import", "", doc), nil
}

func (s *EditorService) ExportJSON() ([]byte, error) {
	start := time.Now()
	doc := s.Document()
	data, err := export.ExportJSON(doc)
	exportDurationSeconds.WithLabelValues("json").Observe(time.Since(start).Seconds())
	return data, err
}

// ExportHTML renders the static page and its download filename. Rendered
// pages are cached by document content when a cache is configured.
func (s *EditorService) ExportHTML() (string, string, error) {
	start := time.Now()
	defer func() {
		exportDurationSeconds.WithLabelValues("html").Observe(time.Since(start).Seconds())
	}()

	doc := s.Document()
	filename := export.Filename(doc)

	if !s.cache.Enabled() {
		return filename, s.exporter.HTML(doc), nil
	}

	data, err := export.ExportJSON(doc)
	if err != nil {
		return "", "", err
	}
	key := cache.ExportKey("html", data)
	if page, ok := s.cache.GetCachedExport(key); ok {
		exportCacheTotal.WithLabelValues("hit").Inc()
		return filename, page, nil
	}
	exportCacheTotal.WithLabelValues("miss").Inc()

	page := s.exporter.HTML(doc)
	if err := s.cache.CacheExport(key, page, s.cacheTTL); err != nil {
		logger.Error(err, "Failed to cache static export", map[string]interface{}{"key": key})
	}
	return filename, page, nil
}

// Preview renders the live editor page at breakpoint, or at the configured
// default when breakpoint is empty.
func (s *EditorService) Preview(breakpoint string) string {
	if strings.TrimSpace(breakpoint) == "" {
		breakpoint = s.breakpoint
	}
	return s.live.Page(s.Document(), breakpoint)
}
