package templates

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"landing-builder-backend/internal/content"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
	"landing-builder-backend/internal/theme"
)

// ErrTemplateNotFound is returned when no preset has the requested id.
var ErrTemplateNotFound = errors.New("template not found")

// Preset is a ready-made set of sections and theme.
type Preset struct {
	ID           string
	Name         string
	Description  string
	Icon         string
	GlobalStyles models.GlobalStyles
	Sections     []models.Section
}

// Summary describes the preset for listings.
func (p Preset) Summary() models.PageTemplate {
	return models.PageTemplate{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Icon:        p.Icon,
		Sections:    len(p.Sections),
	}
}

// presetDef is the declarative form of a preset, shared by the built-in
// catalogue and YAML files. Section content and style entries are partial
// overrides of the kind defaults.
type presetDef struct {
	ID           string                 `yaml:"id"`
	Name         string                 `yaml:"name"`
	Description  string                 `yaml:"description"`
	Icon         string                 `yaml:"icon"`
	GlobalStyles map[string]interface{} `yaml:"globalStyles"`
	Sections     []sectionDef           `yaml:"sections"`
}

type sectionDef struct {
	Kind    string                 `yaml:"kind"`
	Content map[string]interface{} `yaml:"content"`
	Style   map[string]interface{} `yaml:"style"`
}

// Catalog holds the presets available to the editor.
type Catalog struct {
	registry *sections.Registry

	mu      sync.RWMutex
	presets map[string]Preset
	builtin []string
}

// NewCatalog creates a catalog seeded with the built-in presets.
func NewCatalog(registry *sections.Registry) (*Catalog, error) {
	if registry == nil {
		return nil, errors.New("section registry is required")
	}
	c := &Catalog{registry: registry, presets: make(map[string]Preset)}
	for _, def := range builtinDefs() {
		preset, err := c.build(def)
		if err != nil {
			return nil, fmt.Errorf("build template %s: %w", def.ID, err)
		}
		c.presets[preset.ID] = preset
		c.builtin = append(c.builtin, preset.ID)
	}
	return c, nil
}

// Add registers a preset, replacing any preset with the same id.
func (c *Catalog) Add(preset Preset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.presets[preset.ID] = preset
}

// Get returns a copy of the preset with id.
func (c *Catalog) Get(id string) (Preset, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	preset, ok := c.presets[normaliseID(id)]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	cloned := preset
	cloned.Sections = make([]models.Section, len(preset.Sections))
	for i, section := range preset.Sections {
		cloned.Sections[i] = section.Clone()
	}
	return cloned, nil
}

// List returns summaries with the built-in presets first, then the rest by name.
func (c *Catalog) List() []models.PageTemplate {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := make([]models.PageTemplate, 0, len(c.presets))
	seen := make(map[string]bool, len(c.builtin))
	for _, id := range c.builtin {
		if preset, ok := c.presets[id]; ok {
			list = append(list, preset.Summary())
			seen[id] = true
		}
	}

	var extra []models.PageTemplate
	for id, preset := range c.presets {
		if !seen[id] {
			extra = append(extra, preset.Summary())
		}
	}
	sort.Slice(extra, func(i, j int) bool {
		left := strings.ToLower(extra[i].Name)
		right := strings.ToLower(extra[j].Name)
		if left == right {
			return extra[i].ID < extra[j].ID
		}
		return left < right
	})
	return append(list, extra...)
}

func (c *Catalog) build(def presetDef) (Preset, error) {
	id := normaliseID(def.ID)
	if id == "" {
		return Preset{}, errors.New("template id is required")
	}
	preset := Preset{
		ID:           id,
		Name:         strings.TrimSpace(def.Name),
		Description:  strings.TrimSpace(def.Description),
		Icon:         strings.TrimSpace(def.Icon),
		GlobalStyles: theme.DefaultGlobalStyles(),
		Sections:     make([]models.Section, 0, len(def.Sections)),
	}
	if preset.Name == "" {
		preset.Name = humanizeID(id)
	}

	if len(def.GlobalStyles) > 0 {
		var patch models.GlobalStylesPatch
		if err := remarshal(def.GlobalStyles, &patch); err != nil {
			return Preset{}, fmt.Errorf("global styles: %w", err)
		}
		preset.GlobalStyles = theme.PatchGlobalStyles(preset.GlobalStyles, patch)
	}

	for i, entry := range def.Sections {
		section, ok := c.registry.NewSection(content.NewID(), models.SectionKind(entry.Kind))
		if !ok {
			return Preset{}, fmt.Errorf("section %d: unknown kind %q", i, entry.Kind)
		}
		if len(entry.Content) > 0 {
			patched, err := content.Patch(section.Content, entry.Content)
			if err != nil {
				return Preset{}, fmt.Errorf("section %d content: %w", i, err)
			}
			section.Content = patched
		}
		if len(entry.Style) > 0 {
			var patch models.StylePatch
			if err := remarshal(entry.Style, &patch); err != nil {
				return Preset{}, fmt.Errorf("section %d style: %w", i, err)
			}
			section.Style = theme.PatchStyle(section.Style, patch)
		}
		preset.Sections = append(preset.Sections, section)
	}
	return preset, nil
}

// remarshal converts a generic map into a typed patch through JSON.
func remarshal(in map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func normaliseID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

func humanizeID(value string) string {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		switch r {
		case '-', '_', ' ':
			return true
		default:
			return false
		}
	})
	if len(parts) == 0 {
		return "Template"
	}
	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
