package sections

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"landing-builder-backend/internal/models"
)

// ErrIncompleteRegistry is returned when a known kind has no descriptor.
var ErrIncompleteRegistry = errors.New("section registry is incomplete")

// LiveRenderer renders a section with edit bindings.
type LiveRenderer func(ctx RenderContext, section models.Section, global models.GlobalStyles, binder EditBinder) string

// StaticRenderer renders a section as inert markup.
type StaticRenderer func(ctx RenderContext, section models.Section, global models.GlobalStyles) string

// SectionDescriptor is the behaviour registered for one section kind.
type SectionDescriptor struct {
	Metadata       SectionMetadata
	DefaultStyle   func() models.SectionStyle
	DefaultContent func() models.SectionContent
	RenderLive     LiveRenderer
	RenderStatic   StaticRenderer
}

// Registry stores the mapping between section kinds and their descriptors.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[models.SectionKind]*SectionDescriptor
}

// NewRegistry creates an empty section registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[models.SectionKind]*SectionDescriptor)}
}

// Register associates a descriptor with its normalised kind. It returns an error when the input is invalid.
func (r *Registry) Register(desc *SectionDescriptor) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}
	if desc == nil {
		return fmt.Errorf("descriptor is nil")
	}

	kind := normaliseKind(desc.Metadata.Kind)
	if kind == "" {
		return fmt.Errorf("section kind is empty")
	}
	if desc.RenderLive == nil || desc.RenderStatic == nil {
		return fmt.Errorf("renderers are missing for kind %s", kind)
	}
	if desc.DefaultStyle == nil || desc.DefaultContent == nil {
		return fmt.Errorf("defaults are missing for kind %s", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.descriptors == nil {
		r.descriptors = make(map[models.SectionKind]*SectionDescriptor)
	}
	desc.Metadata.Kind = kind
	r.descriptors[kind] = desc
	return nil
}

// MustRegister registers the descriptor and panics if registration fails.
func (r *Registry) MustRegister(desc *SectionDescriptor) {
	if err := r.Register(desc); err != nil {
		panic(err)
	}
}

// Get retrieves the descriptor for the kind if it exists.
func (r *Registry) Get(kind models.SectionKind) (*SectionDescriptor, bool) {
	if r == nil {
		return nil, false
	}
	kind = normaliseKind(kind)
	if kind == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.descriptors[kind]
	return desc, ok
}

// Validate reports every kind in kinds that has no descriptor.
func (r *Registry) Validate(kinds []models.SectionKind) error {
	var missing []string
	for _, kind := range kinds {
		if _, ok := r.Get(kind); !ok {
			missing = append(missing, string(kind))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteRegistry, strings.Join(missing, ", "))
	}
	return nil
}

// ListMetadata returns metadata for all registered kinds in catalogue order,
// followed by any extra kinds sorted by name.
func (r *Registry) ListMetadata() []SectionMetadata {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]SectionMetadata, 0, len(r.descriptors))
	seen := make(map[models.SectionKind]bool, len(r.descriptors))
	for _, kind := range models.SectionKinds() {
		if desc, ok := r.descriptors[kind]; ok {
			result = append(result, desc.Metadata)
			seen[kind] = true
		}
	}
	var extra []SectionMetadata
	for kind, desc := range r.descriptors {
		if !seen[kind] {
			extra = append(extra, desc.Metadata)
		}
	}
	sortMetadata(extra)
	return append(result, extra...)
}

// NewSection builds a section of kind from the registered defaults.
func (r *Registry) NewSection(id string, kind models.SectionKind) (models.Section, bool) {
	desc, ok := r.Get(kind)
	if !ok {
		return models.Section{}, false
	}
	return models.Section{
		ID:      id,
		Kind:    desc.Metadata.Kind,
		Content: desc.DefaultContent(),
		Style:   desc.DefaultStyle(),
	}, true
}

// RenderLive renders the section with edit bindings. Kinds without a
// descriptor render as an empty string.
func (r *Registry) RenderLive(ctx RenderContext, section models.Section, global models.GlobalStyles, binder EditBinder) string {
	desc, ok := r.Get(section.Kind)
	if !ok {
		return ""
	}
	return desc.RenderLive(ctx, section, global, binder)
}

// RenderStatic renders the section as inert markup. Kinds without a
// descriptor render as an empty string.
func (r *Registry) RenderStatic(ctx RenderContext, section models.Section, global models.GlobalStyles) string {
	desc, ok := r.Get(section.Kind)
	if !ok {
		return ""
	}
	return desc.RenderStatic(ctx, section, global)
}

// Clone creates a copy of the registry with the same descriptors.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return NewRegistry()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for key, desc := range r.descriptors {
		cloned.descriptors[key] = desc
	}
	return cloned
}

func normaliseKind(kind models.SectionKind) models.SectionKind {
	return models.SectionKind(strings.TrimSpace(strings.ToLower(string(kind))))
}
