package sections

import (
	"sort"

	"landing-builder-backend/internal/content"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/theme"
)

// SectionMetadata describes a section kind with its display properties.
type SectionMetadata struct {
	Kind        models.SectionKind `json:"kind"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Icon        string             `json:"icon,omitempty"`
	Lists       []string           `json:"lists,omitempty"`
}

type markupFunc[T models.SectionContent] func(m *markup, c T, r theme.Resolved)

// describe builds a descriptor whose live and static renderers share one
// markup function, so both always resolve styles the same way.
func describe[T models.SectionContent](meta SectionMetadata, fn markupFunc[T]) *SectionDescriptor {
	kind := meta.Kind
	meta.Lists = content.Lists(kind)

	defaultStyle := func() models.SectionStyle { return theme.DefaultStyle(kind) }
	render := func(ctx RenderContext, section models.Section, global models.GlobalStyles, binder EditBinder) string {
		c, ok := section.Content.(T)
		if !ok {
			return ""
		}
		if ctx == nil {
			ctx = TrustedContext{}
		}
		r := theme.Resolve(section.Style, defaultStyle(), global)
		m := &markup{sectionID: section.ID, kind: kind, binder: binder, ctx: ctx}
		m.openSection(r)
		fn(m, c, r)
		m.closeSection()
		return m.String()
	}

	return &SectionDescriptor{
		Metadata:       meta,
		DefaultStyle:   defaultStyle,
		DefaultContent: func() models.SectionContent { return content.DefaultContent(kind) },
		RenderLive:     render,
		RenderStatic: func(ctx RenderContext, section models.Section, global models.GlobalStyles) string {
			return render(ctx, section, global, nil)
		},
	}
}

func sortMetadata(list []SectionMetadata) {
	sort.Slice(list, func(i, j int) bool { return list[i].Kind < list[j].Kind })
}
