package theme

import (
	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
)

// PageAssets lists what a rendered page must load besides the section markup.
type PageAssets struct {
	FontLinks  []string
	Animations []string
}

// CollectAssets walks the theme and every section accepted by include, in
// document order. Font links are deduplicated by family and animations by name.
func CollectAssets(doc models.Document, include func(models.Section) bool) PageAssets {
	stacks := []string{doc.GlobalStyles.HeadingFont, doc.GlobalStyles.BodyFont}
	var animations []string
	seen := make(map[string]struct{})

	for _, section := range doc.Sections {
		if include != nil && !include(section) {
			continue
		}
		r := Resolve(section.Style, DefaultStyle(section.Kind), doc.GlobalStyles)
		stacks = append(stacks, r.HeadingFont, r.BodyFont)

		kind := r.AnimationKind
		if kind == "" || kind == constants.AnimationNone {
			continue
		}
		if _, ok := seen[kind]; ok {
			continue
		}
		seen[kind] = struct{}{}
		animations = append(animations, kind)
	}

	return PageAssets{
		FontLinks:  FontStylesheets(stacks...),
		Animations: animations,
	}
}
