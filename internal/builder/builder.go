package builder

import (
	"errors"
	"fmt"
	"strings"

	"landing-builder-backend/internal/content"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
	"landing-builder-backend/internal/theme"
)

// ErrUnknownKind is returned when a section kind has no registered descriptor.
var ErrUnknownKind = errors.New("unknown section kind")

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Every operation takes a document value and returns a new one; the input is
// never modified. Addressing a missing section or item leaves the document
// unchanged.

// AddSection appends a section of kind built from the registered defaults.
func AddSection(doc models.Document, reg *sections.Registry, kind models.SectionKind) (models.Document, string, error) {
	id := content.NewID()
	section, ok := reg.NewSection(id, kind)
	if !ok {
		return doc, "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	next := doc.Clone()
	next.Sections = append(next.Sections, section)
	return next, id, nil
}

// RemoveSection drops the section with id.
func RemoveSection(doc models.Document, id string) models.Document {
	index := doc.IndexOf(id)
	if index < 0 {
		return doc
	}
	next := doc.Clone()
	next.Sections = append(next.Sections[:index], next.Sections[index+1:]...)
	return next
}

// DuplicateSection inserts a deep copy of the section right after it. Only the
// section id is regenerated; item ids inside the content are kept.
func DuplicateSection(doc models.Document, id string) (models.Document, string) {
	index := doc.IndexOf(id)
	if index < 0 {
		return doc, ""
	}
	next := doc.Clone()
	duplicate := next.Sections[index].Clone()
	duplicate.ID = content.NewID()

	out := make([]models.Section, 0, len(next.Sections)+1)
	out = append(out, next.Sections[:index+1]...)
	out = append(out, duplicate)
	out = append(out, next.Sections[index+1:]...)
	next.Sections = out
	return next, duplicate.ID
}

// MoveSection swaps the section with its neighbour in direction. Moving past
// either end is a no-op.
func MoveSection(doc models.Document, id, direction string) models.Document {
	index := doc.IndexOf(id)
	if index < 0 {
		return doc
	}
	target := index
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case DirectionUp:
		target = index - 1
	case DirectionDown:
		target = index + 1
	default:
		return doc
	}
	if target < 0 || target >= len(doc.Sections) {
		return doc
	}
	next := doc.Clone()
	next.Sections[index], next.Sections[target] = next.Sections[target], next.Sections[index]
	return next
}

// PatchSectionStyle deep merges patch into the section style.
func PatchSectionStyle(doc models.Document, id string, patch models.StylePatch) models.Document {
	index := doc.IndexOf(id)
	if index < 0 {
		return doc
	}
	next := doc.Clone()
	next.Sections[index].Style = theme.PatchStyle(next.Sections[index].Style, patch)
	return next
}

// PatchSectionContent merges partial into the section content. A patch that
// does not fit the kind is rejected and the document is returned unchanged.
func PatchSectionContent(doc models.Document, id string, partial map[string]interface{}) (models.Document, error) {
	index := doc.IndexOf(id)
	if index < 0 {
		return doc, nil
	}
	patched, err := content.Patch(doc.Sections[index].Content, partial)
	if err != nil {
		return doc, err
	}
	next := doc.Clone()
	next.Sections[index].Content = patched
	return next, nil
}

// AddContentItem appends a new item to the named list of the section.
func AddContentItem(doc models.Document, id, list string, fields map[string]interface{}) (models.Document, string) {
	index := doc.IndexOf(id)
	if index < 0 {
		return doc, ""
	}
	updated, itemID := content.AddItem(doc.Sections[index].Content, list, fields)
	if itemID == "" {
		return doc, ""
	}
	next := doc.Clone()
	next.Sections[index].Content = updated
	return next, itemID
}

// UpdateContentItem merges partial into one item of the named list.
func UpdateContentItem(doc models.Document, id, list, itemID string, partial map[string]interface{}) models.Document {
	index := doc.IndexOf(id)
	if index < 0 {
		return doc
	}
	next := doc.Clone()
	next.Sections[index].Content = content.UpdateItem(next.Sections[index].Content, list, itemID, partial)
	return next
}

// RemoveContentItem drops one item of the named list.
func RemoveContentItem(doc models.Document, id, list, itemID string) models.Document {
	index := doc.IndexOf(id)
	if index < 0 {
		return doc
	}
	next := doc.Clone()
	next.Sections[index].Content = content.RemoveItem(next.Sections[index].Content, list, itemID)
	return next
}

// PatchGlobalStyles shallow merges patch into the theme.
func PatchGlobalStyles(doc models.Document, patch models.GlobalStylesPatch) models.Document {
	next := doc.Clone()
	next.GlobalStyles = theme.PatchGlobalStyles(doc.GlobalStyles, patch)
	return next
}

// SetPageTitle replaces the page title. Blank titles are ignored.
func SetPageTitle(doc models.Document, title string) models.Document {
	title = strings.TrimSpace(title)
	if title == "" {
		return doc
	}
	next := doc.Clone()
	next.PageTitle = title
	return next
}

// PatchPageMeta merges patch into the page metadata and title.
func PatchPageMeta(doc models.Document, patch models.PageMetaPatch) models.Document {
	next := doc.Clone()
	next.Meta = theme.PatchPageMeta(doc.Meta, patch)
	if patch.Title != nil {
		next = SetPageTitle(next, *patch.Title)
	}
	return next
}

// LoadTemplate replaces sections and global styles wholesale. Every section
// gets a fresh id.
func LoadTemplate(doc models.Document, presetSections []models.Section, global models.GlobalStyles) models.Document {
	next := doc.Clone()
	next.GlobalStyles = global
	next.Sections = make([]models.Section, 0, len(presetSections))
	for _, section := range presetSections {
		cloned := section.Clone()
		cloned.ID = content.NewID()
		next.Sections = append(next.Sections, cloned)
	}
	return next
}

// Op is one document transformation.
type Op func(models.Document) (models.Document, error)

// Apply runs ops in order. The first error aborts the whole batch and the
// original document is returned.
func Apply(doc models.Document, ops ...Op) (models.Document, error) {
	next := doc
	for _, op := range ops {
		if op == nil {
			continue
		}
		var err error
		next, err = op(next)
		if err != nil {
			return doc, err
		}
	}
	return next, nil
}
