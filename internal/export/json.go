package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"landing-builder-backend/internal/content"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/theme"
	"landing-builder-backend/pkg/logger"
)

var (
	// ErrInvalidJSON is returned when the payload is not a JSON object.
	ErrInvalidJSON = errors.New("document is not a valid JSON object")
	// ErrMissingSections is returned when the sections key is absent.
	ErrMissingSections = errors.New("document is missing the sections key")
	// ErrMissingGlobalStyles is returned when the globalStyles key is absent.
	ErrMissingGlobalStyles = errors.New("document is missing the globalStyles key")
)

// ImportOptions tune ImportJSON.
type ImportOptions struct {
	// RegenerateIDs gives every imported section a fresh id.
	RegenerateIDs bool
}

// ExportJSON serialises the whole document.
func ExportJSON(doc models.Document) ([]byte, error) {
	if doc.Sections == nil {
		doc.Sections = []models.Section{}
	}
	if doc.Version == 0 {
		doc.Version = models.DocumentVersion
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

type sectionPayload struct {
	ID      string             `json:"id"`
	Kind    models.SectionKind `json:"kind"`
	Content json.RawMessage    `json:"content"`
	Style   json.RawMessage    `json:"style"`
}

// ImportJSON parses an exported document. It fails without a partial result
// when the payload is not an object or lacks sections or globalStyles.
// Style values are laid over the kind defaults and clamped, so missing or
// out-of-range fields never reach the document.
func ImportJSON(data []byte, opts ImportOptions) (models.Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil || top == nil {
		return models.Document{}, ErrInvalidJSON
	}
	rawSections, ok := top["sections"]
	if !ok {
		return models.Document{}, ErrMissingSections
	}
	rawGlobal, ok := top["globalStyles"]
	if !ok {
		return models.Document{}, ErrMissingGlobalStyles
	}

	doc := models.Document{Version: models.DocumentVersion, Sections: []models.Section{}}

	if raw, ok := top["version"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &doc.Version); err != nil {
			return models.Document{}, fmt.Errorf("decode version: %w", err)
		}
		if doc.Version <= 0 {
			doc.Version = models.DocumentVersion
		}
	}
	if raw, ok := top["pageTitle"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &doc.PageTitle); err != nil {
			return models.Document{}, fmt.Errorf("decode pageTitle: %w", err)
		}
	}

	doc.Meta = theme.DefaultPageMeta("")
	if raw, ok := top["meta"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &doc.Meta); err != nil {
			return models.Document{}, fmt.Errorf("decode meta: %w", err)
		}
	}

	doc.GlobalStyles = theme.DefaultGlobalStyles()
	if !isNull(rawGlobal) {
		if err := json.Unmarshal(rawGlobal, &doc.GlobalStyles); err != nil {
			return models.Document{}, fmt.Errorf("decode globalStyles: %w", err)
		}
	}
	doc.GlobalStyles = theme.ClampGlobalStyles(doc.GlobalStyles)

	var payloads []sectionPayload
	if !isNull(rawSections) {
		if err := json.Unmarshal(rawSections, &payloads); err != nil {
			return models.Document{}, fmt.Errorf("decode sections: %w", err)
		}
	}

	seen := make(map[string]struct{}, len(payloads))
	for i, payload := range payloads {
		section, err := decodeSection(payload)
		if err != nil {
			return models.Document{}, fmt.Errorf("section %d: %w", i, err)
		}
		if _, dup := seen[section.ID]; opts.RegenerateIDs || section.ID == "" || dup {
			section.ID = content.NewID()
		}
		section.Style = validatedStyle(section)
		seen[section.ID] = struct{}{}
		doc.Sections = append(doc.Sections, section)
	}

	return doc, nil
}

func decodeSection(payload sectionPayload) (models.Section, error) {
	kind := payload.Kind
	if parsed, ok := models.ParseSectionKind(string(kind)); ok {
		kind = parsed
	} else {
		kind = models.SectionKind(strings.TrimSpace(string(kind)))
	}
	if kind == "" {
		return models.Section{}, errors.New("section kind is required")
	}

	defaults := theme.DefaultStyle(kind)
	style := defaults
	if len(payload.Style) > 0 && !isNull(payload.Style) {
		if err := json.Unmarshal(payload.Style, &style); err != nil {
			return models.Section{}, fmt.Errorf("decode style: %w", err)
		}
	}

	decoded, err := models.DecodeContent(kind, payload.Content)
	if err != nil {
		return models.Section{}, err
	}

	return models.Section{
		ID:      strings.TrimSpace(payload.ID),
		Kind:    kind,
		Content: content.EnsureItemIDs(decoded),
		Style:   theme.Clamp(style, defaults),
	}, nil
}

// validatedStyle returns the section style, or the kind defaults when the
// clamped style still breaks a constraint.
func validatedStyle(section models.Section) models.SectionStyle {
	err := theme.ValidateStyle(section.Style)
	if err == nil {
		return section.Style
	}
	logger.Warn("Imported style is invalid, using kind defaults", map[string]interface{}{
		"section_id": section.ID,
		"kind":       string(section.Kind),
		"error":      err.Error(),
	})
	return theme.DefaultStyle(section.Kind)
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
