package models

import (
	"encoding/json"

	"landing-builder-backend/internal/constants"
)

// AddSectionRequest represents a request to append a new section to the document.
type AddSectionRequest struct {
	Kind string `json:"kind" binding:"required,section_kind"`
}

// MoveSectionRequest moves a section one slot up or down.
type MoveSectionRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// AddItemRequest appends an item to one of a section's lists. Fields override
// the defaults of the new item.
type AddItemRequest struct {
	Fields map[string]interface{} `json:"fields"`
}

// EditEvent is emitted by the live preview when an editable field changes.
type EditEvent struct {
	SectionID string          `json:"sectionId" binding:"required"`
	Action    string          `json:"action" binding:"required,oneof=set add_item remove_item style"`
	Field     string          `json:"field,omitempty"`
	List      string          `json:"list,omitempty"`
	ItemID    string          `json:"itemId,omitempty"`
	Value     json.RawMessage `json:"value,omitempty"`
}

// PageTemplate describes a preset available for loading.
type PageTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Sections    int    `json:"sections"`
}

// HistoryState summarises the undo stack.
type HistoryState struct {
	Cursor  int  `json:"cursor"`
	Entries int  `json:"entries"`
	CanUndo bool `json:"canUndo"`
	CanRedo bool `json:"canRedo"`
}

// EditorState pairs a document with the history state it was committed at.
type EditorState struct {
	Document Document     `json:"document"`
	History  HistoryState `json:"history"`
}

// PageBuilderConfig contains configuration for the editor UI.
type PageBuilderConfig struct {
	AvailableSections []SectionTypeConfig                `json:"availableSections"`
	Animations        []constants.SectionAnimationOption `json:"animations"`
	Fonts             []constants.FontOption             `json:"fonts"`
	TextAligns        []string                           `json:"textAligns"`
	VerticalAligns    []string                           `json:"verticalAligns"`
	BackgroundTypes   []string                           `json:"backgroundTypes"`
	LayoutWidths      []string                           `json:"layoutWidths"`
	BorderStyles      []string                           `json:"borderStyles"`
	HoverEffects      []string                           `json:"hoverEffects"`
	HistoryLimit      int                                `json:"historyLimit"`
}

// SectionTypeConfig describes a section kind available in the builder.
type SectionTypeConfig struct {
	Kind        SectionKind `json:"kind"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Icon        string      `json:"icon"`
	Lists       []string    `json:"lists,omitempty"`
}
