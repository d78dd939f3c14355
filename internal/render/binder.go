package render

import (
	"html/template"
	"strings"
)

// Attribute names read by the preview script.
const (
	AttrSection = "data-section-id"
	AttrField   = "data-lp-field"
	AttrList    = "data-lp-list"
	AttrItem    = "data-lp-item"
)

// Binder marks editable elements so in-place edits can be routed back as
// content patches. The section id lives on the wrapper, not on each element.
type Binder struct{}

func (Binder) Field(_, field string) string {
	return editable(attr(AttrField, field))
}

func (Binder) List(_, list string) string {
	return attr(AttrList, list)
}

func (Binder) Item(_, list, itemID string) string {
	return attr(AttrList, list) + " " + attr(AttrItem, itemID)
}

func (Binder) ItemField(_, list, itemID, field string) string {
	return editable(strings.Join([]string{attr(AttrList, list), attr(AttrItem, itemID), attr(AttrField, field)}, " "))
}

func editable(attrs string) string {
	return `contenteditable="true" spellcheck="false" ` + attrs
}

func attr(name, value string) string {
	return name + `="` + template.HTMLEscapeString(value) + `"`
}
