package content

import (
	"encoding/json"
	"errors"
	"fmt"

	"landing-builder-backend/internal/models"
)

// ErrInvalidPatch is returned when a patch does not fit the content shape.
var ErrInvalidPatch = errors.New("content patch does not match the section kind")

// AddItem appends item to the named list with a freshly generated id and
// returns the new content and the id. Unknown lists leave content unchanged.
func AddItem(c models.SectionContent, list string, item map[string]interface{}) (models.SectionContent, string) {
	if c == nil || !HasList(c.Kind(), list) {
		return c, ""
	}
	doc, err := toMap(c)
	if err != nil {
		return c, ""
	}

	entry := NewItem(c.Kind(), list)
	for key, value := range item {
		entry[key] = value
	}
	id := NewID()
	entry["id"] = id

	items, _ := doc[list].([]interface{})
	doc[list] = append(items, entry)

	next, err := fromMap(c.Kind(), doc)
	if err != nil {
		return c, ""
	}
	return next, id
}

// UpdateItem merges partial into the item with id. A missing id is a no-op.
// The id itself cannot be changed.
func UpdateItem(c models.SectionContent, list, id string, partial map[string]interface{}) models.SectionContent {
	if c == nil || !HasList(c.Kind(), list) {
		return c
	}
	doc, err := toMap(c)
	if err != nil {
		return c
	}
	items, _ := doc[list].([]interface{})
	found := false
	for i, raw := range items {
		entry, ok := raw.(map[string]interface{})
		if !ok || entry["id"] != id {
			continue
		}
		merged := mergePatch(entry, partial)
		merged["id"] = id
		items[i] = merged
		found = true
		break
	}
	if !found {
		return c
	}
	next, err := fromMap(c.Kind(), doc)
	if err != nil {
		return c
	}
	return next
}

// RemoveItem drops the item with id, keeping the order of the others.
func RemoveItem(c models.SectionContent, list, id string) models.SectionContent {
	if c == nil || !HasList(c.Kind(), list) {
		return c
	}
	doc, err := toMap(c)
	if err != nil {
		return c
	}
	items, _ := doc[list].([]interface{})
	kept := make([]interface{}, 0, len(items))
	for _, raw := range items {
		if entry, ok := raw.(map[string]interface{}); ok && entry["id"] == id {
			continue
		}
		kept = append(kept, raw)
	}
	if len(kept) == len(items) {
		return c
	}
	doc[list] = kept
	next, err := fromMap(c.Kind(), doc)
	if err != nil {
		return c
	}
	return next
}

// ItemIDs lists the ids of the named list in order.
func ItemIDs(c models.SectionContent, list string) []string {
	if c == nil || !HasList(c.Kind(), list) {
		return nil
	}
	doc, err := toMap(c)
	if err != nil {
		return nil
	}
	items, _ := doc[list].([]interface{})
	ids := make([]string, 0, len(items))
	for _, raw := range items {
		if entry, ok := raw.(map[string]interface{}); ok {
			if id, ok := entry["id"].(string); ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// Patch applies a JSON merge patch to the content: objects merge key by key,
// arrays and scalars replace, null clears a field.
func Patch(c models.SectionContent, partial map[string]interface{}) (models.SectionContent, error) {
	if c == nil {
		return c, nil
	}
	if _, unknown := c.(models.UnknownContent); unknown {
		return c, nil
	}
	doc, err := toMap(c)
	if err != nil {
		return c, err
	}
	next, err := fromMap(c.Kind(), mergePatch(doc, partial))
	if err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	return next, nil
}

// EnsureItemIDs gives a fresh id to every list item whose id is empty or
// repeats an earlier id of the same list. Unique ids are kept.
func EnsureItemIDs(c models.SectionContent) models.SectionContent {
	if c == nil || len(itemLists[c.Kind()]) == 0 {
		return c
	}
	doc, err := toMap(c)
	if err != nil {
		return c
	}
	if !assignItemIDs(c.Kind(), doc) {
		return c
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return c
	}
	next, err := models.DecodeContent(c.Kind(), raw)
	if err != nil {
		return c
	}
	return next
}

// assignItemIDs fixes item ids in place and reports whether any changed.
// Footer link groups carry a nested list of links.
func assignItemIDs(kind models.SectionKind, doc map[string]interface{}) bool {
	changed := false
	for _, list := range itemLists[kind] {
		items, _ := doc[list].([]interface{})
		if assignListIDs(items) {
			changed = true
		}
		if kind != models.KindFooter || list != "linkGroups" {
			continue
		}
		for _, raw := range items {
			group, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			links, _ := group["links"].([]interface{})
			if assignListIDs(links) {
				changed = true
			}
		}
	}
	return changed
}

func assignListIDs(items []interface{}) bool {
	changed := false
	seen := make(map[string]struct{}, len(items))
	for _, raw := range items {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		id, _ := entry["id"].(string)
		if _, dup := seen[id]; id == "" || dup {
			id = NewID()
			entry["id"] = id
			changed = true
		}
		seen[id] = struct{}{}
	}
	return changed
}

func mergePatch(target, patch map[string]interface{}) map[string]interface{} {
	if target == nil {
		target = map[string]interface{}{}
	}
	for key, value := range patch {
		if value == nil {
			delete(target, key)
			continue
		}
		patchMap, isMap := value.(map[string]interface{})
		current, currentIsMap := target[key].(map[string]interface{})
		if isMap && currentIsMap {
			target[key] = mergePatch(current, patchMap)
			continue
		}
		target[key] = value
	}
	return target
}

func toMap(c models.SectionContent) (map[string]interface{}, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	return doc, nil
}

func fromMap(kind models.SectionKind, doc map[string]interface{}) (models.SectionContent, error) {
	assignItemIDs(kind, doc)
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return models.DecodeContent(kind, raw)
}
