package history

import (
	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
)

// Stack is a bounded linear undo history of document snapshots. The cursor
// points at the snapshot matching the current document.
type Stack struct {
	entries []models.Document
	cursor  int
	limit   int
}

// New creates an empty stack. A non-positive limit uses the default.
func New(limit int) *Stack {
	if limit <= 0 {
		limit = constants.HistoryLimit
	}
	return &Stack{cursor: -1, limit: limit}
}

// Push discards any redo branch, appends a copy of doc and evicts the oldest
// entry once the limit is exceeded.
func (s *Stack) Push(doc models.Document) {
	if s.cursor < len(s.entries)-1 {
		s.entries = s.entries[:s.cursor+1]
	}
	s.entries = append(s.entries, doc.Clone())
	if len(s.entries) > s.limit {
		s.entries = append([]models.Document(nil), s.entries[len(s.entries)-s.limit:]...)
	}
	s.cursor = len(s.entries) - 1
}

// Undo moves the cursor back and returns the snapshot there. It reports false
// when already at the oldest entry.
func (s *Stack) Undo() (models.Document, bool) {
	if !s.CanUndo() {
		return models.Document{}, false
	}
	s.cursor--
	return s.entries[s.cursor].Clone(), true
}

// Redo moves the cursor forward and returns the snapshot there.
func (s *Stack) Redo() (models.Document, bool) {
	if !s.CanRedo() {
		return models.Document{}, false
	}
	s.cursor++
	return s.entries[s.cursor].Clone(), true
}

func (s *Stack) CanUndo() bool { return s.cursor > 0 }

func (s *Stack) CanRedo() bool { return s.cursor >= 0 && s.cursor < len(s.entries)-1 }

func (s *Stack) Len() int { return len(s.entries) }

func (s *Stack) Cursor() int { return s.cursor }

// Reset drops every entry and seeds the stack with doc.
func (s *Stack) Reset(doc models.Document) {
	s.entries = nil
	s.cursor = -1
	s.Push(doc)
}

// State summarises the stack for clients.
func (s *Stack) State() models.HistoryState {
	return models.HistoryState{
		Cursor:  s.cursor,
		Entries: len(s.entries),
		CanUndo: s.CanUndo(),
		CanRedo: s.CanRedo(),
	}
}
