package usecase

import (
	"context"
	"errors"

	"resume-builder/internal/domain"
)

// ErrNothingToDelete is returned when a delete is confirmed with no target
// selected.
var ErrNothingToDelete = errors.New("nothing to delete")

// Gateway is the persistence side the session depends on.
type Gateway interface {
	Save(ctx context.Context, r *domain.Resume) error
	Load(ctx context.Context) *domain.Resume
}

type EventKind string

const (
	EventMutated EventKind = "mutated"
	EventLoaded  EventKind = "loaded"
	EventSaved   EventKind = "saved"
)

// Event tells subscribers the document changed and should be re-rendered.
type Event struct {
	Kind     EventKind
	Revision uint64
}

// DeleteTarget names what a pending delete would remove. FieldIndex is
// negative for whole-section deletes.
type DeleteTarget struct {
	SectionIndex int `json:"section"`
	FieldIndex   int `json:"field"`
}

func SectionTarget(section int) DeleteTarget {
	return DeleteTarget{SectionIndex: section, FieldIndex: -1}
}

func FieldTarget(section, field int) DeleteTarget {
	return DeleteTarget{SectionIndex: section, FieldIndex: field}
}

func (t DeleteTarget) IsSection() bool { return t.FieldIndex < 0 }

// Prompt returns the confirmation title and message for the target.
func (t DeleteTarget) Prompt() (title, message string) {
	if t.IsSection() {
		return "Delete Section", "Are you sure you want to delete this section?"
	}
	return "Delete Field", "Are you sure you want to delete this field?"
}
