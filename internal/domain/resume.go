package domain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// ErrIndexOutOfRange is returned by the remove operations when the caller
// passes a position outside the parent sequence. Nothing is mutated.
var ErrIndexOutOfRange = errors.New("index out of range")

// Field is a single named piece of editable text.
type Field struct {
	ID        uuid.UUID
	FieldType FieldType
	FieldName string
	Content   string
}

// NewField returns a field with a freshly generated identifier.
func NewField(fieldType FieldType, fieldName, content string) Field {
	return Field{ID: uuid.New(), FieldType: fieldType, FieldName: fieldName, Content: content}
}

// SetContent replaces the field content. Empty content is a valid state.
func (f *Field) SetContent(content string) {
	f.Content = content
}

// IsEmpty reports whether the display should flag this field as missing.
func (f Field) IsEmpty() bool {
	return f.Content == ""
}

// Section is an ordered group of fields for one resume category.
type Section struct {
	ID          uuid.UUID
	SectionType SectionType
	Fields      []Field
}

// NewSection returns a section with a freshly generated identifier. The
// given fields are copied and each copy gets a new identifier, so the same
// fields can be added twice without sharing ids.
func NewSection(sectionType SectionType, fields []Field) Section {
	copied := make([]Field, 0, len(fields))
	for _, f := range fields {
		copied = append(copied, NewField(f.FieldType, f.FieldName, f.Content))
	}
	return Section{ID: uuid.New(), SectionType: sectionType, Fields: copied}
}

// AddField appends a new field to the end of the section and returns it.
func (s *Section) AddField(fieldType FieldType, fieldName, content string) *Field {
	s.Fields = append(s.Fields, NewField(fieldType, fieldName, content))
	return &s.Fields[len(s.Fields)-1]
}

// RemoveField removes the field at index.
func (s *Section) RemoveField(index int) error {
	if index < 0 || index >= len(s.Fields) {
		return fmt.Errorf("remove field %d of %d: %w", index, len(s.Fields), ErrIndexOutOfRange)
	}
	s.Fields = slices.Delete(s.Fields, index, index+1)
	return nil
}

// Field returns a pointer to the field at index for in-place edits.
func (s *Section) Field(index int) (*Field, error) {
	if index < 0 || index >= len(s.Fields) {
		return nil, fmt.Errorf("field %d of %d: %w", index, len(s.Fields), ErrIndexOutOfRange)
	}
	return &s.Fields[index], nil
}

// EmptyFields returns the positions of fields with no content.
func (s Section) EmptyFields() []int {
	var out []int
	for i, f := range s.Fields {
		if f.IsEmpty() {
			out = append(out, i)
		}
	}
	return out
}

// Resume is the document being edited. Sections are ordered for display.
type Resume struct {
	ID       uuid.UUID
	Title    string
	Template Template
	Sections []Section
}

// NewResume builds a resume laid out with the template's default sections.
func NewResume(title string, template Template) *Resume {
	return &Resume{
		ID:       uuid.New(),
		Title:    title,
		Template: template,
		Sections: template.DefaultSections(),
	}
}

// DefaultResume is the built-in sample used on first run and whenever the
// stored document cannot be read.
func DefaultResume() *Resume {
	return NewResume("My Resume", Template1)
}

// SetTemplate switches the template and replaces every section with the
// template's defaults. Edits made under the previous template are dropped.
func (r *Resume) SetTemplate(template Template) {
	r.Template = template
	r.Sections = template.DefaultSections()
}

// AddSection appends a new section and returns it.
func (r *Resume) AddSection(sectionType SectionType, fields []Field) *Section {
	r.Sections = append(r.Sections, NewSection(sectionType, fields))
	return &r.Sections[len(r.Sections)-1]
}

// RemoveSection removes the section at index.
func (r *Resume) RemoveSection(index int) error {
	if index < 0 || index >= len(r.Sections) {
		return fmt.Errorf("remove section %d of %d: %w", index, len(r.Sections), ErrIndexOutOfRange)
	}
	r.Sections = slices.Delete(r.Sections, index, index+1)
	return nil
}

// Section returns a pointer to the section at index for in-place edits.
func (r *Resume) Section(index int) (*Section, error) {
	if index < 0 || index >= len(r.Sections) {
		return nil, fmt.Errorf("section %d of %d: %w", index, len(r.Sections), ErrIndexOutOfRange)
	}
	return &r.Sections[index], nil
}

// Clone returns a deep copy that shares no slices with r.
func (r *Resume) Clone() *Resume {
	if r == nil {
		return nil
	}
	out := *r
	out.Sections = make([]Section, len(r.Sections))
	for i, s := range r.Sections {
		s.Fields = slices.Clone(s.Fields)
		out.Sections[i] = s
	}
	return &out
}
