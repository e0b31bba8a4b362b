package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestDefaultResume(t *testing.T) {
	r := DefaultResume()
	if r.Template != Template1 {
		t.Fatalf("expected Template 1, got %s", r.Template.Name)
	}
	if r.Title != "My Resume" {
		t.Fatalf("unexpected title %q", r.Title)
	}
	if len(r.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(r.Sections))
	}
}

func TestSetTemplateDiscardsPriorSections(t *testing.T) {
	r := DefaultResume()
	exp, _ := r.Section(1)
	f, _ := exp.Field(1)
	f.SetContent("Initech")
	r.AddSection(SectionCustom, []Field{NewField(FieldText, "Hobby", "chess")})

	r.SetTemplate(Template2)

	if r.Template != Template2 {
		t.Fatalf("template not switched")
	}
	if diff := cmp.Diff(sectionShape(Template2.DefaultSections()), sectionShape(r.Sections), ignoreIDs); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
	for _, s := range r.Sections {
		if s.SectionType == SectionExperience || s.SectionType == SectionEducation {
			t.Fatalf("prior %s section survived the switch", s.SectionType)
		}
		for _, f := range s.Fields {
			if f.Content != "" {
				t.Fatalf("prior content survived the switch: %q", f.Content)
			}
		}
	}
}

func TestAddSectionAppends(t *testing.T) {
	r := DefaultResume()
	before := r.Sections[len(r.Sections)-1].ID
	s := r.AddSection(SectionCustom, []Field{NewField(FieldText, "New Field", "")})
	if got := r.Sections[len(r.Sections)-1]; got.ID != s.ID || got.SectionType != SectionCustom {
		t.Fatalf("new section not appended: %+v", got)
	}
	if r.Sections[len(r.Sections)-2].ID != before {
		t.Fatalf("existing order changed")
	}
}

func TestAddFieldThenRemoveRestores(t *testing.T) {
	r := DefaultResume()
	s, _ := r.Section(1)
	before := append([]Field(nil), s.Fields...)

	s.AddField(FieldDate, "Promotion", "2024-01-01")
	if err := s.RemoveField(len(s.Fields) - 1); err != nil {
		t.Fatalf("RemoveField: %v", err)
	}
	if diff := cmp.Diff(before, s.Fields); diff != "" {
		t.Fatalf("fields not restored (-want +got):\n%s", diff)
	}
}

func TestRemoveOutOfRange(t *testing.T) {
	r := DefaultResume()
	for _, idx := range []int{-1, len(r.Sections)} {
		if err := r.RemoveSection(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("RemoveSection(%d): expected ErrIndexOutOfRange, got %v", idx, err)
		}
	}
	if len(r.Sections) != 4 {
		t.Fatalf("sections mutated on failed remove")
	}
	s, _ := r.Section(0)
	if err := s.RemoveField(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("RemoveField: expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestRemoveSectionKeepsOrder(t *testing.T) {
	r := DefaultResume()
	want := []SectionType{SectionSummary, SectionEducation, SectionSkills}
	if err := r.RemoveSection(1); err != nil {
		t.Fatalf("RemoveSection: %v", err)
	}
	var got []SectionType
	for _, s := range r.Sections {
		got = append(got, s.SectionType)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyContentIsValid(t *testing.T) {
	f := NewField(FieldText, "Skill", "Go")
	f.SetContent("")
	if !f.IsEmpty() {
		t.Fatalf("expected empty field")
	}
	s := NewSection(SectionSkills, []Field{f, NewField(FieldText, "Skill", "SQL")})
	if diff := cmp.Diff([]int{0}, s.EmptyFields()); diff != "" {
		t.Fatalf("EmptyFields mismatch:\n%s", diff)
	}
}

func TestCloneIsDeep(t *testing.T) {
	r := DefaultResume()
	c := r.Clone()
	c.Sections[0].Fields[0].SetContent("changed")
	c.Title = "other"
	if r.Sections[0].Fields[0].Content != "" || r.Title != "My Resume" {
		t.Fatalf("clone shares state with original")
	}
}

func TestParseKinds(t *testing.T) {
	for _, st := range SectionTypes {
		got, err := ParseSectionType(string(st))
		if err != nil || got != st {
			t.Fatalf("ParseSectionType(%q) = %q, %v", st, got, err)
		}
	}
	if _, err := ParseSectionType("hobbies"); err == nil {
		t.Fatalf("expected error for unknown section type")
	}
	if _, err := ParseFieldType("richText"); err == nil {
		t.Fatalf("expected error for unknown field type")
	}
	if SectionPhysicalAbilities.DisplayName() != "Physical Abilities" {
		t.Fatalf("unexpected display name")
	}
}

func TestAddSectionTwiceGetsDistinctFieldIDs(t *testing.T) {
	r := DefaultResume()
	fields := []Field{NewField(FieldText, "Hobby", "chess"), NewField(FieldText, "Hobby", "go")}
	r.AddSection(SectionCustom, fields)
	r.AddSection(SectionCustom, fields)

	snap := r.Clone()
	r.AddSection(SectionSkills, snap.Sections[0].Fields)

	seen := map[uuid.UUID]bool{}
	for _, s := range r.Sections {
		for _, f := range s.Fields {
			if seen[f.ID] {
				t.Fatalf("field id %s used twice", f.ID)
			}
			seen[f.ID] = true
		}
	}
	for _, f := range fields {
		if seen[f.ID] {
			t.Fatalf("caller's field id %s was kept", f.ID)
		}
	}
	last := r.Sections[len(r.Sections)-1]
	if last.Fields[0].FieldName != "Summary" || last.Fields[0].FieldType != FieldMultilineText {
		t.Fatalf("field contents not carried over: %+v", last.Fields[0])
	}
}
