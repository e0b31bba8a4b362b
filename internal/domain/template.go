package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrUnknownTemplate = errors.New("unknown template")

// TemplateID is the stable identity of a catalog template.
type TemplateID string

const (
	TemplateOneID TemplateID = "template1"
	TemplateTwoID TemplateID = "template2"
	ProTemplateID TemplateID = "proTemplate"
)

// Template is a predefined layout. Templates are only ever taken from the
// catalog; callers never construct their own.
type Template struct {
	ID    TemplateID
	Name  string
	Asset string
	Pro   bool
}

var (
	Template1   = Template{ID: TemplateOneID, Name: "Template 1", Asset: "doc.text.fill"}
	Template2   = Template{ID: TemplateTwoID, Name: "Template 2", Asset: "doc.richtext"}
	ProTemplate = Template{ID: ProTemplateID, Name: "Pro Template", Asset: "doc.text.fill", Pro: true}
)

// Templates returns the catalog in selection order.
func Templates() []Template {
	return []Template{Template1, Template2, ProTemplate}
}

// TemplateByID looks a template up in the catalog.
func TemplateByID(id TemplateID) (Template, error) {
	for _, t := range Templates() {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
}

// Locked reports whether the selection list should show a lock badge.
func (t Template) Locked(isPro bool) bool {
	return t.Pro && !isPro
}

type fieldSpec struct {
	fieldType FieldType
	name      string
	content   string
}

type sectionSpec struct {
	sectionType SectionType
	fields      []fieldSpec
}

// DefaultSections returns a freshly identified copy of the template's
// canonical layout. Two calls yield equal sections with different ids.
func (t Template) DefaultSections() []Section {
	specs := t.layout()
	out := make([]Section, 0, len(specs))
	for _, spec := range specs {
		fields := make([]Field, 0, len(spec.fields))
		for _, f := range spec.fields {
			fields = append(fields, NewField(f.fieldType, f.name, f.content))
		}
		out = append(out, Section{ID: uuid.New(), SectionType: spec.sectionType, Fields: fields})
	}
	return out
}

func (t Template) layout() []sectionSpec {
	switch t.ID {
	case TemplateOneID:
		return []sectionSpec{
			{SectionSummary, []fieldSpec{{FieldMultilineText, "Summary", ""}}},
			{SectionExperience, []fieldSpec{
				{FieldText, "Job Title", ""},
				{FieldText, "Company", ""},
				{FieldText, "Start Date", ""},
				{FieldText, "End Date", ""},
				{FieldMultilineText, "Responsibilities", ""},
			}},
			{SectionEducation, []fieldSpec{
				{FieldText, "Institution", ""},
				{FieldText, "Degree", ""},
				{FieldText, "Graduation Date", ""},
			}},
			{SectionSkills, []fieldSpec{{FieldText, "Skill", ""}}},
		}
	case TemplateTwoID:
		return []sectionSpec{
			{SectionSummary, []fieldSpec{{FieldMultilineText, "Summary", ""}}},
			{SectionSkills, []fieldSpec{{FieldText, "Skill", ""}}},
			{SectionProjects, []fieldSpec{
				{FieldText, "Project Name", ""},
				{FieldMultilineText, "Description", ""},
			}},
		}
	case ProTemplateID:
		return []sectionSpec{
			{SectionSummary, []fieldSpec{{FieldMultilineText, "summary", ""}}},
			{SectionExperience, []fieldSpec{
				{FieldText, "jobTitle", "Software Engineer"},
				{FieldText, "company", "Acme Corp"},
				{FieldText, "startDate", "2021-06-01"},
				{FieldText, "endDate", "2023-12-31"},
				{FieldMultilineText, "responsibilities", "Developed and maintained iOS applications...\nCollaborated with cross-functional teams.\nImplemented new features and bug fixes."},
			}},
			{SectionEducation, []fieldSpec{
				{FieldText, "institution", "University of Example"},
				{FieldText, "degree", "Bachelor of Science in Computer Science"},
				{FieldText, "graduationDate", "2021-05-01"},
			}},
			{SectionSkills, []fieldSpec{
				{FieldText, "skill", "Swift"},
				{FieldText, "skill", "SwiftUI"},
				{FieldText, "skill", "Git"},
			}},
			{SectionCertifications, []fieldSpec{
				{FieldText, "certification", "AWS Certified Developer - Associate"},
			}},
			{SectionPhysicalAbilities, []fieldSpec{
				{FieldText, "ability", "Lift up to 50 lbs"},
				{FieldText, "ability", "Work in all weather"},
			}},
		}
	}
	return nil
}
