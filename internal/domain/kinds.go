package domain

import "fmt"

// SectionType is the category of a resume section. Values serialize as
// stable string tags, never ordinals.
type SectionType string

const (
	SectionSummary           SectionType = "summary"
	SectionExperience        SectionType = "experience"
	SectionEducation         SectionType = "education"
	SectionSkills            SectionType = "skills"
	SectionCertifications    SectionType = "certifications"
	SectionPhysicalAbilities SectionType = "physicalAbilities"
	SectionCustom            SectionType = "custom"
	SectionProjects          SectionType = "projects"
)

// SectionTypes lists every known section type in display order.
var SectionTypes = []SectionType{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionCertifications,
	SectionPhysicalAbilities,
	SectionCustom,
	SectionProjects,
}

// DisplayName is the header shown above the section.
func (t SectionType) DisplayName() string {
	switch t {
	case SectionSummary:
		return "Summary"
	case SectionExperience:
		return "Experience"
	case SectionEducation:
		return "Education"
	case SectionSkills:
		return "Skills"
	case SectionCertifications:
		return "Certifications"
	case SectionPhysicalAbilities:
		return "Physical Abilities"
	case SectionCustom:
		return "Custom"
	case SectionProjects:
		return "Projects"
	}
	return string(t)
}

func (t SectionType) Valid() bool {
	for _, known := range SectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseSectionType maps a stored tag back to a SectionType.
func ParseSectionType(tag string) (SectionType, error) {
	t := SectionType(tag)
	if !t.Valid() {
		return "", fmt.Errorf("unknown section type %q", tag)
	}
	return t, nil
}

// FieldType controls which input the display uses for a field.
type FieldType string

const (
	FieldText          FieldType = "text"
	FieldMultilineText FieldType = "multilineText"
	FieldDate          FieldType = "date"
	FieldNumber        FieldType = "number"
)

var FieldTypes = []FieldType{FieldText, FieldMultilineText, FieldDate, FieldNumber}

func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldMultilineText, FieldDate, FieldNumber:
		return true
	}
	return false
}

func ParseFieldType(tag string) (FieldType, error) {
	t := FieldType(tag)
	if !t.Valid() {
		return "", fmt.Errorf("unknown field type %q", tag)
	}
	return t, nil
}
