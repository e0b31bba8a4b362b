package model

// Go models that match resume.schema.json, the on-disk shape of a saved
// resume. Kind fields hold string tags so new kinds never shift old data.

import (
	"fmt"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

type TemplateRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Asset string `json:"asset,omitempty"`
}

type FieldRecord struct {
	ID      uuid.UUID `json:"id"`
	Type    string    `json:"type"`
	Name    string    `json:"name"`
	Content string    `json:"content"`
}

type SectionRecord struct {
	ID     uuid.UUID     `json:"id"`
	Type   string        `json:"type"`
	Fields []FieldRecord `json:"fields"`
}

type ResumeRecord struct {
	ID       uuid.UUID       `json:"id"`
	Title    string          `json:"title"`
	Template TemplateRecord  `json:"template"`
	Sections []SectionRecord `json:"sections"`
}

// FromDomain converts the in-memory document into its persisted shape.
func FromDomain(r *domain.Resume) ResumeRecord {
	rec := ResumeRecord{
		ID:    r.ID,
		Title: r.Title,
		Template: TemplateRecord{
			ID:    string(r.Template.ID),
			Name:  r.Template.Name,
			Asset: r.Template.Asset,
		},
		Sections: make([]SectionRecord, 0, len(r.Sections)),
	}
	for _, s := range r.Sections {
		sr := SectionRecord{ID: s.ID, Type: string(s.SectionType), Fields: make([]FieldRecord, 0, len(s.Fields))}
		for _, f := range s.Fields {
			sr.Fields = append(sr.Fields, FieldRecord{ID: f.ID, Type: string(f.FieldType), Name: f.FieldName, Content: f.Content})
		}
		rec.Sections = append(rec.Sections, sr)
	}
	return rec
}

// ToDomain rebuilds the document. Unknown template ids or kind tags are
// reported as errors rather than guessed at.
func (rec ResumeRecord) ToDomain() (*domain.Resume, error) {
	tpl, err := domain.TemplateByID(domain.TemplateID(rec.Template.ID))
	if err != nil {
		return nil, err
	}
	out := &domain.Resume{
		ID:       rec.ID,
		Title:    rec.Title,
		Template: tpl,
		Sections: make([]domain.Section, 0, len(rec.Sections)),
	}
	for i, sr := range rec.Sections {
		st, err := domain.ParseSectionType(sr.Type)
		if err != nil {
			return nil, fmt.Errorf("sections[%d]: %w", i, err)
		}
		section := domain.Section{ID: sr.ID, SectionType: st, Fields: make([]domain.Field, 0, len(sr.Fields))}
		for j, fr := range sr.Fields {
			ft, err := domain.ParseFieldType(fr.Type)
			if err != nil {
				return nil, fmt.Errorf("sections[%d].fields[%d]: %w", i, j, err)
			}
			section.Fields = append(section.Fields, domain.Field{ID: fr.ID, FieldType: ft, FieldName: fr.Name, Content: fr.Content})
		}
		out.Sections = append(out.Sections, section)
	}
	return out, nil
}
