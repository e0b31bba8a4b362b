package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// Gateway saves and loads the one resume document through a Store.
type Gateway struct {
	store Store
	log   *slog.Logger
}

func NewGateway(store Store, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{store: store, log: logger}
}

// ErrInvalidText is returned by Encode when a string is not valid UTF-8.
// JSON would silently replace such bytes, so the save is refused instead.
var ErrInvalidText = errors.New("text is not valid UTF-8")

// Encode produces the canonical bytes for r. The same resume always encodes
// to the same bytes.
func Encode(r *domain.Resume) ([]byte, error) {
	if err := checkText(r); err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(model.FromDomain(r), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func checkText(r *domain.Resume) error {
	if !utf8.ValidString(r.Title) {
		return fmt.Errorf("title: %w", ErrInvalidText)
	}
	for i, s := range r.Sections {
		for j, f := range s.Fields {
			if !utf8.ValidString(f.FieldName) || !utf8.ValidString(f.Content) {
				return fmt.Errorf("sections[%d].fields[%d]: %w", i, j, ErrInvalidText)
			}
		}
	}
	return nil
}

// Decode validates raw bytes against the record schema and rebuilds the
// resume.
func Decode(data []byte) (*domain.Resume, error) {
	if err := model.ValidateDocument(data); err != nil {
		return nil, err
	}
	var rec model.ResumeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return rec.ToDomain()
}

// Save overwrites the stored record with r. Failures are logged and
// returned; r itself is never modified.
func (g *Gateway) Save(ctx context.Context, r *domain.Resume) error {
	data, err := Encode(r)
	if err != nil {
		g.log.Warn("resume encode failed", "resume_id", r.ID, "error", err)
		return fmt.Errorf("encode resume: %w", err)
	}
	if err := g.store.Write(ctx, data); err != nil {
		g.log.Warn("resume save failed", "resume_id", r.ID, "error", err)
		return fmt.Errorf("write resume: %w", err)
	}
	g.log.Info("resume saved", "resume_id", r.ID, "bytes", len(data))
	return nil
}

// Load returns the stored resume, or the built-in default when there is no
// record or the record cannot be read or decoded. It never fails.
func (g *Gateway) Load(ctx context.Context) *domain.Resume {
	data, err := g.store.Read(ctx)
	if errors.Is(err, ErrNoRecord) {
		g.log.Info("no stored resume, using default")
		return domain.DefaultResume()
	}
	if err != nil {
		g.log.Warn("resume read failed, using default", "error", err)
		return domain.DefaultResume()
	}
	r, err := Decode(data)
	if err != nil {
		g.log.Warn("stored resume unreadable, using default", "error", err)
		return domain.DefaultResume()
	}
	return r
}
