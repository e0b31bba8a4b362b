package repository

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"resume-builder/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFileGateway(t *testing.T) (*Gateway, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "resume.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return NewGateway(store, quietLogger()), path
}

func TestGateway_LoadWithoutRecordReturnsDefault(t *testing.T) {
	g, _ := newFileGateway(t)
	r := g.Load(context.Background())
	if r.Template != domain.Template1 {
		t.Fatalf("expected Template 1, got %s", r.Template.Name)
	}
	var got []domain.SectionType
	for _, s := range r.Sections {
		got = append(got, s.SectionType)
	}
	want := []domain.SectionType{domain.SectionSummary, domain.SectionExperience, domain.SectionEducation, domain.SectionSkills}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("default sections mismatch (-want +got):\n%s", diff)
	}
}

func TestGateway_SaveThenLoadRoundTrips(t *testing.T) {
	g, _ := newFileGateway(t)
	ctx := context.Background()

	r := domain.NewResume("Platform Engineer", domain.Template2)
	s, _ := r.Section(0)
	f, _ := s.Field(0)
	f.SetContent("Builds reliable systems.")
	r.AddSection(domain.SectionCertifications, []domain.Field{domain.NewField(domain.FieldDate, "Issued", "2024-03-01")})

	if err := g.Save(ctx, r); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got := g.Load(ctx)
	if diff := cmp.Diff(r, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestGateway_SaveTwiceIsIdempotent(t *testing.T) {
	g, path := newFileGateway(t)
	ctx := context.Background()
	r := domain.NewResume("x", domain.ProTemplate)

	if err := g.Save(ctx, r); err != nil {
		t.Fatalf("Save: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if err := g.Save(ctx, r); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("second save changed the record:\n%s\n---\n%s", first, second)
	}
}

func TestGateway_CorruptRecordFallsBackToDefault(t *testing.T) {
	cases := map[string]string{
		"garbage":          "\x00\x01 definitely not json",
		"truncated":        `{"id":"7f1c3a52-8a0e-4f5e-9c55-7a3f0d6c1b11","title":"x","templ`,
		"unknown template": `{"id":"7f1c3a52-8a0e-4f5e-9c55-7a3f0d6c1b11","title":"x","template":{"id":"template9","name":"?"},"sections":[]}`,
		"unknown kind":     `{"id":"7f1c3a52-8a0e-4f5e-9c55-7a3f0d6c1b11","title":"x","template":{"id":"template1","name":"Template 1"},"sections":[{"id":"7f1c3a52-8a0e-4f5e-9c55-7a3f0d6c1b12","type":"hobbies","fields":[]}]}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			g, path := newFileGateway(t)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				t.Fatalf("MkdirAll: %v", err)
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			r := g.Load(context.Background())
			if r.Title != "My Resume" || r.Template != domain.Template1 || len(r.Sections) != 4 {
				t.Fatalf("expected default resume, got %+v", r)
			}
		})
	}
}

type failingStore struct{ err error }

func (s failingStore) Read(context.Context) ([]byte, error) { return nil, s.err }
func (s failingStore) Write(context.Context, []byte) error  { return s.err }

func TestGateway_SaveFailureLeavesResumeUntouched(t *testing.T) {
	boom := errors.New("disk full")
	g := NewGateway(failingStore{err: boom}, quietLogger())
	r := domain.DefaultResume()
	before := r.Clone()

	err := g.Save(context.Background(), r)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if diff := cmp.Diff(before, r); diff != "" {
		t.Fatalf("resume changed after failed save (-want +got):\n%s", diff)
	}
}

func TestGateway_ReadFailureFallsBackToDefault(t *testing.T) {
	g := NewGateway(failingStore{err: errors.New("permission denied")}, quietLogger())
	r := g.Load(context.Background())
	if r == nil || r.Template != domain.Template1 {
		t.Fatalf("expected default resume, got %+v", r)
	}
}

func TestFileStore_ReadMissingIsErrNoRecord(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Read(context.Background()); !errors.Is(err, ErrNoRecord) {
		t.Fatalf("expected ErrNoRecord, got %v", err)
	}
	if _, err := NewFileStore("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestFileStore_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewFileStore(filepath.Join(dir, "resume.json"))
	if err := store.Write(context.Background(), []byte("{}")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "resume.json" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}

func TestGateway_SaveRejectsInvalidUTF8(t *testing.T) {
	g, path := newFileGateway(t)
	r := domain.DefaultResume()
	r.Sections[0].Fields[0].SetContent("bad \xff byte")

	if err := g.Save(context.Background(), r); !errors.Is(err, ErrInvalidText) {
		t.Fatalf("expected ErrInvalidText, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written, stat err = %v", err)
	}
	if r.Sections[0].Fields[0].Content != "bad \xff byte" {
		t.Fatalf("in-memory content was altered")
	}

	r.Sections[0].Fields[0].SetContent("naïve café ✓")
	if err := g.Save(context.Background(), r); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := g.Load(context.Background()); got.Sections[0].Fields[0].Content != "naïve café ✓" {
		t.Fatalf("unicode content not preserved: %q", got.Sections[0].Fields[0].Content)
	}
}
