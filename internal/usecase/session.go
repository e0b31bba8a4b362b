package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"resume-builder/internal/domain"
)

// Session is the single owner of the resume being edited. All mutation goes
// through its methods; subscribers are told after each change.
type Session struct {
	mu       sync.Mutex
	resume   *domain.Resume
	revision uint64
	pending  *DeleteTarget
	isPro    bool

	gateway Gateway
	log     *slog.Logger

	subMu  sync.Mutex
	subs   map[int]func(Event)
	nextID int
}

func NewSession(gateway Gateway, resume *domain.Resume, isPro bool, logger *slog.Logger) *Session {
	if resume == nil {
		resume = domain.DefaultResume()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		resume:  resume,
		isPro:   isPro,
		gateway: gateway,
		log:     logger,
		subs:    map[int]func(Event){},
	}
}

func (s *Session) IsPro() bool { return s.isPro }

// Subscribe registers fn for change events and returns a function that
// removes it. fn runs on the goroutine that made the change.
func (s *Session) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Session) publish(ev Event) {
	s.subMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// Snapshot returns a read-only copy of the document and its revision.
func (s *Session) Snapshot() (*domain.Resume, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resume.Clone(), s.revision
}

// mutate runs fn under the lock and publishes when it succeeds.
func (s *Session) mutate(fn func(r *domain.Resume) error) error {
	s.mu.Lock()
	if err := fn(s.resume); err != nil {
		s.mu.Unlock()
		return err
	}
	s.revision++
	rev := s.revision
	s.mu.Unlock()
	s.publish(Event{Kind: EventMutated, Revision: rev})
	return nil
}

func (s *Session) SetTitle(title string) error {
	return s.mutate(func(r *domain.Resume) error {
		r.Title = title
		return nil
	})
}

// ChangeTemplate switches the template. Every section is replaced by the
// template defaults, dropping current edits.
func (s *Session) ChangeTemplate(id domain.TemplateID) error {
	tpl, err := domain.TemplateByID(id)
	if err != nil {
		return err
	}
	return s.mutate(func(r *domain.Resume) error {
		r.SetTemplate(tpl)
		s.pending = nil
		return nil
	})
}

func (s *Session) AddSection(sectionType domain.SectionType, fields []domain.Field) error {
	if !sectionType.Valid() {
		return fmt.Errorf("add section: unknown section type %q", sectionType)
	}
	return s.mutate(func(r *domain.Resume) error {
		r.AddSection(sectionType, fields)
		return nil
	})
}

// AddCustomSection appends the editor's default new section.
func (s *Session) AddCustomSection() error {
	return s.AddSection(domain.SectionCustom, []domain.Field{domain.NewField(domain.FieldText, "New Field", "")})
}

func (s *Session) AddField(section int, fieldType domain.FieldType, fieldName, content string) error {
	if !fieldType.Valid() {
		return fmt.Errorf("add field: unknown field type %q", fieldType)
	}
	return s.mutate(func(r *domain.Resume) error {
		sec, err := r.Section(section)
		if err != nil {
			return err
		}
		sec.AddField(fieldType, fieldName, content)
		return nil
	})
}

func (s *Session) SetFieldContent(section, field int, content string) error {
	return s.mutate(func(r *domain.Resume) error {
		sec, err := r.Section(section)
		if err != nil {
			return err
		}
		f, err := sec.Field(field)
		if err != nil {
			return err
		}
		f.SetContent(content)
		return nil
	})
}

// RequestDelete validates target and parks it until confirmed or
// cancelled.
func (s *Session) RequestDelete(target DeleteTarget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec, err := s.resume.Section(target.SectionIndex)
	if err != nil {
		return err
	}
	if !target.IsSection() {
		if _, err := sec.Field(target.FieldIndex); err != nil {
			return err
		}
	}
	s.pending = &target
	return nil
}

// RequestDeleteLastSection targets the final section. It reports false
// when there is nothing to remove.
func (s *Session) RequestDeleteLastSection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.resume.Sections) == 0 {
		return false
	}
	t := SectionTarget(len(s.resume.Sections) - 1)
	s.pending = &t
	return true
}

func (s *Session) PendingDelete() (DeleteTarget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return DeleteTarget{}, false
	}
	return *s.pending, true
}

func (s *Session) CancelDelete() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}

// ConfirmDelete performs the pending removal.
func (s *Session) ConfirmDelete() error {
	return s.mutate(func(r *domain.Resume) error {
		if s.pending == nil {
			return ErrNothingToDelete
		}
		target := *s.pending
		s.pending = nil
		if target.IsSection() {
			return r.RemoveSection(target.SectionIndex)
		}
		sec, err := r.Section(target.SectionIndex)
		if err != nil {
			return err
		}
		return sec.RemoveField(target.FieldIndex)
	})
}

// Save writes the current document. A failed save is logged by the gateway
// and leaves the session untouched.
func (s *Session) Save(ctx context.Context) error {
	snap, rev := s.Snapshot()
	if err := s.gateway.Save(ctx, snap); err != nil {
		return err
	}
	s.publish(Event{Kind: EventSaved, Revision: rev})
	return nil
}

// SaveAsync runs Save on its own goroutine and reports the result on the
// returned channel.
func (s *Session) SaveAsync(ctx context.Context) <-chan error {
	snap, rev := s.Snapshot()
	done := make(chan error, 1)
	go func() {
		err := s.gateway.Save(ctx, snap)
		if err == nil {
			s.publish(Event{Kind: EventSaved, Revision: rev})
		}
		done <- err
	}()
	return done
}

// Load replaces the document with whatever the gateway yields.
func (s *Session) Load(ctx context.Context) {
	s.install(s.gateway.Load(ctx))
}

// LoadAsync loads on its own goroutine; the channel closes once the new
// document is installed.
func (s *Session) LoadAsync(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Load(ctx)
	}()
	return done
}

func (s *Session) install(r *domain.Resume) {
	s.mu.Lock()
	s.resume = r
	s.pending = nil
	s.revision++
	rev := s.revision
	id, tpl, sections := r.ID, r.Template.ID, len(r.Sections)
	s.mu.Unlock()
	s.log.Info("resume loaded", "resume_id", id, "template", tpl, "sections", sections)
	s.publish(Event{Kind: EventLoaded, Revision: rev})
}
