package http

import (
	"context"
	"errors"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	session *usecase.Session
}

func NewHandler(s *usecase.Session) *Handler {
	return &Handler{session: s}
}

// Register mounts every editor route on app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/onboarding", h.Onboarding)
	app.Get("/templates", h.Templates)

	r := app.Group("/resume")
	r.Get("", h.GetResume)
	r.Put("/title", h.SetTitle)
	r.Put("/template", h.SetTemplate)
	r.Post("/sections", h.AddSection)
	r.Post("/sections/:section/fields", h.AddField)
	r.Put("/sections/:section/fields/:field", h.SetFieldContent)
	r.Post("/deletions", h.RequestDelete)
	r.Post("/deletions/confirm", h.ConfirmDelete)
	r.Delete("/deletions", h.CancelDelete)
	r.Post("/save", h.Save)
	r.Post("/load", h.Load)
}

type fieldView struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Empty   bool   `json:"empty"`
}

type sectionView struct {
	ID     string      `json:"id"`
	Type   string      `json:"type"`
	Title  string      `json:"title"`
	Fields []fieldView `json:"fields"`
}

type templateView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Asset  string `json:"asset"`
	Locked bool   `json:"locked"`
}

type resumeView struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Template templateView  `json:"template"`
	Sections []sectionView `json:"sections"`
	Revision uint64        `json:"revision"`
	Pending  *deleteView   `json:"pending_delete,omitempty"`
}

type deleteView struct {
	Section int    `json:"section"`
	Field   int    `json:"field"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func toTemplateView(t domain.Template, isPro bool) templateView {
	return templateView{ID: string(t.ID), Name: t.Name, Asset: t.Asset, Locked: t.Locked(isPro)}
}

func (h *Handler) view() resumeView {
	r, rev := h.session.Snapshot()
	out := resumeView{
		ID:       r.ID.String(),
		Title:    r.Title,
		Template: toTemplateView(r.Template, h.session.IsPro()),
		Sections: make([]sectionView, 0, len(r.Sections)),
		Revision: rev,
	}
	for _, s := range r.Sections {
		sv := sectionView{ID: s.ID.String(), Type: string(s.SectionType), Title: s.SectionType.DisplayName(), Fields: make([]fieldView, 0, len(s.Fields))}
		for _, f := range s.Fields {
			sv.Fields = append(sv.Fields, fieldView{ID: f.ID.String(), Type: string(f.FieldType), Name: f.FieldName, Content: f.Content, Empty: f.IsEmpty()})
		}
		out.Sections = append(out.Sections, sv)
	}
	if t, ok := h.session.PendingDelete(); ok {
		title, msg := t.Prompt()
		out.Pending = &deleteView{Section: t.SectionIndex, Field: t.FieldIndex, Title: title, Message: msg}
	}
	return out
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrIndexOutOfRange):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnknownTemplate):
		status = fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrNothingToDelete):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func (h *Handler) Onboarding(c *fiber.Ctx) error {
	return c.JSON(domain.OnboardingSteps())
}

func (h *Handler) Templates(c *fiber.Ctx) error {
	isPro := c.QueryBool("pro", h.session.IsPro())
	out := make([]templateView, 0, 3)
	for _, t := range domain.Templates() {
		out = append(out, toTemplateView(t, isPro))
	}
	return c.JSON(out)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	return c.JSON(h.view())
}

type titleReq struct {
	Title string `json:"title"`
}

func (h *Handler) SetTitle(c *fiber.Ctx) error {
	var req titleReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.session.SetTitle(req.Title); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(h.view())
}

type templateReq struct {
	Template string `json:"template"`
}

func (h *Handler) SetTemplate(c *fiber.Ctx) error {
	var req templateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.session.ChangeTemplate(domain.TemplateID(req.Template)); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(h.view())
}

type fieldReq struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

type sectionReq struct {
	Type   string     `json:"type"`
	Fields []fieldReq `json:"fields"`
}

func (h *Handler) AddSection(c *fiber.Ctx) error {
	var req sectionReq
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid payload")
		}
	}
	if req.Type == "" {
		if err := h.session.AddCustomSection(); err != nil {
			return h.fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(h.view())
	}
	st, err := domain.ParseSectionType(req.Type)
	if err != nil {
		return badRequest(c, err.Error())
	}
	fields := make([]domain.Field, 0, len(req.Fields))
	for _, f := range req.Fields {
		ft, err := domain.ParseFieldType(f.Type)
		if err != nil {
			return badRequest(c, err.Error())
		}
		fields = append(fields, domain.NewField(ft, f.Name, f.Content))
	}
	if err := h.session.AddSection(st, fields); err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.view())
}

func (h *Handler) AddField(c *fiber.Ctx) error {
	section, err := c.ParamsInt("section")
	if err != nil {
		return badRequest(c, "invalid section index")
	}
	req := fieldReq{Type: string(domain.FieldText), Name: "New Field"}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid payload")
		}
	}
	ft, err := domain.ParseFieldType(req.Type)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.session.AddField(section, ft, req.Name, req.Content); err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.view())
}

type contentReq struct {
	Content string `json:"content"`
}

func (h *Handler) SetFieldContent(c *fiber.Ctx) error {
	section, err := c.ParamsInt("section")
	if err != nil {
		return badRequest(c, "invalid section index")
	}
	field, err := c.ParamsInt("field")
	if err != nil {
		return badRequest(c, "invalid field index")
	}
	var req contentReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.session.SetFieldContent(section, field, req.Content); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(h.view())
}

type deleteReq struct {
	Section *int `json:"section"`
	Field   *int `json:"field"`
}

// RequestDelete parks a delete for confirmation. Without a section index it
// targets the last section.
func (h *Handler) RequestDelete(c *fiber.Ctx) error {
	var req deleteReq
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid payload")
		}
	}
	switch {
	case req.Section == nil:
		if !h.session.RequestDeleteLastSection() {
			return c.JSON(h.view())
		}
	case req.Field == nil:
		if err := h.session.RequestDelete(usecase.SectionTarget(*req.Section)); err != nil {
			return h.fail(c, err)
		}
	default:
		if err := h.session.RequestDelete(usecase.FieldTarget(*req.Section, *req.Field)); err != nil {
			return h.fail(c, err)
		}
	}
	return c.Status(fiber.StatusAccepted).JSON(h.view())
}

func (h *Handler) ConfirmDelete(c *fiber.Ctx) error {
	if err := h.session.ConfirmDelete(); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(h.view())
}

func (h *Handler) CancelDelete(c *fiber.Ctx) error {
	h.session.CancelDelete()
	return c.JSON(h.view())
}

func (h *Handler) Save(c *fiber.Ctx) error {
	if err := <-h.session.SaveAsync(context.Background()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save failed", "resume": h.view()})
	}
	return c.JSON(h.view())
}

func (h *Handler) Load(c *fiber.Ctx) error {
	<-h.session.LoadAsync(context.Background())
	return c.JSON(h.view())
}
