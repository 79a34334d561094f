package store

import (
	"context"

	"nexus-backend-go/internal/models"
)

type TestimonialPatch struct {
	Name     Field[string]  `json:"name"`
	Role     Field[*string] `json:"role"`
	Company  Field[*string] `json:"company"`
	Content  Field[string]  `json:"content"`
	Rating   Field[int]     `json:"rating"`
	Avatar   Field[*string] `json:"avatar"`
	IsActive Field[bool]    `json:"isActive"`
	Order    Field[int]     `json:"order"`
}

func (p TestimonialPatch) changes() Changes {
	var c Changes
	setField(&c, "name", p.Name)
	setField(&c, "role", p.Role)
	setField(&c, "company", p.Company)
	setField(&c, "content", p.Content)
	setField(&c, "rating", p.Rating)
	setField(&c, "avatar", p.Avatar)
	setField(&c, "is_active", p.IsActive)
	setField(&c, "sort_order", p.Order)
	return c
}

func (s *Store) CreateTestimonial(ctx context.Context, t *models.Testimonial) error {
	now := s.timestamp()
	t.ID = newID()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.insert(ctx, `
INSERT INTO testimonials (id, name, role, company, content, rating, avatar, is_active, sort_order, created_at, updated_at)
VALUES (:id, :name, :role, :company, :content, :rating, :avatar, :is_active, :sort_order, :created_at, :updated_at)`, t)
}

func (s *Store) Testimonial(ctx context.Context, id string) (*models.Testimonial, error) {
	return getRow[models.Testimonial](ctx, s, `SELECT * FROM testimonials WHERE id = ?`, id)
}

func (s *Store) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return listRows[models.Testimonial](ctx, s, `SELECT * FROM testimonials ORDER BY sort_order ASC, created_at ASC`)
}

func (s *Store) UpdateTestimonial(ctx context.Context, id string, patch TestimonialPatch) (*models.Testimonial, error) {
	if err := s.update(ctx, "testimonials", id, patch.changes()); err != nil {
		return nil, err
	}
	return s.Testimonial(ctx, id)
}

func (s *Store) DeleteTestimonial(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "testimonials", id)
}

type WhyChooseUsPatch struct {
	Title       Field[string]  `json:"title"`
	Description Field[string]  `json:"description"`
	Icon        Field[*string] `json:"icon"`
	IsActive    Field[bool]    `json:"isActive"`
	Order       Field[int]     `json:"order"`
}

func (p WhyChooseUsPatch) changes() Changes {
	var c Changes
	setField(&c, "title", p.Title)
	setField(&c, "description", p.Description)
	setField(&c, "icon", p.Icon)
	setField(&c, "is_active", p.IsActive)
	setField(&c, "sort_order", p.Order)
	return c
}

func (s *Store) CreateWhyChooseUs(ctx context.Context, item *models.WhyChooseUsItem) error {
	now := s.timestamp()
	item.ID = newID()
	item.CreatedAt = now
	item.UpdatedAt = now
	return s.insert(ctx, `
INSERT INTO why_choose_us_items (id, title, description, icon, is_active, sort_order, created_at, updated_at)
VALUES (:id, :title, :description, :icon, :is_active, :sort_order, :created_at, :updated_at)`, item)
}

func (s *Store) WhyChooseUs(ctx context.Context, id string) (*models.WhyChooseUsItem, error) {
	return getRow[models.WhyChooseUsItem](ctx, s, `SELECT * FROM why_choose_us_items WHERE id = ?`, id)
}

func (s *Store) ListWhyChooseUs(ctx context.Context) ([]models.WhyChooseUsItem, error) {
	return listRows[models.WhyChooseUsItem](ctx, s, `SELECT * FROM why_choose_us_items ORDER BY sort_order ASC, created_at ASC`)
}

func (s *Store) UpdateWhyChooseUs(ctx context.Context, id string, patch WhyChooseUsPatch) (*models.WhyChooseUsItem, error) {
	if err := s.update(ctx, "why_choose_us_items", id, patch.changes()); err != nil {
		return nil, err
	}
	return s.WhyChooseUs(ctx, id)
}

func (s *Store) DeleteWhyChooseUs(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "why_choose_us_items", id)
}

type BookDemoPatch struct {
	Title       Field[string]         `json:"title"`
	Description Field[*string]        `json:"description"`
	ButtonText  Field[*string]        `json:"buttonText"`
	FormFields  Field[models.JSONMap] `json:"formFields"`
	IsActive    Field[bool]           `json:"isActive"`
}

func (p BookDemoPatch) changes() Changes {
	var c Changes
	setField(&c, "title", p.Title)
	setField(&c, "description", p.Description)
	setField(&c, "button_text", p.ButtonText)
	setField(&c, "form_fields", p.FormFields)
	setField(&c, "is_active", p.IsActive)
	return c
}

func (s *Store) CreateBookDemo(ctx context.Context, section *models.BookDemoSection) error {
	now := s.timestamp()
	section.ID = newID()
	section.CreatedAt = now
	section.UpdatedAt = now
	return s.insert(ctx, `
INSERT INTO book_demo_sections (id, title, description, button_text, form_fields, is_active, created_at, updated_at)
VALUES (:id, :title, :description, :button_text, :form_fields, :is_active, :created_at, :updated_at)`, section)
}

func (s *Store) BookDemo(ctx context.Context, id string) (*models.BookDemoSection, error) {
	return getRow[models.BookDemoSection](ctx, s, `SELECT * FROM book_demo_sections WHERE id = ?`, id)
}

func (s *Store) ListBookDemos(ctx context.Context) ([]models.BookDemoSection, error) {
	return listRows[models.BookDemoSection](ctx, s, `SELECT * FROM book_demo_sections ORDER BY updated_at DESC`)
}

func (s *Store) UpdateBookDemo(ctx context.Context, id string, patch BookDemoPatch) (*models.BookDemoSection, error) {
	if err := s.update(ctx, "book_demo_sections", id, patch.changes()); err != nil {
		return nil, err
	}
	return s.BookDemo(ctx, id)
}

func (s *Store) DeleteBookDemo(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "book_demo_sections", id)
}
