package store

import (
	"context"

	"nexus-backend-go/internal/models"
)

type HeroPatch struct {
	Title           Field[string]  `json:"title"`
	Subtitle        Field[*string] `json:"subtitle"`
	Description     Field[*string] `json:"description"`
	ButtonText      Field[*string] `json:"buttonText"`
	ButtonLink      Field[*string] `json:"buttonLink"`
	BackgroundImage Field[*string] `json:"backgroundImage"`
	IsActive        Field[bool]    `json:"isActive"`
}

func (p HeroPatch) changes() Changes {
	var c Changes
	setField(&c, "title", p.Title)
	setField(&c, "subtitle", p.Subtitle)
	setField(&c, "description", p.Description)
	setField(&c, "button_text", p.ButtonText)
	setField(&c, "button_link", p.ButtonLink)
	setField(&c, "background_image", p.BackgroundImage)
	setField(&c, "is_active", p.IsActive)
	return c
}

func (s *Store) CreateHero(ctx context.Context, hero *models.HeroSection) error {
	now := s.timestamp()
	hero.ID = newID()
	hero.CreatedAt = now
	hero.UpdatedAt = now
	return s.insert(ctx, `
INSERT INTO hero_sections (id, title, subtitle, description, button_text, button_link, background_image, is_active, created_at, updated_at)
VALUES (:id, :title, :subtitle, :description, :button_text, :button_link, :background_image, :is_active, :created_at, :updated_at)`, hero)
}

func (s *Store) Hero(ctx context.Context, id string) (*models.HeroSection, error) {
	return getRow[models.HeroSection](ctx, s, `SELECT * FROM hero_sections WHERE id = ?`, id)
}

func (s *Store) ListHeroes(ctx context.Context) ([]models.HeroSection, error) {
	return listRows[models.HeroSection](ctx, s, `SELECT * FROM hero_sections ORDER BY updated_at DESC`)
}

func (s *Store) UpdateHero(ctx context.Context, id string, patch HeroPatch) (*models.HeroSection, error) {
	if err := s.update(ctx, "hero_sections", id, patch.changes()); err != nil {
		return nil, err
	}
	return s.Hero(ctx, id)
}

func (s *Store) DeleteHero(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "hero_sections", id)
}
