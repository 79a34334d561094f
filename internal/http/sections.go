package httpapi

import (
	"context"

	"nexus-backend-go/internal/models"
	"nexus-backend-go/internal/services"
	"nexus-backend-go/internal/store"
)

type heroInput struct {
	Title           string  `json:"title"`
	Subtitle        *string `json:"subtitle"`
	Description     *string `json:"description"`
	ButtonText      *string `json:"buttonText"`
	ButtonLink      *string `json:"buttonLink"`
	BackgroundImage *string `json:"backgroundImage"`
	IsActive        *bool   `json:"isActive"`
}

func (s *Server) getHero(ctx context.Context, req actionRequest) (any, error) {
	if req.ID != "" {
		return s.Store.Hero(ctx, req.ID)
	}
	return s.Store.ListHeroes(ctx)
}

func (s *Server) createHero(ctx context.Context, req actionRequest) (any, error) {
	in, err := decodeBody[heroInput](req)
	if err != nil {
		return nil, err
	}
	if err := requireFields(requiredField{"title", in.Title}); err != nil {
		return nil, err
	}
	hero := &models.HeroSection{
		Title:           in.Title,
		Subtitle:        in.Subtitle,
		Description:     in.Description,
		ButtonText:      in.ButtonText,
		ButtonLink:      in.ButtonLink,
		BackgroundImage: in.BackgroundImage,
		IsActive:        boolOr(in.IsActive, true),
	}
	if err := s.Store.CreateHero(ctx, hero); err != nil {
		return nil, err
	}
	return hero, nil
}

func (s *Server) updateHero(ctx context.Context, req actionRequest) (any, error) {
	patch, err := decodeBody[store.HeroPatch](req)
	if err != nil {
		return nil, err
	}
	if err := requirePatched(patchedField{"title", patch.Title}); err != nil {
		return nil, err
	}
	return s.Store.UpdateHero(ctx, req.ID, patch)
}

func (s *Server) deleteHero(ctx context.Context, req actionRequest) (any, error) {
	if err := s.Store.DeleteHero(ctx, req.ID); err != nil {
		return nil, err
	}
	return deleted("Hero section"), nil
}

type testimonialInput struct {
	Name     string  `json:"name"`
	Role     *string `json:"role"`
	Company  *string `json:"company"`
	Content  string  `json:"content"`
	Rating   *int    `json:"rating"`
	Avatar   *string `json:"avatar"`
	IsActive *bool   `json:"isActive"`
	Order    *int    `json:"order"`
}

func validRating(rating int) error {
	if rating < 1 || rating > 5 {
		return services.ErrBadRequest("rating must be between 1 and 5")
	}
	return nil
}

func (s *Server) getTestimonials(ctx context.Context, req actionRequest) (any, error) {
	if req.ID != "" {
		return s.Store.Testimonial(ctx, req.ID)
	}
	return s.Store.ListTestimonials(ctx)
}

func (s *Server) createTestimonial(ctx context.Context, req actionRequest) (any, error) {
	in, err := decodeBody[testimonialInput](req)
	if err != nil {
		return nil, err
	}
	if err := requireFields(requiredField{"name", in.Name}, requiredField{"content", in.Content}); err != nil {
		return nil, err
	}
	t := &models.Testimonial{
		Name:     in.Name,
		Role:     in.Role,
		Company:  in.Company,
		Content:  in.Content,
		Rating:   intOr(in.Rating, 5),
		Avatar:   in.Avatar,
		IsActive: boolOr(in.IsActive, true),
		Order:    intOr(in.Order, 0),
	}
	if err := validRating(t.Rating); err != nil {
		return nil, err
	}
	if err := s.Store.CreateTestimonial(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Server) updateTestimonial(ctx context.Context, req actionRequest) (any, error) {
	patch, err := decodeBody[store.TestimonialPatch](req)
	if err != nil {
		return nil, err
	}
	if err := requirePatched(patchedField{"name", patch.Name}, patchedField{"content", patch.Content}); err != nil {
		return nil, err
	}
	if patch.Rating.Set {
		if err := validRating(patch.Rating.Value); err != nil {
			return nil, err
		}
	}
	return s.Store.UpdateTestimonial(ctx, req.ID, patch)
}

func (s *Server) deleteTestimonial(ctx context.Context, req actionRequest) (any, error) {
	if err := s.Store.DeleteTestimonial(ctx, req.ID); err != nil {
		return nil, err
	}
	return deleted("Testimonial"), nil
}

type whyChooseUsInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"isActive"`
	Order       *int    `json:"order"`
}

func (s *Server) getWhyChooseUs(ctx context.Context, req actionRequest) (any, error) {
	if req.ID != "" {
		return s.Store.WhyChooseUs(ctx, req.ID)
	}
	return s.Store.ListWhyChooseUs(ctx)
}

func (s *Server) createWhyChooseUs(ctx context.Context, req actionRequest) (any, error) {
	in, err := decodeBody[whyChooseUsInput](req)
	if err != nil {
		return nil, err
	}
	if err := requireFields(requiredField{"title", in.Title}, requiredField{"description", in.Description}); err != nil {
		return nil, err
	}
	item := &models.WhyChooseUsItem{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		IsActive:    boolOr(in.IsActive, true),
		Order:       intOr(in.Order, 0),
	}
	if err := s.Store.CreateWhyChooseUs(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Server) updateWhyChooseUs(ctx context.Context, req actionRequest) (any, error) {
	patch, err := decodeBody[store.WhyChooseUsPatch](req)
	if err != nil {
		return nil, err
	}
	if err := requirePatched(patchedField{"title", patch.Title}, patchedField{"description", patch.Description}); err != nil {
		return nil, err
	}
	return s.Store.UpdateWhyChooseUs(ctx, req.ID, patch)
}

func (s *Server) deleteWhyChooseUs(ctx context.Context, req actionRequest) (any, error) {
	if err := s.Store.DeleteWhyChooseUs(ctx, req.ID); err != nil {
		return nil, err
	}
	return deleted("Why Choose Us item"), nil
}

type bookDemoInput struct {
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	ButtonText  *string        `json:"buttonText"`
	FormFields  models.JSONMap `json:"formFields"`
	IsActive    *bool          `json:"isActive"`
}

func (s *Server) getBookDemo(ctx context.Context, req actionRequest) (any, error) {
	if req.ID != "" {
		return s.Store.BookDemo(ctx, req.ID)
	}
	return s.Store.ListBookDemos(ctx)
}

func (s *Server) createBookDemo(ctx context.Context, req actionRequest) (any, error) {
	in, err := decodeBody[bookDemoInput](req)
	if err != nil {
		return nil, err
	}
	if err := requireFields(requiredField{"title", in.Title}); err != nil {
		return nil, err
	}
	section := &models.BookDemoSection{
		Title:       in.Title,
		Description: in.Description,
		ButtonText:  in.ButtonText,
		FormFields:  mapOrEmpty(in.FormFields),
		IsActive:    boolOr(in.IsActive, true),
	}
	if err := s.Store.CreateBookDemo(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *Server) updateBookDemo(ctx context.Context, req actionRequest) (any, error) {
	patch, err := decodeBody[store.BookDemoPatch](req)
	if err != nil {
		return nil, err
	}
	if err := requirePatched(patchedField{"title", patch.Title}); err != nil {
		return nil, err
	}
	return s.Store.UpdateBookDemo(ctx, req.ID, patch)
}

func (s *Server) deleteBookDemo(ctx context.Context, req actionRequest) (any, error) {
	if err := s.Store.DeleteBookDemo(ctx, req.ID); err != nil {
		return nil, err
	}
	return deleted("Book Demo section"), nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func mapOrEmpty(m models.JSONMap) models.JSONMap {
	if m == nil {
		return models.JSONMap{}
	}
	return m
}

func listOrEmpty(l models.StringList) models.StringList {
	if l == nil {
		return models.StringList{}
	}
	return l
}
