package httpapi

import (
	"context"

	"nexus-backend-go/internal/models"
	"nexus-backend-go/internal/services"
	"nexus-backend-go/internal/store"
)

type productInput struct {
	Title              string            `json:"title"`
	Slug               string            `json:"slug"`
	ShortDescription   *string           `json:"shortDescription"`
	Description        *string           `json:"description"`
	Features           models.StringList `json:"features"`
	Specifications     models.JSONMap    `json:"specifications"`
	Benefits           models.StringList `json:"benefits"`
	Price              *float64          `json:"price"`
	OriginalPrice      *float64          `json:"originalPrice"`
	Currency           *string           `json:"currency"`
	PricingModel       *string           `json:"pricingModel"`
	Image              *string           `json:"image"`
	Images             models.StringList `json:"images"`
	VideoURL           *string           `json:"videoUrl"`
	BrochureURL        *string           `json:"brochureUrl"`
	Category           *string           `json:"category"`
	SubCategory        *string           `json:"subCategory"`
	Tags               models.StringList `json:"tags"`
	TargetAudience     models.StringList `json:"targetAudience"`
	Industries         models.StringList `json:"industries"`
	UseCases           models.StringList `json:"useCases"`
	SystemRequirements models.JSONMap    `json:"systemRequirements"`
	Compatibility      models.StringList `json:"compatibility"`
	Integrations       models.StringList `json:"integrations"`
	MetaTitle          *string           `json:"metaTitle"`
	MetaDescription    *string           `json:"metaDescription"`
	Keywords           models.StringList `json:"keywords"`
	Status             *string           `json:"status"`
	IsActive           *bool             `json:"isActive"`
	IsFeatured         *bool             `json:"isFeatured"`
	Order              *int              `json:"order"`
}

func (in productInput) model() *models.Product {
	slug := in.Slug
	if slug == "" {
		slug = services.Slugify(in.Title)
	}
	return &models.Product{
		Title:              in.Title,
		Slug:               slug,
		ShortDescription:   in.ShortDescription,
		Description:        in.Description,
		Features:           listOrEmpty(in.Features),
		Specifications:     mapOrEmpty(in.Specifications),
		Benefits:           listOrEmpty(in.Benefits),
		Price:              in.Price,
		OriginalPrice:      in.OriginalPrice,
		Currency:           stringOr(in.Currency, "USD"),
		PricingModel:       stringOr(in.PricingModel, "one-time"),
		Image:              in.Image,
		Images:             listOrEmpty(in.Images),
		VideoURL:           in.VideoURL,
		BrochureURL:        in.BrochureURL,
		Category:           in.Category,
		SubCategory:        in.SubCategory,
		Tags:               listOrEmpty(in.Tags),
		TargetAudience:     listOrEmpty(in.TargetAudience),
		Industries:         listOrEmpty(in.Industries),
		UseCases:           listOrEmpty(in.UseCases),
		SystemRequirements: mapOrEmpty(in.SystemRequirements),
		Compatibility:      listOrEmpty(in.Compatibility),
		Integrations:       listOrEmpty(in.Integrations),
		MetaTitle:          in.MetaTitle,
		MetaDescription:    in.MetaDescription,
		Keywords:           listOrEmpty(in.Keywords),
		Status:             stringOr(in.Status, models.ProductStatusDraft),
		IsActive:           boolOr(in.IsActive, true),
		IsFeatured:         boolOr(in.IsFeatured, false),
		Order:              intOr(in.Order, 0),
	}
}

func validProductStatus(status string) error {
	if !models.ValidProductStatus(status) {
		return services.ErrBadRequest("status must be one of draft, published, archived")
	}
	return nil
}

func (s *Server) getProducts(ctx context.Context, req actionRequest) (any, error) {
	if req.ID != "" {
		return s.Store.Product(ctx, req.ID)
	}
	return s.Store.ListProducts(ctx, store.ProductFilter{
		Category:     req.Query.Get("category"),
		Status:       req.Query.Get("status"),
		FeaturedOnly: req.Query.Get("featured") == "true",
	})
}

func (s *Server) getProductCategories(ctx context.Context, _ actionRequest) (any, error) {
	return s.Store.ProductCategories(ctx)
}

func (s *Server) createProduct(ctx context.Context, req actionRequest) (any, error) {
	in, err := decodeBody[productInput](req)
	if err != nil {
		return nil, err
	}
	if err := requireFields(requiredField{"title", in.Title}); err != nil {
		return nil, err
	}
	product := in.model()
	if err := validProductStatus(product.Status); err != nil {
		return nil, err
	}
	if err := s.Store.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Server) updateProduct(ctx context.Context, req actionRequest) (any, error) {
	patch, err := decodeBody[store.ProductPatch](req)
	if err != nil {
		return nil, err
	}
	if err := requirePatched(patchedField{"title", patch.Title}, patchedField{"slug", patch.Slug}); err != nil {
		return nil, err
	}
	if patch.Status.Set {
		if err := validProductStatus(patch.Status.Value); err != nil {
			return nil, err
		}
	}
	return s.Store.UpdateProduct(ctx, req.ID, patch)
}

func (s *Server) deleteProduct(ctx context.Context, req actionRequest) (any, error) {
	if err := s.Store.DeleteProduct(ctx, req.ID); err != nil {
		return nil, err
	}
	return deleted("Product"), nil
}
