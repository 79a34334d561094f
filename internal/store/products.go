package store

import (
	"context"

	"nexus-backend-go/internal/models"
)

type ProductFilter struct {
	Category     string
	Status       string
	FeaturedOnly bool
}

type ProductPatch struct {
	Title              Field[string]            `json:"title"`
	Slug               Field[string]            `json:"slug"`
	ShortDescription   Field[*string]           `json:"shortDescription"`
	Description        Field[*string]           `json:"description"`
	Features           Field[models.StringList] `json:"features"`
	Specifications     Field[models.JSONMap]    `json:"specifications"`
	Benefits           Field[models.StringList] `json:"benefits"`
	Price              Field[*float64]          `json:"price"`
	OriginalPrice      Field[*float64]          `json:"originalPrice"`
	Currency           Field[string]            `json:"currency"`
	PricingModel       Field[string]            `json:"pricingModel"`
	Image              Field[*string]           `json:"image"`
	Images             Field[models.StringList] `json:"images"`
	VideoURL           Field[*string]           `json:"videoUrl"`
	BrochureURL        Field[*string]           `json:"brochureUrl"`
	Category           Field[*string]           `json:"category"`
	SubCategory        Field[*string]           `json:"subCategory"`
	Tags               Field[models.StringList] `json:"tags"`
	TargetAudience     Field[models.StringList] `json:"targetAudience"`
	Industries         Field[models.StringList] `json:"industries"`
	UseCases           Field[models.StringList] `json:"useCases"`
	SystemRequirements Field[models.JSONMap]    `json:"systemRequirements"`
	Compatibility      Field[models.StringList] `json:"compatibility"`
	Integrations       Field[models.StringList] `json:"integrations"`
	MetaTitle          Field[*string]           `json:"metaTitle"`
	MetaDescription    Field[*string]           `json:"metaDescription"`
	Keywords           Field[models.StringList] `json:"keywords"`
	Status             Field[string]            `json:"status"`
	IsActive           Field[bool]              `json:"isActive"`
	IsFeatured         Field[bool]              `json:"isFeatured"`
	Order              Field[int]               `json:"order"`
}

func (p ProductPatch) changes() Changes {
	var c Changes
	setField(&c, "title", p.Title)
	setField(&c, "slug", p.Slug)
	setField(&c, "short_description", p.ShortDescription)
	setField(&c, "description", p.Description)
	setField(&c, "features", p.Features)
	setField(&c, "specifications", p.Specifications)
	setField(&c, "benefits", p.Benefits)
	setField(&c, "price", p.Price)
	setField(&c, "original_price", p.OriginalPrice)
	setField(&c, "currency", p.Currency)
	setField(&c, "pricing_model", p.PricingModel)
	setField(&c, "image", p.Image)
	setField(&c, "images", p.Images)
	setField(&c, "video_url", p.VideoURL)
	setField(&c, "brochure_url", p.BrochureURL)
	setField(&c, "category", p.Category)
	setField(&c, "sub_category", p.SubCategory)
	setField(&c, "tags", p.Tags)
	setField(&c, "target_audience", p.TargetAudience)
	setField(&c, "industries", p.Industries)
	setField(&c, "use_cases", p.UseCases)
	setField(&c, "system_requirements", p.SystemRequirements)
	setField(&c, "compatibility", p.Compatibility)
	setField(&c, "integrations", p.Integrations)
	setField(&c, "meta_title", p.MetaTitle)
	setField(&c, "meta_description", p.MetaDescription)
	setField(&c, "keywords", p.Keywords)
	setField(&c, "status", p.Status)
	setField(&c, "is_active", p.IsActive)
	setField(&c, "is_featured", p.IsFeatured)
	setField(&c, "sort_order", p.Order)
	return c
}

// CreateProduct stamps PublishedAt when the product starts out published.
func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	now := s.timestamp()
	product.ID = newID()
	product.CreatedAt = now
	product.UpdatedAt = now
	product.PublishedAt = nil
	if product.Status == models.ProductStatusPublished {
		published := now
		product.PublishedAt = &published
	}
	return s.insert(ctx, `
INSERT INTO products (
  id, title, slug, short_description, description, features, specifications, benefits,
  price, original_price, currency, pricing_model, image, images, video_url, brochure_url,
  category, sub_category, tags, target_audience, industries, use_cases, system_requirements,
  compatibility, integrations, meta_title, meta_description, keywords, status, is_active,
  is_featured, sort_order, published_at, created_at, updated_at
) VALUES (
  :id, :title, :slug, :short_description, :description, :features, :specifications, :benefits,
  :price, :original_price, :currency, :pricing_model, :image, :images, :video_url, :brochure_url,
  :category, :sub_category, :tags, :target_audience, :industries, :use_cases, :system_requirements,
  :compatibility, :integrations, :meta_title, :meta_description, :keywords, :status, :is_active,
  :is_featured, :sort_order, :published_at, :created_at, :updated_at
)`, product)
}

func (s *Store) Product(ctx context.Context, id string) (*models.Product, error) {
	return getRow[models.Product](ctx, s, `SELECT * FROM products WHERE id = ?`, id)
}

func (s *Store) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	var w where
	if filter.Category != "" {
		w.eq("category", filter.Category)
	}
	if filter.Status != "" {
		w.eq("status", filter.Status)
	}
	if filter.FeaturedOnly {
		w.eq("is_featured", true)
	}
	return listRows[models.Product](ctx, s,
		`SELECT * FROM products`+w.String()+` ORDER BY is_featured DESC, sort_order ASC, created_at DESC`,
		w.args...)
}

// ProductCategories groups published products by category.
func (s *Store) ProductCategories(ctx context.Context) ([]models.CategoryCount, error) {
	rows, err := listRows[models.CategoryCount](ctx, s, `
SELECT category, COUNT(*) AS total
FROM products
WHERE status = ? AND category IS NOT NULL
GROUP BY category
ORDER BY category ASC`, models.ProductStatusPublished)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Count.Category = rows[i].Total
	}
	return rows, nil
}

// UpdateProduct stamps PublishedAt on the first transition into published.
// The status read and the update are not atomic.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*models.Product, error) {
	c := patch.changes()
	if patch.Status.Set && patch.Status.Value == models.ProductStatusPublished {
		current, err := s.Product(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, ErrNotFound
		}
		if current.Status != models.ProductStatusPublished {
			c.Set("published_at", s.timestamp())
		}
	}
	if err := s.update(ctx, "products", id, c); err != nil {
		return nil, err
	}
	return s.Product(ctx, id)
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "products", id)
}

