package models

import "time"

type Admin struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

type HeroSection struct {
	ID              string    `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Subtitle        *string   `db:"subtitle" json:"subtitle"`
	Description     *string   `db:"description" json:"description"`
	ButtonText      *string   `db:"button_text" json:"buttonText"`
	ButtonLink      *string   `db:"button_link" json:"buttonLink"`
	BackgroundImage *string   `db:"background_image" json:"backgroundImage"`
	IsActive        bool      `db:"is_active" json:"isActive"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

const (
	ProductStatusDraft     = "draft"
	ProductStatusPublished = "published"
	ProductStatusArchived  = "archived"
)

func ValidProductStatus(status string) bool {
	switch status {
	case ProductStatusDraft, ProductStatusPublished, ProductStatusArchived:
		return true
	}
	return false
}

type Product struct {
	ID                 string     `db:"id" json:"id"`
	Title              string     `db:"title" json:"title"`
	Slug               string     `db:"slug" json:"slug"`
	ShortDescription   *string    `db:"short_description" json:"shortDescription"`
	Description        *string    `db:"description" json:"description"`
	Features           StringList `db:"features" json:"features"`
	Specifications     JSONMap    `db:"specifications" json:"specifications"`
	Benefits           StringList `db:"benefits" json:"benefits"`
	Price              *float64   `db:"price" json:"price"`
	OriginalPrice      *float64   `db:"original_price" json:"originalPrice"`
	Currency           string     `db:"currency" json:"currency"`
	PricingModel       string     `db:"pricing_model" json:"pricingModel"`
	Image              *string    `db:"image" json:"image"`
	Images             StringList `db:"images" json:"images"`
	VideoURL           *string    `db:"video_url" json:"videoUrl"`
	BrochureURL        *string    `db:"brochure_url" json:"brochureUrl"`
	Category           *string    `db:"category" json:"category"`
	SubCategory        *string    `db:"sub_category" json:"subCategory"`
	Tags               StringList `db:"tags" json:"tags"`
	TargetAudience     StringList `db:"target_audience" json:"targetAudience"`
	Industries         StringList `db:"industries" json:"industries"`
	UseCases           StringList `db:"use_cases" json:"useCases"`
	SystemRequirements JSONMap    `db:"system_requirements" json:"systemRequirements"`
	Compatibility      StringList `db:"compatibility" json:"compatibility"`
	Integrations       StringList `db:"integrations" json:"integrations"`
	MetaTitle          *string    `db:"meta_title" json:"metaTitle"`
	MetaDescription    *string    `db:"meta_description" json:"metaDescription"`
	Keywords           StringList `db:"keywords" json:"keywords"`
	Status             string     `db:"status" json:"status"`
	IsActive           bool       `db:"is_active" json:"isActive"`
	IsFeatured         bool       `db:"is_featured" json:"isFeatured"`
	Order              int        `db:"sort_order" json:"order"`
	PublishedAt        *time.Time `db:"published_at" json:"publishedAt"`
	CreatedAt          time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updatedAt"`
}

type Testimonial struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Role      *string   `db:"role" json:"role"`
	Company   *string   `db:"company" json:"company"`
	Content   string    `db:"content" json:"content"`
	Rating    int       `db:"rating" json:"rating"`
	Avatar    *string   `db:"avatar" json:"avatar"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	Order     int       `db:"sort_order" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type WhyChooseUsItem struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Icon        *string   `db:"icon" json:"icon"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	Order       int       `db:"sort_order" json:"order"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type BookDemoSection struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	ButtonText  *string   `db:"button_text" json:"buttonText"`
	FormFields  JSONMap   `db:"form_fields" json:"formFields"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// StatusPending is the initial status of every inbound submission.
const StatusPending = "pending"

type DemoRequest struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Company   *string   `db:"company" json:"company"`
	Phone     *string   `db:"phone" json:"phone"`
	Message   *string   `db:"message" json:"message"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type Contact struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Subject   *string   `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type JobApplication struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Address     *string   `db:"address" json:"address"`
	Position    string    `db:"position" json:"position"`
	ResumeURL   *string   `db:"resume_url" json:"resumeUrl"`
	CoverLetter *string   `db:"cover_letter" json:"coverLetter"`
	Phone       *string   `db:"phone" json:"phone"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type SiteSetting struct {
	ID          string    `db:"id" json:"id"`
	Key         string    `db:"setting_key" json:"key"`
	Value       string    `db:"value" json:"value"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// CategoryCount is one row of the published-product category grouping.
type CategoryCount struct {
	Category string `db:"category" json:"category"`
	Count    struct {
		Category int `json:"category"`
	} `db:"-" json:"_count"`
	Total int `db:"total" json:"-"`
}

type DashboardStats struct {
	TotalProducts     int `json:"totalProducts"`
	TotalTestimonials int `json:"totalTestimonials"`
	TotalDemoRequests int `json:"totalDemoRequests"`
	PendingRequests   int `json:"pendingRequests"`
}
