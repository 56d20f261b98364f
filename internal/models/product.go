package models

// Product is the union of the per-category product shapes. Each record
// belongs to exactly one category (dates, honey, oud, spices); the catalog
// descriptor for that category decides which of the optional columns are
// meaningful and which are required on create.
type Product struct {
	BaseModel
	Category  string  `gorm:"index;not null" json:"-"`
	Title     string  `json:"title"`
	Type      string  `json:"type,omitempty"`
	Origin    string  `json:"origin,omitempty"`
	Weight    string  `json:"weight,omitempty"`
	Price     float64 `json:"price"`
	ImagePath string  `json:"imagePath"`
	Stock     int     `json:"stock"`
	IsActive  bool    `json:"isActive"`
	Rating    float64 `json:"rating"`

	// Category-specific descriptive copy.
	LuxuryDescription string `json:"luxuryDescription,omitempty"`
	HealthBenefits    string `json:"healthBenefits,omitempty"`
	ScentProfile      string `json:"scentProfile,omitempty"`
	Ingredients       string `json:"ingredients,omitempty"`
	UsageDescription  string `json:"usageDescription,omitempty"`
}

// TaggedProduct is a product annotated with its category for mixed-category
// listings (featured, bestsellers).
type TaggedProduct struct {
	Product
	CategorySlug   string `json:"category"`
	CategoryArabic string `json:"categoryArabic"`
}
