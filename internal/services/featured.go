package services

import (
	"math/rand"

	"gorm.io/gorm"

	"github.com/example/shafistore/internal/catalog"
	"github.com/example/shafistore/internal/models"
)

// FeaturedService aggregates active products across all categories for the
// storefront landing page.
type FeaturedService struct {
	db *gorm.DB
}

// NewFeaturedService constructs FeaturedService.
func NewFeaturedService(db *gorm.DB) *FeaturedService {
	return &FeaturedService{db: db}
}

// Featured samples the top-rated active products of every category (up to
// ceil(limit/4) each, no rating threshold) and returns a shuffled combination
// truncated to limit. The ordering is intentionally non-deterministic; two
// calls draw from the same candidate set but may differ in order.
func (s *FeaturedService) Featured(limit int) ([]models.TaggedProduct, error) {
	perCategory := (limit + len(catalog.Categories) - 1) / len(catalog.Categories)

	combined, err := s.collect(perCategory, "rating desc")
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(combined), func(i, j int) {
		combined[i], combined[j] = combined[j], combined[i]
	})
	return truncate(combined, limit), nil
}

// Bestsellers returns the two most recently created active products of every
// category, concatenated in fixed category order and truncated to limit.
func (s *FeaturedService) Bestsellers(limit int) ([]models.TaggedProduct, error) {
	combined, err := s.collect(2, "created_at desc")
	if err != nil {
		return nil, err
	}
	return truncate(combined, limit), nil
}

func (s *FeaturedService) collect(perCategory int, order string) ([]models.TaggedProduct, error) {
	combined := make([]models.TaggedProduct, 0, perCategory*len(catalog.Categories))

	for _, desc := range catalog.Categories {
		var items []models.Product
		err := s.db.
			Where("category = ? AND is_active = ?", desc.Slug, true).
			Order(order).
			Limit(perCategory).
			Find(&items).Error
		if err != nil {
			return nil, err
		}

		for _, p := range items {
			combined = append(combined, desc.Tag(p))
		}
	}

	return combined, nil
}

func truncate(items []models.TaggedProduct, limit int) []models.TaggedProduct {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
