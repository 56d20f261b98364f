// Package catalog defines the per-category schema metadata that drives the
// generic product CRUD. The four categories share one table and one handler;
// everything that differs between them lives in a Descriptor.
package catalog

import "github.com/example/shafistore/internal/models"

// Descriptor describes one product category: which classifier field it uses,
// the allowed classifier values, whether weight is required, and which
// descriptive-text fields it carries.
type Descriptor struct {
	Slug        string
	ArabicLabel string

	// ClassifierField is the JSON name of the required classifier ("type" or
	// "origin"). ClassifierValues restricts it to an enum; empty means any
	// non-empty string is accepted.
	ClassifierField  string
	ClassifierValues []string

	RequiresWeight bool

	// DescriptiveFields lists the JSON names of the optional free-text fields
	// this category accepts (beyond the shared product columns).
	DescriptiveFields []string
}

// RequiredFields returns the JSON field names a create payload must carry.
func (d Descriptor) RequiredFields() []string {
	fields := []string{"title", d.ClassifierField}
	if d.RequiresWeight {
		fields = append(fields, "weight")
	}
	return append(fields, "price", "imagePath")
}

// AllowsClassifier reports whether value is acceptable for this category's
// classifier field.
func (d Descriptor) AllowsClassifier(value string) bool {
	if value == "" {
		return false
	}
	if len(d.ClassifierValues) == 0 {
		return true
	}
	for _, allowed := range d.ClassifierValues {
		if value == allowed {
			return true
		}
	}
	return false
}

// MutableFields returns every JSON field name an update payload may touch.
func (d Descriptor) MutableFields() []string {
	fields := []string{"title", d.ClassifierField, "price", "imagePath", "stock", "isActive", "rating"}
	if d.RequiresWeight {
		fields = append(fields, "weight")
	}
	return append(fields, d.DescriptiveFields...)
}

// Tag annotates a product with this category for mixed-category listings.
func (d Descriptor) Tag(p models.Product) models.TaggedProduct {
	return models.TaggedProduct{
		Product:        p,
		CategorySlug:   d.Slug,
		CategoryArabic: d.ArabicLabel,
	}
}

// Categories lists every product category in display order. The order is part
// of the bestsellers contract (fixed-order concatenation).
var Categories = []Descriptor{
	{
		Slug:              "dates",
		ArabicLabel:       "تمور",
		ClassifierField:   "type",
		ClassifierValues:  []string{"Khalas", "Ajwa", "Sukkary", "Medjool", "Safawi", "Other"},
		RequiresWeight:    true,
		DescriptiveFields: []string{"luxuryDescription"},
	},
	{
		Slug:              "honey",
		ArabicLabel:       "عسل",
		ClassifierField:   "origin",
		RequiresWeight:    true,
		DescriptiveFields: []string{"healthBenefits"},
	},
	{
		Slug:              "oud",
		ArabicLabel:       "عود",
		ClassifierField:   "type",
		ClassifierValues:  []string{"Aged", "Incense", "Oil", "Chips", "Muattar", "Other"},
		DescriptiveFields: []string{"scentProfile"},
	},
	{
		Slug:              "spices",
		ArabicLabel:       "بهارات",
		ClassifierField:   "type",
		ClassifierValues:  []string{"خلطة", "مفرد", "بهارات لحم", "بهارات دجاج", "بهارات سمك", "بهارات رز", "زعفران", "أخرى"},
		RequiresWeight:    true,
		DescriptiveFields: []string{"ingredients", "usageDescription"},
	},
}

// Lookup resolves a category slug to its descriptor.
func Lookup(slug string) (Descriptor, bool) {
	for _, d := range Categories {
		if d.Slug == slug {
			return d, true
		}
	}
	return Descriptor{}, false
}
