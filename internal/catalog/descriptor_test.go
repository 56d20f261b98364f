package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/shafistore/internal/models"
)

func TestRequiredFields(t *testing.T) {
	dates, ok := Lookup("dates")
	require.True(t, ok)
	assert.Equal(t, []string{"title", "type", "weight", "price", "imagePath"}, dates.RequiredFields())

	honey, ok := Lookup("honey")
	require.True(t, ok)
	assert.Equal(t, []string{"title", "origin", "weight", "price", "imagePath"}, honey.RequiredFields())

	// Oud has no weight.
	oud, ok := Lookup("oud")
	require.True(t, ok)
	assert.Equal(t, []string{"title", "type", "price", "imagePath"}, oud.RequiredFields())
}

func TestAllowsClassifier(t *testing.T) {
	dates, _ := Lookup("dates")
	assert.True(t, dates.AllowsClassifier("Ajwa"))
	assert.False(t, dates.AllowsClassifier("NotADate"))
	assert.False(t, dates.AllowsClassifier(""))

	// Honey origin is free text.
	honey, _ := Lookup("honey")
	assert.True(t, honey.AllowsClassifier("Yemen"))
	assert.False(t, honey.AllowsClassifier(""))

	spices, _ := Lookup("spices")
	assert.True(t, spices.AllowsClassifier("زعفران"))
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("perfume")
	assert.False(t, ok)
}

func TestCategoryOrder(t *testing.T) {
	slugs := make([]string, 0, len(Categories))
	for _, d := range Categories {
		slugs = append(slugs, d.Slug)
	}
	assert.Equal(t, []string{"dates", "honey", "oud", "spices"}, slugs)
}

func TestTag(t *testing.T) {
	oud, _ := Lookup("oud")
	tagged := oud.Tag(models.Product{Title: "دهن عود"})
	assert.Equal(t, "oud", tagged.CategorySlug)
	assert.Equal(t, "عود", tagged.CategoryArabic)
	assert.Equal(t, "دهن عود", tagged.Title)
}
