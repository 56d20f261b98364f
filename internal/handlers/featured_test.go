package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturedEndpoints(t *testing.T) {
	app := newTestApp(t)

	categories := []map[string]interface{}{
		{"category": "dates", "title": "Ajwa", "type": "Ajwa", "weight": "500g"},
		{"category": "honey", "title": "Sidr", "origin": "Yemen", "weight": "1kg"},
		{"category": "oud", "title": "Oil", "type": "Oil"},
		{"category": "spices", "title": "خلطة", "type": "خلطة", "weight": "250g"},
	}
	for _, item := range categories {
		category := item["category"].(string)
		payload := map[string]interface{}{
			"title":     item["title"],
			"price":     100,
			"imagePath": "/uploads/" + category + "/p.jpg",
		}
		for _, key := range []string{"type", "origin", "weight"} {
			if v, ok := item[key]; ok {
				payload[key] = v
			}
		}
		resp := doJSON(t, app, "POST", "/api/v1/products/"+category, payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, "GET", "/api/v1/products/featured?limit=8", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	featured := decodeList(t, resp)
	require.Len(t, featured, 4)
	for _, item := range featured {
		assert.Contains(t, []string{"dates", "honey", "oud", "spices"}, item["category"])
		assert.NotEmpty(t, item["categoryArabic"])
	}

	resp = doJSON(t, app, "GET", "/api/v1/products/bestsellers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	bestsellers := decodeList(t, resp)
	require.Len(t, bestsellers, 4)
	assert.Equal(t, "dates", bestsellers[0]["category"])
	assert.Equal(t, "spices", bestsellers[3]["category"])

	resp = doJSON(t, app, "GET", "/api/v1/products/bestsellers?limit=2", nil)
	assert.Len(t, decodeList(t, resp), 2)
}
