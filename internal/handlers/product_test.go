package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductLifecycle(t *testing.T) {
	app := newTestApp(t)

	// Create with only the required fields.
	resp := doJSON(t, app, "POST", "/api/v1/products/dates", map[string]interface{}{
		"title":     "Ajwa Premium",
		"type":      "Ajwa",
		"weight":    "500g",
		"price":     120,
		"imagePath": "/uploads/dates/x.jpg",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeMap(t, resp)
	product := created["product"].(map[string]interface{})
	id := product["id"].(string)

	assert.Equal(t, "Ajwa Premium", product["title"])
	assert.Equal(t, "Ajwa", product["type"])
	assert.EqualValues(t, 120, product["price"])
	// Defaults when omitted.
	assert.EqualValues(t, 0, product["stock"])
	assert.EqualValues(t, 5, product["rating"])
	assert.Equal(t, true, product["isActive"])

	// Public listing includes it.
	resp = doJSON(t, app, "GET", "/api/v1/products/dates", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, decodeList(t, resp), 1)

	// Hide it; public excludes, admin still includes.
	resp = doJSON(t, app, "PUT", "/api/v1/products/dates/"+id, map[string]interface{}{
		"isActive": false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/products/dates", nil)
	assert.Empty(t, decodeList(t, resp))

	resp = doJSON(t, app, "GET", "/api/v1/products/dates/admin", nil)
	admin := decodeList(t, resp)
	require.Len(t, admin, 1)
	assert.Equal(t, false, admin[0]["isActive"])

	// Delete, then every lookup is a 404.
	resp = doJSON(t, app, "DELETE", "/api/v1/products/dates/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/products/dates/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", "/api/v1/products/dates/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductPartialUpdate(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/products/honey", map[string]interface{}{
		"title":          "Sidr Honey",
		"origin":         "Yemen",
		"weight":         "1kg",
		"price":          250,
		"imagePath":      "/uploads/honey/sidr.jpg",
		"healthBenefits": "مفيد للمناعة",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	product := decodeMap(t, resp)["product"].(map[string]interface{})
	id := product["id"].(string)

	resp = doJSON(t, app, "PUT", "/api/v1/products/honey/"+id, map[string]interface{}{
		"price": 199,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeMap(t, resp)["product"].(map[string]interface{})

	assert.EqualValues(t, 199, updated["price"])
	// Everything else untouched.
	assert.Equal(t, "Sidr Honey", updated["title"])
	assert.Equal(t, "Yemen", updated["origin"])
	assert.Equal(t, "1kg", updated["weight"])
	assert.Equal(t, "/uploads/honey/sidr.jpg", updated["imagePath"])
	assert.Equal(t, "مفيد للمناعة", updated["healthBenefits"])
}

func TestProductCreateValidation(t *testing.T) {
	app := newTestApp(t)

	t.Run("MissingFields", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/products/dates", map[string]interface{}{
			"title": "Ajwa",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeMap(t, resp)
		assert.Contains(t, body["message"], "Missing required fields")
		assert.Contains(t, body["message"], "price")
	})

	t.Run("BadImagePath", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/products/dates", map[string]interface{}{
			"title":     "Ajwa",
			"type":      "Ajwa",
			"weight":    "500g",
			"price":     120,
			"imagePath": "relative/path.png",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid image path format", decodeMap(t, resp)["message"])
	})

	t.Run("UnknownClassifier", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/products/oud", map[string]interface{}{
			"title":     "عود",
			"type":      "NotAnOudType",
			"price":     300,
			"imagePath": "/uploads/oud/a.jpg",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid type value", decodeMap(t, resp)["message"])
	})

	t.Run("NegativePrice", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/products/dates", map[string]interface{}{
			"title":     "Ajwa",
			"type":      "Ajwa",
			"weight":    "500g",
			"price":     -1,
			"imagePath": "/uploads/dates/a.jpg",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/api/v1/products/perfume", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("OudNeedsNoWeight", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/api/v1/products/oud", map[string]interface{}{
			"title":     "دهن عود",
			"type":      "Oil",
			"price":     300,
			"imagePath": "https://cdn.example.com/oud",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})
}

func TestProductUpdateRevalidatesImagePath(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/products/spices", map[string]interface{}{
		"title":     "بهارات مشكلة",
		"type":      "خلطة",
		"weight":    "250g",
		"price":     35,
		"imagePath": "/uploads/spices/mix.jpg",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeMap(t, resp)["product"].(map[string]interface{})["id"].(string)

	resp = doJSON(t, app, "PUT", "/api/v1/products/spices/"+id, map[string]interface{}{
		"imagePath": "/uploads/spices/mix.txt",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid image path format", decodeMap(t, resp)["message"])
}

func TestProductCrossCategoryIsolation(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/products/dates", map[string]interface{}{
		"title":     "Khalas",
		"type":      "Khalas",
		"weight":    "1kg",
		"price":     60,
		"imagePath": "/uploads/dates/k.jpg",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeMap(t, resp)["product"].(map[string]interface{})["id"].(string)

	// A dates id does not resolve under another category.
	resp = doJSON(t, app, "GET", "/api/v1/products/oud/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/products/oud", nil)
	assert.Empty(t, decodeList(t, resp))
}
