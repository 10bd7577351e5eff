package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kajtekw/restaurant-manager/utils"
)

func TestMenuItemCRUD(t *testing.T) {
	r, db := setupTestRouter(t)
	seedUser(t, db, "Admin", "admin@example.com", "secret123")
	cookie := loginTest(t, r, "admin@example.com", "secret123")

	// Create
	w, resp := doJSON(t, r, http.MethodPost, "/api/menu", map[string]interface{}{
		"name":        "Burger",
		"description": "House burger with fries",
		"price":       9.5,
		"category":    "mains",
		"available":   true,
	}, cookie)
	assert.Equal(t, http.StatusCreated, w.Code)

	created := dataField(t, resp)
	itemID := int(created["id"].(float64))
	assert.Equal(t, "Burger", created["name"])
	assert.Equal(t, 9.5, created["price"])
	assert.Equal(t, "9.50", utils.FormatPrice(created["price"].(float64)))
	assert.Equal(t, true, created["available"])

	url := fmt.Sprintf("/api/menu/%d", itemID)

	// Fetch round trip: identical field values
	w, resp = doJSON(t, r, http.MethodGet, url, nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	fetched := dataField(t, resp)
	assert.Equal(t, created["name"], fetched["name"])
	assert.Equal(t, created["description"], fetched["description"])
	assert.Equal(t, created["price"], fetched["price"])
	assert.Equal(t, created["category"], fetched["category"])
	assert.Equal(t, created["available"], fetched["available"])

	// List includes it
	w, resp = doJSON(t, r, http.MethodGet, "/api/menu", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	items := dataList(t, resp)
	assert.Len(t, items, 1)
	assert.Equal(t, 9.5, items[0].(map[string]interface{})["price"])

	// Update is a full-field overwrite
	w, resp = doJSON(t, r, http.MethodPut, url, map[string]interface{}{
		"name":        "Cheeseburger",
		"description": "",
		"price":       11.0,
		"category":    "mains",
		"available":   false,
	}, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	updated := dataField(t, resp)
	assert.Equal(t, "Cheeseburger", updated["name"])
	assert.Equal(t, "", updated["description"])
	assert.Equal(t, 11.0, updated["price"])
	assert.Equal(t, false, updated["available"])

	// Delete
	w, _ = doJSON(t, r, http.MethodDelete, url, nil, cookie)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Gone after delete
	w, _ = doJSON(t, r, http.MethodGet, url, nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuItemMissingIDUniform404(t *testing.T) {
	r, db := setupTestRouter(t)
	seedUser(t, db, "Admin", "admin@example.com", "secret123")
	cookie := loginTest(t, r, "admin@example.com", "secret123")

	w, _ := doJSON(t, r, http.MethodGet, "/api/menu/999", nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodPut, "/api/menu/999", map[string]interface{}{
		"name":  "Nothing",
		"price": 1.0,
	}, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/menu/999", nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuCreateAcceptsValuesAsIs(t *testing.T) {
	r, db := setupTestRouter(t)
	seedUser(t, db, "Admin", "admin@example.com", "secret123")
	cookie := loginTest(t, r, "admin@example.com", "secret123")

	// Only type coercion applies on create; field contents pass through.
	w, resp := doJSON(t, r, http.MethodPost, "/api/menu", map[string]interface{}{
		"name":  "",
		"price": -3.25,
	}, cookie)
	assert.Equal(t, http.StatusCreated, w.Code)
	created := dataField(t, resp)
	assert.Equal(t, "", created["name"])
	assert.Equal(t, -3.25, created["price"])
}
