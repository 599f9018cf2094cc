package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantDetailNestsCategoryAndMenu(t *testing.T) {
	db := newTestDB(t)
	cat, rest, item := seedCatalogData(t, db)
	r := newTestRouter(db, 1)

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/restaurants/%d", rest.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `"menuItems"`)
	assert.Contains(t, body, item.Name)
	assert.Contains(t, body, `"category"`)
	assert.Contains(t, body, cat.Name)
}

func TestMenuItemDetailNestsRestaurant(t *testing.T) {
	db := newTestDB(t)
	_, rest, item := seedCatalogData(t, db)
	r := newTestRouter(db, 1)

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/menu/%d", item.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `"restaurant"`)
	assert.Contains(t, body, rest.Name)
}

func TestCategoryDetailNestsRestaurants(t *testing.T) {
	db := newTestDB(t)
	_, rest, _ := seedCatalogData(t, db)
	r := newTestRouter(db, 1)

	w := doRequest(r, http.MethodGet, "/api/categories/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `"restaurants"`)
	assert.Contains(t, body, rest.Name)
}

func TestMenuListOmitsUnloadedRestaurant(t *testing.T) {
	db := newTestDB(t)
	_, rest, _ := seedCatalogData(t, db)
	r := newTestRouter(db, 1)

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/restaurants/%d/menu", rest.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	// the list endpoint does not resolve the association, so the payload
	// carries restaurantId only, not a zero-valued nested object
	assert.NotContains(t, w.Body.String(), `"restaurant"`)
}
