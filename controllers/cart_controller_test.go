package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"foodie/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDefaultsMissingQuantityToOne(t *testing.T) {
	db := newTestDB(t)
	_, _, item := seedCatalogData(t, db)
	r := newTestRouter(db, 1)

	w := doRequest(r, http.MethodPost, "/api/cart", fmt.Sprintf(`{"menuItemId": %d}`, item.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	var line entity.CartItem
	require.NoError(t, db.Where("user_id = ?", 1).First(&line).Error)
	assert.Equal(t, 1, line.Quantity)
}

func TestAddRejectsExplicitZeroQuantity(t *testing.T) {
	db := newTestDB(t)
	_, _, item := seedCatalogData(t, db)
	r := newTestRouter(db, 1)

	// zero is sent, not omitted: it must fail validation, not default to 1
	w := doRequest(r, http.MethodPost, "/api/cart", fmt.Sprintf(`{"menuItemId": %d, "quantity": 0}`, item.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var n int64
	require.NoError(t, db.Model(&entity.CartItem{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestAddRejectsNegativeQuantity(t *testing.T) {
	db := newTestDB(t)
	_, _, item := seedCatalogData(t, db)
	r := newTestRouter(db, 1)

	w := doRequest(r, http.MethodPost, "/api/cart", fmt.Sprintf(`{"menuItemId": %d, "quantity": -2}`, item.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartViewNestsRestaurantInMenuItem(t *testing.T) {
	db := newTestDB(t)
	_, rest, item := seedCatalogData(t, db)
	r := newTestRouter(db, 1)

	w := doRequest(r, http.MethodPost, "/api/cart", fmt.Sprintf(`{"menuItemId": %d, "quantity": 2}`, item.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, item.Name)
	assert.Contains(t, body, `"restaurant"`)
	assert.Contains(t, body, rest.Name)
}
