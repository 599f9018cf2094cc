package services

import (
	"testing"

	"foodie/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMergesQuantities(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	uid := seedUser(t, db, "a@test.dev")
	_, itemA, _ := seedCatalog(t, db)

	first, err := svc.Add(uid, itemA.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := svc.Add(uid, itemA.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	assert.EqualValues(t, 1, countRows(t, db, &entity.CartItem{}))
}

func TestAddRejectsInvalidQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	uid := seedUser(t, db, "a@test.dev")
	_, itemA, _ := seedCatalog(t, db)

	for _, qty := range []int{0, -1} {
		_, err := svc.Add(uid, itemA.ID, qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
	assert.EqualValues(t, 0, countRows(t, db, &entity.CartItem{}))
}

func TestAddUnknownMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	uid := seedUser(t, db, "a@test.dev")
	seedCatalog(t, db)

	_, err := svc.Add(uid, 9999, 1)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestUpdateQtyOverwrites(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	uid := seedUser(t, db, "a@test.dev")
	_, itemA, _ := seedCatalog(t, db)

	line, err := svc.Add(uid, itemA.ID, 2)
	require.NoError(t, err)

	updated, err := svc.UpdateQty(uid, line.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)
}

func TestUpdateQtyRejectsNonPositive(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	uid := seedUser(t, db, "a@test.dev")
	_, itemA, _ := seedCatalog(t, db)

	line, err := svc.Add(uid, itemA.ID, 2)
	require.NoError(t, err)

	_, err = svc.UpdateQty(uid, line.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// the line is untouched, not deleted
	var got entity.CartItem
	require.NoError(t, db.First(&got, line.ID).Error)
	assert.Equal(t, 2, got.Quantity)
}

func TestUpdateQtyNotOwned(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	owner := seedUser(t, db, "a@test.dev")
	other := seedUser(t, db, "b@test.dev")
	_, itemA, _ := seedCatalog(t, db)

	line, err := svc.Add(owner, itemA.ID, 1)
	require.NoError(t, err)

	_, err = svc.UpdateQty(other, line.ID, 3)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestRemoveReportsNotFoundOnRepeat(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	uid := seedUser(t, db, "a@test.dev")
	_, itemA, _ := seedCatalog(t, db)

	line, err := svc.Add(uid, itemA.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(uid, line.ID))
	assert.ErrorIs(t, svc.Remove(uid, line.ID), ErrCartItemNotFound)
}

func TestClearSucceedsOnEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	uid := seedUser(t, db, "a@test.dev")

	assert.NoError(t, svc.Clear(uid))
	assert.NoError(t, svc.Clear(uid))
}

func TestGetComputesTotalFromCurrentPrices(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	uid := seedUser(t, db, "a@test.dev")
	_, itemA, itemB := seedCatalog(t, db)

	_, err := svc.Add(uid, itemA.ID, 2)
	require.NoError(t, err)
	_, err = svc.Add(uid, itemB.ID, 1)
	require.NoError(t, err)

	view, err := svc.Get(uid)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.InDelta(t, 170.00, view.Total, 1e-9)
	// oldest line first
	assert.Equal(t, itemA.ID, view.Items[0].MenuItem.ID)

	// the total is never cached: a price change shows up on the next read
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", itemA.ID).Update("price", 55.25).Error)

	view, err = svc.Get(uid)
	require.NoError(t, err)
	assert.InDelta(t, 200.50, view.Total, 1e-9)
}

func TestGetSurfacesDanglingMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	uid := seedUser(t, db, "a@test.dev")
	_, itemA, _ := seedCatalog(t, db)

	_, err := svc.Add(uid, itemA.ID, 1)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&entity.MenuItem{}, itemA.ID).Error)

	_, err = svc.Get(uid)
	assert.ErrorIs(t, err, ErrMenuItemGone)
}
