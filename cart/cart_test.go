package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokopos/models"
	"tokopos/storedb"
)

func rice() models.Product {
	return models.Product{
		ID:              "p-rice",
		Name:            "Rice 5kg",
		Price:           15000,
		WholesalePrice:  10000,
		MinWholesaleQty: 3,
		Stock:           10,
	}
}

func soap() models.Product {
	return models.Product{ID: "p-soap", Name: "Soap", Price: 5000, Stock: 2}
}

func TestAddOneInsertsAndIncrements(t *testing.T) {
	svc := NewService(storedb.NewMemory())
	p := rice()

	require.NoError(t, svc.AddOne(p))
	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.False(t, items[0].IsWholesale)

	require.NoError(t, svc.AddOne(p))
	require.NoError(t, svc.AddOne(p))
	items = svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, items[0].IsWholesale, "quantity reached the wholesale minimum")
}

func TestAddOneRespectsStock(t *testing.T) {
	svc := NewService(storedb.NewMemory())
	p := soap()

	require.NoError(t, svc.AddOne(p))
	require.NoError(t, svc.AddOne(p))

	err := svc.AddOne(p)
	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 2, svc.Items()[0].Quantity)

	empty := models.Product{ID: "p-empty", Name: "Empty", Price: 100, Stock: 0}
	require.ErrorAs(t, svc.AddOne(empty), &stockErr)
	assert.Len(t, svc.Items(), 1)
}

func TestAdjustQuantityBounds(t *testing.T) {
	svc := NewService(storedb.NewMemory())
	p := rice()
	require.NoError(t, svc.AddOne(p))

	// cannot go above stock
	err := svc.AdjustQuantity(p.ID, 100, nil)
	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 1, svc.Items()[0].Quantity)

	// clamps at zero and removes the line
	require.NoError(t, svc.AdjustQuantity(p.ID, -5, nil))
	assert.Empty(t, svc.Items())

	// unknown product is a no-op
	require.NoError(t, svc.AdjustQuantity("nope", 1, nil))
	assert.Empty(t, svc.Items())
}

func TestAdjustQuantityWholesaleFlag(t *testing.T) {
	svc := NewService(storedb.NewMemory())
	p := rice()
	require.NoError(t, svc.AddOne(p))

	require.NoError(t, svc.AdjustQuantity(p.ID, 2, nil))
	assert.True(t, svc.Items()[0].IsWholesale)

	require.NoError(t, svc.AdjustQuantity(p.ID, -1, nil))
	assert.False(t, svc.Items()[0].IsWholesale)

	// explicit override wins over the derived flag
	force := true
	require.NoError(t, svc.AdjustQuantity(p.ID, 0, &force))
	assert.True(t, svc.Items()[0].IsWholesale)
	assert.Equal(t, 2, svc.Items()[0].Quantity)
}

func TestTotalUsesFrozenFlag(t *testing.T) {
	svc := NewService(storedb.NewMemory())
	p := rice()
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.AddOne(p))
	}
	assert.Equal(t, 30000.0, svc.Total(), "3 units at the wholesale price")

	off := false
	require.NoError(t, svc.AdjustQuantity(p.ID, 0, &off))
	assert.Equal(t, 45000.0, svc.Total(), "override forces retail pricing")
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := storedb.NewMemory()
	svc := NewService(store)
	require.NoError(t, svc.AddOne(rice()))

	// a new service over the same store restores the lines
	restored := NewService(store)
	require.Len(t, restored.Items(), 1)
	assert.Equal(t, "p-rice", restored.Items()[0].Product.ID)

	// emptying the cart removes the snapshot document
	require.NoError(t, restored.Clear())
	var raw []models.CartItem
	require.ErrorIs(t, store.Get(storedb.Cart, &raw), storedb.ErrNotFound)
}

func TestUnreadableSnapshotFallsBackToEmpty(t *testing.T) {
	store := storedb.NewMemory()
	require.NoError(t, store.Put(storedb.Cart, "not a line set"))

	svc := NewService(store)
	assert.Empty(t, svc.Items())
}

func TestSwitchUserWipesCart(t *testing.T) {
	store := storedb.NewMemory()
	svc := NewService(store)
	require.NoError(t, svc.SwitchUser("EMP001"))
	require.NoError(t, svc.AddOne(rice()))

	// same identity keeps the cart
	require.NoError(t, svc.SwitchUser("EMP001"))
	assert.Len(t, svc.Items(), 1)

	require.NoError(t, svc.SwitchUser("EMP002"))
	assert.Empty(t, svc.Items())
	var raw []models.CartItem
	require.ErrorIs(t, store.Get(storedb.Cart, &raw), storedb.ErrNotFound)
}
