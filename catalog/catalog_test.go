package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokopos/storedb"
)

func riceInput() ProductInput {
	return ProductInput{
		Name:            "Rice 5kg",
		Price:           15000,
		WholesalePrice:  10000,
		MinWholesaleQty: 3,
		Category:        "staples",
		Stock:           10,
	}
}

func TestCreateAndFetch(t *testing.T) {
	svc := NewService(storedb.NewMemory())

	created, err := svc.Create(riceInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Rice 5kg", created.Name)

	fetched, err := svc.Product(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	second, err := svc.Create(ProductInput{Name: "Soap", Price: 5000, Stock: 4})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)

	products, err := svc.Products()
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestEmptyCatalog(t *testing.T) {
	svc := NewService(storedb.NewMemory())

	products, err := svc.Products()
	require.NoError(t, err)
	assert.Empty(t, products)

	_, err = svc.Product("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(storedb.NewMemory())

	for _, in := range []ProductInput{
		{Price: 100, Stock: 1},
		{Name: "Rice", Price: -1},
		{Name: "Rice", Price: 100, WholesalePrice: -5},
		{Name: "Rice", Price: 100, MinWholesaleQty: -1},
		{Name: "Rice", Price: 100, Stock: -3},
	} {
		_, err := svc.Create(in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	products, err := svc.Products()
	require.NoError(t, err)
	assert.Empty(t, products, "rejected inputs never reach the store")
}

func TestUpdate(t *testing.T) {
	svc := NewService(storedb.NewMemory())
	created, err := svc.Create(riceInput())
	require.NoError(t, err)

	in := riceInput()
	in.Price = 16000
	in.Stock = 25
	updated, err := svc.Update(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 16000.0, updated.Price)
	assert.Equal(t, 25, updated.Stock)

	_, err = svc.Update("nope", riceInput())
	assert.ErrorIs(t, err, ErrNotFound)

	bad := riceInput()
	bad.Name = ""
	_, err = svc.Update(created.ID, bad)
	assert.ErrorIs(t, err, ErrInvalidInput)

	fetched, err := svc.Product(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 16000.0, fetched.Price, "failed update leaves the record as is")
}

func TestDelete(t *testing.T) {
	svc := NewService(storedb.NewMemory())
	created, err := svc.Create(riceInput())
	require.NoError(t, err)
	keep, err := svc.Create(ProductInput{Name: "Soap", Price: 5000, Stock: 4})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Product(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	products, err := svc.Products()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, keep.ID, products[0].ID)

	assert.ErrorIs(t, svc.Delete(created.ID), ErrNotFound)
}
