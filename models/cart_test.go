package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleProduct(stock int, price float64) Product {
	return Product{
		ID:       primitive.NewObjectID(),
		Name:     Localized{En: "Wireless Earbuds", Ar: "سماعات لاسلكية"},
		Price:    price,
		ImageURL: "https://cdn.example.com/earbuds.jpg",
		Stock:    stock,
	}
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	product := sampleProduct(5, 2500)

	var cart Cart
	cart.AddItem(product, 2)

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, product.ID.Hex(), item.ProductID)
	assert.Equal(t, product.Name, item.Name)
	assert.Equal(t, 2500.0, item.Price)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 5000.0, cart.Subtotal())
}

func TestAddItemMergesLinesAndClampsToStock(t *testing.T) {
	product := sampleProduct(3, 1000)

	var cart Cart
	cart.AddItem(product, 2)
	cart.AddItem(product, 2) // would be 4, stock is 3

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestSetQuantityClampsAndRemoves(t *testing.T) {
	product := sampleProduct(3, 1000)

	var cart Cart
	cart.AddItem(product, 1)

	cart.SetQuantity(product.ID.Hex(), 5, 3)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	cart.SetQuantity(product.ID.Hex(), 0, 3)
	assert.True(t, cart.IsEmpty())
}

func TestRemoveLeavesOtherLines(t *testing.T) {
	first := sampleProduct(10, 1000)
	second := sampleProduct(10, 2000)

	var cart Cart
	cart.AddItem(first, 1)
	cart.AddItem(second, 1)

	cart.Remove(first.ID.Hex())

	require.Len(t, cart.Items, 1)
	assert.Equal(t, second.ID.Hex(), cart.Items[0].ProductID)
}

func TestClear(t *testing.T) {
	var cart Cart
	cart.AddItem(sampleProduct(10, 1000), 2)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Subtotal())
}
