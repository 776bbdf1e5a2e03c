package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/product-catalog/internal/models"
	"github.com/javajoker/product-catalog/internal/services"
)

func numberedProducts(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{ID: int64(i + 1), Name: fmt.Sprintf("Product %d", i+1)}
	}
	return products
}

func TestListViewFilterIsCaseInsensitive(t *testing.T) {
	v := NewListView()
	v.SetProducts(services.DemoProducts())

	v.SetFilter("iphone")
	filtered := v.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Apple iPhone 15 Pro Max", filtered[0].Name)

	v.SetFilter("")
	assert.Len(t, v.Filtered(), 3)
}

func TestListViewSinglePage(t *testing.T) {
	v := NewListView()
	v.SetProducts(services.DemoProducts())

	assert.Equal(t, DefaultRowsPerPage, v.RowsPerPage())
	assert.Equal(t, 1, v.PageCount())
	assert.Len(t, v.Visible(), 3)
}

func TestListViewPagination(t *testing.T) {
	v := NewListView()
	v.SetProducts(numberedProducts(12))

	assert.Equal(t, 3, v.PageCount())

	v.SetPage(3)
	visible := v.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, int64(11), visible[0].ID)

	v.SetPage(99)
	assert.Equal(t, 3, v.Page())
	v.SetPage(0)
	assert.Equal(t, 1, v.Page())

	v.SetPage(2)
	require.NoError(t, v.SetRowsPerPage(10))
	assert.Equal(t, 1, v.Page())
	assert.Equal(t, 2, v.PageCount())

	assert.Error(t, v.SetRowsPerPage(7))
	assert.Equal(t, 10, v.RowsPerPage())
}

func TestListViewFilterResetsPage(t *testing.T) {
	v := NewListView()
	v.SetProducts(numberedProducts(12))
	v.SetPage(3)

	v.SetFilter("product 1")
	assert.Equal(t, 1, v.Page())
	// Product 1, 10, 11, 12
	assert.Len(t, v.Filtered(), 4)

	v.SetPage(1)
	v.SetFilter("")
	assert.Equal(t, 1, v.Page())
}

func TestListViewClampsWhenProductsShrink(t *testing.T) {
	v := NewListView()
	v.SetProducts(numberedProducts(11))
	v.SetPage(3)

	v.SetProducts(numberedProducts(10))
	assert.Equal(t, 2, v.Page())

	v.SetProducts(nil)
	assert.Equal(t, 1, v.Page())
	assert.Equal(t, 0, v.PageCount())
	assert.Empty(t, v.Visible())
}
