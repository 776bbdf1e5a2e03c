// internal/client/listing.go
package client

import (
	"fmt"
	"strings"

	"github.com/javajoker/product-catalog/internal/models"
)

const DefaultRowsPerPage = 5

var RowsPerPageOptions = []int{5, 10, 15}

// ListView filters and paginates the last fetched product list. Pages
// are 1-based and always clamped to the available range.
type ListView struct {
	products    []models.Product
	filterText  string
	page        int
	rowsPerPage int
}

func NewListView() *ListView {
	return &ListView{page: 1, rowsPerPage: DefaultRowsPerPage}
}

func (v *ListView) SetProducts(products []models.Product) {
	v.products = products
	v.clamp()
}

func (v *ListView) Products() []models.Product {
	return v.products
}

// SetFilter changes the name filter. Typing a non-empty filter jumps back
// to the first page.
func (v *ListView) SetFilter(text string) {
	v.filterText = text
	if text != "" {
		v.page = 1
	}
	v.clamp()
}

func (v *ListView) Filter() string {
	return v.filterText
}

func (v *ListView) SetRowsPerPage(rows int) error {
	for _, option := range RowsPerPageOptions {
		if option == rows {
			v.rowsPerPage = rows
			v.page = 1
			return nil
		}
	}
	return fmt.Errorf("rows per page must be one of %v", RowsPerPageOptions)
}

func (v *ListView) RowsPerPage() int {
	return v.rowsPerPage
}

func (v *ListView) SetPage(page int) {
	v.page = page
	v.clamp()
}

func (v *ListView) Page() int {
	return v.page
}

// Filtered returns products whose name contains the filter text, ignoring
// case, in their original order.
func (v *ListView) Filtered() []models.Product {
	if v.filterText == "" {
		return v.products
	}

	needle := strings.ToLower(v.filterText)
	out := make([]models.Product, 0, len(v.products))
	for _, p := range v.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

func (v *ListView) PageCount() int {
	n := len(v.Filtered())
	return (n + v.rowsPerPage - 1) / v.rowsPerPage
}

func (v *ListView) Visible() []models.Product {
	filtered := v.Filtered()

	start := (v.page - 1) * v.rowsPerPage
	if start >= len(filtered) {
		return nil
	}
	end := start + v.rowsPerPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func (v *ListView) clamp() {
	last := v.PageCount()
	if last < 1 {
		last = 1
	}
	if v.page > last {
		v.page = last
	}
	if v.page < 1 {
		v.page = 1
	}
}
