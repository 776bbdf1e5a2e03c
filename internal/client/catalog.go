// internal/client/catalog.go
package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/javajoker/product-catalog/internal/models"
)

// Catalog keeps a ListView in sync with the server. Every mutation is
// followed by a refresh that starts only after the mutation's response
// arrived; when refreshes overlap, only the most recently started one
// updates the view.
type Catalog struct {
	client *Client

	mu      sync.Mutex
	view    *ListView
	refresh uint64
}

func NewCatalog(client *Client, view *ListView) *Catalog {
	if view == nil {
		view = NewListView()
	}
	return &Catalog{client: client, view: view}
}

// View runs fn with exclusive access to the list view.
func (c *Catalog) View(fn func(v *ListView)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.view)
}

func (c *Catalog) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.refresh++
	token := c.refresh
	c.mu.Unlock()

	products, err := c.client.ListProducts(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.refresh {
		return nil
	}
	c.view.SetProducts(products)
	return nil
}

func (c *Catalog) Create(ctx context.Context, form *ProductForm) (*models.Product, error) {
	product, err := c.client.CreateProduct(ctx, form)
	if err != nil {
		return nil, err
	}
	return product, c.refreshAfter(ctx, "create")
}

func (c *Catalog) Update(ctx context.Context, id int64, form *ProductForm) (*models.Product, error) {
	product, err := c.client.UpdateProduct(ctx, id, form)
	if err != nil {
		return nil, err
	}
	return product, c.refreshAfter(ctx, "update")
}

func (c *Catalog) Delete(ctx context.Context, id int64) error {
	if err := c.client.DeleteProduct(ctx, id); err != nil {
		return err
	}
	return c.refreshAfter(ctx, "delete")
}

func (c *Catalog) refreshAfter(ctx context.Context, op string) error {
	if err := c.Refresh(ctx); err != nil {
		return fmt.Errorf("%s succeeded but refresh failed: %w", op, err)
	}
	return nil
}
