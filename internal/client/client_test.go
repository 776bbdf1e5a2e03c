package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/product-catalog/internal/config"
	"github.com/javajoker/product-catalog/internal/database/dbtest"
	"github.com/javajoker/product-catalog/internal/i18n"
	"github.com/javajoker/product-catalog/internal/models"
	"github.com/javajoker/product-catalog/internal/router"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func init() {
	gin.SetMode(gin.TestMode)
}

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *Client
	cancel context.CancelFunc
}

func (s *ClientTestSuite) SetupSuite() {
	s.Require().NoError(i18n.Initialize("en"))
}

func (s *ClientTestSuite) SetupTest() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	cfg := &config.Config{
		Server: config.ServerConfig{MaxMultipartMemory: 8 << 20},
		Catalog: config.CatalogConfig{
			Store:            config.StoreMemory,
			MaxImages:        10,
			MaxImageSize:     1 << 20,
			DefaultPageLimit: 20,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
		I18n: config.I18nConfig{DefaultLocale: "en"},
	}
	r, err := router.Initialize(ctx, dbtest.Open(s.T()), cfg)
	s.Require().NoError(err)

	s.server = httptest.NewServer(r)
	s.client = NewClient(s.server.URL + "/")
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
	s.cancel()
}

func (s *ClientTestSuite) newForm(name string) *ProductForm {
	return &ProductForm{
		Name:        name,
		Price:       "999",
		Description: "<p>phone</p>",
		Status:      "active",
		Images:      []PendingImage{{Name: "front.png", Type: "image/png", Data: pngBytes}},
	}
}

func (s *ClientTestSuite) TestCreateEditAndDelete() {
	ctx := context.Background()

	created, err := s.client.CreateProduct(ctx, s.newForm("Phone"))
	s.Require().NoError(err)
	s.Equal(int64(1), created.ID)
	s.Require().Len(created.Images, 1)
	s.Equal("front.png", created.Images[0].File.Name)

	mimeType, data, err := models.DecodeDataURL(created.Images[0].DataURL)
	s.Require().NoError(err)
	s.Equal("image/png", mimeType)
	s.Equal(pngBytes, data)

	form := NewEditForm(*created)
	form.Status = "archived"
	updated, err := s.client.UpdateProduct(ctx, created.ID, form)
	s.Require().NoError(err)
	s.Equal("archived", updated.Status)
	s.Equal(created.Images, updated.Images)

	form = NewEditForm(*updated)
	form.Images = []PendingImage{{Name: "back.png", Type: "image/png", Data: pngBytes}}
	updated, err = s.client.UpdateProduct(ctx, created.ID, form)
	s.Require().NoError(err)
	s.Len(updated.Images, 2)

	got, err := s.client.GetProduct(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(updated, got)

	s.Require().NoError(s.client.DeleteProduct(ctx, created.ID))

	_, err = s.client.GetProduct(ctx, created.ID)
	s.True(IsNotFound(err))

	products, err := s.client.ListProducts(ctx)
	s.Require().NoError(err)
	s.Empty(products)
}

func (s *ClientTestSuite) TestInvalidFormIsNotSent() {
	_, err := s.client.CreateProduct(context.Background(), &ProductForm{Name: "Phone", Price: "1"})

	var formErr *FormError
	s.Require().True(errors.As(err, &formErr))
	s.Equal("images", formErr.Fields[0].Field)

	products, err := s.client.ListProducts(context.Background())
	s.Require().NoError(err)
	s.Empty(products)
}

func (s *ClientTestSuite) TestServerValidationError() {
	form := s.newForm("Phone")
	form.Price = "cheap"

	_, err := s.client.CreateProduct(context.Background(), form)

	var apiErr *APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal(http.StatusBadRequest, apiErr.StatusCode)
	s.Equal("VALIDATION_ERROR", apiErr.Code)
	s.Contains(string(apiErr.Details), "price")
}

func (s *ClientTestSuite) TestLocalizedErrors() {
	c := NewClient(s.server.URL, WithLanguage("ru"))
	_, err := c.GetProduct(context.Background(), 5)

	var apiErr *APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal("Продукт не найден", apiErr.Message)
}

func (s *ClientTestSuite) TestCatalogRefreshesAfterMutations() {
	ctx := context.Background()
	catalog := NewCatalog(s.client, nil)

	for _, name := range []string{"Apple iPhone", "Samsung Galaxy", "Xiaomi"} {
		_, err := catalog.Create(ctx, s.newForm(name))
		s.Require().NoError(err)
	}

	catalog.View(func(v *ListView) {
		s.Len(v.Products(), 3)
		v.SetFilter("iphone")
		s.Len(v.Visible(), 1)
	})

	s.Require().NoError(catalog.Delete(ctx, 1))
	catalog.View(func(v *ListView) {
		s.Len(v.Products(), 2)
		s.Empty(v.Visible())
	})

	_, err := catalog.Update(ctx, 2, &ProductForm{Name: "Samsung", Price: "1", Description: "d", Status: "archived", ExistingImages: 1})
	s.Require().NoError(err)
	catalog.View(func(v *ListView) {
		v.SetFilter("")
		s.Equal("archived", v.Visible()[0].Status)
	})
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func TestCatalogKeepsLatestRefresh(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products := []models.Product{{ID: 1, Name: "Old"}}
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
		} else {
			products = append(products, models.Product{ID: 2, Name: "New"})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	}))
	defer server.Close()

	catalog := NewCatalog(NewClient(server.URL), nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, catalog.Refresh(context.Background()))
	}()

	<-started
	require.NoError(t, catalog.Refresh(context.Background()))
	close(release)
	wg.Wait()

	catalog.View(func(v *ListView) {
		assert.Len(t, v.Products(), 2)
	})
}

func TestDeleteMissingProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":{"code":"NOT_FOUND","message":"Product not found"}}`))
	}))
	defer server.Close()

	err := NewClient(server.URL).DeleteProduct(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Product not found")
}
