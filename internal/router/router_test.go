package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/product-catalog/internal/config"
	"github.com/javajoker/product-catalog/internal/database/dbtest"
	"github.com/javajoker/product-catalog/internal/i18n"
	"github.com/javajoker/product-catalog/internal/models"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func init() {
	gin.SetMode(gin.TestMode)
}

type upload struct {
	name        string
	contentType string
	data        []byte
}

type envelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field string `json:"field"`
			Tag   string `json:"tag"`
		} `json:"details"`
	} `json:"error"`
}

func testConfig(store string) *config.Config {
	return &config.Config{
		Environment: "test",
		Server:      config.ServerConfig{MaxMultipartMemory: 8 << 20},
		Catalog: config.CatalogConfig{
			Store:            store,
			MaxImages:        3,
			MaxImageSize:     1 << 10,
			DefaultPageLimit: 20,
		},
		RateLimit: config.RateLimitConfig{Enabled: false},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
		I18n:      config.I18nConfig{DefaultLocale: "en"},
	}
}

func multipartBody(t *testing.T, fields map[string]string, fileField string, files ...upload) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fileField, f.name))
		if f.contentType != "" {
			h.Set("Content-Type", f.contentType)
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

type RouterTestSuite struct {
	suite.Suite
	store  string
	cancel context.CancelFunc
	router *gin.Engine
}

func (s *RouterTestSuite) SetupSuite() {
	s.Require().NoError(i18n.Initialize("en"))
}

func (s *RouterTestSuite) SetupTest() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	r, err := Initialize(ctx, dbtest.Open(s.T()), testConfig(s.store))
	s.Require().NoError(err)
	s.router = r
}

func (s *RouterTestSuite) TearDownTest() {
	s.cancel()
}

func (s *RouterTestSuite) do(method, path string, body *bytes.Buffer, contentType string, headers ...string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) create(fields map[string]string, files ...upload) *httptest.ResponseRecorder {
	body, ct := multipartBody(s.T(), fields, "images", files...)
	return s.do(http.MethodPost, "/products/create", body, ct)
}

func (s *RouterTestSuite) update(id int64, fields map[string]string, files ...upload) *httptest.ResponseRecorder {
	body, ct := multipartBody(s.T(), fields, "images", files...)
	return s.do(http.MethodPut, fmt.Sprintf("/products/%d", id), body, ct)
}

func (s *RouterTestSuite) decodeProduct(w *httptest.ResponseRecorder) models.Product {
	var p models.Product
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func (s *RouterTestSuite) decodeError(w *httptest.ResponseRecorder) envelope {
	var e envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &e))
	s.False(e.Success)
	return e
}

func (s *RouterTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "healthy")
}

func (s *RouterTestSuite) TestCreateThenUpdateWithoutFilesKeepsImages() {
	w := s.create(map[string]string{
		"name":        "Phone",
		"price":       "999",
		"description": "<p>Nice</p>",
		"status":      "active",
	}, upload{name: "front.png", contentType: "image/png", data: pngBytes})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	created := s.decodeProduct(w)
	s.Equal(int64(1), created.ID)
	s.Equal("Phone", created.Name)
	s.True(created.Price.Equal(models.NewPrice(999).Decimal))
	s.Equal("<p>Nice</p>", created.Description)
	s.Require().Len(created.Images, 1)
	s.True(strings.HasPrefix(created.Images[0].DataURL, "data:image/png;base64,"))
	s.Equal(models.FileMeta{Name: "front.png", Type: "image/png", Size: int64(len(pngBytes))}, created.Images[0].File)

	w = s.update(created.ID, map[string]string{
		"name":        "Phone",
		"price":       "999",
		"description": "<p>Nice</p>",
		"status":      "archived",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	updated := s.decodeProduct(w)
	s.Equal("archived", updated.Status)
	s.Equal(created.Images, updated.Images)
}

func (s *RouterTestSuite) TestUpdateAppendsImages() {
	w := s.create(map[string]string{"name": "Phone", "price": "10"},
		upload{name: "a.png", contentType: "image/png", data: pngBytes})
	s.Require().Equal(http.StatusCreated, w.Code)
	created := s.decodeProduct(w)

	w = s.update(created.ID, map[string]string{
		"name":        "Phone",
		"price":       "12.5",
		"description": "d",
		"status":      "active",
	}, upload{name: "b.gif", contentType: "image/gif", data: []byte("GIF89a")})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	updated := s.decodeProduct(w)
	s.Require().Len(updated.Images, 2)
	s.Equal(created.Images[0], updated.Images[0])
	s.Equal("b.gif", updated.Images[1].File.Name)
	s.Equal("12.5", updated.Price.String())

	w = s.do(http.MethodGet, fmt.Sprintf("/products/%d", created.ID), nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Len(s.decodeProduct(w).Images, 2)
}

func (s *RouterTestSuite) TestCreateDefaultsAndSniffsType() {
	w := s.create(map[string]string{"name": "Plain", "price": "0"},
		upload{name: "blob", data: pngBytes})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	p := s.decodeProduct(w)
	s.Equal(models.DefaultDescription, p.Description)
	s.Equal("active", p.Status)
	s.Equal("image/png", p.Images[0].File.Type)
	s.True(p.Price.IsZero())
}

func (s *RouterTestSuite) TestCreateValidation() {
	w := s.create(map[string]string{"name": "   ", "price": "abc"})
	s.Require().Equal(http.StatusBadRequest, w.Code)

	e := s.decodeError(w)
	s.Equal("VALIDATION_ERROR", e.Error.Code)
	var fields []string
	for _, d := range e.Error.Details {
		fields = append(fields, d.Field)
	}
	s.Contains(fields, "name")
	s.Contains(fields, "price")

	w = s.do(http.MethodGet, "/products", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
}

func (s *RouterTestSuite) TestCreateRejectsTooManyImages() {
	files := make([]upload, 4)
	for i := range files {
		files[i] = upload{name: fmt.Sprintf("%d.png", i), contentType: "image/png", data: pngBytes}
	}

	w := s.create(map[string]string{"name": "Phone", "price": "1"}, files...)
	s.Require().Equal(http.StatusBadRequest, w.Code)
	s.Equal("images", s.decodeError(w).Error.Details[0].Field)
}

func (s *RouterTestSuite) TestUpdateMissingProductIsNotFoundBeforeValidation() {
	w := s.update(42, map[string]string{"name": ""})
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("NOT_FOUND", s.decodeError(w).Error.Code)
}

func (s *RouterTestSuite) TestUpdateRequiresAllFields() {
	w := s.create(map[string]string{"name": "Phone", "price": "1"})
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.update(1, map[string]string{"name": "Phone", "price": "1", "description": "d"})
	s.Require().Equal(http.StatusBadRequest, w.Code)
	s.Equal("status", s.decodeError(w).Error.Details[0].Field)

	w = s.do(http.MethodGet, "/products/1", nil, "")
	s.Equal("active", s.decodeProduct(w).Status)
}

func (s *RouterTestSuite) TestGetAndDelete() {
	s.Require().Equal(http.StatusCreated, s.create(map[string]string{"name": "A", "price": "1"}).Code)
	s.Require().Equal(http.StatusCreated, s.create(map[string]string{"name": "B", "price": "2"}).Code)

	w := s.do(http.MethodGet, "/products", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	var list []models.Product
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	s.Require().Len(list, 2)
	s.Equal("A", list[0].Name)
	s.Equal("B", list[1].Name)

	w = s.do(http.MethodDelete, "/products/1", nil, "")
	s.Equal(http.StatusNoContent, w.Code)
	s.Empty(w.Body.String())

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/products/1", nil, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, "/products/1", nil, "").Code)

	w = s.create(map[string]string{"name": "C", "price": "3"})
	s.Require().Equal(http.StatusCreated, w.Code)
	s.Equal(int64(3), s.decodeProduct(w).ID)
}

func (s *RouterTestSuite) TestInvalidID() {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := s.do(method, "/products/abc", nil, "")
		s.Equal(http.StatusBadRequest, w.Code, method)
		s.Equal("Invalid product ID", s.decodeError(w).Error.Message)
	}
}

func (s *RouterTestSuite) TestLocalizedErrors() {
	w := s.do(http.MethodGet, "/products/7", nil, "", "Accept-Language", "ru-RU,ru;q=0.9")
	s.Require().Equal(http.StatusNotFound, w.Code)
	s.Equal("Продукт не найден", s.decodeError(w).Error.Message)
}

func (s *RouterTestSuite) TestImageLibrary() {
	w := s.do(http.MethodPost, "/upload", &bytes.Buffer{}, "")
	s.Require().Equal(http.StatusBadRequest, w.Code)
	e := s.decodeError(w)
	s.Equal("UPLOAD_ERROR", e.Error.Code)
	s.Equal("No file uploaded", e.Error.Message)

	body, ct := multipartBody(s.T(), nil, "image", upload{name: "logo.png", contentType: "image/png", data: pngBytes})
	w = s.do(http.MethodPost, "/upload", body, ct)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.JSONEq(`{"id":1}`, w.Body.String())

	w = s.do(http.MethodGet, "/images/1", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("image/png", w.Header().Get("Content-Type"))
	s.Equal(pngBytes, w.Body.Bytes())

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/images/2", nil, "").Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/images/x", nil, "").Code)

	w = s.do(http.MethodGet, "/images", nil, "")
	var images []models.LibraryImage
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &images))
	s.Require().Len(images, 1)
	s.Equal("logo.png", images[0].Filename)
}

func (s *RouterTestSuite) TestAuditLogsRecordMutations() {
	s.Require().Equal(http.StatusCreated, s.create(map[string]string{"name": "A", "price": "1"}).Code)
	s.Require().Equal(http.StatusNotFound, s.do(http.MethodDelete, "/products/9", nil, "").Code)
	s.do(http.MethodGet, "/products", nil, "")

	w := s.do(http.MethodGet, "/audit-logs?page=1&limit=10", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    []models.AuditLog `json:"data"`
		Meta    struct {
			Pagination struct {
				Total int64 `json:"total"`
			} `json:"pagination"`
		} `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Equal(int64(2), resp.Meta.Pagination.Total)
	s.Require().Len(resp.Data, 2)
	s.Equal("DELETE /products/9", resp.Data[0].Action)
	s.Equal(http.StatusNotFound, resp.Data[0].Status)
	s.Equal("POST /products/create", resp.Data[1].Action)
}

func TestRouterMemoryStore(t *testing.T) {
	suite.Run(t, &RouterTestSuite{store: config.StoreMemory})
}

func TestRouterSQLiteStore(t *testing.T) {
	suite.Run(t, &RouterTestSuite{store: config.StoreSQLite})
}

func TestUploadRateLimit(t *testing.T) {
	require.NoError(t, i18n.Initialize("en"))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := testConfig(config.StoreMemory)
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, UploadsPerMinute: 1, UploadBurst: 1}
	r, err := Initialize(ctx, dbtest.Open(t), cfg)
	require.NoError(t, err)

	send := func() int {
		body, ct := multipartBody(t, map[string]string{"name": "A", "price": "1"}, "images")
		req := httptest.NewRequest(http.MethodPost, "/products/create", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, send())
	assert.Equal(t, http.StatusTooManyRequests, send())

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSeededCatalog(t *testing.T) {
	require.NoError(t, i18n.Initialize("en"))

	cfg := testConfig(config.StoreMemory)
	cfg.Catalog.Seed = true
	r, err := Initialize(context.Background(), dbtest.Open(t), cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var list []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 3)
}
