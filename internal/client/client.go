// internal/client/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/javajoker/product-catalog/internal/models"
)

// Client talks to the catalog HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	language   string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLanguage sets Accept-Language so error messages come back localized.
func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Code       string          `json:"code"`
	Message    string          `json:"message"`
	Details    json.RawMessage `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("catalog api: %s (%d %s)", e.Message, e.StatusCode, e.Code)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, productPath(id), nil, "", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct validates form for creation and submits it. A *FormError
// is returned without contacting the server when the form is incomplete.
func (c *Client) CreateProduct(ctx context.Context, form *ProductForm) (*models.Product, error) {
	if err := form.Validate(ModeCreate); err != nil {
		return nil, err
	}
	body, contentType, err := form.encode()
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := c.do(ctx, http.MethodPost, "/products/create", body, contentType, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct sends every field of form plus its new images. Existing
// images stay on the server.
func (c *Client) UpdateProduct(ctx context.Context, id int64, form *ProductForm) (*models.Product, error) {
	if err := form.Validate(ModeEdit); err != nil {
		return nil, err
	}
	body, contentType, err := form.encode()
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := c.do(ctx, http.MethodPut, productPath(id), body, contentType, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, productPath(id), nil, "", nil)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope struct {
		Error *APIError `json:"error"`
	}
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.Details = envelope.Error.Details
	}
	return apiErr
}

func productPath(id int64) string {
	return "/products/" + strconv.FormatInt(id, 10)
}

// encode builds the multipart body: text fields first, then one raw file
// part per pending image under the "images" field.
func (f *ProductForm) encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := [][2]string{
		{"name", f.Name},
		{"price", f.Price},
		{"description", f.Description},
		{"status", f.Status},
	}
	for _, field := range fields {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return nil, "", fmt.Errorf("failed to write %s: %w", field[0], err)
		}
	}

	for _, img := range f.Images {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, escapeQuotes(img.Name)))
		h.Set("Content-Type", img.Type)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("failed to add image %s: %w", img.Name, err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", fmt.Errorf("failed to write image %s: %w", img.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}
	return body, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
