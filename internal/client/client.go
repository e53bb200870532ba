// Package client is a Go SDK for the storefront HTTP API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golden-thread/internal/apitypes"
	"golden-thread/internal/domain"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is where a locally started API listens
const DefaultBaseURL = "http://localhost:5050"

// APIError is a non-2xx response. Message is the server's error text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Error string `json:"error"`
}

// Client calls the storefront API. It is safe for concurrent use once the
// token is set.
type Client struct {
	http *resty.Client
}

// New creates a client for the API at baseURL
func New(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)

	return &Client{http: httpClient}
}

// SetToken authenticates subsequent requests; an empty token clears it
func (c *Client) SetToken(token string) *Client {
	c.http.SetAuthToken(token)
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	req := c.http.R().
		SetContext(ctx).
		SetError(&errorBody{})
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		apiErr := &APIError{StatusCode: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
		if e, ok := resp.Error().(*errorBody); ok && e.Error != "" {
			apiErr.Message = e.Error
		}
		return apiErr
	}
	return nil
}

func (c *Client) Health(ctx context.Context) error {
	var out apitypes.OKResponse
	return c.do(ctx, http.MethodGet, "/api/health", nil, &out)
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*apitypes.AuthResponse, error) {
	var out apitypes.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", apitypes.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*apitypes.AuthResponse, error) {
	var out apitypes.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", apitypes.LoginRequest{
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ProductQuery narrows a product listing. Empty fields are omitted.
type ProductQuery struct {
	Category string
	Query    string
	Sort     string
}

func (q ProductQuery) encode() string {
	values := url.Values{}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.Query != "" {
		values.Set("q", q.Query)
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

func (c *Client) Products(ctx context.Context, q ProductQuery) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products"+q.encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id int64) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct requires an admin token
func (c *Client) CreateProduct(ctx context.Context, req apitypes.CreateProductRequest) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CategoryProducts(ctx context.Context, slug string) (*apitypes.CategoryProducts, error) {
	var out apitypes.CategoryProducts
	if err := c.do(ctx, http.MethodGet, "/api/category/"+url.PathEscape(slug)+"/products", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaceOrder requires a user token
func (c *Client) PlaceOrder(ctx context.Context, req apitypes.PlaceOrderRequest) (*apitypes.OrderCreated, error) {
	var out apitypes.OrderCreated
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyOrders(ctx context.Context) ([]apitypes.MyOrder, error) {
	var out []apitypes.MyOrder
	if err := c.do(ctx, http.MethodGet, "/api/orders/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Order tracks an order by id; no token is needed
func (c *Client) Order(ctx context.Context, id string) (*apitypes.OrderDetail, error) {
	var out apitypes.OrderDetail
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Blogs(ctx context.Context) ([]domain.BlogSummary, error) {
	var out []domain.BlogSummary
	if err := c.do(ctx, http.MethodGet, "/api/blogs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Blog(ctx context.Context, slug string) (*domain.Blog, error) {
	var out domain.Blog
	if err := c.do(ctx, http.MethodGet, "/api/blogs/"+url.PathEscape(slug), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Reviews(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	if err := c.do(ctx, http.MethodGet, "/api/reviews", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Contact(ctx context.Context, req apitypes.ContactRequest) error {
	var out apitypes.OKResponse
	return c.do(ctx, http.MethodPost, "/api/contact", req, &out)
}
