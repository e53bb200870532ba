package client

import (
	"context"
	"net/http"
	"net/url"

	"golden-thread/internal/apitypes"
	"golden-thread/internal/domain"
)

// Admin endpoints. Each requires an admin token.

func (c *Client) AdminOrders(ctx context.Context) ([]apitypes.AdminOrderSummary, error) {
	var out []apitypes.AdminOrderSummary
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminOrder(ctx context.Context, id string) (*apitypes.AdminOrderDetail, error) {
	var out apitypes.AdminOrderDetail
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (*apitypes.StatusUpdated, error) {
	var out apitypes.StatusUpdated
	path := "/api/admin/orders/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, apitypes.UpdateStatusRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminContact(ctx context.Context) ([]domain.ContactMessage, error) {
	var out []domain.ContactMessage
	if err := c.do(ctx, http.MethodGet, "/api/admin/contact", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, req apitypes.CreateCategoryRequest) error {
	var out apitypes.OKResponse
	return c.do(ctx, http.MethodPost, "/api/admin/categories", req, &out)
}

func (c *Client) CreateBlog(ctx context.Context, req apitypes.CreateBlogRequest) (*domain.Blog, error) {
	var out domain.Blog
	if err := c.do(ctx, http.MethodPost, "/api/admin/blogs", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateReview(ctx context.Context, req apitypes.CreateReviewRequest) (*domain.Review, error) {
	var out domain.Review
	if err := c.do(ctx, http.MethodPost, "/api/admin/reviews", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
