package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"kickitup/internal/models"
)

// Auth endpoints are public; everything else expects a bearer token.

func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &out)
	return out, err
}

func (c *Client) Profile(ctx context.Context) (models.Profile, error) {
	var out models.Profile
	err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, nil, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) error {
	return c.do(ctx, http.MethodPut, "/api/users/profile", nil, req, nil)
}

func (c *Client) ChangePassword(ctx context.Context, req PasswordChangeRequest) error {
	return c.do(ctx, http.MethodPost, "/api/users/change-password", nil, req, nil)
}

func (c *Client) Sneakers(ctx context.Context) ([]models.Sneaker, error) {
	var out []models.Sneaker
	err := c.do(ctx, http.MethodGet, "/api/sneakers/all", nil, nil, &out)
	return out, err
}

func (c *Client) Sneaker(ctx context.Context, id int64) (models.Sneaker, error) {
	var out models.Sneaker
	err := c.do(ctx, http.MethodGet, "/api/sneakers/"+strconv.FormatInt(id, 10), nil, nil, &out)
	return out, err
}

func (c *Client) MySneakers(ctx context.Context) ([]models.Sneaker, error) {
	var out []models.Sneaker
	err := c.do(ctx, http.MethodGet, "/api/sneakers/my-sneakers", nil, nil, &out)
	return out, err
}

func (c *Client) CreateSneaker(ctx context.Context, req SneakerRequest) (models.Sneaker, error) {
	var out models.Sneaker
	err := c.do(ctx, http.MethodPost, "/api/sneakers", nil, req, &out)
	return out, err
}

func (c *Client) UpdateSneaker(ctx context.Context, id int64, req SneakerRequest) (models.Sneaker, error) {
	var out models.Sneaker
	err := c.do(ctx, http.MethodPut, "/api/sneakers/"+strconv.FormatInt(id, 10), nil, req, &out)
	return out, err
}

func (c *Client) DeleteSneaker(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/sneakers/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) SellerStats(ctx context.Context) (models.SellerStats, error) {
	var out models.SellerStats
	err := c.do(ctx, http.MethodGet, "/api/dashboard/seller/stats", nil, nil, &out)
	return out, err
}

func (c *Client) SellerOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	err := c.do(ctx, http.MethodGet, "/api/dashboard/seller/orders", nil, nil, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (models.Order, error) {
	var out models.Order
	err := c.do(ctx, http.MethodPost, "/api/orders", nil, req, &out)
	return out, err
}

func (c *Client) MyOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	err := c.do(ctx, http.MethodGet, "/api/orders/my-orders", nil, nil, &out)
	return out, err
}

// UpdateOrderStatus requests the transition carried in the query string;
// the server validates it against the order's current state.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	q := url.Values{"status": []string{string(status)}}
	return c.do(ctx, http.MethodPatch, "/api/orders/"+strconv.FormatInt(id, 10)+"/status", q, nil, nil)
}

func (c *Client) AddFavorite(ctx context.Context, sneakerID int64) error {
	return c.do(ctx, http.MethodPost, "/api/favorites/"+strconv.FormatInt(sneakerID, 10), nil, nil, nil)
}

func (c *Client) Reviews(ctx context.Context, sneakerID int64) ([]models.Review, error) {
	var out []models.Review
	err := c.do(ctx, http.MethodGet, "/api/reviews/sneaker/"+strconv.FormatInt(sneakerID, 10), nil, nil, &out)
	return out, err
}

func (c *Client) CreateReview(ctx context.Context, req ReviewRequest) (models.Review, error) {
	var out models.Review
	err := c.do(ctx, http.MethodPost, "/api/reviews", nil, req, &out)
	return out, err
}
