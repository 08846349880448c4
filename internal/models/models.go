// Package models defines the marketplace domain types exchanged with the
// backend: sneakers, orders, reviews, profiles, and seller statistics.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile is the account record as returned by GET /api/users/profile.
// It is always replaced wholesale on fetch/update, never patched field by field.
type Profile struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// SneakerStatus classifies listing availability.
type SneakerStatus string

const (
	SneakerAvailable SneakerStatus = "AVAILABLE"
	SneakerSold      SneakerStatus = "SOLD"
)

// Sneaker is a marketplace listing. Seller may be nil on endpoints that do
// not join the seller record.
type Sneaker struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Size          string          `json:"size"`
	Color         string          `json:"color"`
	Condition     string          `json:"condition"`
	Stock         int             `json:"stock"`
	Status        SneakerStatus   `json:"status"`
	ImageURLs     []string        `json:"imageUrls"`
	AverageRating float64         `json:"averageRating"`
	Seller        *Profile        `json:"seller"`
}

// Review is a buyer review of a sneaker. Username identifies the author.
type Review struct {
	ID        int64     `json:"id"`
	SneakerID int64     `json:"sneakerId"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// SellerStats is the aggregate returned by GET /api/dashboard/seller/stats.
type SellerStats struct {
	TotalListings  int             `json:"totalListings"`
	ActiveSneakers int             `json:"activeSneakers"`
	TotalOrders    int             `json:"totalOrders"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
}
