package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the server-side order lifecycle state. The server owns the
// state machine (PENDING -> SHIPPED -> DELIVERED, or -> CANCELLED); the
// client only offers the single action matching the current status.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Next returns the one forward transition a seller may request for the
// current status. ok is false for terminal states.
func (s OrderStatus) Next() (next OrderStatus, ok bool) {
	switch s {
	case OrderPending:
		return OrderShipped, true
	case OrderShipped:
		return OrderDelivered, true
	}
	return "", false
}

// Active reports whether the order is still in progress (buyer's "active" tab).
func (s OrderStatus) Active() bool {
	return s == OrderPending || s == OrderShipped
}

// Completed reports whether the order reached a terminal state.
func (s OrderStatus) Completed() bool {
	return !s.Active()
}

// Order is a purchase record. SneakerName and the usernames are denormalized
// by the backend so list views need no extra fetches.
type Order struct {
	ID              int64           `json:"id"`
	SneakerID       int64           `json:"sneakerId"`
	SneakerName     string          `json:"sneakerName"`
	BuyerUsername   string          `json:"buyerUsername"`
	SellerUsername  string          `json:"sellerUsername"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Status          OrderStatus     `json:"status"`
	ShippingAddress string          `json:"shippingAddress"`
	PhoneNumber     string          `json:"phoneNumber"`
	CreatedAt       time.Time       `json:"createdAt"`
}
