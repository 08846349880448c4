package api

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrValidation marks a request rejected locally, before any network call.
// Match with errors.Is.
var ErrValidation = errors.New("validation error")

func required(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return nil
}

// LoginRequest is the POST /api/auth/login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if err := required("username", r.Username); err != nil {
		return err
	}
	return required("password", r.Password)
}

// RegisterRequest is the POST /api/auth/register payload.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

func (r RegisterRequest) Validate() error {
	for field, value := range map[string]string{
		"username": r.Username,
		"email":    r.Email,
		"password": r.Password,
	} {
		if err := required(field, value); err != nil {
			return err
		}
	}
	return nil
}

// AuthResponse carries the bearer token issued on login/register.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// SneakerRequest is the create/update listing payload.
type SneakerRequest struct {
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Condition   string          `json:"condition"`
	Stock       int             `json:"stock"`
	ImageURLs   []string        `json:"imageUrls"`
}

func (r SneakerRequest) Validate() error {
	if err := required("name", r.Name); err != nil {
		return err
	}
	if err := required("brand", r.Brand); err != nil {
		return err
	}
	if !r.Price.IsPositive() {
		return fmt.Errorf("%w: price must be a positive number", ErrValidation)
	}
	if r.Stock < 1 {
		return fmt.Errorf("%w: stock must be at least 1", ErrValidation)
	}
	return nil
}

// OrderRequest is the POST /api/orders payload.
type OrderRequest struct {
	SneakerID       int64  `json:"sneakerId"`
	ShippingAddress string `json:"shippingAddress"`
	PhoneNumber     string `json:"phoneNumber"`
}

func (r OrderRequest) Validate() error {
	if err := required("shipping address", r.ShippingAddress); err != nil {
		return err
	}
	return required("phone number", r.PhoneNumber)
}

// ReviewRequest is the POST /api/reviews payload.
type ReviewRequest struct {
	SneakerID int64  `json:"sneakerId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (r ReviewRequest) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	return nil
}

// ProfileUpdateRequest is the PUT /api/users/profile payload.
type ProfileUpdateRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// PasswordChangeRequest is the POST /api/users/change-password payload.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r PasswordChangeRequest) Validate() error {
	if err := required("current password", r.CurrentPassword); err != nil {
		return err
	}
	return required("new password", r.NewPassword)
}
