package api

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSneakerRequest_Validate(t *testing.T) {
	valid := SneakerRequest{
		Name:      "Dunk Low",
		Brand:     "Nike",
		Price:     decimal.NewFromFloat(120.50),
		Stock:     1,
		Condition: "NEW",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*SneakerRequest)
	}{
		{"missing name", func(r *SneakerRequest) { r.Name = "" }},
		{"missing brand", func(r *SneakerRequest) { r.Brand = "" }},
		{"zero price", func(r *SneakerRequest) { r.Price = decimal.Zero }},
		{"negative price", func(r *SneakerRequest) { r.Price = decimal.NewFromInt(-5) }},
		{"zero stock", func(r *SneakerRequest) { r.Stock = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)
			assert.ErrorIs(t, r.Validate(), ErrValidation)
		})
	}
}

func TestOrderRequest_Validate(t *testing.T) {
	assert.NoError(t, OrderRequest{SneakerID: 1, ShippingAddress: "a", PhoneNumber: "p"}.Validate())
	assert.ErrorIs(t, OrderRequest{SneakerID: 1, PhoneNumber: "p"}.Validate(), ErrValidation)
	assert.ErrorIs(t, OrderRequest{SneakerID: 1, ShippingAddress: "a"}.Validate(), ErrValidation)
}

func TestReviewRequest_Validate(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, ReviewRequest{SneakerID: 1, Rating: rating}.Validate())
	}
	assert.ErrorIs(t, ReviewRequest{SneakerID: 1, Rating: 0}.Validate(), ErrValidation)
	assert.ErrorIs(t, ReviewRequest{SneakerID: 1, Rating: 6}.Validate(), ErrValidation)
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, LoginRequest{Username: "u", Password: "p"}.Validate())
	assert.ErrorIs(t, LoginRequest{Password: "p"}.Validate(), ErrValidation)
	assert.ErrorIs(t, LoginRequest{Username: "u"}.Validate(), ErrValidation)
}

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{Username: "u", Email: "u@example.com", Password: "p"}
	assert.NoError(t, valid.Validate())

	missing := valid
	missing.Email = ""
	assert.ErrorIs(t, missing.Validate(), ErrValidation)
}

func TestPasswordChangeRequest_Validate(t *testing.T) {
	assert.NoError(t, PasswordChangeRequest{CurrentPassword: "old", NewPassword: "new"}.Validate())
	assert.ErrorIs(t, PasswordChangeRequest{NewPassword: "new"}.Validate(), ErrValidation)
	assert.ErrorIs(t, PasswordChangeRequest{CurrentPassword: "old"}.Validate(), ErrValidation)
}
