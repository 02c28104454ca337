package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOrderFormValidate(t *testing.T) {
	form := &OrderForm{
		FirstName:  "Royce",
		LastName:   "Wang",
		Email:      "royce@example.com",
		Address:    "123 Test St",
		PostalCode: "100",
		City:       "Taipei",
	}
	require.Empty(t, form.Validate())
}

func TestOrderFormValidateMissingFields(t *testing.T) {
	form := &OrderForm{}
	errs := form.Validate()
	require.Len(t, errs, 6)
	for _, field := range []string{"first_name", "last_name", "email", "address", "postal_code", "city"} {
		require.Contains(t, errs, field)
	}
}

func TestOrderFormValidateWhitespaceOnly(t *testing.T) {
	form := &OrderForm{
		FirstName:  "  ",
		LastName:   "Wang",
		Email:      "royce@example.com",
		Address:    "123 Test St",
		PostalCode: "100",
		City:       "Taipei",
	}
	errs := form.Validate()
	require.Contains(t, errs, "first_name")
	require.Len(t, errs, 1)
}

func TestOrderFormValidateBadEmail(t *testing.T) {
	tests := []string{"plainaddress", "@no-local-part.com", "royce@", "royce example@test.com"}
	for _, email := range tests {
		form := &OrderForm{
			FirstName:  "Royce",
			LastName:   "Wang",
			Email:      email,
			Address:    "123 Test St",
			PostalCode: "100",
			City:       "Taipei",
		}
		errs := form.Validate()
		require.Contains(t, errs, "email", "email %q should be rejected", email)
	}
}

func TestCartTotalPrice(t *testing.T) {
	cart := &Cart{
		SessionID: "s1",
		Items: []CartItem{
			{ProductID: 1, Quantity: 2, Price: decimal.RequireFromString("19.99")},
			{ProductID: 2, Quantity: 3, Price: decimal.RequireFromString("0.01")},
		},
	}
	require.True(t, decimal.RequireFromString("40.01").Equal(cart.TotalPrice()))
	require.False(t, cart.IsEmpty())

	empty := &Cart{SessionID: "s2"}
	require.True(t, empty.IsEmpty())
	require.True(t, decimal.Zero.Equal(empty.TotalPrice()))
}

func TestOrderItemCost(t *testing.T) {
	item := OrderItem{Price: decimal.RequireFromString("19.99"), Quantity: 3}
	require.True(t, decimal.RequireFromString("59.97").Equal(item.Cost()))

	order := Order{
		OrderItems: []OrderItem{
			{Price: decimal.RequireFromString("19.99"), Quantity: 2},
			{Price: decimal.RequireFromString("9.50"), Quantity: 1},
		},
	}
	require.True(t, decimal.RequireFromString("49.48").Equal(order.TotalCost()))
}
