package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderTotal(t *testing.T) {
	cases := []struct {
		qty   int
		price string
		want  string
	}{
		{2, "50.00", "100.00"},
		{2, "10.50", "21.00"},
		{3, "29.99", "89.97"},
		{1, "999.99", "999.99"},
		{100, "10.50", "1050.00"},
		{0, "10.00", "0.00"},
	}
	for _, c := range cases {
		got := OrderTotal(c.qty, decimal.RequireFromString(c.price))
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
			"OrderTotal(%d, %s) = %s, want %s", c.qty, c.price, got, c.want)
	}
}

func TestBulkDiscountTiers(t *testing.T) {
	price := decimal.NewFromFloat(10.0)
	cases := []struct {
		qty  int
		want string
	}{
		{5, "50"},    // no discount below 10
		{9, "90"},    // still full price
		{10, "95"},   // 5% off
		{49, "465.5"},
		{50, "450"},  // 10% off
		{99, "891"},
		{100, "800"}, // 20% off
		{250, "2000"},
	}
	for _, c := range cases {
		got := BulkDiscount(c.qty, price)
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
			"BulkDiscount(%d, 10.0) = %s, want %s", c.qty, got, c.want)
	}
}

func TestBulkDiscountAlwaysPositive(t *testing.T) {
	price := decimal.NewFromFloat(0.01)
	for qty := 1; qty <= 300; qty++ {
		got := BulkDiscount(qty, price)
		assert.True(t, got.IsPositive(), "BulkDiscount(%d, 0.01) = %s", qty, got)
	}
}
