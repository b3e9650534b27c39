package orders

import "github.com/shopspring/decimal"

// OrderTotal is quantity * unitPrice, exact decimal arithmetic.
func OrderTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// BulkDiscount applies a tiered multiplier to the plain total. Not used by
// the order workflow; callers apply it themselves when they want bulk
// pricing.
func BulkDiscount(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	total := OrderTotal(quantity, unitPrice)
	switch {
	case quantity >= 100:
		return total.Mul(decimal.NewFromFloat(0.80))
	case quantity >= 50:
		return total.Mul(decimal.NewFromFloat(0.90))
	case quantity >= 10:
		return total.Mul(decimal.NewFromFloat(0.95))
	default:
		return total
	}
}
