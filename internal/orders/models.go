package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusConfirmed is the only status an order ever has: the workflow either
// persists a confirmed order or persists nothing.
const StatusConfirmed = "CONFIRMED"

type Order struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
