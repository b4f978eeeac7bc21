package purchasing

import (
	"time"

	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Network is a budget line purchases are charged against
type Network struct {
	Network   string          `gorm:"column:network;type:varchar(100);primaryKey" json:"network"`
	Balance   decimal.Decimal `gorm:"column:balance;type:decimal(18,2);not null;default:0" json:"balance"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName returns the table name for GORM
func (Network) TableName() string {
	return "networks"
}

// CanAfford returns true when the balance covers the amount
func (n *Network) CanAfford(amount decimal.Decimal) bool {
	return n.Balance.GreaterThanOrEqual(amount)
}

// Deduct subtracts amount from the balance, rejecting overdrafts
func (n *Network) Deduct(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Deduction amount cannot be negative")
	}
	if !n.CanAfford(amount) {
		return shared.ErrInsufficientBalance
	}
	n.Balance = n.Balance.Sub(amount)
	n.UpdatedAt = time.Now()
	return nil
}
