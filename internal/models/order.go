package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order statuses. An order starts pending and moves through the kitchen
// states; confirmed and cancelled are terminal.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
)

// orderTransitions whitelists the admin-driven status moves. Cancellation
// is only reachable from pending; preparing orders are already on the line.
var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusConfirmed},
}

// ValidOrderStatus reports whether s is a recognised order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusConfirmed, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is a customer checkout transaction. Total equals the sum of
// item price snapshots times quantities; it is recomputed server-side at
// creation and never changes afterwards except for the status field.
type Order struct {
	ID           string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RestaurantID string          `gorm:"index;not null" json:"restaurantId"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Status       string          `gorm:"not null;default:pending" json:"status"`
	CustomerName string          `gorm:"not null" json:"customerName"`
	TableNumber  string          `json:"tableNumber,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

// OrderItem is one line within an order. Price is a snapshot of the food
// item price at order time: later menu price edits must not rewrite
// historical totals.
type OrderItem struct {
	ID         string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrderID    string          `gorm:"index;not null" json:"orderId"`
	FoodItemID string          `gorm:"index;not null" json:"foodItemId"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
