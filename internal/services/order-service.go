package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Checkout and status-machine errors surfaced to the controllers
var (
	ErrCustomerNameRequired = errors.New("customer_name_required")
	ErrTableNumberRequired  = errors.New("table_number_required")
	ErrEmptyOrder           = errors.New("order_empty")
	ErrInvalidQuantity      = errors.New("invalid_quantity")
	ErrFoodItemNotFound     = errors.New("food_item_not_found")
	ErrFoodItemUnavailable  = errors.New("food_item_unavailable")
	ErrTotalMismatch        = errors.New("order_total_mismatch")
	ErrOrderNotFound        = errors.New("order_not_found")
	ErrInvalidStatus        = errors.New("invalid_status")
	ErrInvalidTransition    = errors.New("invalid_status_transition")
)

// totalTolerance absorbs client-side rounding; anything beyond a cent off
// the server-side total is treated as tampering.
var totalTolerance = decimal.New(1, -2)

// OrderLine is one submitted cart line. The price is what the client
// displayed; the server snapshots the authoritative menu price and only
// uses the submitted values to verify the claimed total.
type OrderLine struct {
	FoodItemID string          `json:"foodItemId"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// CreateOrderRequest is the typed checkout payload.
type CreateOrderRequest struct {
	Items        []OrderLine     `json:"items"`
	Total        decimal.Decimal `json:"total"`
	CustomerName string          `json:"customerName"`
	TableNumber  string          `json:"tableNumber"`
	Notes        string          `json:"notes"`
}

// OrderService owns the checkout flow and the order status machine
type OrderService interface {
	// CreateOrder validates and atomically persists an order with its items
	CreateOrder(restaurantID string, req CreateOrderRequest) (*models.Order, error)
	// ListOrders returns all orders for the restaurant, newest first, items included
	ListOrders(restaurantID string) ([]models.Order, error)
	// GetOrderByID returns a single order with its items
	GetOrderByID(id string) (*models.Order, error)
	// UpdateStatus applies one admin-driven status transition
	UpdateStatus(id, status string) (*models.Order, error)
	// ResetOrders wipes all orders for the restaurant, recording an audit row
	ResetOrders(restaurantID, actorID string) (int64, error)
}

type orderService struct {
	db           *gorm.DB
	requireTable bool
}

// NewOrderService creates a new instance of OrderService. requireTableNumber
// selects the dine-in policy where checkout demands a table number.
func NewOrderService(db *gorm.DB, requireTableNumber bool) OrderService {
	return &orderService{db: db, requireTable: requireTableNumber}
}

func (s *orderService) CreateOrder(restaurantID string, req CreateOrderRequest) (*models.Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, ErrCustomerNameRequired
	}
	if s.requireTable && strings.TrimSpace(req.TableNumber) == "" {
		return nil, ErrTableNumberRequired
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	order := &models.Order{
		RestaurantID: restaurantID,
		Status:       models.OrderStatusPending,
		CustomerName: strings.TrimSpace(req.CustomerName),
		TableNumber:  strings.TrimSpace(req.TableNumber),
		Notes:        req.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(req.Items))

		for _, line := range req.Items {
			var food models.FoodItem
			err := tx.Where("id = ? AND restaurant_id = ?", line.FoodItemID, restaurantID).
				First(&food).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrFoodItemNotFound, line.FoodItemID)
			}
			if err != nil {
				return err
			}
			if !food.Available {
				return fmt.Errorf("%w: %s", ErrFoodItemUnavailable, food.Name)
			}

			// Snapshot the authoritative menu price, not the submitted one
			items = append(items, models.OrderItem{
				FoodItemID: food.ID,
				Quantity:   line.Quantity,
				Price:      food.Price,
			})
			total = total.Add(food.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		if req.Total.Sub(total).Abs().GreaterThan(totalTolerance) {
			return ErrTotalMismatch
		}

		order.Total = total
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.CreateInBatches(&items, len(items)).Error; err != nil {
			return err
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"order_id": order.ID,
		"total":    order.Total.StringFixed(2),
		"items":    len(order.Items),
		"table":    order.TableNumber,
	}).Info("Order created")
	return order, nil
}

func (s *orderService) ListOrders(restaurantID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(id string) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *orderService) UpdateStatus(id, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	var order models.Order
	err := s.db.Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	// Guard against a concurrent transition between the read and the write:
	// the update only applies while the order still holds the status we
	// validated against.
	result := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, order.Status).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: order already moved past %s", ErrInvalidTransition, order.Status)
	}
	order.Status = status

	log.WithFields(log.Fields{"order_id": order.ID, "status": status}).Info("Order status updated")
	return &order, nil
}

func (s *orderService) ResetOrders(restaurantID, actorID string) (int64, error) {
	var wiped int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).
			Where("restaurant_id = ?", restaurantID).
			Count(&wiped).Error; err != nil {
			return err
		}

		orderIDs := tx.Model(&models.Order{}).
			Select("id").
			Where("restaurant_id = ?", restaurantID)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", restaurantID).Delete(&models.Order{}).Error; err != nil {
			return err
		}

		audit := models.AuditLog{
			ActorID: actorID,
			Action:  "orders.reset",
			Detail:  fmt.Sprintf("wiped %d orders", wiped),
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"actor_id": actorID,
		"wiped":    wiped,
	}).Warn("All orders reset by administrator")
	return wiped, nil
}
