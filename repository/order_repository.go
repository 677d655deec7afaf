package repository

import (
	"time"

	"github.com/werawoot/Krua-Thai1-sub002/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// Guest lookup: number + email, and the owning account must be a guest
// account. A miss of either kind is the same ErrRecordNotFound.
func (r *OrderRepository) GetOrderForGuest(orderNumber, email string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.order_number = ? AND orders.customer_email = ? AND users.is_guest = ?",
			orderNumber, email, true).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID          uint      `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Total       int64     `json:"total"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, total, status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) CountOrdersSince(t time.Time) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Where("created_at >= ?", t).Count(&n).Error
	return n, err
}
