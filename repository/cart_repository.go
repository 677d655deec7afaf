package repository

import (
	"errors"
	"time"

	"github.com/werawoot/Krua-Thai1-sub002/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// CartOwner is either a logged-in user or a guest session id.
type CartOwner struct {
	UserID    uint
	SessionID string
}

func (o CartOwner) empty() bool { return o.UserID == 0 && o.SessionID == "" }

func (r *CartRepository) ownerScope(db *gorm.DB, o CartOwner) *gorm.DB {
	if o.UserID != 0 {
		return db.Where("user_id = ?", o.UserID)
	}
	return db.Where("session_id = ?", o.SessionID)
}

// Returns the owner's cart with items; an empty cart (no row yet) comes
// back non-nil so the frontend can always render.
func (r *CartRepository) GetCartWithItems(o CartOwner) (*entity.Cart, error) {
	if o.empty() {
		return nil, errors.New("no cart owner")
	}
	var c entity.Cart
	err := r.ownerScope(r.DB, o).Preload("Items").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{SessionID: o.SessionID}
		if o.UserID != 0 {
			uid := o.UserID
			c.UserID = &uid
		}
		return &c, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(o CartOwner) (*entity.Cart, error) {
	if o.empty() {
		return nil, errors.New("no cart owner")
	}
	var c entity.Cart
	err := r.ownerScope(r.DB, o).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{SessionID: o.SessionID}
		if o.UserID != 0 {
			uid := o.UserID
			c.UserID = &uid
		}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// Merge same product + same customization flags into one line.
// maxQty caps the merged quantity.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem, maxQty int) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ? AND extra_protein = ? AND extra_vegetables = ?",
		cartID, row.ProductID, row.ExtraProtein, row.ExtraVegetables).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		if exist.Qty > maxQty {
			exist.Qty = maxQty
		}
		exist.LineTotal = lineTotalOf(&exist)
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func lineTotalOf(it *entity.CartItem) int64 {
	return (it.UnitPrice + it.UnitSurcharge) * int64(it.Qty)
}

// qty arrives already clamped by the service; <= 0 means remove.
func (r *CartRepository) UpdateQty(tx *gorm.DB, o CartOwner, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, o, itemID)
	}
	var it entity.CartItem
	err := tx.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Scopes(func(db *gorm.DB) *gorm.DB {
			if o.UserID != 0 {
				return db.Where("carts.user_id = ?", o.UserID)
			}
			return db.Where("carts.session_id = ?", o.SessionID)
		}).
		Where("cart_items.id = ?", itemID).
		First(&it).Error
	if err != nil {
		return err
	}
	it.Qty = qty
	it.LineTotal = lineTotalOf(&it)
	return tx.Save(&it).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, o CartOwner, itemID uint) error {
	sub := tx.Model(&entity.Cart{}).Select("id")
	if o.UserID != 0 {
		sub = sub.Where("user_id = ?", o.UserID)
	} else {
		sub = sub.Where("session_id = ?", o.SessionID)
	}
	return tx.Where("id = ? AND cart_id IN (?)", itemID, sub).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, o CartOwner) error {
	var c entity.Cart
	if err := r.ownerScope(tx, o).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}

// PurgeStale drops carts untouched for longer than ttl, items included.
func (r *CartRepository) PurgeStale(ttl time.Duration) error {
	cutoff := time.Now().Add(-ttl)
	return r.DB.Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&entity.Cart{}).Select("id").Where("updated_at < ?", cutoff)
		if err := tx.Where("cart_id IN (?)", sub).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Where("updated_at < ?", cutoff).Delete(&entity.Cart{}).Error
	})
}
