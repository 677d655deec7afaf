package services

import (
	"errors"

	"github.com/werawoot/Krua-Thai1-sub002/entity"
	"github.com/werawoot/Krua-Thai1-sub002/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr}
}

type AddToCartIn struct {
	ProductID       uint `json:"productId" binding:"required"`
	Qty             int  `json:"qty" binding:"min=0,max=100"`
	ExtraProtein    bool `json:"extraProtein"`
	ExtraVegetables bool `json:"extraVegetables"`
}

type CartView struct {
	Cart     *entity.Cart `json:"cart"`
	Subtotal int64        `json:"subtotal"`
}

func (s *CartService) Get(o repository.CartOwner) (*CartView, error) {
	c, err := s.CartRepo.GetCartWithItems(o)
	if err != nil {
		return nil, err
	}
	var subtotal int64
	for _, it := range c.Items {
		subtotal += it.LineTotal
	}
	return &CartView{Cart: c, Subtotal: subtotal}, nil
}

func (s *CartService) Add(o repository.CartOwner, in *AddToCartIn) error {
	qty := ClampQty(in.Qty)

	c, err := s.CartRepo.GetOrCreateCart(o)
	if err != nil {
		return err
	}

	p, err := s.ProductRepo.GetBasics(in.ProductID)
	if err != nil {
		return err
	}
	if !p.IsActive {
		return errors.New("product not available")
	}

	line := PriceLine{
		UnitPrice:       p.Price,
		Qty:             qty,
		ExtraProtein:    in.ExtraProtein,
		ExtraVegetables: in.ExtraVegetables,
	}

	row := &entity.CartItem{
		ProductID:       p.ID,
		ProductName:     p.Name,
		Qty:             qty,
		UnitPrice:       p.Price,
		ExtraProtein:    in.ExtraProtein,
		ExtraVegetables: in.ExtraVegetables,
		UnitSurcharge:   line.UnitSurcharge(),
		LineTotal:       line.Total(),
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, row, MaxQtyPerLine)
	})
}

func (s *CartService) UpdateQty(o repository.CartOwner, itemID uint, qty int) error {
	if qty > MaxQtyPerLine {
		qty = MaxQtyPerLine
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, o, itemID, qty)
	})
}

func (s *CartService) RemoveItem(o repository.CartOwner, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, o, itemID)
	})
}

func (s *CartService) Clear(o repository.CartOwner) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, o)
	})
}
