package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/werawoot/Krua-Thai1-sub002/entity"
	"github.com/werawoot/Krua-Thai1-sub002/pkg/mailer"
	"github.com/werawoot/Krua-Thai1-sub002/repository"
	"github.com/werawoot/Krua-Thai1-sub002/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrCartEmpty     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
	UserRepo    *repository.UserRepository
	Mailer      *mailer.Mailer
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	productRepo *repository.ProductRepository,
	userRepo *repository.UserRepository,
	m *mailer.Mailer,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, ProductRepo: productRepo, UserRepo: userRepo, Mailer: m}
}

// ----- DTOs -----

type CheckoutReq struct {
	// "cart" (default) or "product"
	Source    string `json:"source" binding:"omitempty,oneof=cart product"`
	ProductID uint   `json:"productId"`
	Qty       int    `json:"qty"`

	ExtraProtein    bool `json:"extraProtein"`
	ExtraVegetables bool `json:"extraVegetables"`

	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Zip       string `json:"zip" binding:"required"`
}

type CheckoutRes struct {
	ID          uint   `json:"id"`
	OrderNumber string `json:"orderNumber"`
	Subtotal    int64  `json:"subtotal"`
	Shipping    int64  `json:"shipping"`
	Tax         int64  `json:"tax"`
	Total       int64  `json:"total"`
}

// ----- Guest identity -----

// resolveCustomer finds the account for an email or creates a guest row.
// Idempotent per email: the same address always lands on the same user.
func (s *OrderService) resolveCustomer(req *CheckoutReq) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// never communicated, never usable for login
	raw, err := utils.RandomToken(24)
	if err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	guest := &entity.User{
		Email:           email,
		Password:        string(hashed),
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		PhoneNumber:     strings.TrimSpace(req.Phone),
		Role:            entity.RoleCustomer,
		Status:          entity.UserActive,
		IsGuest:         true,
		EmailVerified:   false,
		DeliveryAddress: req.Address,
		City:            req.City,
		State:           req.State,
		Zip:             req.Zip,
	}
	if err := s.UserRepo.Create(guest); err != nil {
		// concurrent checkout with the same new email: fall back to the row that won
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.UserRepo.FindByEmail(email)
		}
		return nil, err
	}
	return guest, nil
}

// ----- Order number -----

// Human-readable, e.g. KT-20260830-142501-7F3A9C21. The unique index is
// the real guarantee; generation retries on the (rare) collision.
func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("KT-%s-%s", time.Now().Format("20060102-150405"), suffix)
}

// ----- Checkout -----

func (s *OrderService) Checkout(owner repository.CartOwner, req *CheckoutReq) (*CheckoutRes, error) {
	customer, err := s.resolveCustomer(req)
	if err != nil {
		return nil, err
	}

	var out CheckoutRes

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var items []entity.OrderItem
		fromCart := req.Source != "product"

		if fromCart {
			// re-read inside the tx: a double submit sees the cleared
			// cart and fails here instead of placing a second order
			cart, err := s.CartRepo.GetCartWithItems(owner)
			if err != nil {
				return err
			}
			if len(cart.Items) == 0 {
				return ErrCartEmpty
			}
			for _, it := range cart.Items {
				items = append(items, entity.OrderItem{
					ProductID:       it.ProductID,
					ProductName:     it.ProductName,
					Qty:             it.Qty,
					UnitPrice:       it.UnitPrice,
					ExtraProtein:    it.ExtraProtein,
					ExtraVegetables: it.ExtraVegetables,
					Total:           it.LineTotal,
				})
			}
		} else {
			p, err := s.ProductRepo.GetBasics(req.ProductID)
			if err != nil {
				return errors.New("product not found")
			}
			if !p.IsActive {
				return errors.New("product not available")
			}
			qty := ClampQty(req.Qty)
			line := PriceLine{
				UnitPrice:       p.Price,
				Qty:             qty,
				ExtraProtein:    req.ExtraProtein,
				ExtraVegetables: req.ExtraVegetables,
			}
			items = append(items, entity.OrderItem{
				ProductID:       p.ID,
				ProductName:     p.Name,
				Qty:             qty,
				UnitPrice:       p.Price,
				ExtraProtein:    req.ExtraProtein,
				ExtraVegetables: req.ExtraVegetables,
				Total:           line.Total(),
			})
		}

		lines := make([]PriceLine, 0, len(items))
		for _, it := range items {
			lines = append(lines, PriceLine{
				UnitPrice:       it.UnitPrice,
				Qty:             it.Qty,
				ExtraProtein:    it.ExtraProtein,
				ExtraVegetables: it.ExtraVegetables,
			})
		}
		totals := ComputeTotals(lines, req.State)

		order := entity.Order{
			UserID:        customer.ID,
			CustomerEmail: customer.Email,
			ShippingName:  strings.TrimSpace(req.FirstName + " " + req.LastName),
			ShippingPhone: req.Phone,
			Address:       req.Address,
			City:          req.City,
			State:         req.State,
			Zip:           req.Zip,
			Subtotal:      totals.Subtotal,
			ShippingCost:  totals.Shipping,
			TaxAmount:     totals.Tax,
			Total:         totals.Total,
			Status:        entity.OrderPending,
			PaymentStatus: entity.PaymentPending,
		}

		// retry only on an order-number collision
		for attempt := 0; ; attempt++ {
			order.OrderNumber = newOrderNumber()
			err := s.Repo.CreateOrder(tx, &order)
			if err == nil {
				break
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < 3 {
				continue
			}
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &items[i]); err != nil {
				return err
			}
		}

		if fromCart {
			if err := s.CartRepo.ClearCart(tx, owner); err != nil {
				return err
			}
		}

		out = CheckoutRes{
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			Subtotal:    order.Subtotal,
			Shipping:    order.ShippingCost,
			Tax:         order.TaxAmount,
			Total:       order.Total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// after commit; a mail failure never unwinds the order
	_ = s.Mailer.Send(customer.Email,
		"Your Krua Thai order "+out.OrderNumber,
		fmt.Sprintf("Thanks for your order!\n\nOrder number: %s\nTotal: $%d.%02d\n\nTrack it any time with this number and your email.",
			out.OrderNumber, out.Total/100, out.Total%100))

	return &out, nil
}

// ----- Status / progress -----

// progress percentages for the tracking bar
func ProgressPercent(status string) int {
	switch status {
	case entity.OrderPending:
		return 0
	case entity.OrderPaid:
		return 25
	case entity.OrderProcessing:
		return 50
	case entity.OrderShipped:
		return 75
	case entity.OrderDelivered:
		return 100
	default: // cancelled is terminal, no progress
		return 0
	}
}

type OrderStatusView struct {
	ID             uint               `json:"id"`
	OrderNumber    string             `json:"orderNumber"`
	Status         string             `json:"status"`
	PaymentStatus  string             `json:"paymentStatus"`
	Progress       int                `json:"progress"`
	TrackingNumber string             `json:"trackingNumber,omitempty"`
	Subtotal       int64              `json:"subtotal"`
	ShippingCost   int64              `json:"shippingCost"`
	TaxAmount      int64              `json:"taxAmount"`
	Total          int64              `json:"total"`
	CreatedAt      time.Time          `json:"createdAt"`
	Items          []entity.OrderItem `json:"items"`
}

func (s *OrderService) statusView(o *entity.Order) (*OrderStatusView, error) {
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderStatusView{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		Status:         o.Status,
		PaymentStatus:  o.PaymentStatus,
		Progress:       ProgressPercent(o.Status),
		TrackingNumber: o.TrackingNumber,
		Subtotal:       o.Subtotal,
		ShippingCost:   o.ShippingCost,
		TaxAmount:      o.TaxAmount,
		Total:          o.Total,
		CreatedAt:      o.CreatedAt,
		Items:          items,
	}, nil
}

func (s *OrderService) StatusForUser(userID, orderID uint) (*OrderStatusView, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.statusView(o)
}

// Guest lookup never says which of the two fields was wrong.
func (s *OrderService) StatusForGuest(orderNumber, email string) (*OrderStatusView, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	o, err := s.Repo.GetOrderForGuest(orderNumber, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.statusView(o)
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}
