package services

import (
	"testing"

	"github.com/werawoot/Krua-Thai1-sub002/entity"
	"github.com/werawoot/Krua-Thai1-sub002/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderFixture(t *testing.T) (*gorm.DB, *OrderService, *CartService) {
	t.Helper()
	db := newTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	userRepo := repository.NewUserRepository(db)
	orderSvc := NewOrderService(db, orderRepo, cartRepo, productRepo, userRepo, devMailer())
	cartSvc := NewCartService(db, cartRepo, productRepo)
	return db, orderSvc, cartSvc
}

func guestCheckoutReq(email string) *CheckoutReq {
	return &CheckoutReq{
		Email:     email,
		FirstName: "Anong",
		LastName:  "S.",
		Address:   "12 Soi Thonglor",
		City:      "Los Angeles",
		State:     "CA",
		Zip:       "90001",
	}
}

func TestCheckoutFromCart(t *testing.T) {
	db, orderSvc, cartSvc := newOrderFixture(t)
	p := seedProduct(t, db, "green-curry", 2499)

	owner := repository.CartOwner{SessionID: "sess-1"}
	require.NoError(t, cartSvc.Add(owner, &AddToCartIn{ProductID: p.ID, Qty: 2}))

	out, err := orderSvc.Checkout(owner, guestCheckoutReq("anong@example.com"))
	require.NoError(t, err)

	assert.Equal(t, int64(4998), out.Subtotal)
	assert.Equal(t, int64(799), out.Shipping)
	assert.Equal(t, int64(437), out.Tax)
	assert.Equal(t, int64(6234), out.Total)
	assert.NotEmpty(t, out.OrderNumber)

	// cart is cleared afterwards
	var remaining int64
	db.Model(&entity.CartItem{}).Count(&remaining)
	assert.Zero(t, remaining)

	// order items carry snapshots
	var items []entity.OrderItem
	require.NoError(t, db.Where("order_id = ?", out.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, "green-curry", items[0].ProductName)
	assert.Equal(t, int64(2499), items[0].UnitPrice)
}

func TestCheckoutEmptyCart(t *testing.T) {
	_, orderSvc, _ := newOrderFixture(t)

	_, err := orderSvc.Checkout(repository.CartOwner{SessionID: "nobody"}, guestCheckoutReq("x@example.com"))
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCheckoutDoubleSubmit(t *testing.T) {
	db, orderSvc, cartSvc := newOrderFixture(t)
	p := seedProduct(t, db, "pad-thai", 1999)

	owner := repository.CartOwner{SessionID: "sess-2"}
	require.NoError(t, cartSvc.Add(owner, &AddToCartIn{ProductID: p.ID, Qty: 1}))

	_, err := orderSvc.Checkout(owner, guestCheckoutReq("once@example.com"))
	require.NoError(t, err)

	// replaying the submit finds the cart already cleared
	_, err = orderSvc.Checkout(owner, guestCheckoutReq("once@example.com"))
	assert.ErrorIs(t, err, ErrCartEmpty)

	var orders int64
	db.Model(&entity.Order{}).Count(&orders)
	assert.Equal(t, int64(1), orders)
}

func TestGuestIdentityIdempotent(t *testing.T) {
	db, orderSvc, cartSvc := newOrderFixture(t)
	p := seedProduct(t, db, "som-tum", 1499)

	owner := repository.CartOwner{SessionID: "sess-3"}

	require.NoError(t, cartSvc.Add(owner, &AddToCartIn{ProductID: p.ID, Qty: 1}))
	first, err := orderSvc.Checkout(owner, guestCheckoutReq("repeat@example.com"))
	require.NoError(t, err)

	require.NoError(t, cartSvc.Add(owner, &AddToCartIn{ProductID: p.ID, Qty: 1}))
	second, err := orderSvc.Checkout(owner, guestCheckoutReq("repeat@example.com"))
	require.NoError(t, err)

	var users int64
	db.Model(&entity.User{}).Where("email = ?", "repeat@example.com").Count(&users)
	assert.Equal(t, int64(1), users)

	var o1, o2 entity.Order
	require.NoError(t, db.First(&o1, first.ID).Error)
	require.NoError(t, db.First(&o2, second.ID).Error)
	assert.Equal(t, o1.UserID, o2.UserID)

	var guest entity.User
	require.NoError(t, db.First(&guest, o1.UserID).Error)
	assert.True(t, guest.IsGuest)
	assert.False(t, guest.EmailVerified)
	assert.Equal(t, entity.RoleCustomer, guest.Role)
}

// A failing item insert must unwind the order row too. The second cart
// line is corrupted to trip the qty >= 1 check after the first insert
// succeeds.
func TestCheckoutAtomicRollback(t *testing.T) {
	db, orderSvc, cartSvc := newOrderFixture(t)
	good := seedProduct(t, db, "massaman", 2599)
	bad := seedProduct(t, db, "pad-see-ew", 1899)

	owner := repository.CartOwner{SessionID: "sess-4"}
	require.NoError(t, cartSvc.Add(owner, &AddToCartIn{ProductID: good.ID, Qty: 1}))
	require.NoError(t, cartSvc.Add(owner, &AddToCartIn{ProductID: bad.ID, Qty: 1}))

	// corrupt the second line under the service's feet
	require.NoError(t, db.Model(&entity.CartItem{}).
		Where("product_id = ?", bad.ID).
		Update("qty", 0).Error)

	_, err := orderSvc.Checkout(owner, guestCheckoutReq("atomic@example.com"))
	require.Error(t, err)

	var orders, items int64
	db.Model(&entity.Order{}).Count(&orders)
	db.Model(&entity.OrderItem{}).Count(&items)
	assert.Zero(t, orders, "order row must not survive a failed item insert")
	assert.Zero(t, items)

	// and the cart is untouched
	var cartItems int64
	db.Model(&entity.CartItem{}).Count(&cartItems)
	assert.Equal(t, int64(2), cartItems)
}

func TestCheckoutSingleProduct(t *testing.T) {
	db, orderSvc, _ := newOrderFixture(t)
	p := seedProduct(t, db, "mango-sticky-rice", 1299)

	req := guestCheckoutReq("sweet@example.com")
	req.Source = "product"
	req.ProductID = p.ID
	req.Qty = 25 // clamped to 10

	out, err := orderSvc.Checkout(repository.CartOwner{}, req)
	require.NoError(t, err)

	var items []entity.OrderItem
	require.NoError(t, db.Where("order_id = ?", out.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 10, items[0].Qty)
	assert.Equal(t, int64(12990), out.Subtotal)
}

func TestGuestStatusLookup(t *testing.T) {
	db, orderSvc, cartSvc := newOrderFixture(t)
	p := seedProduct(t, db, "tom-yum", 2199)

	owner := repository.CartOwner{SessionID: "sess-5"}
	require.NoError(t, cartSvc.Add(owner, &AddToCartIn{ProductID: p.ID, Qty: 1}))
	out, err := orderSvc.Checkout(owner, guestCheckoutReq("track@example.com"))
	require.NoError(t, err)

	view, err := orderSvc.StatusForGuest(out.OrderNumber, "track@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, view.Status)
	assert.Equal(t, 0, view.Progress)

	// wrong email and wrong number are indistinguishable
	_, errWrongEmail := orderSvc.StatusForGuest(out.OrderNumber, "other@example.com")
	_, errWrongNumber := orderSvc.StatusForGuest("KT-00000000-000000-FFFFFFFF", "track@example.com")
	assert.ErrorIs(t, errWrongEmail, ErrOrderNotFound)
	assert.ErrorIs(t, errWrongNumber, ErrOrderNotFound)
	assert.Equal(t, errWrongEmail.Error(), errWrongNumber.Error())

	// guest lookup never serves a non-guest's order
	require.NoError(t, db.Model(&entity.User{}).Where("email = ?", "track@example.com").
		Update("is_guest", false).Error)
	_, err = orderSvc.StatusForGuest(out.OrderNumber, "track@example.com")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0, ProgressPercent(entity.OrderPending))
	assert.Equal(t, 25, ProgressPercent(entity.OrderPaid))
	assert.Equal(t, 50, ProgressPercent(entity.OrderProcessing))
	assert.Equal(t, 75, ProgressPercent(entity.OrderShipped))
	assert.Equal(t, 100, ProgressPercent(entity.OrderDelivered))
	assert.Equal(t, 0, ProgressPercent(entity.OrderCancelled))
}
