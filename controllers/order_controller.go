package controllers

import (
	"errors"
	"strconv"

	"github.com/werawoot/Krua-Thai1-sub002/pkg/resp"
	"github.com/werawoot/Krua-Thai1-sub002/services"
	"github.com/werawoot/Krua-Thai1-sub002/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /checkout — guest or logged-in
func (h *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Checkout(cartOwner(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			resp.BadRequest(c, "cart is empty")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders
func (h *OrderController) ListMine(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.Svc.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	view, err := h.Svc.StatusForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// GET /order-status?orderNumber=&email=
// The miss response is identical whichever field was wrong.
func (h *OrderController) GuestStatus(c *gin.Context) {
	number := c.Query("orderNumber")
	email := c.Query("email")
	if number == "" || email == "" {
		resp.BadRequest(c, "orderNumber and email are required")
		return
	}

	view, err := h.Svc.StatusForGuest(number, email)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}
