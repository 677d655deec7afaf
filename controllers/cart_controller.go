package controllers

import (
	"errors"

	"github.com/werawoot/Krua-Thai1-sub002/pkg/resp"
	"github.com/werawoot/Krua-Thai1-sub002/repository"
	"github.com/werawoot/Krua-Thai1-sub002/services"
	"github.com/werawoot/Krua-Thai1-sub002/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// Logged-in users own their cart by user id; guests by the
// X-Cart-Session uuid. A guest without one gets a fresh id echoed
// back in the response header.
func cartOwner(c *gin.Context) repository.CartOwner {
	if uid := utils.CurrentUserID(c); uid != 0 {
		return repository.CartOwner{UserID: uid}
	}
	sid := c.GetHeader("X-Cart-Session")
	if sid == "" {
		sid = uuid.NewString()
	}
	c.Header("X-Cart-Session", sid)
	return repository.CartOwner{SessionID: sid}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	view, err := h.Svc.Get(cartOwner(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(cartOwner(c), &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
		Qty    int  `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(cartOwner(c), body.ItemID, body.Qty); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.RemoveItem(cartOwner(c), body.ItemID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(cartOwner(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
