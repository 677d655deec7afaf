package controllers

import (
	"strconv"

	"github.com/werawoot/Krua-Thai1-sub002/pkg/resp"
	"github.com/werawoot/Krua-Thai1-sub002/services"
	"github.com/werawoot/Krua-Thai1-sub002/utils"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct{ Svc *services.SubscriptionService }

func NewSubscriptionController(s *services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{Svc: s}
}

// GET /plans
func (h *SubscriptionController) Plans(c *gin.Context) {
	plans, err := h.Svc.Plans()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": plans})
}

// POST /subscriptions
func (h *SubscriptionController) Subscribe(c *gin.Context) {
	var req struct {
		PlanID uint `json:"planId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sub, err := h.Svc.Subscribe(utils.CurrentUserID(c), req.PlanID)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, sub)
}

// GET /subscriptions/me
func (h *SubscriptionController) Mine(c *gin.Context) {
	subs, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": subs})
}

// PATCH /subscriptions/:id/cancel
func (h *SubscriptionController) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid subscription id")
		return
	}
	if err := h.Svc.Cancel(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
