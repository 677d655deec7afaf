package controllers

import (
	"github.com/werawoot/Krua-Thai1-sub002/pkg/resp"
	"github.com/werawoot/Krua-Thai1-sub002/services"
	"github.com/werawoot/Krua-Thai1-sub002/utils"

	"github.com/gin-gonic/gin"
)

type ComplaintController struct{ Svc *services.ComplaintService }

func NewComplaintController(s *services.ComplaintService) *ComplaintController {
	return &ComplaintController{Svc: s}
}

// POST /complaints
func (h *ComplaintController) Create(c *gin.Context) {
	var req services.CreateComplaintIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /complaints/me
func (h *ComplaintController) Mine(c *gin.Context) {
	items, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
