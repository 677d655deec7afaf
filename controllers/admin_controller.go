package controllers

import (
	"strconv"
	"time"

	"github.com/werawoot/Krua-Thai1-sub002/entity"
	"github.com/werawoot/Krua-Thai1-sub002/pkg/resp"
	"github.com/werawoot/Krua-Thai1-sub002/repository"
	"github.com/werawoot/Krua-Thai1-sub002/services"
	"github.com/werawoot/Krua-Thai1-sub002/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB           *gorm.DB
	Svc          *services.AdminService
	ComplaintSvc *services.ComplaintService
}

func NewAdminController(db *gorm.DB, svc *services.AdminService, cs *services.ComplaintService) *AdminController {
	return &AdminController{DB: db, Svc: svc, ComplaintSvc: cs}
}

// GET /admin/dashboard — headline numbers
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalUsers int64
	var ordersToday int64
	var openComplaints int64
	var activeSubscriptions int64

	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	start := time.Now().Truncate(24 * time.Hour)
	if err := db.Model(&entity.Order{}).Where("created_at >= ?", start).Count(&ordersToday).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	if err := db.Model(&entity.Complaint{}).Where("status = ?", entity.ComplaintOpen).Count(&openComplaints).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	if err := db.Model(&entity.Subscription{}).Where("status = ?", entity.SubscriptionActive).Count(&activeSubscriptions).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"totalUsers":          totalUsers,
		"ordersToday":         ordersToday,
		"openComplaints":      openComplaints,
		"activeSubscriptions": activeSubscriptions,
	})
}

// GET /admin/users?search=&role=&status=&page=
func (ac *AdminController) Users(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	f := repository.UserFilter{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Page:   page,
	}

	items, total, err := ac.Svc.ListUsers(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"items":   items,
		"page":    page,
		"perPage": repository.UsersPerPage,
		"total":   total,
	})
}

type AdminUserActionReq struct {
	Action string `json:"action" binding:"required,oneof=update_status update_role delete_user reset_password"`
	UserID uint   `json:"userId" binding:"required"`
	// new status or role, where the action takes one
	Value string `json:"value"`
}

// POST /admin/users — action dispatch
// Self-targets and invalid values are silent no-ops.
func (ac *AdminController) UserAction(c *gin.Context) {
	var req AdminUserActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.Svc.Dispatch(utils.CurrentUserID(c), req.Action, req.UserID, req.Value); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// GET /admin/complaints?status=&page=
func (ac *AdminController) Complaints(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := ac.ComplaintSvc.List(c.Query("status"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "page": page, "limit": limit, "total": total})
}

// PATCH /admin/complaints/:id/status
func (ac *AdminController) UpdateComplaintStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid complaint id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.ComplaintSvc.UpdateStatus(utils.CurrentUserID(c), uint(id), req.Status); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
