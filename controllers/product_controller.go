package controllers

import (
	"errors"
	"strconv"

	"github.com/werawoot/Krua-Thai1-sub002/pkg/resp"
	"github.com/werawoot/Krua-Thai1-sub002/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct{ Repo *repository.ProductRepository }

func NewProductController(r *repository.ProductRepository) *ProductController {
	return &ProductController{Repo: r}
}

// GET /products?category=slug
func (h *ProductController) List(c *gin.Context) {
	items, err := h.Repo.ListActive(c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /products/:id — numeric id or slug
func (h *ProductController) Detail(c *gin.Context) {
	key := c.Param("id")
	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		p, err := h.Repo.FindByID(uint(id))
		if err != nil {
			resp.NotFound(c, "product not found")
			return
		}
		resp.OK(c, p)
		return
	}

	p, err := h.Repo.FindBySlug(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /categories
func (h *ProductController) Categories(c *gin.Context) {
	items, err := h.Repo.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
