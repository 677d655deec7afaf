package repository

import (
	"github.com/werawoot/Krua-Thai1-sub002/entity"

	"gorm.io/gorm"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{DB: db} }

// GET /products — active products, optional category slug filter
func (r *ProductRepository) ListActive(categorySlug string) ([]entity.Product, error) {
	q := r.DB.Model(&entity.Product{}).Where("products.is_active = ?", true)
	if categorySlug != "" {
		q = q.Joins("JOIN menu_categories mc ON mc.id = products.menu_category_id").
			Where("mc.slug = ?", categorySlug)
	}
	var out []entity.Product
	err := q.Order("products.name ASC").Find(&out).Error
	return out, err
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindBySlug(slug string) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// id, name, price, is_active is all the cart needs
func (r *ProductRepository) GetBasics(id uint) (entity.Product, error) {
	var p entity.Product
	err := r.DB.Select("id, name, price, is_active, stock_quantity").First(&p, id).Error
	return p, err
}

func (r *ProductRepository) ListCategories() ([]entity.MenuCategory, error) {
	var out []entity.MenuCategory
	err := r.DB.Order("sort_order ASC").Find(&out).Error
	return out, err
}
