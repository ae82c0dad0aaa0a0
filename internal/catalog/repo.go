package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopease/shopease/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

// Filter narrows and orders a product listing. Zero values mean "no
// constraint"; Sort is one of "price-low-high", "price-high-low", "rating"
// or empty for insertion order.
type Filter struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Page     int
	Size     int
}

func (f Filter) apply(q *gorm.DB) *gorm.DB {
	if f.Query != "" {
		like := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where(
			"lower(name) LIKE ? OR lower(description) LIKE ? OR lower(category) LIKE ?",
			like, like, like,
		)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	switch f.Sort {
	case "price-low-high":
		q = q.Order("price ASC")
	case "price-high-low":
		q = q.Order("price DESC")
	case "rating":
		q = q.Order("rating DESC")
	default:
		q = q.Order("created_at ASC")
	}
	return q
}

func (r *GormRepo) List(ctx context.Context, f Filter, offset, limit int) (int64, []models.Product, error) {
	var total int64
	if err := f.apply(r.DB.WithContext(ctx).Model(&models.Product{})).
		Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.Product, 0, limit)
	if err := f.apply(r.DB.WithContext(ctx).Model(&models.Product{})).
		Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Deals returns every discounted product, steepest discount first.
func (r *GormRepo) Deals(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).
		Where("discount > 0").
		Order("discount DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	if err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *GormRepo) Create(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

func (r *GormRepo) Update(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Save(prod).Error
}

func (r *GormRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error
	return total, err
}

// IsNotFound unifies the repo's miss signal for callers.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
