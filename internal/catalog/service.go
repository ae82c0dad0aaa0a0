package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shopease/shopease/internal/models"
	"github.com/shopease/shopease/internal/util"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

// Service is the storefront's read side of the catalog plus the admin
// write side. The cart never mutates through here; it only reads.
type Service struct {
	Repo *GormRepo
}

type Page struct {
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
	Items []models.Product `json:"items"`
}

func (s *Service) List(ctx context.Context, f Filter) (*Page, error) {
	offset, limit := util.Calculate(f.Page, f.Size)
	total, items, err := s.Repo.List(ctx, f, offset, limit)
	if err != nil {
		return nil, err
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	return &Page{Total: total, Page: page, Size: limit, Items: items}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	prod, err := s.Repo.Get(ctx, id)
	if IsNotFound(err) {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return prod, err
}

func (s *Service) Deals(ctx context.Context) ([]models.Product, error) {
	return s.Repo.Deals(ctx)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.Repo.Categories(ctx)
}

func validate(p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if p.Discount < 0 || p.Discount > 100 {
		return fmt.Errorf("%w: discount must be between 0 and 100", ErrValidation)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, prod *models.Product) error {
	if err := validate(prod); err != nil {
		return err
	}
	return s.Repo.Create(ctx, prod)
}

// UpdateProduct carries the admin form's partial edit; nil fields are left
// untouched.
type UpdateProduct struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Price       *float64           `json:"price"`
	Image       *string            `json:"image"`
	Category    *string            `json:"category"`
	Rating      *float64           `json:"rating"`
	Reviews     *int               `json:"reviews"`
	Discount    *float64           `json:"discount"`
	Stock       *int               `json:"stock"`
	Colors      *models.StringList `json:"colors"`
	Sizes       *models.StringList `json:"sizes"`
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateProduct) (*models.Product, error) {
	prod, err := s.Repo.Get(ctx, id)
	if IsNotFound(err) {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		prod.Name = *req.Name
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}
	if req.Price != nil {
		prod.Price = *req.Price
	}
	if req.Image != nil {
		prod.Image = *req.Image
	}
	if req.Category != nil {
		prod.Category = *req.Category
	}
	if req.Rating != nil {
		prod.Rating = *req.Rating
	}
	if req.Reviews != nil {
		prod.Reviews = *req.Reviews
	}
	if req.Discount != nil {
		prod.Discount = *req.Discount
	}
	if req.Stock != nil {
		prod.Stock = *req.Stock
	}
	if req.Colors != nil {
		prod.Colors = *req.Colors
	}
	if req.Sizes != nil {
		prod.Sizes = *req.Sizes
	}

	if err := validate(prod); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.Delete(ctx, id)
	if IsNotFound(err) {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return err
}
