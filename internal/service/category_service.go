package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pos/internal/model"
	"pos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateCategoryRequest struct {
	Name    string `json:"name" binding:"required"`
	TaxRate string `json:"tax_rate" binding:"required"` // Decimal string, e.g. "0.05"
}

type UpdateCategoryRequest struct {
	Name    string `json:"name" binding:"required"`
	TaxRate string `json:"tax_rate" binding:"required"`
}

type CategoryResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	TaxRate string `json:"tax_rate"`
}

// --- Interface ---

type CategoryService interface {
	GetCategories(ctx context.Context) ([]CategoryResponse, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uint, req UpdateCategoryRequest) (CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// --- Implementation ---

func (s *categoryService) GetCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	res := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, toCategoryResponse(c))
	}

	return res, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error) {
	name, rate, err := parseCategoryFields(req.Name, req.TaxRate)
	if err != nil {
		return CategoryResponse{}, err
	}

	if err := s.checkNameTaken(ctx, name, nil); err != nil {
		return CategoryResponse{}, err
	}

	category := model.Category{
		Name:    name,
		TaxRate: rate,
	}

	if err := s.categoryRepo.Create(ctx, &category); err != nil {
		return CategoryResponse{}, fmt.Errorf("failed to create category: %w", err)
	}

	return toCategoryResponse(category), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, req UpdateCategoryRequest) (CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CategoryResponse{}, fmt.Errorf("category not found")
		}
		return CategoryResponse{}, fmt.Errorf("failed to fetch category: %w", err)
	}

	name, rate, err := parseCategoryFields(req.Name, req.TaxRate)
	if err != nil {
		return CategoryResponse{}, err
	}

	if err := s.checkNameTaken(ctx, name, &id); err != nil {
		return CategoryResponse{}, err
	}

	// Rate changes apply to future sales only; committed invoices keep the
	// tax that was captured at checkout.
	category.Name = name
	category.TaxRate = rate

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return CategoryResponse{}, fmt.Errorf("failed to update category: %w", err)
	}

	return toCategoryResponse(*category), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("category not found")
		}
		return fmt.Errorf("failed to fetch category: %w", err)
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

// --- Helpers ---

func parseCategoryFields(nameStr, rateStr string) (string, decimal.Decimal, error) {
	name := strings.TrimSpace(nameStr)
	if name == "" {
		return "", decimal.Zero, fmt.Errorf("category name must not be empty")
	}

	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("invalid tax_rate value: %w", err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return "", decimal.Zero, fmt.Errorf("tax_rate must be between 0 and 1")
	}

	return name, rate, nil
}

func (s *categoryService) checkNameTaken(ctx context.Context, name string, excludeID *uint) error {
	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if excludeID == nil || existing.ID != *excludeID {
		return fmt.Errorf("a category named '%s' already exists", name)
	}
	return nil
}

func toCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{
		ID:      c.ID,
		Name:    c.Name,
		TaxRate: c.TaxRate.StringFixed(4),
	}
}
