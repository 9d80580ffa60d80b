// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/shop-admin/internal/models"
	"github.com/javajoker/shop-admin/internal/utils"
)

type ProductService struct {
	db      *gorm.DB
	shops   *ShopService
	uploads *StorageService
}

type CreateProductRequest struct {
	ShopID      string   `json:"shopId" validate:"required"`
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,min=0"`
	StockLevel  *int     `json:"stockLevel" validate:"required,min=0"`
	Image       string   `json:"image" validate:"max=1024"`
}

// UpdateProductRequest is a partial update; nil fields are left untouched.
type UpdateProductRequest struct {
	ShopID      *string  `json:"shopId,omitempty" validate:"omitempty,min=1"`
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	StockLevel  *int     `json:"stockLevel,omitempty" validate:"omitempty,min=0"`
	Image       *string  `json:"image,omitempty" validate:"omitempty,max=1024"`
}

func NewProductService(db *gorm.DB, shops *ShopService, uploads *StorageService) *ProductService {
	return &ProductService{
		db:      db,
		shops:   shops,
		uploads: uploads,
	}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.ensureShop(ctx, req.ShopID); err != nil {
		return nil, err
	}

	product := &models.Product{
		ShopID:      req.ShopID,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		StockLevel:  *req.StockLevel,
		Image:       req.Image,
	}

	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if !models.IsValidID(id) {
		return nil, ErrInvalidID
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest) (*models.Product, error) {
	if !models.IsValidID(id) {
		return nil, ErrInvalidID
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	// Prepare updates
	updates := make(map[string]interface{})
	if req.ShopID != nil && *req.ShopID != product.ShopID {
		if err := s.ensureShop(ctx, *req.ShopID); err != nil {
			return nil, err
		}
		updates["shop_id"] = *req.ShopID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.StockLevel != nil {
		updates["stock_level"] = *req.StockLevel
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}

	if len(updates) == 0 {
		return product, nil
	}

	oldImage := product.Image
	if err := s.db.WithContext(ctx).Model(product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	releaseReplaced(s.uploads, oldImage, req.Image)

	return s.GetProduct(ctx, id)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (s *ProductService) ensureShop(ctx context.Context, shopID string) error {
	if _, err := s.shops.GetShop(ctx, shopID); err != nil {
		if errors.Is(err, ErrShopNotFound) {
			return fmt.Errorf("%w: shop %s does not exist", ErrValidation, shopID)
		}
		return err
	}
	return nil
}
