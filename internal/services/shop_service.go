// internal/services/shop_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/shop-admin/internal/models"
	"github.com/javajoker/shop-admin/internal/utils"
)

type ShopService struct {
	db      *gorm.DB
	uploads *StorageService
}

type CreateShopRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Logo        string `json:"logo" validate:"max=1024"`
}

// UpdateShopRequest is a partial update; nil fields are left untouched.
type UpdateShopRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description  *string `json:"description,omitempty"`
	Logo         *string `json:"logo,omitempty" validate:"omitempty,max=1024"`
	ProductCount *int    `json:"productCount,omitempty" validate:"omitempty,min=0"`
}

// NewShopService builds the service. A non-nil uploads removes a logo upload
// once an update replaces it.
func NewShopService(db *gorm.DB, uploads *StorageService) *ShopService {
	return &ShopService{db: db, uploads: uploads}
}

func (s *ShopService) ListShops(ctx context.Context) ([]models.Shop, error) {
	var shops []models.Shop
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&shops).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch shops: %w", err)
	}
	if shops == nil {
		shops = []models.Shop{}
	}
	return shops, nil
}

func (s *ShopService) CreateShop(ctx context.Context, req *CreateShopRequest) (*models.Shop, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	shop := &models.Shop{
		Name:         req.Name,
		Description:  req.Description,
		Logo:         req.Logo,
		ProductCount: 0,
	}

	if err := s.db.WithContext(ctx).Create(shop).Error; err != nil {
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}

	return shop, nil
}

func (s *ShopService) GetShop(ctx context.Context, id string) (*models.Shop, error) {
	// A malformed id can never match a stored shop.
	if !models.IsValidID(id) {
		return nil, ErrShopNotFound
	}

	var shop models.Shop
	if err := s.db.WithContext(ctx).First(&shop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &shop, nil
}

func (s *ShopService) UpdateShop(ctx context.Context, id string, req *UpdateShopRequest) (*models.Shop, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	shop, err := s.GetShop(ctx, id)
	if err != nil {
		return nil, err
	}

	// Prepare updates
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Logo != nil {
		updates["logo"] = *req.Logo
	}
	if req.ProductCount != nil {
		updates["product_count"] = *req.ProductCount
	}

	if len(updates) == 0 {
		return shop, nil
	}

	oldLogo := shop.Logo
	if err := s.db.WithContext(ctx).Model(shop).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update shop: %w", err)
	}
	releaseReplaced(s.uploads, oldLogo, req.Logo)

	return s.GetShop(ctx, id)
}

// DeleteShop leaves the shop's products in place; they become orphaned.
func (s *ShopService) DeleteShop(ctx context.Context, id string) error {
	shop, err := s.GetShop(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(shop).Error; err != nil {
		return fmt.Errorf("failed to delete shop: %w", err)
	}

	return nil
}
