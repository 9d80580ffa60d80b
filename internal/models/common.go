// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllShops is the selectedShop sentinel meaning "no shop filter".
const AllShops = "all"

// Base model with common fields
type BaseModel struct {
	ID        string         `json:"id" gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate assigns the record identity. Client supplied ids are ignored.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	b.ID = uuid.NewString()
	return nil
}

// IsValidID reports whether id is a well-formed record identifier.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
