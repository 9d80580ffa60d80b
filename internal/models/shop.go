// internal/models/shop.go
package models

type Shop struct {
	BaseModel
	Name         string `json:"name" gorm:"size:255;not null"`
	Description  string `json:"description" gorm:"type:text"`
	Logo         string `json:"logo" gorm:"size:1024"`
	ProductCount int    `json:"productCount" gorm:"not null;default:0"`
}
