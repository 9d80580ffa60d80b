// internal/models/product.go
package models

type Product struct {
	BaseModel
	ShopID      string  `json:"shopId" gorm:"type:varchar(36);not null;index"`
	Name        string  `json:"name" gorm:"size:255;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	StockLevel  int     `json:"stockLevel" gorm:"not null;default:0"`
	Image       string  `json:"image" gorm:"size:1024"`
}

// InventoryValue is the inventory value of the product, price times stock level.
func (p Product) InventoryValue() float64 {
	return p.Price * float64(p.StockLevel)
}
