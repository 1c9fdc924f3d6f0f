package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a storefront listing. Prices are stored as integer
// cents; conversion to decimal money happens at the repository boundary.
type Product struct {
	ID                  uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID             uuid.UUID          `gorm:"column:store_id;type:uuid;not null"`
	SKU                 string             `gorm:"column:sku;not null"`
	Name                string             `gorm:"column:name;not null"`
	Description         *string            `gorm:"column:description"`
	RetailPriceCents    int                `gorm:"column:retail_price_cents;not null"`
	WholesalePriceCents *int               `gorm:"column:wholesale_price_cents"`
	MinWholesaleQty     int                `gorm:"column:min_wholesale_qty;not null;default:1"`
	AllowNegativeStock  bool               `gorm:"column:allow_negative_stock;not null;default:false"`
	IsActive            bool               `gorm:"column:is_active;not null;default:true"`
	Inventory           *InventoryItem     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	PriceTiers          []ProductPriceTier `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variations          []ProductVariation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
