package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductVariation is a sellable variant of a product. Grade columns are
// populated only for graded goods; a variation with GradeOptions rows and
// empty grade columns sells flexible assortments chosen at cart time.
type ProductVariation struct {
	ID                   uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID            uuid.UUID      `gorm:"column:product_id;type:uuid;not null"`
	SKU                  string         `gorm:"column:sku;not null"`
	Name                 string         `gorm:"column:name;not null"`
	PriceAdjustmentCents int            `gorm:"column:price_adjustment_cents;not null;default:0"`
	Stock                int            `gorm:"column:stock;not null;default:0"`
	GradeSizes           pq.StringArray `gorm:"column:grade_sizes;type:text[]"`
	GradeUnits           pq.Int64Array  `gorm:"column:grade_units;type:bigint[]"`
	GradeOptions         []GradeOption  `gorm:"foreignKey:VariationID;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
