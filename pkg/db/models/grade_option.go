package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// GradeOption is one selectable assortment for a flexible graded variation.
type GradeOption struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VariationID uuid.UUID      `gorm:"column:variation_id;type:uuid;not null"`
	Label       string         `gorm:"column:label;not null"`
	Position    int            `gorm:"column:position;not null;default:0"`
	Sizes       pq.StringArray `gorm:"column:sizes;type:text[];not null"`
	Units       pq.Int64Array  `gorm:"column:units;type:bigint[];not null"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
}
