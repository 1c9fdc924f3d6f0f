package models

import (
	"time"

	"github.com/google/uuid"
)

// Store represents the canonical tenant model.
type Store struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name             string    `gorm:"column:name;not null"`
	Slug             string    `gorm:"column:slug;not null;uniqueIndex"`
	RetailEnabled    bool      `gorm:"column:retail_enabled;not null;default:true"`
	WholesaleEnabled bool      `gorm:"column:wholesale_enabled;not null;default:false"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
