// Package catalog loads stores, products, and variations and converts them
// into the value types the pricing engine consumes.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendora/storefront-backend/internal/pricing"
	"github.com/vendora/storefront-backend/pkg/db/models"
	pkgerrors "github.com/vendora/storefront-backend/pkg/errors"
)

// Repository exposes the read paths pricing needs. All loads are snapshots;
// nothing here holds locks or reserves stock.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// GetStore loads the tenant row.
func (r *Repository) GetStore(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("store %s not found", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading store")
	}
	return &store, nil
}

// Settings returns just the pricing flags for a store.
func (r *Repository) Settings(ctx context.Context, storeID uuid.UUID) (pricing.StoreSettings, error) {
	store, err := r.GetStore(ctx, storeID)
	if err != nil {
		return pricing.StoreSettings{}, err
	}
	return StoreSettings(store), nil
}

// GetProduct loads an active product with inventory, price tiers, and
// variations. Tiers come back ordered by ascending breakpoint so the engine
// receives a well-formed schedule.
func (r *Repository) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Inventory").
		Preload("PriceTiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("min_qty ASC")
		}).
		Preload("Variations.GradeOptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Variations").
		First(&product, "id = ? AND is_active = ?", id, true).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %s not found", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product")
	}
	return &product, nil
}

// LineInputs resolves everything a single cart line needs: store flags, the
// product snapshot, and the selected variation when one is referenced.
func (r *Repository) LineInputs(ctx context.Context, storeID, productID uuid.UUID, variationID *uuid.UUID) (*LineSnapshot, error) {
	store, err := r.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	product, err := r.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.StoreID != store.ID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %s not found", productID))
	}

	snapshot := &LineSnapshot{
		Settings: StoreSettings(store),
		Product:  ProductSnapshot(product),
	}

	if variationID != nil {
		found := false
		for i := range product.Variations {
			if product.Variations[i].ID == *variationID {
				v := VariationSnapshot(&product.Variations[i])
				snapshot.Variation = &v
				found = true
				break
			}
		}
		if !found {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound,
				fmt.Sprintf("variation %s not found on product %s", *variationID, productID))
		}
	}

	return snapshot, nil
}
