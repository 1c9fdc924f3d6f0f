package pricing

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vendora/storefront-backend/api/middleware"
	"github.com/vendora/storefront-backend/internal/quotes"
	pkgerrors "github.com/vendora/storefront-backend/pkg/errors"
)

// ResolveRequest asks which price model applies to a product.
type ResolveRequest struct {
	ProductID   uuid.UUID  `json:"product_id" validate:"required"`
	VariationID *uuid.UUID `json:"variation_id,omitempty"`
}

// LineRequest prices a single cart line.
type LineRequest struct {
	ProductID   uuid.UUID  `json:"product_id" validate:"required"`
	VariationID *uuid.UUID `json:"variation_id,omitempty"`
	Quantity    int        `json:"quantity" validate:"required,min=1"`
	GradeOption *int       `json:"grade_option,omitempty"`
}

// CartRequest prices a whole cart.
type CartRequest struct {
	Lines []LineRequest `json:"lines" validate:"required,min=1,dive"`
}

func storeIDFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := middleware.StoreIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "store context missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "store id must be a valid uuid")
	}
	return id, nil
}

func toCartInput(storeID uuid.UUID, payload CartRequest) quotes.CartInput {
	lines := make([]quotes.CartLineInput, 0, len(payload.Lines))
	for _, line := range payload.Lines {
		lines = append(lines, quotes.CartLineInput{
			ProductID:   line.ProductID,
			VariationID: line.VariationID,
			Quantity:    line.Quantity,
			GradeOption: line.GradeOption,
		})
	}
	return quotes.CartInput{StoreID: storeID, Lines: lines}
}
