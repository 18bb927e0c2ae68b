package service

import (
	"fmt"

	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
)

// validatePricing checks the fully-merged next state of a product: a promoted
// base price must stay strictly below the base price, and each variant's promo
// price strictly below that variant's own price.
func validatePricing(price float64, promoPrice *float64, variants []entity.Variant) error {
	if price <= 0 {
		return entity.NewValidationError("price", "must be a positive number")
	}
	if promoPrice != nil {
		if *promoPrice <= 0 {
			return entity.NewValidationError("promoPrice", "must be a positive number")
		}
		if *promoPrice >= price {
			return entity.NewValidationError("promoPrice", "must be less than price")
		}
	}
	for i, v := range variants {
		field := fmt.Sprintf("variants[%d]", i)
		if v.Name == "" {
			return entity.NewValidationError(field+".name", "is required")
		}
		if v.Price <= 0 {
			return entity.NewValidationError(field+".price", "must be a positive number")
		}
		if v.PromoPrice != nil {
			if *v.PromoPrice <= 0 {
				return entity.NewValidationError(field+".promoPrice", "must be a positive number")
			}
			if *v.PromoPrice >= v.Price {
				return entity.NewValidationError(field+".promoPrice", "must be less than the variant price")
			}
		}
	}
	return nil
}
