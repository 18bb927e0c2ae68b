package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Variant is an embedded sub-record of a Product with its own pricing. Its
// promo price discounts the variant's price, never the product's base price.
type Variant struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Price      float64            `json:"price" bson:"price"`
	PromoPrice *float64           `json:"promoPrice" bson:"promoPrice,omitempty"`
}

type Product struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StoreID    primitive.ObjectID `json:"storeId" bson:"storeId"`
	CategoryID primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	SizeID     primitive.ObjectID `json:"sizeId" bson:"sizeId"`
	ColorID    primitive.ObjectID `json:"colorId" bson:"colorId"`
	Name       string             `json:"name" bson:"name"`
	Price      float64            `json:"price" bson:"price"`
	PromoPrice *float64           `json:"promoPrice" bson:"promoPrice,omitempty"`
	IsFeatured bool               `json:"isFeatured" bson:"isFeatured"`
	IsArchived bool               `json:"isArchived" bson:"isArchived"`
	Images     []string           `json:"images" bson:"images"`
	SpecPdfURL *string            `json:"specPdfUrl" bson:"specPdfUrl,omitempty"`
	Variants   []Variant          `json:"variants" bson:"variants"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// EffectivePrice is the price an order captures: the promo price when a
// promotion is active, the base price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.PromoPrice != nil {
		return *p.PromoPrice
	}
	return p.Price
}

// Normalize prepares a product for serialization: slices are never null and
// every variant carries an id. Promo fields stay pointers so an absent
// promotion is emitted as an explicit JSON null.
func (p *Product) Normalize() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Variants == nil {
		p.Variants = []Variant{}
	}
	for i := range p.Variants {
		if p.Variants[i].ID.IsZero() {
			p.Variants[i].ID = primitive.NewObjectID()
		}
	}
}

type VariantInput struct {
	ID         string   `json:"id"`
	Name       string   `json:"name" binding:"required"`
	Price      float64  `json:"price" binding:"required"`
	PromoPrice *float64 `json:"promoPrice"`
}

type CreateProductInput struct {
	Name       string         `json:"name" binding:"required"`
	Price      float64        `json:"price" binding:"required"`
	CategoryID string         `json:"categoryId" binding:"required"`
	SizeID     string         `json:"sizeId" binding:"required"`
	ColorID    string         `json:"colorId" binding:"required"`
	PromoPrice *float64       `json:"promoPrice"`
	Images     []string       `json:"images" binding:"required,min=1"`
	SpecPdfURL *string        `json:"specPdfUrl"`
	Variants   []VariantInput `json:"variants"`
	IsFeatured bool           `json:"isFeatured"`
	IsArchived bool           `json:"isArchived"`
}

// UpdateProductInput is a partial patch. Promo fields are tri-state: an absent
// key leaves the promotion untouched, an explicit null removes it, a number
// replaces it. List fields are replaced wholesale when present.
type UpdateProductInput struct {
	Name       *string           `json:"name"`
	Price      *float64          `json:"price"`
	CategoryID *string           `json:"categoryId"`
	SizeID     *string           `json:"sizeId"`
	ColorID    *string           `json:"colorId"`
	PromoPrice Optional[float64] `json:"promoPrice"`
	Images     []string          `json:"images"`
	SpecPdfURL Optional[string]  `json:"specPdfUrl"`
	Variants   []VariantInput    `json:"variants"`
	IsFeatured *bool             `json:"isFeatured"`
	IsArchived *bool             `json:"isArchived"`
}

// ProductFilter narrows a store-scoped product listing.
type ProductFilter struct {
	CategoryID string `form:"categoryId"`
	SizeID     string `form:"sizeId"`
	ColorID    string `form:"colorId"`
	IsFeatured *bool  `form:"isFeatured"`
}
