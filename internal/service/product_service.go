package service

import (
	"context"

	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/assets"
	entity "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/domain"
	repo "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/repository/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductService struct {
	guard      *Guard
	products   repo.ProductRepository
	categories repo.CategoryRepository
	sizes      repo.AttributeRepository
	colors     repo.AttributeRepository
	assets     assets.Destroyer
}

func NewProductService(guard *Guard, products repo.ProductRepository, categories repo.CategoryRepository, sizes, colors repo.AttributeRepository, destroyer assets.Destroyer) *ProductService {
	return &ProductService{guard: guard, products: products, categories: categories, sizes: sizes, colors: colors, assets: destroyer}
}

func (s *ProductService) resolveCategory(ctx context.Context, storeID primitive.ObjectID, categoryID string) (primitive.ObjectID, error) {
	cid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return primitive.NilObjectID, entity.NewValidationError("categoryId", "must be a valid id")
	}
	category, err := s.categories.GetByID(ctx, storeID, cid)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if category == nil {
		return primitive.NilObjectID, entity.NewValidationError("categoryId", "category not found in this store")
	}
	return cid, nil
}

// resolveAttribute checks a size or color reference against the same store,
// mirroring resolveCategory.
func resolveAttribute(ctx context.Context, attributes repo.AttributeRepository, storeID primitive.ObjectID, field, id string) (primitive.ObjectID, error) {
	aid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, entity.NewValidationError(field, "must be a valid id")
	}
	attribute, err := attributes.GetByID(ctx, storeID, aid)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if attribute == nil {
		return primitive.NilObjectID, entity.NewValidationError(field, "not found in this store")
	}
	return aid, nil
}

// buildVariants turns variant inputs into embedded documents. Known ids are
// kept so edits keep their identity; anything else gets a fresh id.
func buildVariants(inputs []entity.VariantInput) []entity.Variant {
	variants := make([]entity.Variant, 0, len(inputs))
	for _, in := range inputs {
		id, err := primitive.ObjectIDFromHex(in.ID)
		if err != nil {
			id = primitive.NewObjectID()
		}
		variants = append(variants, entity.Variant{
			ID:         id,
			Name:       in.Name,
			Price:      in.Price,
			PromoPrice: in.PromoPrice,
		})
	}
	return variants
}

func (s *ProductService) Create(ctx context.Context, userID, storeID string, input entity.CreateProductInput) (*entity.Product, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	cid, err := s.resolveCategory(ctx, store.ID, input.CategoryID)
	if err != nil {
		return nil, err
	}
	sid, err := resolveAttribute(ctx, s.sizes, store.ID, "sizeId", input.SizeID)
	if err != nil {
		return nil, err
	}
	colID, err := resolveAttribute(ctx, s.colors, store.ID, "colorId", input.ColorID)
	if err != nil {
		return nil, err
	}

	variants := buildVariants(input.Variants)
	if err := validatePricing(input.Price, input.PromoPrice, variants); err != nil {
		return nil, err
	}

	product := &entity.Product{
		StoreID:    store.ID,
		CategoryID: cid,
		SizeID:     sid,
		ColorID:    colID,
		Name:       input.Name,
		Price:      input.Price,
		PromoPrice: input.PromoPrice,
		IsFeatured: input.IsFeatured,
		IsArchived: input.IsArchived,
		Images:     input.Images,
		SpecPdfURL: input.SpecPdfURL,
		Variants:   variants,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	product.Normalize()
	return product, nil
}

func (s *ProductService) List(ctx context.Context, storeID string, filter entity.ProductFilter) ([]entity.Product, error) {
	sid, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return nil, ErrInvalidID
	}
	listFilter := repo.ProductListFilter{Featured: filter.IsFeatured}
	if listFilter.CategoryID, err = parseIDFilter("categoryId", filter.CategoryID); err != nil {
		return nil, err
	}
	if listFilter.SizeID, err = parseIDFilter("sizeId", filter.SizeID); err != nil {
		return nil, err
	}
	if listFilter.ColorID, err = parseIDFilter("colorId", filter.ColorID); err != nil {
		return nil, err
	}
	return s.products.List(ctx, sid, listFilter)
}

// parseIDFilter turns an optional query filter into an id; empty means unset.
func parseIDFilter(field, value string) (primitive.ObjectID, error) {
	if value == "" {
		return primitive.NilObjectID, nil
	}
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, entity.NewValidationError(field, "must be a valid id")
	}
	return id, nil
}

func (s *ProductService) Get(ctx context.Context, storeID, productID string) (*entity.Product, error) {
	sid, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return nil, ErrInvalidID
	}
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ErrInvalidID
	}
	product, err := s.products.GetByID(ctx, sid, pid)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Update merges the patch over the stored product, validates the merged state,
// then applies a single $set/$unset write. Promo fields are tri-state: absent
// keys change nothing, explicit nulls remove the promotion.
func (s *ProductService) Update(ctx context.Context, userID, storeID, productID string, input entity.UpdateProductInput) (*entity.Product, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ErrInvalidID
	}

	current, err := s.products.GetByID(ctx, store.ID, pid)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	set := bson.M{}
	unset := bson.M{}

	nextPrice := current.Price
	if input.Price != nil {
		nextPrice = *input.Price
		set["price"] = *input.Price
	}

	nextPromo := current.PromoPrice
	if input.PromoPrice.Defined {
		nextPromo = input.PromoPrice.Value
		if input.PromoPrice.Value == nil {
			unset["promoPrice"] = ""
		} else {
			set["promoPrice"] = *input.PromoPrice.Value
		}
	}

	nextVariants := current.Variants
	if input.Variants != nil {
		nextVariants = buildVariants(input.Variants)
		set["variants"] = nextVariants
	}

	if err := validatePricing(nextPrice, nextPromo, nextVariants); err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, entity.NewValidationError("name", "must not be empty")
		}
		set["name"] = *input.Name
	}
	if input.CategoryID != nil {
		cid, err := s.resolveCategory(ctx, store.ID, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		set["categoryId"] = cid
	}
	if input.SizeID != nil {
		sid, err := resolveAttribute(ctx, s.sizes, store.ID, "sizeId", *input.SizeID)
		if err != nil {
			return nil, err
		}
		set["sizeId"] = sid
	}
	if input.ColorID != nil {
		colID, err := resolveAttribute(ctx, s.colors, store.ID, "colorId", *input.ColorID)
		if err != nil {
			return nil, err
		}
		set["colorId"] = colID
	}
	if input.Images != nil {
		if len(input.Images) == 0 {
			return nil, entity.NewValidationError("images", "must contain at least one url")
		}
		set["images"] = input.Images
	}
	if input.SpecPdfURL.Defined {
		if input.SpecPdfURL.Value == nil {
			unset["specPdfUrl"] = ""
		} else {
			set["specPdfUrl"] = *input.SpecPdfURL.Value
		}
	}
	if input.IsFeatured != nil {
		set["isFeatured"] = *input.IsFeatured
	}
	if input.IsArchived != nil {
		set["isArchived"] = *input.IsArchived
	}

	product, err := s.products.Update(ctx, store.ID, pid, set, unset)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, userID, storeID, productID string) (*entity.Product, error) {
	store, err := s.guard.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ErrInvalidID
	}

	product, err := s.products.Delete(ctx, store.ID, pid)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	for _, url := range product.Images {
		s.assets.Destroy(ctx, url)
	}
	return product, nil
}
