package services

import (
	"context"
	"net/http"

	apperrors "furnishop/errors"
	"furnishop/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type IProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id uuid.UUID, product *models.Product) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// ModelVariantRequest is one staged variant. All four fields are required;
// a variant with any of them missing is rejected as a whole.
type ModelVariantRequest struct {
	ID          string  `json:"id"`
	VariantName string  `json:"variantName" validate:"required"`
	ModelURL    string  `json:"modelUrl" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
}

// ProductRequest is the create/update payload. The submitted Models list
// replaces the stored variant set wholesale on update.
type ProductRequest struct {
	Name        string                `json:"name" validate:"required"`
	Description string                `json:"description" validate:"required"`
	Price       float64               `json:"price" validate:"required,gt=0"`
	Category    string                `json:"category" validate:"required,oneof=Sofas Beds Chairs Tables Cabinets Wardrobes Doors"`
	Stock       int                   `json:"stock" validate:"gte=0"`
	Image       string                `json:"image" validate:"omitempty,url"`
	Models      []ModelVariantRequest `json:"models" validate:"omitempty,dive"`
}

// ProductList pairs the filtered products with the category facet derived
// from the full set.
type ProductList struct {
	Products   []models.Product `json:"products"`
	Categories []string         `json:"categories"`
}

type ProductService struct {
	repo     IProductRepository
	validate *validator.Validate
}

func NewProductService(repo IProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validator.New(),
	}
}

// List returns the catalog with the shop filter applied. The category facet
// is always derived from the unfiltered set so narrowing a selection never
// shrinks the selector.
func (s *ProductService) List(ctx context.Context, category, search string) (*ProductList, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to fetch products", err)
	}
	return &ProductList{
		Products:   FilterProducts(products, category, search),
		Categories: CategoryFacet(products),
	}, nil
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.New(http.StatusNotFound, "Product not found", err)
		}
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to fetch product", err)
	}
	return product, nil
}

// Viewer returns the 3D viewer configuration for the product, selecting the
// variant at index selected.
func (s *ProductService) Viewer(ctx context.Context, id uuid.UUID, selected int) (*models.ViewerConfig, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cfg := product.Viewer(selected)
	return &cfg, nil
}

func (s *ProductService) Create(ctx context.Context, req *ProductRequest) (*models.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.New(http.StatusBadRequest, "Invalid product data", err)
	}

	product := &models.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Image:       req.Image,
		Models:      buildVariants(req.Models),
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to create product", err)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req *ProductRequest) (*models.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.New(http.StatusBadRequest, "Invalid product data", err)
	}

	product := &models.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Image:       req.Image,
		Models:      buildVariants(req.Models),
	}
	matched, err := s.repo.Update(ctx, id, product)
	if err != nil {
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to update product", err)
	}
	if matched == 0 {
		return nil, apperrors.New(http.StatusNotFound, "Product not found", nil)
	}
	return s.Get(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	matched, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.New(http.StatusInternalServerError, "Failed to delete product", err)
	}
	if matched == 0 {
		return apperrors.New(http.StatusNotFound, "Product not found", nil)
	}
	return nil
}

// buildVariants converts staged variants into stored ones, assigning an
// identifier to any variant that lacks one so later edits can address
// variants by identity rather than position.
func buildVariants(reqs []ModelVariantRequest) []models.ModelVariant {
	if len(reqs) == 0 {
		return nil
	}
	variants := make([]models.ModelVariant, 0, len(reqs))
	for _, v := range reqs {
		id := v.ID
		if id == "" {
			id = uuid.NewString()
		}
		variants = append(variants, models.ModelVariant{
			ID:          id,
			VariantName: v.VariantName,
			ModelURL:    v.ModelURL,
			Price:       v.Price,
			Description: v.Description,
		})
	}
	return variants
}
