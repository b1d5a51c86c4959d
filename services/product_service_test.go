package services

import (
	"context"
	"testing"

	"furnishop/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
)

// --- Mocks for Dependencies ---

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}
func (m *MockProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}
func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, id uuid.UUID, product *models.Product) (int64, error) {
	args := m.Called(ctx, id, product)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// --- Tests ---

func validProductRequest() *ProductRequest {
	return &ProductRequest{
		Name:        "Oslo Sofa",
		Description: "Three-seater in grey fabric",
		Price:       499,
		Category:    "Sofas",
		Stock:       10,
		Image:       "https://cdn.example.com/oslo.jpg",
	}
}

func TestProductList(t *testing.T) {
	ctx := context.Background()

	t.Run("Facet comes from the unfiltered set", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockProductRepository)
		svc := NewProductService(mockRepo)

		mockRepo.On("FindAll", ctx).Return([]models.Product{
			{Name: "Oslo Sofa", Category: "Sofas"},
			{Name: "Bergen Bed", Category: "Beds"},
		}, nil).Once()

		// Act
		list, err := svc.List(ctx, "Sofas", "")

		// Assert: filtering to Sofas must not shrink the selector
		assert.NoError(t, err)
		assert.Len(t, list.Products, 1)
		assert.Equal(t, []string{"All", "Sofas", "Beds"}, list.Categories)
	})
}

func TestProductGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing product is a 404", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockProductRepository)
		svc := NewProductService(mockRepo)

		id := uuid.New()
		mockRepo.On("FindByID", ctx, id).Return(nil, mongo.ErrNoDocuments).Once()

		// Act
		_, err := svc.Get(ctx, id)

		// Assert
		assert.Error(t, err)
	})
}

func TestProductCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success assigns variant identifiers", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockProductRepository)
		svc := NewProductService(mockRepo)

		req := validProductRequest()
		req.Models = []ModelVariantRequest{
			{VariantName: "Walnut", ModelURL: "https://cdn.example.com/walnut.glb", Price: 550, Description: "Walnut finish"},
		}
		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		// Act
		product, err := svc.Create(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.Len(t, product.Models, 1)
		assert.NotEmpty(t, product.Models[0].ID)
	})

	t.Run("Unknown category is rejected", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockProductRepository)
		svc := NewProductService(mockRepo)

		req := validProductRequest()
		req.Category = "Lamps"

		// Act
		_, err := svc.Create(ctx, req)

		// Assert
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Variant missing a field is rejected as a whole", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockProductRepository)
		svc := NewProductService(mockRepo)

		req := validProductRequest()
		req.Models = []ModelVariantRequest{
			{VariantName: "Walnut", Price: 550, Description: "Walnut finish"}, // no modelUrl
		}

		// Act
		_, err := svc.Create(ctx, req)

		// Assert
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProductUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Submitted variant list replaces the stored set wholesale", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockProductRepository)
		svc := NewProductService(mockRepo)

		id := uuid.New()
		req := validProductRequest()
		req.Models = []ModelVariantRequest{
			{ID: "keep-me", VariantName: "Birch", ModelURL: "https://cdn.example.com/birch.glb", Price: 450, Description: "Birch finish"},
		}

		var submitted *models.Product
		mockRepo.On("Update", ctx, id, mock.Anything).Run(func(args mock.Arguments) {
			submitted = args.Get(2).(*models.Product)
		}).Return(int64(1), nil).Once()
		mockRepo.On("FindByID", ctx, id).Return(&models.Product{ID: id}, nil).Once()

		// Act
		_, err := svc.Update(ctx, id, req)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, submitted.Models, 1)
		assert.Equal(t, "keep-me", submitted.Models[0].ID)
	})

	t.Run("Unknown product is a 404", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockProductRepository)
		svc := NewProductService(mockRepo)

		id := uuid.New()
		mockRepo.On("Update", ctx, id, mock.Anything).Return(int64(0), nil).Once()

		// Act
		_, err := svc.Update(ctx, id, validProductRequest())

		// Assert
		assert.Error(t, err)
	})
}

func TestProductDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Deleting twice is a 404 the second time", func(t *testing.T) {
		// Arrange
		mockRepo := new(MockProductRepository)
		svc := NewProductService(mockRepo)

		id := uuid.New()
		mockRepo.On("Delete", ctx, id).Return(int64(1), nil).Once()
		mockRepo.On("Delete", ctx, id).Return(int64(0), nil).Once()

		// Act / Assert
		assert.NoError(t, svc.Delete(ctx, id))
		assert.Error(t, svc.Delete(ctx, id))
	})
}
