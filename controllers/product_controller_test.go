package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"furnishop/models"
	"furnishop/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
)

// --- Mock Repository ---

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}
func (m *mockProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}
func (m *mockProductRepo) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *mockProductRepo) Update(ctx context.Context, id uuid.UUID, product *models.Product) (int64, error) {
	args := m.Called(ctx, id, product)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func setupProductRouter(repo *mockProductRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewProductController(services.NewProductService(repo))
	router := gin.New()
	router.GET("/api/products", controller.List)
	router.GET("/api/products/:id", controller.Get)
	router.GET("/api/products/:id/viewer", controller.Viewer)
	return router
}

// --- Tests ---

func TestListProducts(t *testing.T) {
	t.Run("Filters by query but keeps the full facet", func(t *testing.T) {
		// Arrange
		repo := new(mockProductRepo)
		repo.On("FindAll", mock.Anything).Return([]models.Product{
			{ID: uuid.New(), Name: "Oslo Sofa", Category: "Sofas"},
			{ID: uuid.New(), Name: "Bergen Bed", Category: "Beds"},
		}, nil).Once()
		router := setupProductRouter(repo)

		req, _ := http.NewRequest(http.MethodGet, "/api/products?category=Sofas", nil)
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Oslo Sofa")
		assert.NotContains(t, recorder.Body.String(), "Bergen Bed")
		assert.Contains(t, recorder.Body.String(), `"categories":["All","Sofas","Beds"]`)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("Found - 200 OK", func(t *testing.T) {
		// Arrange
		repo := new(mockProductRepo)
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(&models.Product{ID: id, Name: "Oslo Sofa"}, nil).Once()
		router := setupProductRouter(repo)

		req, _ := http.NewRequest(http.MethodGet, "/api/products/"+id.String(), nil)
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Oslo Sofa")
	})

	t.Run("Missing - 404 Not Found", func(t *testing.T) {
		// Arrange
		repo := new(mockProductRepo)
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, mongo.ErrNoDocuments).Once()
		router := setupProductRouter(repo)

		req, _ := http.NewRequest(http.MethodGet, "/api/products/"+id.String(), nil)
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Malformed id - 400 Bad Request", func(t *testing.T) {
		// Arrange
		router := setupProductRouter(new(mockProductRepo))

		req, _ := http.NewRequest(http.MethodGet, "/api/products/not-a-uuid", nil)
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestProductViewer(t *testing.T) {
	t.Run("Selects the variant from the model query param", func(t *testing.T) {
		// Arrange
		repo := new(mockProductRepo)
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(&models.Product{
			ID:   id,
			Name: "Oak Table",
			Models: []models.ModelVariant{
				{ID: "v1", VariantName: "Walnut", ModelURL: "https://cdn.example.com/walnut.glb", Price: 150, Description: "Walnut finish"},
				{ID: "v2", VariantName: "Birch", ModelURL: "https://cdn.example.com/birch.glb", Price: 135, Description: "Birch finish"},
			},
		}, nil).Once()
		router := setupProductRouter(repo)

		req, _ := http.NewRequest(http.MethodGet, "/api/products/"+id.String()+"/viewer?model=1", nil)
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"variantName":"Birch"`)
		assert.Contains(t, recorder.Body.String(), `"showSelector":true`)
	})
}
