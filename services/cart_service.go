package services

import (
	"context"
	"net/http"

	apperrors "furnishop/errors"
	"furnishop/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Shipping pricing. The fee is charged while the subtotal is at or below the
// threshold and waived strictly above it: a cart totalling exactly 50 still
// pays shipping.
const (
	ShippingFee           = 10.0
	FreeShippingThreshold = 50.0
)

// ShippingFor returns the shipping surcharge for a subtotal.
func ShippingFor(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}

type ICartRepository interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, userID string) error
}

// CartSummary is the checkout math over a cart.
type CartSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

type CartService struct {
	carts    ICartRepository
	products IProductRepository
}

func NewCartService(carts ICartRepository, products IProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// Get returns the user's cart, empty rather than nil when none is stored.
func (s *CartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to get cart", err)
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	}
	return cart, nil
}

// AddItem adds a product to the cart, resolving the unit price and display
// name from the selected variant at add time. Re-adding a product already in
// the cart increments its quantity; the original price snapshot stands.
// A quantity below 1 is coerced to 1.
func (s *CartService) AddItem(ctx context.Context, userID string, productID uuid.UUID, quantity int, modelIndex *int) (*models.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.New(http.StatusNotFound, "Product not found", err)
		}
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to fetch product", err)
	}

	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing := cart.Find(productID.String()); existing != nil {
		existing.Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID:  productID.String(),
			Name:       product.DisplayName(modelIndex),
			Price:      product.EffectivePrice(modelIndex),
			Quantity:   quantity,
			Image:      product.Image,
			ModelIndex: modelIndex,
		})
	}

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to save cart", err)
	}
	return cart, nil
}

// UpdateQuantity sets a line item's quantity. Values below 1 are a no-op:
// the line is left unchanged and removal stays an explicit separate action.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		return cart, nil
	}

	item := cart.Find(productID)
	if item == nil {
		return nil, apperrors.New(http.StatusNotFound, "Item not in cart", nil)
	}
	item.Quantity = quantity

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to save cart", err)
	}
	return cart, nil
}

// RemoveItem drops the line for productID from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	cart.Items = items

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to save cart", err)
	}
	return cart, nil
}

// Clear removes the stored cart entirely.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	if err := s.carts.DeleteCart(ctx, userID); err != nil {
		return apperrors.New(http.StatusInternalServerError, "Failed to clear cart", err)
	}
	return nil
}

// Summary computes subtotal, shipping and total for a cart. An empty cart
// has nothing to ship, so everything is zero.
func Summary(cart *models.Cart) CartSummary {
	if cart == nil || len(cart.Items) == 0 {
		return CartSummary{}
	}
	subtotal := cart.Subtotal()
	shipping := ShippingFor(subtotal)
	return CartSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}
