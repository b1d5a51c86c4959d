package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "furnishop/errors"
	"furnishop/models"
	"furnishop/services"
)

type CartController struct {
	carts    *services.CartService
	checkout *services.CheckoutService
}

func NewCartController(carts *services.CartService, checkout *services.CheckoutService) *CartController {
	return &CartController{carts: carts, checkout: checkout}
}

type addItemRequest struct {
	ProductID  string `json:"productId" binding:"required"`
	Quantity   int    `json:"quantity"`
	ModelIndex *int   `json:"modelIndex"`
}

// updateItemRequest carries the new quantity. No required binding: zero and
// negative values are valid input and leave the line unchanged downstream.
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
}

func (cc *CartController) GetCart(c *gin.Context) {
	cart, err := cc.carts.Get(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// Summary returns the subtotal, shipping fee and grand total for the cart.
func (cc *CartController) Summary(c *gin.Context) {
	cart, err := cc.carts.Get(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, services.Summary(cart))
}

func (cc *CartController) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	cart, err := cc.carts.AddItem(c.Request.Context(), c.GetString("user_id"), productID, req.Quantity, req.ModelIndex)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// UpdateItem sets an item's quantity. Requests that would drop the quantity
// below one leave the cart unchanged.
func (cc *CartController) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	cart, err := cc.carts.UpdateQuantity(c.Request.Context(), c.GetString("user_id"), c.Param("productId"), req.Quantity)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	cart, err := cc.carts.RemoveItem(c.Request.Context(), c.GetString("user_id"), c.Param("productId"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (cc *CartController) ClearCart(c *gin.Context) {
	if err := cc.carts.Clear(c.Request.Context(), c.GetString("user_id")); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// Checkout turns the cart into a transaction and clears it on success.
func (cc *CartController) Checkout(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	tx, err := cc.checkout.CheckoutCart(c.Request.Context(), userID, req.ShippingAddress)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}
