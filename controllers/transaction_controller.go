package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "furnishop/errors"
	"furnishop/services"
)

type TransactionController struct {
	checkout *services.CheckoutService
}

func NewTransactionController(checkout *services.CheckoutService) *TransactionController {
	return &TransactionController{checkout: checkout}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create accepts a direct order submission for the authenticated user.
func (tc *TransactionController) Create(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	var req services.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	tx, err := tc.checkout.CreateTransaction(c.Request.Context(), userID, &req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// MyOrders returns the authenticated user's order history, newest first.
func (tc *TransactionController) MyOrders(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	txs, err := tc.checkout.MyOrders(c.Request.Context(), userID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

// List returns all transactions. Admin only.
func (tc *TransactionController) List(c *gin.Context) {
	txs, err := tc.checkout.ListTransactions(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

// UpdateStatus moves a transaction through its lifecycle. Items and totals
// are immutable; only the status changes. Admin only.
func (tc *TransactionController) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	tx, err := tc.checkout.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}
