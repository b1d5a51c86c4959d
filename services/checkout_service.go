package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	apperrors "furnishop/errors"
	"furnishop/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ITransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	FindAll(ctx context.Context) ([]models.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

// IOrderPublisher publishes order events to the message broker.
type IOrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error
}

// ISNSPublisher mirrors order events to SNS, best-effort.
type ISNSPublisher interface {
	Publish(ctx context.Context, topicArn string, message []byte) error
}

// TransactionLine is one submitted order line in the direct-submission
// payload shape.
type TransactionLine struct {
	ProductID string  `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"required,gte=0"`
}

// CreateTransactionRequest is the direct order submission payload. The
// submitted totalAmount, if any, is ignored: totals are recomputed here.
type CreateTransactionRequest struct {
	Products        []TransactionLine      `json:"products" binding:"required,dive"`
	TotalAmount     float64                `json:"totalAmount"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
}

// CheckoutService turns carts and order submissions into transactions.
type CheckoutService struct {
	transactions ITransactionRepository
	carts        ICartRepository
	producer     IOrderPublisher
	sns          ISNSPublisher
	snsTopicArn  string
}

func NewCheckoutService(transactions ITransactionRepository, carts ICartRepository, producer IOrderPublisher, sns ISNSPublisher, snsTopicArn string) *CheckoutService {
	return &CheckoutService{
		transactions: transactions,
		carts:        carts,
		producer:     producer,
		sns:          sns,
		snsTopicArn:  snsTopicArn,
	}
}

// CheckoutCart creates a transaction from the user's stored cart at its
// snapshot prices and clears the cart. On any failure the cart is left
// intact for retry.
func (s *CheckoutService) CheckoutCart(ctx context.Context, userID uuid.UUID, shipping models.ShippingAddress) (*models.Transaction, error) {
	if !shipping.Complete() {
		return nil, apperrors.New(http.StatusBadRequest, "Please fill in all shipping information", nil)
	}

	cart, err := s.carts.GetCart(ctx, userID.String())
	if err != nil {
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to get cart", err)
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, apperrors.New(http.StatusBadRequest, "Cart is empty", nil)
	}

	items := make([]models.TransactionItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, models.TransactionItem{
			ID:        uuid.New(),
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	tx, err := s.create(ctx, userID, items, shipping)
	if err != nil {
		return nil, err
	}

	// The order is persisted; a failed cart delete must not fail checkout.
	if err := s.carts.DeleteCart(ctx, userID.String()); err != nil {
		zap.L().Warn("Failed to clear cart after checkout",
			zap.String("user_id", userID.String()), zap.Error(err))
	}
	return tx, nil
}

// CreateTransaction handles a direct order submission carrying its own line
// items, already priced at cart-time snapshots.
func (s *CheckoutService) CreateTransaction(ctx context.Context, userID uuid.UUID, req *CreateTransactionRequest) (*models.Transaction, error) {
	if len(req.Products) == 0 {
		return nil, apperrors.New(http.StatusBadRequest, "At least one item is required", nil)
	}
	if !req.ShippingAddress.Complete() {
		return nil, apperrors.New(http.StatusBadRequest, "Please fill in all shipping information", nil)
	}

	items := make([]models.TransactionItem, 0, len(req.Products))
	for _, line := range req.Products {
		items = append(items, models.TransactionItem{
			ID:        uuid.New(),
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	return s.create(ctx, userID, items, req.ShippingAddress)
}

func (s *CheckoutService) create(ctx context.Context, userID uuid.UUID, items []models.TransactionItem, shipping models.ShippingAddress) (*models.Transaction, error) {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	total := subtotal + ShippingFor(subtotal)

	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Items:       items,
		TotalAmount: total,
		Shipping:    shipping,
		Status:      models.StatusPending,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to place order", err)
	}

	s.publish(ctx, tx)
	return tx, nil
}

// publish emits the order.placed event. Both transports are best-effort: the
// transaction is already durable, so a broker outage only costs downstream
// notification.
func (s *CheckoutService) publish(ctx context.Context, tx *models.Transaction) {
	event := models.OrderPlacedEvent{
		Event:         "order.placed",
		TransactionID: tx.ID.String(),
		UserID:        tx.UserID.String(),
		Items:         tx.Items,
		TotalAmount:   tx.TotalAmount,
		Timestamp:     time.Now(),
	}

	if s.producer != nil {
		if err := s.producer.PublishOrderPlaced(ctx, event); err != nil {
			zap.L().Warn("Failed to publish order event", zap.Error(err))
		}
	}

	if s.sns != nil && s.snsTopicArn != "" {
		payload, err := json.Marshal(event)
		if err == nil {
			if err := s.sns.Publish(ctx, s.snsTopicArn, payload); err != nil {
				zap.L().Warn("SNS publish failed", zap.Error(err))
			}
		}
	}
}

// MyOrders returns the caller's transactions, newest first.
func (s *CheckoutService) MyOrders(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	txs, err := s.transactions.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to fetch orders", err)
	}
	return txs, nil
}

// ListTransactions returns every transaction, newest first.
func (s *CheckoutService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	txs, err := s.transactions.FindAll(ctx)
	if err != nil {
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to fetch transactions", err)
	}
	return txs, nil
}

// UpdateStatus moves a transaction to a new status. Line items are immutable
// once created; status is the only mutable field.
func (s *CheckoutService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Transaction, error) {
	if !models.ValidStatus(status) {
		return nil, apperrors.New(http.StatusBadRequest, "Invalid status", nil)
	}

	if _, err := s.transactions.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.New(http.StatusNotFound, "Transaction not found", err)
		}
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to fetch transaction", err)
	}

	if err := s.transactions.UpdateStatus(ctx, id, status); err != nil {
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to update transaction", err)
	}

	updated, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to fetch transaction", err)
	}
	return updated, nil
}
