package models

import "time"

// OrderPlacedEvent is published when a transaction is created, for downstream
// consumers (fulfilment, notifications). Delivery is best-effort.
type OrderPlacedEvent struct {
	Event         string            `json:"event"` // "order.placed"
	TransactionID string            `json:"transaction_id"`
	UserID        string            `json:"user_id"`
	Items         []TransactionItem `json:"items"`
	TotalAmount   float64           `json:"total_amount"`
	Timestamp     time.Time         `json:"timestamp"`
}
