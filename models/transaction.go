package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction statuses
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is one of the five transaction statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ShippingAddress is the destination captured at checkout. All four fields
// are required before an order is accepted.
type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Complete reports whether every shipping field is non-empty.
func (s ShippingAddress) Complete() bool {
	return s.Address != "" && s.City != "" && s.ZipCode != "" && s.Country != ""
}

// Transaction is a finalized order. Line items are immutable once created;
// only the status mutates afterwards, via admin updates.
type Transaction struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"_id"`
	UserID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"userId"`
	Items       []TransactionItem `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"products"`
	TotalAmount float64           `gorm:"not null" json:"totalAmount"`
	Shipping    ShippingAddress   `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	Status      string            `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

type TransactionItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID     string    `gorm:"not null" json:"productId"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	Price         float64   `gorm:"not null" json:"price"`
}
