package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubmissionAudit struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventType  string             `bson:"event_type" json:"event_type"`
	CartID     string             `bson:"cart_id" json:"cart_id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	OrderID    int64              `bson:"order_id,omitempty" json:"order_id,omitempty"`
	TotalPrice float64            `bson:"total_price" json:"total_price"`
	Items      []AuditLine        `bson:"items" json:"items"`
	Reason     string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}

type AuditLine struct {
	MenuItemID int64 `bson:"menu_item_id" json:"menu_item_id"`
	Quantity   int   `bson:"quantity" json:"quantity"`
}
