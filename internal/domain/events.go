package domain

import "time"

type SubmissionEvent struct {
	EventType  string            `json:"event_type"`
	CartID     string            `json:"cart_id"`
	UserID     string            `json:"user_id"`
	OrderID    int64             `json:"order_id,omitempty"`
	TotalPrice float64           `json:"total_price"`
	Items      []CompositionLine `json:"items"`
	Reason     string            `json:"reason,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

const (
	EventOrderPlaced   = "order.placed"
	EventOrderRejected = "order.rejected"
)
