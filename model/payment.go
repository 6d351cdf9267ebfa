package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment keeps the full PATCH body alongside the order it settles, so
// the record survives even when the order is later deleted.
type Payment struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderID       string                 `bson:"orderId" json:"orderId"`
	TransactionID string                 `bson:"transactionId" json:"transactionId"`
	Body          map[string]interface{} `bson:"body,omitempty" json:"body,omitempty"`
}
