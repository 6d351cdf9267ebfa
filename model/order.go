package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Order carries free-form Status on purpose; the observed flow is
// "" -> "pending" after payment, with later values set by sellers.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	PartID        string             `bson:"partId,omitempty" json:"partId,omitempty"`
	PartName      string             `bson:"partName,omitempty" json:"partName,omitempty"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Price         float64            `bson:"price" json:"price"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Paid          bool               `bson:"paid" json:"paid"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
