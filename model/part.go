package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Part struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Img               string             `bson:"img" json:"img"`
	Description       string             `bson:"description" json:"description"`
	MinimumQuantity   int                `bson:"minimumQuantity" json:"minimumQuantity"`
	AvailableQuantity int                `bson:"availableQuantity" json:"availableQuantity"`
	Price             float64            `bson:"price" json:"price"`
}
