package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the immutable record of a completed transaction. Exactly one
// payment document exists per completed enrollment (enforced by a unique
// index on selectedClassId); payments are never mutated or deleted.
type Payment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email           string             `bson:"email" json:"email"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Amount          float64            `bson:"amount" json:"amount"`
	Date            time.Time          `bson:"date" json:"date"`
	ClassID         string             `bson:"classId" json:"classId"`
	SelectedClassID string             `bson:"selectedClassId" json:"selectedClassId"`
	ClassName       string             `bson:"className,omitempty" json:"className,omitempty"`
}
