package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Class lifecycle status values. New classes always start pending and
// move to approved or denied by admin action.
const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "denied"
)

// Class represents a class listing owned by an instructor.
//
// AvailableSeats and TotalStudent are mutated only by the enrollment
// completion workflow; their sum is conserved across an enrollment
// (one seat consumed, one student added).
type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassName       string             `bson:"className" json:"className"`
	ClassImage      string             `bson:"classImage,omitempty" json:"classImage,omitempty"`
	InstructorName  string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	InstructorEmail string             `bson:"instructorEmail" json:"instructorEmail"`
	Price           float64            `bson:"price" json:"price"`
	AvailableSeats  int                `bson:"availableSeats" json:"availableSeats"`
	TotalStudent    int                `bson:"totalStudent" json:"totalStudent"`
	Status          string             `bson:"status" json:"status"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}
