package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SelectedClass is a student's pending intent to enroll in a class. It
// carries a snapshot of the class's seat/student counters and price at
// selection time. The document is destroyed either by explicit
// cancellation or by successful completion of payment; it must never
// outlive the payment that supersedes it.
type SelectedClass struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassID        string             `bson:"classId" json:"classId"`
	Email          string             `bson:"email" json:"email"`
	ClassName      string             `bson:"className,omitempty" json:"className,omitempty"`
	ClassImage     string             `bson:"classImage,omitempty" json:"classImage,omitempty"`
	InstructorName string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	Price          float64            `bson:"price" json:"price"`
	AvailableSeats int                `bson:"availableSeats" json:"availableSeats"`
	TotalStudent   int                `bson:"totalStudent" json:"totalStudent"`
}
