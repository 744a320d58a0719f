package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values stored on a user document. A freshly signed-up user has no
// role until an admin grants one.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// User represents an account in the platform. Created on first sign-in;
// the role field is mutated only through the admin grant endpoints.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	PhotoURL string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
	// TotalStudent is an instructor aggregate: how many students have
	// enrolled in this instructor's classes. Used for popularity sorting.
	TotalStudent int `bson:"totalStudent,omitempty" json:"totalStudent,omitempty"`
}
