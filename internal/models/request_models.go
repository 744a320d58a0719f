package models

// Request payloads bound by Gin. The "objectid" binding tag is a custom
// validator registered at startup that checks for a valid hex document id.

// TokenRequest is the body of POST /jwt: the identity payload that gets
// signed into a bearer token.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// CreateUserRequest is the body of POST /users (first sign-in).
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	PhotoURL string `json:"photoURL"`
}

// CreateClassRequest is the body of POST /classes.
type CreateClassRequest struct {
	ClassName       string  `json:"className" binding:"required"`
	ClassImage      string  `json:"classImage"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail" binding:"required,email"`
	Price           float64 `json:"price" binding:"required,gte=0"`
	AvailableSeats  int     `json:"availableSeats" binding:"required,gte=0"`
}

// UpdateClassRequest is the body of PATCH /classes/:id.
type UpdateClassRequest struct {
	ClassName      string  `json:"className" binding:"required"`
	ClassImage     string  `json:"classImage"`
	AvailableSeats int     `json:"availableSeats" binding:"gte=0"`
	Price          float64 `json:"price" binding:"gte=0"`
}

// FeedbackRequest is the body of PATCH /classes/feedback/:id.
type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// CreateSelectionRequest is the body of POST /selectedclasses. Seat and
// student counts are the client-observed snapshot at selection time.
type CreateSelectionRequest struct {
	ClassID        string  `json:"classId" binding:"required,objectid"`
	Email          string  `json:"email" binding:"required,email"`
	ClassName      string  `json:"className"`
	ClassImage     string  `json:"classImage"`
	InstructorName string  `json:"instructorName"`
	Price          float64 `json:"price" binding:"gte=0"`
	AvailableSeats int     `json:"availableSeats" binding:"gte=0"`
	TotalStudent   int     `json:"totalStudent" binding:"gte=0"`
}

// CreatePaymentIntentRequest is the body of POST /create-payment-intent.
// Price is in major currency units; the gateway is charged in cents.
type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CompleteEnrollmentRequest is the body of POST /payments, submitted by
// the client after the card charge succeeded out-of-band.
// AvailableSeats/TotalStudent are the snapshot observed at selection
// time; the workflow accepts them for wire compatibility but updates the
// class counters atomically against the stored values.
type CompleteEnrollmentRequest struct {
	Email           string  `json:"email" binding:"required,email"`
	TransactionID   string  `json:"transactionId"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	ClassID         string  `json:"classId" binding:"required,objectid"`
	SelectedClassID string  `json:"selectedClassId" binding:"required,objectid"`
	ClassName       string  `json:"className"`
	AvailableSeats  int     `json:"availableSeats" binding:"gte=0"`
	TotalStudent    int     `json:"totalStudent" binding:"gte=0"`
}
