package models

// EnrollmentResult is the composite outcome of the three-step enrollment
// completion workflow, in execution order. A partial failure still
// returns HTTP success; callers inspect the sub-results to see which
// step failed. The payment insert is never rolled back; bookkeeping
// divergence is reconciled manually by operators.
type EnrollmentResult struct {
	InsertResult InsertResult `json:"insertResult"`
	DeleteResult DeleteResult `json:"deleteResult"`
	UpdateResult UpdateResult `json:"updateResult"`
}

// InsertResult reports the payment-record insert (Effect 1).
type InsertResult struct {
	Ok         bool   `json:"ok"`
	InsertedID string `json:"insertedId,omitempty"`
	// AlreadyCompleted is set when a payment for the same selection id
	// already exists: the request is a duplicate submission and the
	// remaining effects were skipped.
	AlreadyCompleted bool   `json:"alreadyCompleted,omitempty"`
	Error            string `json:"error,omitempty"`
}

// DeleteResult reports the selection retirement (Effect 2). DeletedCount
// of zero with Ok true means the selection was already gone, which is
// treated as success.
type DeleteResult struct {
	Ok           bool   `json:"ok"`
	DeletedCount int64  `json:"deletedCount"`
	Skipped      bool   `json:"skipped,omitempty"`
	Error        string `json:"error,omitempty"`
}

// UpdateResult reports the class counter update (Effect 3).
type UpdateResult struct {
	Ok            bool   `json:"ok"`
	ModifiedCount int64  `json:"modifiedCount"`
	Skipped       bool   `json:"skipped,omitempty"`
	Error         string `json:"error,omitempty"`
}

// PartialFailure reports whether any step after a committed payment
// failed, i.e. the states that require operator reconciliation.
func (r *EnrollmentResult) PartialFailure() bool {
	return r.InsertResult.Ok && (!r.DeleteResult.Ok || !r.UpdateResult.Ok)
}
