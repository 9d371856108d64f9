package models

// Counter holds the last issued value of a per-branch sequence.
// At most one row exists per (BranchID, Entity, Field) and Count never decreases.
type Counter struct {
	BranchID string `json:"branch_id" bson:"branch_id" db:"branch_id"`
	Entity   string `json:"entity" bson:"entity" db:"entity"`
	Field    string `json:"field" bson:"field" db:"field"`
	Count    int64  `json:"count" bson:"count" db:"count"`
}
