package models

// Parent links a PARENT-typed user account to its household profile.
type Parent struct {
	ID          int64 `db:"parent_id" json:"id"`
	UserID      int64 `db:"user_id" json:"user_id"`
	NumChildren int   `db:"no_children" json:"no_children"`
}
