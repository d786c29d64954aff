package models

// Teacher links a TEACHER-typed user account to the class it leads.
type Teacher struct {
	ID      int64 `db:"teacher_id" json:"id"`
	UserID  int64 `db:"user_id" json:"user_id"`
	ClassID int64 `db:"class_id" json:"class_id"`
}
