package models

// ClassGroup represents a class_group row. TeacherID is nullable: a class
// can exist before a homeroom teacher is assigned.
type ClassGroup struct {
	ID         int64  `db:"class_id" json:"id"`
	Size       int    `db:"size" json:"size"`
	Year       int    `db:"year" json:"year"`
	RoomNumber int    `db:"room_number" json:"room_number"`
	TeacherID  *int64 `db:"teacher_id" json:"teacher_id,omitempty"`
}
