package models

import "time"

// Grade represents a single mark awarded to a student. Mark is a one
// character letter; A through D and F are meaningful, everything else
// (including E) is treated as invalid by the aggregator.
type Grade struct {
	ID        int64     `db:"grade_id" json:"id"`
	Mark      string    `db:"mark" json:"mark"`
	Subject   string    `db:"subject" json:"subject"`
	StudentID int64     `db:"student_id" json:"student_id"`
	Date      time.Time `db:"grade_date" json:"grade_date"`
	Comment   string    `db:"comment" json:"comment"`
	TeacherID int64     `db:"teacher_id" json:"teacher_id"`
}
