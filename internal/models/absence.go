package models

import "time"

// Absence records a student missing class. Excused maps to the status
// boolean column: true when the absence has been excused.
type Absence struct {
	ID          int64     `db:"absence_id" json:"id"`
	StudentID   int64     `db:"student_id" json:"student_id"`
	Date        time.Time `db:"absence_date" json:"absence_date"`
	Description string    `db:"description" json:"description"`
	Excused     bool      `db:"status" json:"excused"`
}
