package models

import "time"

// Homework is an assignment issued to a class. Completed maps to the status
// boolean column. DueDate must not precede AssignmentDate; the service layer
// rejects such rows before any write.
type Homework struct {
	ID             int64     `db:"homework_id" json:"id"`
	AssignmentDate time.Time `db:"assignment_date" json:"assignment_date"`
	DueDate        time.Time `db:"due_date" json:"due_date"`
	ClassID        int64     `db:"class_id" json:"class_id"`
	Description    string    `db:"description" json:"description"`
	Completed      bool      `db:"status" json:"completed"`
}
