package models

// Student represents a learner row in the "Student" table. ClassID and
// ParentID are logical references resolved by id lookup, never object graphs.
type Student struct {
	ID        int64  `db:"student_id" json:"id"`
	ClassID   int64  `db:"class_id" json:"class_id"`
	FirstName string `db:"f_name" json:"first_name"`
	LastName  string `db:"l_name" json:"last_name"`
	Address   string `db:"address" json:"address"`
	ParentID  int64  `db:"parent_id" json:"parent_id"`
}
