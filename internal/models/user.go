package models

// AccountType distinguishes the role profile attached to a user account.
type AccountType string

const (
	AccountTypeTeacher AccountType = "TEACHER"
	AccountTypeParent  AccountType = "PARENT"
	AccountTypeAdmin   AccountType = "ADMIN"
)

// Valid reports whether the account type is one of the known roles.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeTeacher, AccountTypeParent, AccountTypeAdmin:
		return true
	}
	return false
}

// User represents an account stored in the "User" table. Password holds
// either a bcrypt hash or a legacy plaintext secret; use ParseCredential
// to tell them apart.
type User struct {
	ID          int64       `db:"user_id" json:"id"`
	FullName    string      `db:"fullName" json:"full_name"`
	Email       string      `db:"email" json:"email"`
	Password    string      `db:"password" json:"-"`
	AccountType AccountType `db:"accountType" json:"account_type"`
	Address     string      `db:"address" json:"address"`
	Phone       string      `db:"phone_number" json:"phone_number"`
}
