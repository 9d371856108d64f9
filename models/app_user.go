package models

import "time"

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleBranch     Role = "BRANCH"
)

type AppUser struct {
	ID        string    `json:"id" bson:"_id" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Email     string    `json:"email" bson:"email" db:"email"`
	Role      Role      `json:"role" bson:"role" db:"role"`
	BranchID  *string   `json:"branch_id,omitempty" bson:"branch_id,omitempty" db:"branch_id"`
	Password  string    `json:"password,omitempty" bson:"password_hash" db:"password_hash"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

func (u *AppUser) IsSuperAdmin() bool {
	return u != nil && u.Role == RoleSuperAdmin
}
