package model

import "time"

// Role groups privileges; users are attached to roles by name
type Role struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string      `gorm:"type:text" json:"description,omitempty"`
	Privileges  []Privilege `gorm:"many2many:role_privileges;" json:"privileges,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Role names as constants
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// DefaultRoles defines the roles seeded on startup
var DefaultRoles = []Role{
	{Name: RoleAdmin, Description: "Full system access with all privileges"},
	{Name: RoleOperator, Description: "Read access plus order handling"},
}

// OperatorPrivileges is the privilege set of the operator role
var OperatorPrivileges = []string{"user:view", "role:view", "contact:view", "order:view", "order:update", "transaction:view"}

// RoleResponse is the API shape of a role
type RoleResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Privileges []string  `json:"privileges"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r *Role) ToResponse() RoleResponse {
	codes := make([]string, len(r.Privileges))
	for i, p := range r.Privileges {
		codes[i] = p.Code
	}
	return RoleResponse{ID: r.ID, Name: r.Name, Privileges: codes, CreatedAt: r.CreatedAt}
}
