package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents an admin panel account
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string `gorm:"type:varchar(255);not null" json:"-"`
	Cellphone    string `gorm:"type:varchar(20)" json:"cellphone,omitempty"`
	Roles        []Role `gorm:"many2many:user_roles;" json:"roles,omitempty"`
	TokenVersion string `gorm:"type:varchar(255);default:''" json:"-"` // rotated on logout to revoke issued tokens
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// RoleNames returns the names of the attached roles
func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		names[i] = r.Name
	}
	return names
}

// GetPrivilegeCodes returns the distinct privilege codes granted by the user's roles
func (u *User) GetPrivilegeCodes() []string {
	seen := make(map[string]bool)
	codes := []string{}
	for _, r := range u.Roles {
		for _, p := range r.Privileges {
			if !seen[p.Code] {
				seen[p.Code] = true
				codes = append(codes, p.Code)
			}
		}
	}
	return codes
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Cellphone string    `json:"cellphone,omitempty"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Cellphone: u.Cellphone,
		Roles:     u.RoleNames(),
		CreatedAt: u.CreatedAt,
	}
}
