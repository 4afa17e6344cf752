package models

import "gorm.io/gorm"

// User represents a back-office account. Only the bcrypt hash is stored.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,min=3,max=100"`
	PasswordHash string `json:"-" gorm:"type:varchar(255);not null"` // No json output for security
	Roles        []Role `json:"roles,omitempty" gorm:"many2many:user_roles"`
	gorm.Model
}

// Role names a privilege granted to a user, e.g. "Admin".
type Role struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(50);not null" validate:"required,max=50"`
	gorm.Model
}

// RoleNames returns the names of the user's roles.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
