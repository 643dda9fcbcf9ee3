package entity

import "time"

// AdminUser is an identity permitted administrative access. Rows are managed
// by the team-management UI; this service only reads them.
type AdminUser struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

const RoleAdmin = "admin"
