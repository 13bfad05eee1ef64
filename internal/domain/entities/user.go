package entities

import "time"

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleCustomer UserRole = "customer"
	UserRoleEmployee UserRole = "employee"
	UserRoleVendor   UserRole = "vendor"
)

// User is a portal account stored in the "users" collection.
//
// Password holds either a plaintext demo password or a bcrypt hash written by
// the seeder with --hash-passwords.
type User struct {
	ID         string     `json:"-"`
	Email      string     `json:"email"`
	Password   string     `json:"password"`
	Role       UserRole   `json:"role"`
	PortalType string     `json:"portalType"`
	Name       string     `json:"name"`
	Company    string     `json:"company,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Address    string     `json:"address,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

// SessionUser is the reduced user info kept in the session cookie.
type SessionUser struct {
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Role    UserRole `json:"role"`
	Company string   `json:"company"`
}

func (u User) SessionUser() SessionUser {
	return SessionUser{Email: u.Email, Name: u.Name, Role: u.Role, Company: u.Company}
}
