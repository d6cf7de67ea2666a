package domain

import "time"

// User roles.
const (
	RoleExecutive = "executive"
	RoleDirector  = "director"
	RoleManager   = "manager"
	RoleIC        = "ic"
)

// User represents an employee account.
type User struct {
	ID             string
	OrganizationID string
	Email          string
	FullName       string
	Title          string
	Department     string
	Location       string
	Role           string
	ManagerUserID  *string
	HireDate       time.Time
	CreatedAt      time.Time
	DeactivatedAt  *time.Time
}

// Managerial reports whether the user's role typically creates work for others.
func (u User) Managerial() bool {
	return IsManagerialRole(u.Role)
}

// IsManagerialRole reports whether role is manager, director or executive.
func IsManagerialRole(role string) bool {
	switch role {
	case RoleManager, RoleDirector, RoleExecutive:
		return true
	}
	return false
}

// ManagerAssignment re-points a user's manager after the initial insert.
type ManagerAssignment struct {
	UserID        string
	ManagerUserID string
}
