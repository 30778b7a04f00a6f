package model

// RoleCustomer is the role assigned to every newly created user.
const RoleCustomer = "customer"

// User is an account in the user directory. Users are created either
// through the users endpoint or by find-or-create on first OAuth login,
// keyed by email. Machines and rentals belonging to a user are looked
// up by query, not stored on the struct.
type User struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Role  string `gorm:"size:50;not null;default:customer" json:"role"`
}
