package model

// Rental request status values. "approved" appears in stored data but
// no operation transitions a request out of "pending" yet.
const (
	RentalStatusPending  = "pending"
	RentalStatusApproved = "approved"
)

// RentalRequest records a user's request to rent a machine for a date
// range. Dates are ISO-8601 date strings, stored verbatim. Requester
// and machine are set at creation and never change.
type RentalRequest struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	StartDate string `gorm:"size:10;not null" json:"startDate"`
	EndDate   string `gorm:"size:10;not null" json:"endDate"`
	Status    string `gorm:"size:50;not null;default:pending" json:"status"`
	UserID    int64  `gorm:"index;not null" json:"-"`
	MachineID int64  `gorm:"index;not null" json:"-"`

	// Associations
	User    User    `json:"user"`
	Machine Machine `json:"machine"`
}
