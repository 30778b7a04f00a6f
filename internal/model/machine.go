package model

// Machine is a piece of rentable equipment listed by a user. Available
// defaults to true; no exposed operation toggles it.
type Machine struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Available   bool   `gorm:"not null;default:true" json:"available"`
	CreatedByID int64  `gorm:"index;not null" json:"-"`

	// Associations
	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"createdBy"`
}
