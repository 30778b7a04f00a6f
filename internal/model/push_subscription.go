package model

import "time"

// PushSubscription holds a browser push subscription owned by a user.
// Machine owners with a subscription get notified when a rental
// request is filed against one of their machines.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey" json:"endpoint"`
	P256DH    string    `gorm:"column:p256dh;not null" json:"p256dh"`
	Auth      string    `gorm:"not null" json:"auth"`
	UserID    int64     `gorm:"index;not null" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
}
