package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"heavyrent-backend/internal/model"
)

// Subscriptions owns browser push subscriptions.
type Subscriptions struct {
	db *gorm.DB
}

// NewSubscriptions creates the push subscription service.
func NewSubscriptions(db *gorm.DB) *Subscriptions {
	return &Subscriptions{db: db}
}

// Upsert creates or replaces the subscription keyed by its endpoint.
func (s *Subscriptions) Upsert(ctx context.Context, sub *model.PushSubscription) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "user_id"}),
	}).Create(sub).Error
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return nil
}

// FindByUser returns every subscription registered by the given user.
func (s *Subscriptions) FindByUser(ctx context.Context, userID int64) ([]model.PushSubscription, error) {
	subs := make([]model.PushSubscription, 0)
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions for user %d: %w", userID, err)
	}
	return subs, nil
}

// Delete removes the given user's subscription for an endpoint.
func (s *Subscriptions) Delete(ctx context.Context, userID int64, endpoint string) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&model.PushSubscription{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}
