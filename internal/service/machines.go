package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"heavyrent-backend/internal/model"
)

// Machines owns the machine catalog.
type Machines struct {
	db    *gorm.DB
	users *Users
}

// NewMachines creates the machine catalog service.
func NewMachines(db *gorm.DB, users *Users) *Machines {
	return &Machines{db: db, users: users}
}

// CreateMachineInput is the validated payload for a new listing.
type CreateMachineInput struct {
	Name        string
	Description string
}

// Create lists a new machine owned by the acting user. The owner must
// resolve in the user directory; nothing is persisted otherwise.
func (s *Machines) Create(ctx context.Context, in CreateMachineInput, actingUserID int64) (*model.Machine, error) {
	user, err := s.users.FindByID(ctx, actingUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	machine := model.Machine{
		Name:        in.Name,
		Description: in.Description,
		Available:   true,
		CreatedByID: user.ID,
	}
	if err := s.db.WithContext(ctx).Create(&machine).Error; err != nil {
		return nil, fmt.Errorf("failed to create machine: %w", err)
	}
	machine.CreatedBy = *user
	return &machine, nil
}

// FindByID returns the machine with the given id, or nil without an
// error when no machine matches.
func (s *Machines) FindByID(ctx context.Context, id int64) (*model.Machine, error) {
	var machine model.Machine
	err := s.db.WithContext(ctx).First(&machine, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up machine %d: %w", id, err)
	}
	return &machine, nil
}

// FindAll returns every machine with its owner eager-loaded, so
// callers never need a second lookup to display ownership.
func (s *Machines) FindAll(ctx context.Context) ([]model.Machine, error) {
	machines := make([]model.Machine, 0)
	if err := s.db.WithContext(ctx).Preload("CreatedBy").Find(&machines).Error; err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}
	return machines, nil
}
