package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"heavyrent-backend/internal/model"
)

// Rentals owns the rental ledger.
type Rentals struct {
	db       *gorm.DB
	machines *Machines
}

// NewRentals creates the rental ledger service.
func NewRentals(db *gorm.DB, machines *Machines) *Rentals {
	return &Rentals{db: db, machines: machines}
}

// CreateRentalInput is the validated payload for a new rental request.
type CreateRentalInput struct {
	MachineID int64
	StartDate string
	EndDate   string
}

// Create files a pending rental request against an existing machine.
// The requester is attached by id without a directory lookup; identity
// was already verified at the authentication boundary. Overlapping
// date ranges on the same machine are not checked.
func (s *Rentals) Create(ctx context.Context, in CreateRentalInput, requesterID int64) (*model.RentalRequest, error) {
	machine, err := s.machines.FindByID(ctx, in.MachineID)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, fmt.Errorf("machine %d: %w", in.MachineID, ErrMachineNotFound)
	}

	rental := model.RentalRequest{
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    model.RentalStatusPending,
		UserID:    requesterID,
		MachineID: machine.ID,
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&rental).Error; err != nil {
		return nil, fmt.Errorf("failed to create rental request: %w", err)
	}
	rental.Machine = *machine
	return &rental, nil
}

// FindByUser returns the rental requests filed by the given user, with
// machine and requester eager-loaded.
func (s *Rentals) FindByUser(ctx context.Context, userID int64) ([]model.RentalRequest, error) {
	rentals := make([]model.RentalRequest, 0)
	err := s.db.WithContext(ctx).
		Preload("Machine").
		Preload("User").
		Where("user_id = ?", userID).
		Find(&rentals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals for user %d: %w", userID, err)
	}
	return rentals, nil
}
