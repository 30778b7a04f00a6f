package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"heavyrent-backend/internal/model"
)

// Users owns the user directory.
type Users struct {
	db *gorm.DB
}

// NewUsers creates the user directory service.
func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// FindOrCreate returns the user with the given email, creating one
// with the given name and the default role when none exists. Calling
// it repeatedly with the same email always yields the same user.
func (s *Users) FindOrCreate(ctx context.Context, email, name string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	user = model.User{Name: name, Email: email, Role: model.RoleCustomer}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// FindByID returns the user with the given id, or nil without an
// error when no user matches. Callers translate the absent case.
func (s *Users) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %d: %w", id, err)
	}
	return &user, nil
}

// FindAll returns every user in the directory.
func (s *Users) FindAll(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes the user with the given id. The preliminary fetch
// distinguishes "not found" from "found and deleted".
func (s *Users) Delete(ctx context.Context, id int64) error {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.db.WithContext(ctx).Delete(&model.User{}, user.ID).Error; err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
