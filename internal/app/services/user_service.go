package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/auth"
)

// UserService defines the interface for user account operations
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo UserStore
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserStore, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, id)
}

// ChangePassword replaces the password after checking the current one
func (s *userServiceImpl) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, currentPassword) {
		s.logger.Warn().Int64("userID", userID).Msg("Password change with wrong current password")
		return apperrors.NewValidationError("currentPassword", "current password is incorrect")
	}
	if len(newPassword) < MinPasswordLength {
		return apperrors.NewValidationError("newPassword", fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	if newPassword == currentPassword {
		return apperrors.NewValidationError("newPassword", "new password must differ from the current one")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Msg("Password changed")
	return nil
}
