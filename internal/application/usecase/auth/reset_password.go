// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/pocketledger/backend/internal/application/adapter"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// ResetPasswordInput represents the input for a password reset.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResetPasswordUseCase handles password reset completion.
type ResetPasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	resetTokens     adapter.PasswordResetTokenService
	tokenService    adapter.TokenService
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	resetTokens adapter.PasswordResetTokenService,
	tokenService adapter.TokenService,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		resetTokens:     resetTokens,
		tokenService:    tokenService,
	}
}

// Execute performs the password reset. All refresh tokens for the user are
// invalidated so stolen sessions die with the old password.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) error {
	if input.Token == "" {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidResetToken,
			"reset token is required",
			domainerror.ErrInvalidResetToken,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	resetToken, err := uc.resetTokens.ValidateResetToken(ctx, input.Token)
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidResetToken,
			"invalid or expired reset token",
			domainerror.ErrInvalidResetToken,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, resetToken.UserID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := uc.resetTokens.InvalidateResetToken(ctx, input.Token); err != nil {
		return fmt.Errorf("failed to invalidate reset token: %w", err)
	}

	if err := uc.tokenService.InvalidateAllUserTokens(ctx, resetToken.UserID); err != nil {
		return fmt.Errorf("failed to invalidate user sessions: %w", err)
	}

	return nil
}
