// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pocketledger/backend/internal/application/adapter"
)

// ForgotPasswordInput represents the input for a password reset request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordUseCase handles password reset requests. It always succeeds
// from the caller's perspective so that email existence cannot be probed.
type ForgotPasswordUseCase struct {
	userRepo    adapter.UserRepository
	resetTokens adapter.PasswordResetTokenService
	emailSender adapter.EmailSender
	appBaseURL  string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	resetTokens adapter.PasswordResetTokenService,
	emailSender adapter.EmailSender,
	appBaseURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:    userRepo,
		resetTokens: resetTokens,
		emailSender: emailSender,
		appBaseURL:  appBaseURL,
	}
}

// Execute performs the password reset request.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email: silently succeed
		slog.Debug("password reset requested for unknown email")
		return nil
	}

	resetToken, err := uc.resetTokens.GenerateResetToken(ctx, user.ID, user.Email)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.appBaseURL, resetToken.Token)

	_, err = uc.emailSender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Name:    user.Name,
		Subject: "Reset your Pocket Ledger password",
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>We received a request to reset your password. "+
				"Click the link below to choose a new one. The link expires in 1 hour.</p>"+
				"<p><a href=%q>Reset password</a></p>"+
				"<p>If you did not request this, you can safely ignore this email.</p>",
			user.Name, resetURL,
		),
		Text: fmt.Sprintf(
			"Hi %s,\n\nReset your password using the link below (expires in 1 hour):\n%s\n\n"+
				"If you did not request this, ignore this email.",
			user.Name, resetURL,
		),
	})
	if err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	slog.Info("password reset email sent", "userID", user.ID)
	return nil
}
