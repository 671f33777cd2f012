// Package service implements the account lifecycle workflow: registration,
// email verification, login, and password recovery, plus the administrative
// operations over account records.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"segura-mente/internal/account/model"
	"segura-mente/internal/account/repository"
	"segura-mente/internal/account/validator"
	"segura-mente/internal/config"
	"segura-mente/internal/logger"
	"segura-mente/internal/mail"
	appErrors "segura-mente/pkg/errors"
	"segura-mente/pkg/utils"
)

const resetTokenTTL = 1 * time.Hour

type AccountService struct {
	repo   repository.Repository
	mailer mail.Mailer
	config *config.Config
}

func NewService(repo repository.Repository, mailer mail.Mailer, cfg *config.Config) *AccountService {
	return &AccountService{
		repo:   repo,
		mailer: mailer,
		config: cfg,
	}
}

// VerifyResult reports the outcome of an email verification attempt.
type VerifyResult struct {
	Email           string
	Username        string
	AlreadyVerified bool
}

// Register creates an unverified account and sends the verification email.
// The existence pre-checks give friendly per-field messages; the database
// constraints remain the authority when two registrations race.
func (s *AccountService) Register(ctx context.Context, request *model.RegisterRequest) (*model.RegisteredResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, err
	}

	if err := s.checkAvailability(ctx, request.Email, request.Username, request.IdentificationNumber); err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := utils.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	birthDate, err := validator.ParseBirthDate(request.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse birth date: %w", err)
	}

	account := &model.Account{
		Email:                request.Email,
		Username:             request.Username,
		IdentificationType:   request.IdentificationType,
		IdentificationNumber: request.IdentificationNumber,
		BirthDate:            birthDate,
		Phone:                request.Phone,
		Address:              request.Address,
		AccountType:          model.AccountTypeClient,
		PasswordHash:         hashedPassword,
		Verified:             false,
		VerificationToken:    &token,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	// Delivery is not transactional with creation: the account stays even if
	// the notification fails.
	if err := s.mailer.SendVerificationEmail(ctx, account.Email, account.Username, token); err != nil {
		logger.Warn("Failed to send verification email",
			zap.String("email", account.Email),
			zap.Error(err),
		)
	}

	return &model.RegisteredResponse{
		Email:    account.Email,
		Username: account.Username,
	}, nil
}

// VerifyEmail consumes a verification token. The flip-and-clear is a single
// statement keyed by token, so a replayed token matches nothing and fails.
func (s *AccountService) VerifyEmail(ctx context.Context, token string) (*VerifyResult, error) {
	account, err := s.repo.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, appErrors.ErrAccountNotFound) {
			return nil, appErrors.ErrInvalidToken
		}
		return nil, err
	}

	if account.Verified {
		return &VerifyResult{
			Email:           account.Email,
			Username:        account.Username,
			AlreadyVerified: true,
		}, nil
	}

	verified, err := s.repo.SetVerified(ctx, token)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, appErrors.ErrInvalidToken
	}

	if err := s.mailer.SendWelcomeEmail(ctx, account.Email, account.Username); err != nil {
		logger.Warn("Failed to send welcome email",
			zap.String("email", account.Email),
			zap.Error(err),
		)
	}

	return &VerifyResult{
		Email:    account.Email,
		Username: account.Username,
	}, nil
}

// ResendVerification re-sends the verification email using the token stored
// at registration. The token is deliberately not rotated on resend.
func (s *AccountService) ResendVerification(ctx context.Context, request *model.ResendVerificationRequest) error {
	if err := validator.ValidateStruct(request); err != nil {
		return err
	}

	account, err := s.repo.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}

	if account.Verified {
		return appErrors.ErrAlreadyVerified
	}
	if account.VerificationToken == nil {
		return fmt.Errorf("unverified account %s has no verification token", account.Email)
	}

	return s.mailer.SendVerificationEmail(ctx, account.Email, account.Username, *account.VerificationToken)
}

// Login authenticates a verified account and issues a 7-day session token.
func (s *AccountService) Login(ctx context.Context, request *model.LoginRequest) (*model.LoginResult, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, err
	}

	account, err := s.repo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	if !account.Verified {
		return nil, appErrors.ErrEmailNotVerified
	}

	if !utils.CheckPassword(account.PasswordHash, request.Password) {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(
		account.Email,
		account.Username,
		s.config.JWT.Secret,
		s.config.JWT.SessionTTL(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := s.repo.UpdateLastAccess(ctx, account.Email); err != nil {
		return nil, err
	}

	return &model.LoginResult{
		Token: token,
		User:  account.ToResponse(),
	}, nil
}

// ForgotPassword starts a reset round trip. Whether or not the account exists
// the caller sees the same outcome, so the endpoint cannot be used to
// enumerate registered emails.
func (s *AccountService) ForgotPassword(ctx context.Context, request *model.ForgotPasswordRequest) error {
	if err := validator.ValidateStruct(request); err != nil {
		return err
	}

	account, err := s.repo.FindByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, appErrors.ErrAccountNotFound) {
			logger.Info("Password reset requested for unknown email",
				zap.String("email", request.Email),
			)
			return nil
		}
		return err
	}

	token, err := utils.GenerateToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiry := time.Now().Add(resetTokenTTL)
	if _, err := s.repo.SetResetToken(ctx, account.Email, token, expiry); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordResetEmail(ctx, account.Email, account.Username, token); err != nil {
		logger.Warn("Failed to send password reset email",
			zap.String("email", account.Email),
			zap.Error(err),
		)
	}

	return nil
}

// ResetPassword consumes a reset token strictly before its expiry. Unknown
// and expired tokens are indistinguishable to the caller.
func (s *AccountService) ResetPassword(ctx context.Context, request *model.ResetPasswordRequest) error {
	if err := validator.ValidateStruct(request); err != nil {
		return err
	}

	if len(request.NewPassword) < 8 {
		return appErrors.ErrWeakPassword
	}

	account, err := s.repo.FindByValidResetToken(ctx, request.Token)
	if err != nil {
		if errors.Is(err, appErrors.ErrAccountNotFound) {
			return appErrors.ErrInvalidToken
		}
		return err
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.repo.UpdatePassword(ctx, account.Email, hashedPassword); err != nil {
		return err
	}
	if _, err := s.repo.ClearResetToken(ctx, account.Email); err != nil {
		return err
	}

	return nil
}

// checkAvailability is the UX fast path for the three unique fields. It maps
// each collision to a per-field message before the insert is attempted.
func (s *AccountService) checkAvailability(ctx context.Context, email, username, identification string) error {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return appErrors.ErrEmailTaken
	} else if !errors.Is(err, appErrors.ErrAccountNotFound) {
		return err
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return appErrors.ErrUsernameTaken
	} else if !errors.Is(err, appErrors.ErrAccountNotFound) {
		return err
	}

	if _, err := s.repo.FindByIdentification(ctx, identification); err == nil {
		return appErrors.ErrIdentificationTaken
	} else if !errors.Is(err, appErrors.ErrAccountNotFound) {
		return err
	}

	return nil
}

// normalizeOptional maps empty or blank strings to NULL so the professional
// columns never store empty markers.
func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
