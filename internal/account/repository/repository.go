package repository

import (
	"context"
	"time"

	"segura-mente/internal/account/model"
)

// Repository is the account record store. All operations are single-record
// and keyed; uniqueness under concurrent creation is guaranteed by database
// constraints, not by callers' pre-checks.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	FindByUsername(ctx context.Context, username string) (*model.Account, error)
	FindByIdentification(ctx context.Context, identificationNumber string) (*model.Account, error)
	FindByVerificationToken(ctx context.Context, token string) (*model.Account, error)
	// FindByValidResetToken only matches tokens strictly before their expiry.
	FindByValidResetToken(ctx context.Context, token string) (*model.Account, error)

	Create(ctx context.Context, account *model.Account) error
	Update(ctx context.Context, account *model.Account) error

	// SetVerified flips verified=true and clears the verification token in a
	// single statement keyed by token. Returns false when no record matched,
	// which is how replayed tokens are detected.
	SetVerified(ctx context.Context, token string) (bool, error)
	// MarkVerified forces verified=true by email. Used for accounts created
	// from the management surface, which skip email verification.
	MarkVerified(ctx context.Context, email string) (bool, error)

	UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error)
	SetResetToken(ctx context.Context, email, token string, expiry time.Time) (bool, error)
	ClearResetToken(ctx context.Context, email string) (bool, error)
	UpdateLastAccess(ctx context.Context, email string) error

	Delete(ctx context.Context, email string) (bool, error)
	// ListAll returns every account, newest registration first, with the
	// password hash and token columns left out of the projection.
	ListAll(ctx context.Context) ([]model.Account, error)
}
