package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"segura-mente/internal/account/model"
	"segura-mente/internal/database"
	appErrors "segura-mente/pkg/errors"
)

// pgUniqueViolation is the SQLSTATE for unique-constraint failures.
const pgUniqueViolation = "23505"

type AccountRepository struct {
	db *database.Database
}

func NewAccountRepository(db *database.Database) *AccountRepository {
	return &AccountRepository{db: db}
}

var _ Repository = (*AccountRepository)(nil)

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *AccountRepository) FindByIdentification(ctx context.Context, identificationNumber string) (*model.Account, error) {
	return r.findOne(ctx, "identification_number = ?", identificationNumber)
}

func (r *AccountRepository) FindByVerificationToken(ctx context.Context, token string) (*model.Account, error) {
	return r.findOne(ctx, "verification_token = ?", token)
}

func (r *AccountRepository) FindByValidResetToken(ctx context.Context, token string) (*model.Account, error) {
	return r.findOne(ctx, "reset_token = ? AND reset_token_expiry > NOW()", token)
}

func (r *AccountRepository) findOne(ctx context.Context, query string, args ...interface{}) (*model.Account, error) {
	var account model.Account
	err := r.db.DB.WithContext(ctx).Where(query, args...).First(&account).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return &account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	if account.RegisteredAt.IsZero() {
		account.RegisteredAt = time.Now()
	}

	if err := r.db.DB.WithContext(ctx).Create(account).Error; err != nil {
		if dup := duplicateKeyError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Update writes the full profile columns of the account keyed by its email.
// The email itself is never part of the SET list.
func (r *AccountRepository) Update(ctx context.Context, account *model.Account) error {
	result := r.db.DB.WithContext(ctx).Model(&model.Account{}).
		Where("email = ?", account.Email).
		Updates(map[string]interface{}{
			"username":                    account.Username,
			"identification_type":         account.IdentificationType,
			"identification_number":       account.IdentificationNumber,
			"birth_date":                  account.BirthDate,
			"phone":                       account.Phone,
			"address":                     account.Address,
			"account_type":                account.AccountType,
			"professional_training":       account.ProfessionalTraining,
			"professional_license_number": account.ProfessionalLicenseNumber,
		})

	if result.Error != nil {
		if dup := duplicateKeyError(result.Error); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) SetVerified(ctx context.Context, token string) (bool, error) {
	result := r.db.DB.WithContext(ctx).Model(&model.Account{}).
		Where("verification_token = ?", token).
		Updates(map[string]interface{}{
			"verified":           true,
			"verification_token": nil,
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to verify account: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *AccountRepository) MarkVerified(ctx context.Context, email string) (bool, error) {
	result := r.db.DB.WithContext(ctx).Model(&model.Account{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"verified":           true,
			"verification_token": nil,
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to mark account verified: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error) {
	result := r.db.DB.WithContext(ctx).Model(&model.Account{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash)

	if result.Error != nil {
		return false, fmt.Errorf("failed to update password: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *AccountRepository) SetResetToken(ctx context.Context, email, token string, expiry time.Time) (bool, error) {
	result := r.db.DB.WithContext(ctx).Model(&model.Account{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"reset_token":        token,
			"reset_token_expiry": expiry,
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to set reset token: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *AccountRepository) ClearResetToken(ctx context.Context, email string) (bool, error) {
	result := r.db.DB.WithContext(ctx).Model(&model.Account{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"reset_token":        nil,
			"reset_token_expiry": nil,
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to clear reset token: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *AccountRepository) UpdateLastAccess(ctx context.Context, email string) error {
	result := r.db.DB.WithContext(ctx).Model(&model.Account{}).
		Where("email = ?", email).
		Update("last_access_at", time.Now())

	if result.Error != nil {
		return fmt.Errorf("failed to update last access: %w", result.Error)
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, email string) (bool, error) {
	result := r.db.DB.WithContext(ctx).Where("email = ?", email).Delete(&model.Account{})

	if result.Error != nil {
		return false, fmt.Errorf("failed to delete account: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *AccountRepository) ListAll(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	err := r.db.DB.WithContext(ctx).
		Select("email", "username", "identification_type", "identification_number",
			"birth_date", "phone", "address", "account_type", "professional_training",
			"professional_license_number", "verified", "registered_at", "last_access_at").
		Order("registered_at DESC").
		Find(&accounts).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// duplicateKeyError maps a unique-constraint violation to the sentinel of the
// column that collided. The constraint is the sole authority for uniqueness;
// the workflow's pre-checks are only a fast path.
func duplicateKeyError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}

	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return appErrors.ErrUsernameTaken
	case strings.Contains(pgErr.ConstraintName, "identification"):
		return appErrors.ErrIdentificationTaken
	default:
		return appErrors.ErrEmailTaken
	}
}
