package model

import "time"

// Identification document types accepted at registration.
const (
	IdentificationCC = "CC"
	IdentificationCE = "CE"
)

const (
	AccountTypeClient       = "Client"
	AccountTypeProfessional = "Professional"
)

// Account is the sole persisted entity. Email is the primary key and is
// immutable after creation; username and identification number are unique
// across all accounts, enforced by database constraints.
type Account struct {
	Email                     string     `gorm:"primaryKey;column:email"`
	Username                  string     `gorm:"column:username"`
	IdentificationType        string     `gorm:"column:identification_type"`
	IdentificationNumber      string     `gorm:"column:identification_number"`
	BirthDate                 time.Time  `gorm:"column:birth_date"`
	Phone                     string     `gorm:"column:phone"`
	Address                   string     `gorm:"column:address"`
	AccountType               string     `gorm:"column:account_type"`
	ProfessionalTraining      *string    `gorm:"column:professional_training"`
	ProfessionalLicenseNumber *string    `gorm:"column:professional_license_number"`
	PasswordHash              string     `gorm:"column:password_hash"`
	Verified                  bool       `gorm:"column:verified"`
	VerificationToken         *string    `gorm:"column:verification_token"`
	ResetToken                *string    `gorm:"column:reset_token"`
	ResetTokenExpiry          *time.Time `gorm:"column:reset_token_expiry"`
	RegisteredAt              time.Time  `gorm:"column:registered_at"`
	LastAccessAt              *time.Time `gorm:"column:last_access_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// ToResponse projects the account into its safe external shape. The password
// hash and both token columns never leave the repository boundary.
func (a *Account) ToResponse() *AccountResponse {
	return &AccountResponse{
		Email:                     a.Email,
		Username:                  a.Username,
		IdentificationType:        a.IdentificationType,
		IdentificationNumber:      a.IdentificationNumber,
		BirthDate:                 a.BirthDate.Format("2006-01-02"),
		Phone:                     a.Phone,
		Address:                   a.Address,
		AccountType:               a.AccountType,
		ProfessionalTraining:      a.ProfessionalTraining,
		ProfessionalLicenseNumber: a.ProfessionalLicenseNumber,
		Verified:                  a.Verified,
		RegisteredAt:              a.RegisteredAt,
		LastAccessAt:              a.LastAccessAt,
	}
}
