package model

// RegisterRequest is the self-service registration payload. Self-registered
// accounts are always created as Client; professional profiles are created
// from the management surface.
type RegisterRequest struct {
	Username             string `json:"username" validate:"required,min=3,max=100,username_charset"`
	IdentificationType   string `json:"identificationType" validate:"required,id_type"`
	IdentificationNumber string `json:"identificationNumber" validate:"required,min=5,max=50,digits_only"`
	BirthDate            string `json:"birthDate" validate:"required,date_format,adult"`
	Phone                string `json:"phone" validate:"required,ten_digit_phone"`
	Address              string `json:"address" validate:"required,min=5,max=255"`
	Email                string `json:"email" validate:"required,email,max=150"`
	Password             string `json:"password" validate:"required,password_complexity"`
	ConfirmPassword      string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// AdminCreateRequest is the management-surface creation payload. It has no
// confirm-password field and may set the account type and professional fields.
// Accounts created here skip email verification.
type AdminCreateRequest struct {
	Username                  string  `json:"username" validate:"required,min=3,max=100,username_charset"`
	IdentificationType        string  `json:"identificationType" validate:"required,id_type"`
	IdentificationNumber      string  `json:"identificationNumber" validate:"required,min=5,max=50,digits_only"`
	BirthDate                 string  `json:"birthDate" validate:"required,date_format,adult"`
	Phone                     string  `json:"phone" validate:"required,ten_digit_phone"`
	Address                   string  `json:"address" validate:"required,min=5,max=255"`
	AccountType               string  `json:"accountType" validate:"omitempty,account_type"`
	ProfessionalTraining      *string `json:"professionalTraining" validate:"required_if=AccountType Professional"`
	ProfessionalLicenseNumber *string `json:"professionalLicenseNumber" validate:"required_if=AccountType Professional"`
	Email                     string  `json:"email" validate:"required,email,max=150"`
	Password                  string  `json:"password" validate:"required,password_complexity"`
}

// AdminUpdateRequest carries partial-update semantics: nil fields keep the
// stored value, set fields replace it. Email is the key and cannot change.
type AdminUpdateRequest struct {
	Username                  *string `json:"username" validate:"omitempty,min=3,max=100,username_charset"`
	IdentificationType        *string `json:"identificationType" validate:"omitempty,id_type"`
	IdentificationNumber      *string `json:"identificationNumber" validate:"omitempty,min=5,max=50,digits_only"`
	BirthDate                 *string `json:"birthDate" validate:"omitempty,date_format,adult"`
	Phone                     *string `json:"phone" validate:"omitempty,ten_digit_phone"`
	Address                   *string `json:"address" validate:"omitempty,min=5,max=255"`
	AccountType               *string `json:"accountType" validate:"omitempty,account_type"`
	ProfessionalTraining      *string `json:"professionalTraining"`
	ProfessionalLicenseNumber *string `json:"professionalLicenseNumber"`
	Password                  *string `json:"password" validate:"omitempty,password_complexity"`
}
