package model

import "time"

// AccountResponse is the safe projection of an account. No hash, no tokens.
type AccountResponse struct {
	Email                     string     `json:"email"`
	Username                  string     `json:"username"`
	IdentificationType        string     `json:"identificationType"`
	IdentificationNumber      string     `json:"identificationNumber"`
	BirthDate                 string     `json:"birthDate"`
	Phone                     string     `json:"phone"`
	Address                   string     `json:"address"`
	AccountType               string     `json:"accountType"`
	ProfessionalTraining      *string    `json:"professionalTraining"`
	ProfessionalLicenseNumber *string    `json:"professionalLicenseNumber"`
	Verified                  bool       `json:"verified"`
	RegisteredAt              time.Time  `json:"registeredAt"`
	LastAccessAt              *time.Time `json:"lastAccessAt"`
}

// RegisteredResponse is the minimal payload returned after registration.
type RegisteredResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// LoginResult bundles the session token with the safe user projection.
type LoginResult struct {
	Token string
	User  *AccountResponse
}
