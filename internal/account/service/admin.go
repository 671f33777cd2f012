package service

import (
	"context"
	"errors"
	"fmt"

	"segura-mente/internal/account/model"
	"segura-mente/internal/account/validator"
	appErrors "segura-mente/pkg/errors"
	"segura-mente/pkg/utils"
)

// AdminCreate creates an account from the management surface. No verification
// email is sent; the record is forced to verified immediately after creation.
func (s *AccountService) AdminCreate(ctx context.Context, request *model.AdminCreateRequest) (*model.RegisteredResponse, error) {
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

	birthDate, err := validator.ParseBirthDate(request.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse birth date: %w", err)
	}

	accountType := request.AccountType
	if accountType == "" {
		accountType = model.AccountTypeClient
	}

	account := &model.Account{
		Email:                     request.Email,
		Username:                  request.Username,
		IdentificationType:        request.IdentificationType,
		IdentificationNumber:      request.IdentificationNumber,
		BirthDate:                 birthDate,
		Phone:                     request.Phone,
		Address:                   request.Address,
		AccountType:               accountType,
		ProfessionalTraining:      normalizeOptional(request.ProfessionalTraining),
		ProfessionalLicenseNumber: normalizeOptional(request.ProfessionalLicenseNumber),
		PasswordHash:              hashedPassword,
		Verified:                  false,
		VerificationToken:         nil,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	if _, err := s.repo.MarkVerified(ctx, account.Email); err != nil {
		return nil, err
	}

	return &model.RegisteredResponse{
		Email:    account.Email,
		Username: account.Username,
	}, nil
}

// AdminUpdate merges the provided fields over the stored record. Omitted
// fields keep their value; email is the key and cannot change through this
// path. Uniqueness of a changing username or identification is re-checked
// against other records, with the database constraint as the final arbiter.
func (s *AccountService) AdminUpdate(ctx context.Context, email string, request *model.AdminUpdateRequest) (*model.AccountResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, err
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if request.Username != nil && *request.Username != account.Username {
		if other, err := s.repo.FindByUsername(ctx, *request.Username); err == nil && other.Email != account.Email {
			return nil, appErrors.ErrUsernameTaken
		} else if err != nil && !errors.Is(err, appErrors.ErrAccountNotFound) {
			return nil, err
		}
		account.Username = *request.Username
	}

	if request.IdentificationNumber != nil && *request.IdentificationNumber != account.IdentificationNumber {
		if other, err := s.repo.FindByIdentification(ctx, *request.IdentificationNumber); err == nil && other.Email != account.Email {
			return nil, appErrors.ErrIdentificationTaken
		} else if err != nil && !errors.Is(err, appErrors.ErrAccountNotFound) {
			return nil, err
		}
		account.IdentificationNumber = *request.IdentificationNumber
	}

	if request.IdentificationType != nil {
		account.IdentificationType = *request.IdentificationType
	}
	if request.BirthDate != nil {
		birthDate, err := validator.ParseBirthDate(*request.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse birth date: %w", err)
		}
		account.BirthDate = birthDate
	}
	if request.Phone != nil {
		account.Phone = *request.Phone
	}
	if request.Address != nil {
		account.Address = *request.Address
	}
	if request.AccountType != nil {
		account.AccountType = *request.AccountType
	}
	if request.ProfessionalTraining != nil {
		account.ProfessionalTraining = normalizeOptional(request.ProfessionalTraining)
	}
	if request.ProfessionalLicenseNumber != nil {
		account.ProfessionalLicenseNumber = normalizeOptional(request.ProfessionalLicenseNumber)
	}

	// Professional accounts must carry both professional fields, whether the
	// type changed in this request or earlier.
	if account.AccountType == model.AccountTypeProfessional &&
		(account.ProfessionalTraining == nil || account.ProfessionalLicenseNumber == nil) {
		return nil, appErrors.NewValidationError([]appErrors.FieldError{
			{Field: "professionalTraining", Message: "Professional accounts require training and license number"},
		})
	}

	if err := s.repo.Update(ctx, account); err != nil {
		return nil, err
	}

	if request.Password != nil && *request.Password != "" {
		hashedPassword, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if _, err := s.repo.UpdatePassword(ctx, account.Email, hashedPassword); err != nil {
			return nil, err
		}
	}

	return account.ToResponse(), nil
}

func (s *AccountService) AdminDelete(ctx context.Context, email string) error {
	if _, err := s.repo.FindByEmail(ctx, email); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, email)
	if err != nil {
		return err
	}
	if !deleted {
		return appErrors.ErrAccountNotFound
	}
	return nil
}

func (s *AccountService) AdminGet(ctx context.Context, email string) (*model.AccountResponse, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return account.ToResponse(), nil
}

func (s *AccountService) AdminList(ctx context.Context) ([]*model.AccountResponse, error) {
	accounts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*model.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, accounts[i].ToResponse())
	}
	return responses, nil
}
