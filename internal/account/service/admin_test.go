package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"segura-mente/internal/account/model"
	appErrors "segura-mente/pkg/errors"
	"segura-mente/pkg/utils"
)

func adminCreateRequest() *model.AdminCreateRequest {
	return &model.AdminCreateRequest{
		Username:             "bob_01",
		IdentificationType:   "CE",
		IdentificationNumber: "987654321",
		BirthDate:            "1985-06-15",
		Phone:                "3109876543",
		Address:              "Carrera 7 # 45-10",
		Email:                "bob@ex.com",
		Password:             "Str0ng_Pass!",
	}
}

func mustAdminCreate(t *testing.T, svc *AccountService) {
	t.Helper()
	_, err := svc.AdminCreate(context.Background(), adminCreateRequest())
	require.NoError(t, err)
}

func strPtr(s string) *string { return &s }

func TestAdminCreateIsPreVerified(t *testing.T) {
	svc, repo, mailer := newTestService()

	registered, err := svc.AdminCreate(context.Background(), adminCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "bob@ex.com", registered.Email)

	stored := repo.accounts["bob@ex.com"]
	require.NotNil(t, stored)
	assert.True(t, stored.Verified)
	assert.Nil(t, stored.VerificationToken)
	assert.Equal(t, model.AccountTypeClient, stored.AccountType)

	// Admin-created accounts can log in right away.
	result, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "bob@ex.com",
		Password: "Str0ng_Pass!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	assert.Empty(t, mailer.sent, "no verification email for admin-created accounts")
}

func TestAdminCreateProfessional(t *testing.T) {
	svc, repo, _ := newTestService()

	request := adminCreateRequest()
	request.AccountType = model.AccountTypeProfessional
	request.ProfessionalTraining = strPtr("  Clinical Psychology  ")
	request.ProfessionalLicenseNumber = strPtr("TP-12345")

	_, err := svc.AdminCreate(context.Background(), request)
	require.NoError(t, err)

	stored := repo.accounts["bob@ex.com"]
	assert.Equal(t, model.AccountTypeProfessional, stored.AccountType)
	require.NotNil(t, stored.ProfessionalTraining)
	assert.Equal(t, "Clinical Psychology", *stored.ProfessionalTraining)
}

func TestAdminCreateProfessionalWithoutFields(t *testing.T) {
	svc, _, _ := newTestService()

	request := adminCreateRequest()
	request.AccountType = model.AccountTypeProfessional

	_, err := svc.AdminCreate(context.Background(), request)
	var validationErr *appErrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestAdminCreateDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	mustAdminCreate(t, svc)

	request := adminCreateRequest()
	request.Username = "bob_02"
	request.IdentificationNumber = "111111111"

	_, err := svc.AdminCreate(context.Background(), request)
	assert.ErrorIs(t, err, appErrors.ErrEmailTaken)
}

func TestAdminUpdateMergesProvidedFields(t *testing.T) {
	svc, repo, _ := newTestService()
	mustAdminCreate(t, svc)

	updated, err := svc.AdminUpdate(context.Background(), "bob@ex.com", &model.AdminUpdateRequest{
		Phone:   strPtr("3200000000"),
		Address: strPtr("Avenida 68 # 1-20"),
	})
	require.NoError(t, err)

	assert.Equal(t, "3200000000", updated.Phone)
	assert.Equal(t, "Avenida 68 # 1-20", updated.Address)
	// Untouched fields keep their stored values.
	assert.Equal(t, "bob_01", updated.Username)
	assert.Equal(t, "987654321", updated.IdentificationNumber)

	assert.Equal(t, "3200000000", repo.accounts["bob@ex.com"].Phone)
}

func TestAdminUpdateUnknownAccount(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.AdminUpdate(context.Background(), "ghost@ex.com", &model.AdminUpdateRequest{
		Phone: strPtr("3200000000"),
	})
	assert.ErrorIs(t, err, appErrors.ErrAccountNotFound)
}

func TestAdminUpdateUsernameCollision(t *testing.T) {
	svc, repo, _ := newTestService()
	mustAdminCreate(t, svc)
	mustRegister(t, svc, repo) // alice_99

	_, err := svc.AdminUpdate(context.Background(), "bob@ex.com", &model.AdminUpdateRequest{
		Username: strPtr("alice_99"),
	})
	assert.ErrorIs(t, err, appErrors.ErrUsernameTaken)

	// Re-submitting the account's own username is not a collision.
	_, err = svc.AdminUpdate(context.Background(), "bob@ex.com", &model.AdminUpdateRequest{
		Username: strPtr("bob_01"),
	})
	assert.NoError(t, err)
}

func TestAdminUpdateIdentificationCollision(t *testing.T) {
	svc, repo, _ := newTestService()
	mustAdminCreate(t, svc)
	mustRegister(t, svc, repo) // identification 123456789

	_, err := svc.AdminUpdate(context.Background(), "bob@ex.com", &model.AdminUpdateRequest{
		IdentificationNumber: strPtr("123456789"),
	})
	assert.ErrorIs(t, err, appErrors.ErrIdentificationTaken)
}

func TestAdminUpdatePromotionToProfessional(t *testing.T) {
	svc, repo, _ := newTestService()
	mustAdminCreate(t, svc)

	// Changing the type without the professional fields is rejected.
	_, err := svc.AdminUpdate(context.Background(), "bob@ex.com", &model.AdminUpdateRequest{
		AccountType: strPtr(model.AccountTypeProfessional),
	})
	var validationErr *appErrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	updated, err := svc.AdminUpdate(context.Background(), "bob@ex.com", &model.AdminUpdateRequest{
		AccountType:               strPtr(model.AccountTypeProfessional),
		ProfessionalTraining:      strPtr("Clinical Psychology"),
		ProfessionalLicenseNumber: strPtr("TP-12345"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.AccountTypeProfessional, updated.AccountType)

	// A later partial update must not strip the professional fields.
	updated, err = svc.AdminUpdate(context.Background(), "bob@ex.com", &model.AdminUpdateRequest{
		Phone: strPtr("3200000000"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ProfessionalTraining)
	assert.Equal(t, "Clinical Psychology", *updated.ProfessionalTraining)

	require.NotNil(t, repo.accounts["bob@ex.com"].ProfessionalLicenseNumber)
}

func TestAdminUpdateChangesPassword(t *testing.T) {
	svc, repo, _ := newTestService()
	mustAdminCreate(t, svc)

	_, err := svc.AdminUpdate(context.Background(), "bob@ex.com", &model.AdminUpdateRequest{
		Password: strPtr("N3w_Passw0rd!"),
	})
	require.NoError(t, err)

	stored := repo.accounts["bob@ex.com"]
	assert.True(t, utils.CheckPassword(stored.PasswordHash, "N3w_Passw0rd!"))
	assert.False(t, utils.CheckPassword(stored.PasswordHash, "Str0ng_Pass!"))
}

func TestAdminUpdateBirthDate(t *testing.T) {
	svc, _, _ := newTestService()
	mustAdminCreate(t, svc)

	updated, err := svc.AdminUpdate(context.Background(), "bob@ex.com", &model.AdminUpdateRequest{
		BirthDate: strPtr("1980-02-29"),
	})
	require.NoError(t, err)
	assert.Equal(t, "1980-02-29", updated.BirthDate)
}

func TestAdminDelete(t *testing.T) {
	svc, repo, _ := newTestService()
	mustAdminCreate(t, svc)

	require.NoError(t, svc.AdminDelete(context.Background(), "bob@ex.com"))
	assert.Empty(t, repo.accounts)

	err := svc.AdminDelete(context.Background(), "bob@ex.com")
	assert.ErrorIs(t, err, appErrors.ErrAccountNotFound)
}

func TestAdminGet(t *testing.T) {
	svc, _, _ := newTestService()
	mustAdminCreate(t, svc)

	response, err := svc.AdminGet(context.Background(), "bob@ex.com")
	require.NoError(t, err)
	assert.Equal(t, "bob_01", response.Username)
	assert.Equal(t, "1985-06-15", response.BirthDate)

	_, err = svc.AdminGet(context.Background(), "ghost@ex.com")
	assert.ErrorIs(t, err, appErrors.ErrAccountNotFound)
}

func TestAdminListNewestFirst(t *testing.T) {
	svc, repo, _ := newTestService()
	mustAdminCreate(t, svc)
	repo.accounts["bob@ex.com"].RegisteredAt = time.Now().Add(-time.Hour)
	mustRegister(t, svc, repo)

	responses, err := svc.AdminList(context.Background())
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "alice@ex.com", responses[0].Email)
	assert.Equal(t, "bob@ex.com", responses[1].Email)
}
