package validator

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"segura-mente/internal/account/model"
	appErrors "segura-mente/pkg/errors"
)

func validRegisterRequest() *model.RegisterRequest {
	return &model.RegisterRequest{
		Username:             "alice_99",
		IdentificationType:   "CC",
		IdentificationNumber: "123456789",
		BirthDate:            "1990-01-01",
		Phone:                "3001234567",
		Address:              "Calle 10 # 5-32",
		Email:                "alice@ex.com",
		Password:             "Str0ng_Pass!",
		ConfirmPassword:      "Str0ng_Pass!",
	}
}

func fieldErrors(t *testing.T, err error) []appErrors.FieldError {
	t.Helper()
	var validationErr *appErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	return validationErr.Errors
}

func TestRegisterRequestValid(t *testing.T) {
	assert.NoError(t, ValidateStruct(validRegisterRequest()))
}

func TestRegisterRequestFieldRules(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.RegisterRequest)
		wantField string
	}{
		{"missing username", func(r *model.RegisterRequest) { r.Username = "" }, "username"},
		{"username too short", func(r *model.RegisterRequest) { r.Username = "ab" }, "username"},
		{"username bad charset", func(r *model.RegisterRequest) { r.Username = "alice!99" }, "username"},
		{"bad identification type", func(r *model.RegisterRequest) { r.IdentificationType = "TI" }, "identificationType"},
		{"identification too short", func(r *model.RegisterRequest) { r.IdentificationNumber = "1234" }, "identificationNumber"},
		{"identification not numeric", func(r *model.RegisterRequest) { r.IdentificationNumber = "12345a" }, "identificationNumber"},
		{"missing birth date", func(r *model.RegisterRequest) { r.BirthDate = "" }, "birthDate"},
		{"unparseable birth date", func(r *model.RegisterRequest) { r.BirthDate = "01/01/1990" }, "birthDate"},
		{"phone too short", func(r *model.RegisterRequest) { r.Phone = "300123456" }, "phone"},
		{"phone not numeric", func(r *model.RegisterRequest) { r.Phone = "300123456a" }, "phone"},
		{"address too short", func(r *model.RegisterRequest) { r.Address = "x" }, "address"},
		{"bad email", func(r *model.RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"weak password", func(r *model.RegisterRequest) { r.Password = "weakpass"; r.ConfirmPassword = "weakpass" }, "password"},
		{"password mismatch", func(r *model.RegisterRequest) { r.ConfirmPassword = "Other_Pass1!" }, "confirmPassword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validRegisterRequest()
			tt.mutate(request)

			errs := fieldErrors(t, ValidateStruct(request))

			found := false
			for _, fe := range errs {
				if fe.Field == tt.wantField {
					found = true
					assert.NotEmpty(t, fe.Message)
				}
			}
			assert.True(t, found, "expected an error for field %s, got %v", tt.wantField, errs)
		})
	}
}

func TestUsernameAcceptsAccentedCharacters(t *testing.T) {
	request := validRegisterRequest()
	request.Username = "maría niño_1"
	assert.NoError(t, ValidateStruct(request))
}

func TestAgeBoundaries(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		birth   time.Time
		wantErr bool
	}{
		{"just over 18", now.AddDate(-19, 0, 0), false},
		{"just under 18", now.AddDate(-17, 0, 0), true},
		{"very old but accepted", now.AddDate(-119, 0, 0), false},
		{"over 120", now.AddDate(-122, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validRegisterRequest()
			request.BirthDate = tt.birth.Format("2006-01-02")
			err := ValidateStruct(request)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAgeFromBirthDateUsesQuarterDayYears(t *testing.T) {
	// 1990-01-01 to 2008-01-01 spans 6574 days, just under 18 * 365.25, so
	// the policy counts this person as 17 on their 18th birthday.
	now := time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC)
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 17, AgeFromBirthDate(birth, now))

	birth = time.Date(1989, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 18, AgeFromBirthDate(birth, now))
}

func TestAdminCreateRequiresProfessionalFields(t *testing.T) {
	training := "Clinical Psychology"
	license := "TP-12345"

	base := model.AdminCreateRequest{
		Username:             "bob_01",
		IdentificationType:   "CE",
		IdentificationNumber: "987654321",
		BirthDate:            "1985-06-15",
		Phone:                "3109876543",
		Address:              "Carrera 7 # 45-10",
		Email:                "bob@ex.com",
		Password:             "Str0ng_Pass!",
	}

	t.Run("client without professional fields", func(t *testing.T) {
		request := base
		request.AccountType = model.AccountTypeClient
		assert.NoError(t, ValidateStruct(&request))
	})

	t.Run("professional without fields fails", func(t *testing.T) {
		request := base
		request.AccountType = model.AccountTypeProfessional
		err := ValidateStruct(&request)
		errs := fieldErrors(t, err)
		fields := make([]string, 0, len(errs))
		for _, fe := range errs {
			fields = append(fields, fe.Field)
		}
		assert.Contains(t, fields, "professionalTraining")
		assert.Contains(t, fields, "professionalLicenseNumber")
	})

	t.Run("professional with fields", func(t *testing.T) {
		request := base
		request.AccountType = model.AccountTypeProfessional
		request.ProfessionalTraining = &training
		request.ProfessionalLicenseNumber = &license
		assert.NoError(t, ValidateStruct(&request))
	})
}

func TestAdminUpdateOmittedFieldsAreSkipped(t *testing.T) {
	assert.NoError(t, ValidateStruct(&model.AdminUpdateRequest{}))

	bad := "ab"
	err := ValidateStruct(&model.AdminUpdateRequest{Username: &bad})
	errs := fieldErrors(t, err)
	assert.Equal(t, "username", errs[0].Field)
}

func TestValidationErrorsKeepFieldOrder(t *testing.T) {
	request := validRegisterRequest()
	request.Username = ""
	request.Phone = ""

	errs := fieldErrors(t, ValidateStruct(request))
	require.GreaterOrEqual(t, len(errs), 2)

	// Struct declaration order: username before phone.
	var positions []string
	for _, fe := range errs {
		positions = append(positions, fe.Field)
	}
	assert.Less(t, indexOf(positions, "username"), indexOf(positions, "phone"))
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return len(values)
}

func TestParseBirthDate(t *testing.T) {
	parsed, err := ParseBirthDate("1990-01-01")
	require.NoError(t, err)
	assert.Equal(t, 1990, parsed.Year())

	for _, bad := range []string{"1990-13-01", "01-01-1990", "yesterday", ""} {
		t.Run(fmt.Sprintf("rejects %q", bad), func(t *testing.T) {
			_, err := ParseBirthDate(bad)
			assert.Error(t, err)
		})
	}
}
