package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	appErrors "segura-mente/pkg/errors"
	"segura-mente/pkg/utils"
)

const birthDateLayout = "2006-01-02"

// Age is computed with a 365.25-day year. This approximation is the defined
// semantics of the system, not a shortcut.
const daysPerYear = 365.25

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_áéíóúÁÉÍÓÚñÑ\s]+$`)
	digitsRe   = regexp.MustCompile(`^[0-9]+$`)
	phoneRe    = regexp.MustCompile(`^[0-9]{10}$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report errors under the JSON field names the client sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister("username_charset", validateUsernameCharset)
	mustRegister("id_type", validateIdentificationType)
	mustRegister("digits_only", validateDigitsOnly)
	mustRegister("date_format", validateDateFormat)
	mustRegister("adult", validateAdult)
	mustRegister("ten_digit_phone", validatePhone)
	mustRegister("account_type", validateAccountType)
	mustRegister("password_complexity", validatePasswordComplexity)
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %q validation: %v", tag, err))
	}
}

// ValidateStruct runs the declarative rule set of the given payload and
// returns either nil or a ValidationError with the ordered field errors.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fes validator.ValidationErrors
	if !errors.As(err, &fes) {
		return fmt.Errorf("validation internal error: %w", err)
	}

	fieldErrors := make([]appErrors.FieldError, 0, 4)
	for _, fe := range fes {
		fieldErrors = append(fieldErrors, appErrors.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return appErrors.NewValidationError(fieldErrors)
}

// AgeFromBirthDate computes the age policy used at registration.
func AgeFromBirthDate(birth time.Time, now time.Time) int {
	return int(now.Sub(birth).Hours() / 24 / daysPerYear)
}

// ParseBirthDate parses the wire format of birth dates.
func ParseBirthDate(value string) (time.Time, error) {
	return time.Parse(birthDateLayout, value)
}

func validateUsernameCharset(fl validator.FieldLevel) bool {
	return usernameRe.MatchString(fl.Field().String())
}

func validateIdentificationType(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "CC" || v == "CE"
}

func validateDigitsOnly(fl validator.FieldLevel) bool {
	return digitsRe.MatchString(fl.Field().String())
}

func validateDateFormat(fl validator.FieldLevel) bool {
	_, err := ParseBirthDate(fl.Field().String())
	return err == nil
}

func validateAdult(fl validator.FieldLevel) bool {
	birth, err := ParseBirthDate(fl.Field().String())
	if err != nil {
		// date_format reports unparseable values
		return true
	}
	age := AgeFromBirthDate(birth, time.Now())
	return age >= 18 && age <= 120
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRe.MatchString(fl.Field().String())
}

func validateAccountType(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "Client" || v == "Professional"
}

func validatePasswordComplexity(fl validator.FieldLevel) bool {
	return utils.ValidatePassword(fl.Field().String()) == nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", fe.Field())
	case "required_if":
		return fmt.Sprintf("The %s field is required for professional accounts", fe.Field())
	case "min":
		return fmt.Sprintf("The %s field must have at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must have at most %s characters", fe.Field(), fe.Param())
	case "email":
		return "Must be a valid email address"
	case "eqfield":
		return "Passwords do not match"
	case "username_charset":
		return "The username may only contain letters, numbers, underscores and spaces"
	case "id_type":
		return "The identification type must be CC or CE"
	case "digits_only":
		return fmt.Sprintf("The %s field may only contain numbers", fe.Field())
	case "date_format":
		return "Must be a valid date in YYYY-MM-DD format"
	case "adult":
		return "You must be between 18 and 120 years old"
	case "ten_digit_phone":
		return "The phone number must have exactly 10 digits"
	case "account_type":
		return "The account type must be Client or Professional"
	case "password_complexity":
		return "The password must be at least 8 characters and contain an uppercase letter, " +
			"a lowercase letter, a number and a symbol (" + utils.PasswordSymbols + ")"
	default:
		return fmt.Sprintf("The %s field is invalid", fe.Field())
	}
}
