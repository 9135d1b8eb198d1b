package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

const (
	MinPasswordLength = 6
	MinNameLength     = 2
)

// AppValidator implements the usecase.Validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase.Validator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	if err := av.validate.Var(email, "required,email"); err != nil {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidatePassword checks the minimum password length.
func (av *AppValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	return nil
}

// ValidateName checks the minimum display name length.
func (av *AppValidator) ValidateName(name string) error {
	if len([]rune(name)) < MinNameLength {
		return fmt.Errorf("name must be at least %d characters long", MinNameLength)
	}
	return nil
}

// ValidateStruct runs `validate` tags and flattens failures into one message.
func (av *AppValidator) ValidateStruct(s interface{}) error {
	err := av.validate.Struct(s)
	if err == nil {
		return nil
	}
	return errors.New(FormatError(err))
}

// FormatError renders validation failures as "field is required; ..." and
// falls back to err.Error() for anything else (e.g. malformed JSON).
func FormatError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return strings.Join(msgs, "; ")
}

func describe(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// RegisterCustomValidators makes the Gin binding validator report fields by
// their JSON names, so errors read "isActive is required" rather than "IsActive".
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// jsonFieldName prefers the json tag, then the form tag, then the Go name.
func jsonFieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}
