package usecasecontract

type IValidator interface {
	ValidateEmail(email string) error
	ValidatePassword(password string) error
	ValidateName(name string) error
	// ValidateStruct runs the struct's `validate` tags.
	ValidateStruct(s interface{}) error
}
