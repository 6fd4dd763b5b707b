package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	// Pakistani CNIC: 12345-1234567-1
	cnicRe = regexp.MustCompile(`^\d{5}-\d{7}-\d$`)
	// Local mobile number: 0300-1234567
	phoneRe = regexp.MustCompile(`^03\d{2}-\d{7}$`)
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("cnic", func(fl validator.FieldLevel) bool {
		return cnicRe.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("pkphone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
}

// Validate checks struct tags and returns field -> failed tag, or nil
// when the value is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}
