// internal/domain/order/validation.go
package order

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var alphaSpaceRegex = regexp.MustCompile(`^[a-zA-Z ]+$`)

var customerValidator = newCustomerValidator()

func newCustomerValidator() *validator.Validate {
	v := validator.New()
	// letters and spaces only, for names and cities
	_ = v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return alphaSpaceRegex.MatchString(fl.Field().String())
	})
	return v
}

// ValidateCustomerInfo checks every checkout field and reports all
// failures at once, never just the first.
func ValidateCustomerInfo(info CustomerInfo) error {
	err := customerValidator.Struct(info)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("customer info validation failed: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldName(fe.Field())] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Phone":
		return "phone"
	case "Address":
		return "address"
	case "City":
		return "city"
	case "PostalCode":
		return "postal_code"
	}
	return structField
}

func fieldMessage(fe validator.FieldError) string {
	switch fieldName(fe.Field()) {
	case "name":
		return "name must be at least 2 alphabetic characters"
	case "email":
		return "a valid email address is required"
	case "phone":
		return "phone must be a 10-digit number"
	case "address":
		return "address must be at least 10 characters"
	case "city":
		return "city must be at least 2 alphabetic characters"
	case "postal_code":
		return "postal code must be a 6-digit number"
	}
	return fmt.Sprintf("invalid value for %s", fe.Field())
}
