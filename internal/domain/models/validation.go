package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages shared with the services.
const (
	MessageBlank      = "can't be blank"
	MessageTaken      = "has already been taken"
	MessageMissing    = "must exist"
	MessageNotANumber = "is not a number"
)

// ValidationErrors maps a JSON field name to its messages.
type ValidationErrors map[string][]string

// Add appends a message for field.
func (e ValidationErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Merge appends every message of other.
func (e ValidationErrors) Merge(other ValidationErrors) {
	for field, messages := range other {
		for _, message := range messages {
			e.Add(field, message)
		}
	}
}

// Any reports whether at least one message was recorded.
func (e ValidationErrors) Any() bool {
	return len(e) > 0
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// present rejects empty and whitespace-only strings.
	v.RegisterValidation("present", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() == reflect.String {
			return strings.TrimSpace(field.String()) != ""
		}
		return !field.IsZero()
	}, true)

	// isnumber rejects a missing numeric value.
	v.RegisterValidation("isnumber", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		return !(field.Kind() == reflect.Ptr && field.IsNil())
	}, true)

	return v
}

func validateStruct(model interface{}) ValidationErrors {
	errs := ValidationErrors{}

	err := validate.Struct(model)
	if err == nil {
		return errs
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		errs.Add("base", err.Error())
		return errs
	}
	for _, fe := range fieldErrors {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "present", "required":
		return MessageBlank
	case "isnumber":
		return MessageNotANumber
	case "oneof":
		return "must be " + sentence(strings.Fields(fe.Param()))
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return "is invalid"
	}
}

// sentence joins items as "a, b, or c".
func sentence(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
	}
}
