package validator

import (
	"net/url"
	"reflect"

	"stayhub/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
}

// ValidateForm fills the given struct from submitted form values using its
// `form` tags, then performs validation on the struct using the validator
// package. Form fields are raw text; any coercion beyond string assignment
// belongs to the caller.
// https://github.com/go-playground/validator
func ValidateForm[T any](values url.Values, data *T) error {
	decodeForm(values, data)

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func decodeForm(values url.Values, data any) {
	value := reflect.ValueOf(data).Elem()
	valueType := value.Type()

	for index := range value.NumField() {
		fieldName := valueType.Field(index).Tag.Get("form")
		if fieldName == "" {
			continue
		}

		field := value.Field(index)
		if field.Kind() != reflect.String || !field.CanSet() {
			continue
		}

		field.SetString(values.Get(fieldName))
	}
}
