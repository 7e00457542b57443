package authsdk

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so errors match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the event's shape. Returns a map of field names to error
// messages, or nil if all fields are valid. A whitespace-only methodArn
// counts as missing.
func (r AuthorizeRequest) Validate() map[string]string {
	errs := make(map[string]string)

	r.MethodArn = strings.TrimSpace(r.MethodArn)
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return map[string]string{"request": err.Error()}
		}
		for _, fe := range verrs {
			errs[fe.Field()] = reason(fe)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "invalid"
	}
}
