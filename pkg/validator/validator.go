package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a request field (its json name) to human readable messages
type Errors map[string][]string

// Add appends a message for field
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

var (
	validate      = validator.New()
	iranianMobile = regexp.MustCompile(`^09[0-3][0-9]{8}$`)
)

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	// ir_mobile matches Iranian mobile numbers such as 09121234567
	validate.RegisterValidation("ir_mobile", func(fl validator.FieldLevel) bool {
		return iranianMobile.MatchString(fl.Field().String())
	})
}

// ValidateStruct runs struct tag validation and returns nil when data is valid
func ValidateStruct(data interface{}) Errors {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"_": {err.Error()}}
	}

	out := Errors{}
	for _, fe := range verrs {
		field := fieldPath(fe)
		out.Add(field, message(field, fe))
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace: "Req.images[0]" -> "images.0"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	ns = strings.NewReplacer("[", ".", "]", "").Replace(ns)
	return ns
}

func message(field string, fe validator.FieldError) string {
	label := strings.ReplaceAll(field, "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", label)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", label, fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s.", label, fe.Param())
	case "numeric", "number":
		return fmt.Sprintf("The %s field must be a number.", label)
	case "url":
		return fmt.Sprintf("The %s field must be a valid URL.", label)
	case "datetime":
		return fmt.Sprintf("The %s field must match the format Y/m/d H:i:s.", label)
	case "uuid", "uuid4":
		return fmt.Sprintf("The selected %s is invalid.", label)
	case "boolean":
		return fmt.Sprintf("The %s field must be true or false.", label)
	case "ir_mobile":
		return fmt.Sprintf("The %s field format is invalid.", label)
	case "gte", "gt", "lte", "lt":
		return fmt.Sprintf("The %s field must be %s %s.", label, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid (%s).", label, fe.Tag())
	}
}
