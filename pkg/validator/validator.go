package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// ErrNotObject is returned by DecodeObject for any body that is not a JSON object.
var ErrNotObject = errors.New("body must be a JSON object")

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Violation is one failed validation rule. Field is the JSON name of the field.
type Violation struct {
	Field string
	Tag   string
	Param string
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// Violations flattens a Validate error into one Violation per failed field,
// in struct field order. Non-validation errors yield nil.
func Violations(err error) []Violation {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]Violation, 0, len(ve))
	for _, e := range ve {
		out = append(out, Violation{Field: e.Field(), Tag: e.Tag(), Param: e.Param()})
	}
	return out
}

// FormatViolation returns a generic message for v. Callers with
// domain-specific wording for a tag should switch on v.Tag themselves first.
func FormatViolation(v Violation) string {
	if v.Tag == "required" {
		return fmt.Sprintf("missing field: %s", v.Field)
	}
	return fmt.Sprintf("%s: validation failed on '%s'", v.Field, v.Tag)
}

// DecodeObject parses body as a JSON object and returns its members undecoded.
// Empty bodies, malformed JSON, null, arrays and scalars all return ErrNotObject.
func DecodeObject(body []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotObject
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotObject, err)
	}
	return obj, nil
}

// DecodeField decodes obj[name] into a new T.
// present is false when the member is absent; ok is false when it is present
// but null or not representable as T.
func DecodeField[T any](obj map[string]json.RawMessage, name string) (value *T, present, ok bool) {
	raw, present := obj[name]
	if !present {
		return nil, false, false
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, true, false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, true, false
	}
	return &v, true, true
}
