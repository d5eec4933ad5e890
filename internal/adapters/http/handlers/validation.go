package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafaelleal24/products-api/internal/core/serviceerrors"
)

// RegisterJSONFieldNames makes validation errors report json field names
// instead of Go struct field names.
func RegisterJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
}

// NewBindingError turns a ShouldBindJSON failure into an invalid request error.
func NewBindingError(err error) *serviceerrors.ServiceError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			messages = append(messages, fieldMessage(fe))
		}
		return serviceerrors.NewInvalidRequestError(strings.Join(messages, "; "))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return serviceerrors.NewInvalidRequestError("request body must be a JSON object")
		}
		return serviceerrors.NewInvalidRequestError(fmt.Sprintf("%s has an invalid value", typeErr.Field))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return serviceerrors.NewInvalidRequestError("request body must be valid JSON")
	}

	// Decoder messages name Go types; they stay out of the response.
	return serviceerrors.NewInvalidRequestError("request body is invalid")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
