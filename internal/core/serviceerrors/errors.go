package serviceerrors

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindConflict
	KindUnprocessableEntity
	KindInvalidRequest
)

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrProductOptionNotFound = errors.New("product option not found")
)

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

type ServiceError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.cause
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func NewProductNotFoundError(productID string) *ServiceError {
	return &ServiceError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Could not find product with id `%s`.", productID),
		cause:   ErrProductNotFound,
	}
}

func NewProductOptionNotFoundError(productID, optionID string) *ServiceError {
	return &ServiceError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Could not find option with id `%s` on product with id `%s`.", optionID, productID),
		cause:   ErrProductOptionNotFound,
	}
}

func NewConflictError(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: message}
}

func NewUnprocessableEntityError(message string) *ServiceError {
	return &ServiceError{Kind: KindUnprocessableEntity, Message: message}
}

func NewInvalidRequestError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidRequest, Message: message}
}
