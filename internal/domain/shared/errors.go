package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Funds errors

type InsufficientFundsError struct {
	*DomainError
	Required  int
	Available int
}

func NewInsufficientFundsError(required, available int) *InsufficientFundsError {
	return &InsufficientFundsError{
		DomainError: &DomainError{Message: fmt.Sprintf("insufficient funds: need $%d, have $%d", required, available)},
		Required:    required,
		Available:   available,
	}
}

// Personnel errors

type InsufficientPersonnelError struct {
	*DomainError
	Role      string
	Required  int
	Available int
}

func NewInsufficientPersonnelError(role string, required, available int) *InsufficientPersonnelError {
	return &InsufficientPersonnelError{
		DomainError: &DomainError{Message: fmt.Sprintf("insufficient %ss: need %d, have %d", role, required, available)},
		Role:        role,
		Required:    required,
		Available:   available,
	}
}

// Capacity errors

type CapacityError struct {
	*DomainError
	Capacity int
}

func NewCapacityError(what string, capacity int) *CapacityError {
	return &CapacityError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s is full (capacity %d)", what, capacity)},
		Capacity:    capacity,
	}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError indicates a referenced entity does not exist in the session

type NotFoundError struct {
	*DomainError
	Kind string
	ID   string
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s not found: %s", kind, id)},
		Kind:        kind,
		ID:          id,
	}
}
