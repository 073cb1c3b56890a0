package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this owner"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors collects every field violation found in a single validation pass
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the names of the offending fields, in order
func (e ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, v := range e {
		fields = append(fields, v.Field)
	}
	return fields
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Kind classifies the outcome of an onboarding or role operation
type Kind string

const (
	KindValidationFailed       Kind = "validation_failed"
	KindAuthenticationRequired Kind = "authentication_required"
	KindDuplicateOwner         Kind = "duplicate_owner"
	KindSlugTaken              Kind = "slug_taken"
	KindUploadFailed           Kind = "upload_failed"
	KindPersistenceFailed      Kind = "persistence_failed"
	KindInternalError          Kind = "internal_error"
)

// Message returns the caller-facing message for the kind
func (k Kind) Message() string {
	switch k {
	case KindValidationFailed:
		return "Please check your input and try again"
	case KindAuthenticationRequired:
		return "You must be signed in to perform this action"
	case KindDuplicateOwner:
		return "Organization already exists for this user"
	case KindSlugTaken:
		return "This portal URL is already taken. Please choose another."
	case KindUploadFailed:
		return "Logo upload failed"
	case KindPersistenceFailed:
		return "Failed to create organization in database"
	default:
		return "An unexpected error occurred. Please try again"
	}
}

// OnboardingError is the only error type returned across the onboarding service boundary.
// The collaborator error that caused it is kept for logging and errors.Is, never for callers.
type OnboardingError struct {
	Kind    Kind
	Message string
	Details interface{}
	cause   error
}

func (e *OnboardingError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *OnboardingError) Unwrap() error {
	return e.cause
}

// Is matches any OnboardingError of the same kind
func (e *OnboardingError) Is(target error) bool {
	t, ok := target.(*OnboardingError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewOnboardingError creates an OnboardingError with the kind's default message
func NewOnboardingError(kind Kind, cause error) *OnboardingError {
	return &OnboardingError{Kind: kind, Message: kind.Message(), cause: cause}
}

// KindOf reports the kind carried by err, or KindInternalError for anything else
func KindOf(err error) Kind {
	var oe *OnboardingError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindInternalError
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrAssetNotFound        = &NotFoundError{Entity: "asset"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this slug or owner"}
)

// Onboarding outcome sentinels, for use with errors.Is
var (
	ErrValidationFailed       = &OnboardingError{Kind: KindValidationFailed}
	ErrAuthenticationRequired = &OnboardingError{Kind: KindAuthenticationRequired}
	ErrDuplicateOwner         = &OnboardingError{Kind: KindDuplicateOwner}
	ErrSlugTaken              = &OnboardingError{Kind: KindSlugTaken}
	ErrUploadFailed           = &OnboardingError{Kind: KindUploadFailed}
	ErrPersistenceFailed      = &OnboardingError{Kind: KindPersistenceFailed}
	ErrInternal               = &OnboardingError{Kind: KindInternalError}
)

// Business Logic Errors
var (
	ErrInvalidRole           = errors.New("invalid role")
	ErrFileTooLarge          = errors.New("file size is too large")
	ErrInvalidFileType       = errors.New("file type is not supported")
	ErrStorageNotConfigured  = errors.New("object storage is not configured")
	ErrDirectoryRejected     = errors.New("identity directory rejected the update")
	ErrRepairQueueNotEnabled = errors.New("identity repair queue is not enabled")
)

// Authentication Errors
var (
	ErrPrincipalNotFound = &AuthenticationError{Message: "principal not found in context"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError or a ValidationErrors list
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var validationErrs ValidationErrors
	return errors.As(err, &validationErr) || errors.As(err, &validationErrs)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
