package errors

import "errors"

// Business errors
// Note: these are error codes (message IDs for i18n).
// Translations live in internal/infrastructure/i18n/locales/*.json
var (
	ErrNotFound            = errors.New("error.not_found")
	ErrDatabaseUnavailable = errors.New("error.database_unavailable")
	ErrStorageUnavailable  = errors.New("error.storage_unavailable")
	ErrUnauthorized        = errors.New("error.unauthorized")
	ErrForbidden           = errors.New("error.forbidden")
)

// Upload errors
// Note: these too are message IDs; the upload endpoint translates them into
// its own plain {error} payload instead of a problem document.
var (
	ErrFileMissing     = errors.New("error.upload.file_missing")
	ErrFileTooLarge    = errors.New("error.upload.too_large")
	ErrUnsupportedType = errors.New("error.upload.unsupported_type")
)

// ProblemType defines problem type URIs (RFC 7807).
// Note: the base domain comes from configuration (API_BASE_URL).
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError represents a domain error with additional context.
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
