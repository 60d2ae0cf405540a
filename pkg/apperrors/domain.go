package apperrors

import (
	"fmt"
	"net/http"
)

/*
Factories and predefined variables for the marketplace's domain errors.
*/

// =========================================================================
// Factory functions (used to wrap repository errors)
// =========================================================================

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a storage uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the general 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation is the factory for operations rejected by
// business rules (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus is the factory for illegal status values or
// transitions (400).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Predefined variables (frequent, static errors)
// =========================================================================

// ErrInsufficientPermissions - a non-owner or non-admin attempted a
// guarded mutation.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrUserNotFound - the session's email has no users row. Can happen
// legitimately when the OAuth callback upsert failed silently.
var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

// --- Projects ---

var ErrProjectNotFound = New(
	CodeNotFound,
	"projects",
	"Project not found",
	http.StatusNotFound,
)

// ErrProjectNotOpen - applications are only accepted while the project
// status is "open".
var ErrProjectNotOpen = New(
	CodeInvalidStatus,
	"projects",
	"Project is not open for applications",
	http.StatusBadRequest,
)

// --- Applications ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"applications",
	"Application not found",
	http.StatusNotFound,
)

// ErrApplicationExists - one application per (project, freelancer) pair.
var ErrApplicationExists = New(
	CodeAlreadyExists,
	"applications",
	"You have already applied to this project",
	http.StatusConflict,
)

// --- Categories ---

var ErrCategoryNotFound = New(
	CodeNotFound,
	"categories",
	"Category not found",
	http.StatusNotFound,
)

// ErrSuggestionNotFound - the pending suggestion is missing, not owned
// by the caller, or already resolved.
var ErrSuggestionNotFound = New(
	CodeNotFound,
	"categories",
	"Suggestion not found or already resolved",
	http.StatusNotFound,
)

// ErrCategorySlugTaken - a category with a similar name already exists.
var ErrCategorySlugTaken = New(
	CodeConflict,
	"categories",
	"A similar category already exists",
	http.StatusConflict,
)

// ErrCategorySlugTakenFor builds the 409 used on admin approve, naming
// the attempted rename in the message.
func ErrCategorySlugTakenFor(name string) *AppError {
	return New(
		CodeConflict,
		"categories",
		fmt.Sprintf("A category with a name similar to %q already exists", name),
		http.StatusConflict,
	)
}

// ErrInvalidCategoryName - the proposed name is empty or too short
// after normalization.
var ErrInvalidCategoryName = New(
	CodeValidationFailed,
	"categories",
	"Invalid category name",
	http.StatusBadRequest,
)
