package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/workoutlabs/workout-api/internal/api/shared"
	"github.com/workoutlabs/workout-api/internal/domain"
	"github.com/workoutlabs/workout-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrAthleteNotFound),
		errors.Is(err, store.ErrCategoryNotFound),
		errors.Is(err, store.ErrTrainingCenterNotFound):
		return http.StatusNotFound

	// Duplicate errors: the API contract reports these as bad requests,
	// carrying a message that names the conflicting value.
	case errors.Is(err, store.ErrCPFExists),
		errors.Is(err, store.ErrCategoryNameExists),
		errors.Is(err, store.ErrTrainingCenterNameExists):
		return http.StatusBadRequest

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrAthleteNotFound):
		return "Athlete not found"

	case errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"

	case errors.Is(err, store.ErrTrainingCenterNotFound):
		return "Training center not found"

	case errors.Is(err, store.ErrCategoryNameExists):
		return "Category already exists"

	case errors.Is(err, store.ErrTrainingCenterNameExists):
		return "Training center already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid id"

	case errors.Is(err, domain.ErrValidation), isDomainValidationError(err):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// DuplicateCPFMessage renders the API contract's message for a duplicate
// cpf, naming the conflicting value.
func DuplicateCPFMessage(cpf string) string {
	return fmt.Sprintf("Já existe um atleta cadastrado com o CPF: %s", cpf)
}

// HandleAPIError maps the error to a status code and safe message, then
// writes the response. An explicit userMessage overrides the derived one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// isDomainValidationError reports whether err is one of the domain's
// field-level validation sentinels.
func isDomainValidationError(err error) bool {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return true
	}

	return errors.Is(err, domain.ErrEmptyAthleteID) ||
		errors.Is(err, domain.ErrEmptyAthleteName) ||
		errors.Is(err, domain.ErrInvalidCPF) ||
		errors.Is(err, domain.ErrEmptyCategoryRef) ||
		errors.Is(err, domain.ErrEmptyTrainingCenterRef) ||
		errors.Is(err, domain.ErrEmptyCategoryName) ||
		errors.Is(err, domain.ErrCategoryNameTooLong) ||
		errors.Is(err, domain.ErrEmptyTrainingCenterName) ||
		errors.Is(err, domain.ErrTrainingCenterNameTooLong)
}

// SanitizeValidationError removes internal details from go-playground
// validator errors and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format:
	// "Key: 'CreateAthleteRequest.CPF' Error:Field validation for 'CPF' failed on the 'len' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "len":
		return "wrong length"
	case "numeric":
		return "must contain only digits"
	default:
		return "validation failed"
	}
}
