package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "deal-tracker-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100

	defaultSearchLimit = 20
)

// translateValidationError converts a validator error into a typed
// ValidationError naming the first offending field
func translateValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return apperrors.NewValidationError(
			strings.ToLower(fe.Field()),
			fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		)
	}
	return apperrors.NewValidationError("", err.Error())
}

// normalizePage clamps page and limit to their documented defaults:
// page >= 1 (default 1), 1 <= limit <= 100 (default 20)
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	return page, limit
}

// normalizeSearchLimit clamps a search result cap to 1..100 (default 20)
func normalizeSearchLimit(limit int) int {
	if limit < 1 || limit > maxLimit {
		return defaultSearchLimit
	}
	return limit
}

// totalPages computes ceil(total/limit)
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
