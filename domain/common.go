package domain

import (
	"context"
	"errors"
	"fmt"
	"net"
)

const (
	RoleRegular   = "regular"
	RoleModerator = "moderator"

	RatingMin = 1
	RatingMax = 5

	DefaultPageSize = 20
	MaxPageSize     = 100
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"

	// Failure taxonomy shared by every controller. Services wrap these with
	// the offending field or id so handlers can map them without inspecting
	// free text.
	ErrValidationFailed   = errors.New("validation failed")
	ErrReferenceNotFound  = errors.New("referenced entity not found")
	ErrDuplicateEntity    = errors.New("entity already exists")
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("operation not allowed")
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrParseUUID = errors.New("failed to parse UUID")
)

func ValidationFailed(field string) error {
	return fmt.Errorf("%w: %s", ErrValidationFailed, field)
}

func ReferenceNotFound(kind string, id string) error {
	return fmt.Errorf("%w: %s %s", ErrReferenceNotFound, kind, id)
}

func DuplicateEntity(field string) error {
	return fmt.Errorf("%w: %s", ErrDuplicateEntity, field)
}

// IsStorageUnavailable reports whether err is a transient failure of a
// backing store: a blown deadline or a network-level fault such as a refused
// or dropped connection. These are the retryable failures, unlike the rest
// of the taxonomy.
func IsStorageUnavailable(err error) bool {
	if errors.Is(err, ErrStorageUnavailable) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// NormalizePagination applies defaults and clamps the page size instead of
// rejecting oversized requests.
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

type (
	Link struct {
		Href   string `json:"href"`
		Method string `json:"method"`
	}

	// Links is the hypermedia control map attached to every representation.
	Links map[string]Link

	Pagination struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"total_pages"`
	}
)

func NewPagination(page, limit int, total int64) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}
}
