package repositories

import (
	"context"
	"time"

	"github.com/boki-app/boki_backend/internal/core/domain"
)

// ReportingRepository provides read-only line data for report computation.
type ReportingRepository interface {
	// ListPostedLines returns every line posted to accountID, filtered by
	// an inclusive [from, to] window when the bounds are non-nil, sorted
	// by (entry date asc, entry no asc, line order asc).
	ListPostedLines(ctx context.Context, accountID string, from, to *time.Time) ([]domain.PostedLine, error)

	// ListPostedLinesUpTo returns all lines whose entry date is <= asOf
	// (all lines when asOf is nil), in the same order as ListPostedLines.
	ListPostedLinesUpTo(ctx context.Context, asOf *time.Time) ([]domain.PostedLine, error)
}
