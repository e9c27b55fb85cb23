package leads

import (
	"context"

	"moveflow/models"
)

// Repository persists funnel outcome records.
type Repository interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	GetByBookingID(ctx context.Context, bookingID string) (*models.Lead, error)
	UpdateStatus(ctx context.Context, id, status, failureKind string) error
}
