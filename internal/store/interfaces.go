package store

import (
	"context"

	"github.com/MKhiriev/go-keeplog/models"
)

// HistoryRepository records and queries the local sync-pass history.
// History is observability only: a write failure must never fail a pass,
// and nothing in the sync algorithm reads it back.
type HistoryRepository interface {
	// Record appends one pass summary.
	Record(ctx context.Context, rec models.PassRecord) error

	// Last returns up to n most recent passes, newest first.
	Last(ctx context.Context, n int) ([]models.PassRecord, error)

	// Close releases the underlying database handle.
	Close() error
}
