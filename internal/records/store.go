package records

import "context"

// Store is the row-store contract shared by the Sheets and Postgres
// backends. Every call goes straight to the backend; there is no caching.
type Store interface {
	// ListAll returns every record, newest rows last (append order).
	ListAll(ctx context.Context) ([]Record, error)

	// GetByID returns the record with the given id or ErrNotFound.
	GetByID(ctx context.Context, id string) (Record, error)

	// AppendBatch writes all drafts as a single logical operation,
	// assigning ids in submission order. A failure that leaves some rows
	// written is reported as *PartialWriteError.
	AppendBatch(ctx context.Context, drafts []Draft) ([]Record, error)

	// UpdateFields changes only the fields named in the map and refreshes
	// the record timestamp. Returns the updated record or ErrNotFound.
	UpdateFields(ctx context.Context, id string, fields FieldMap) (Record, error)

	// DeleteByID removes the record or returns ErrNotFound.
	DeleteByID(ctx context.Context, id string) error
}
