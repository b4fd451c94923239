package domain

//go:generate mockgen -package=mocks -source=record_repo.go -destination=mocks/record_repo.go

import "context"

type RecordRepository interface {
	// EnsureSchema creates the database and the prices table when missing.
	// It is safe to call repeatedly.
	EnsureSchema(ctx context.Context) error
	// SaveRecords appends records in a single transaction: either every row
	// is committed or none is. An empty batch is a no-op.
	SaveRecords(ctx context.Context, records []NormalizedRecord) error
}
