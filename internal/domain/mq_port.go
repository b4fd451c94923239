package domain

//go:generate mockgen -package=mocks -source=mq_port.go -destination=mocks/mq_port.go

import "context"

type RecordPublisher interface {
	PublishRecords(ctx context.Context, runID string, records []NormalizedRecord) error
}
