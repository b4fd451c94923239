package domain

import "time"

type CycleOutcome string

const (
	CycleSaved       CycleOutcome = "saved"
	CycleNoData      CycleOutcome = "no_data"
	CycleStoreFailed CycleOutcome = "store_failed"
)

// CycleResult describes one fetch -> normalize -> write pass.
type CycleResult struct {
	ID        string
	Outcome   CycleOutcome
	Timestamp time.Time
	Fetched   int
	Saved     int
	Dropped   int
	Malformed int
	Err       error
}
