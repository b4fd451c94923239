package publisher

import "time"

type PriceRecordEvent struct {
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	Market    string    `json:"market"`
	Price     string    `json:"price"`
}
