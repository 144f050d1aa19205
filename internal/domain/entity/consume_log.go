package entity

import "time"

// ConsumeLog records one record handled by a listener.
type ConsumeLog struct {
	ConsumerID  string    `json:"consumer_id"`
	ConsumeDate time.Time `json:"consume_date"`
	Topic       string    `json:"topic"`
	Key         string    `json:"key"`
	Event       string    `json:"event"`   // JSON payload as received
	Outcome     string    `json:"outcome"` // handled, rejected, dead-lettered
}
