package model

import "time"

// OutboxMessageModel is the GORM-specific struct for the 'outbox_messages' table.
// Both services carry the same table.
type OutboxMessageModel struct {
	ID            int64             `gorm:"primaryKey;autoIncrement"`
	Topic         string            `gorm:"type:varchar(255);not null"`
	MessageKey    string            `gorm:"type:varchar(255);not null"`
	Payload       []byte            `gorm:"type:bytea;not null"`
	Headers       map[string]string `gorm:"type:jsonb;not null;serializer:json"`
	Status        string            `gorm:"type:varchar(16);not null;default:pending;index:idx_outbox_messages_status_next_attempt,priority:1"`
	Attempts      int               `gorm:"not null;default:0"`
	NextAttemptAt time.Time         `gorm:"type:timestamptz;not null;index:idx_outbox_messages_status_next_attempt,priority:2"`
	LastError     string            `gorm:"type:text;not null;default:''"`
	CreatedAt     time.Time         `gorm:"type:timestamptz;not null"`
	SentAt        *time.Time        `gorm:"type:timestamptz"`
}

// TableName explicitly sets the table name for GORM.
func (OutboxMessageModel) TableName() string {
	return "outbox_messages"
}
