package postgres

import (
	"context"
	"time"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// outboxRepository implements the repository.OutboxRepository interface.
type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository is the constructor for outboxRepository.
func NewOutboxRepository(db *gorm.DB) repository.OutboxRepository {
	return &outboxRepository{
		db: db,
	}
}

// Enqueue stages a message in the caller's transaction.
func (repo *outboxRepository) Enqueue(ctx context.Context, msg *entity.OutboxMessage) error {
	if msg.Status == "" {
		msg.Status = entity.OutboxStatusPending
	}
	msgM := fromOutboxDomain(msg)

	if err := repo.db.WithContext(ctx).Create(msgM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to enqueue outbox message")
	}

	msg.ID = msgM.ID

	return nil
}

// headOfKey keeps a row back while an older row of its key is still pending, whether that
// row is backing off or locked by another forwarder.
const headOfKey = `NOT EXISTS (SELECT 1 FROM outbox_messages AS earlier
	WHERE earlier.message_key = outbox_messages.message_key
	AND earlier.status = ? AND earlier.id < outbox_messages.id)`

// FetchPending locks due rows that head their key; rows held by another forwarder are skipped.
func (repo *outboxRepository) FetchPending(ctx context.Context, now time.Time, limit int) ([]*entity.OutboxMessage, error) {
	var msgModels []*model.OutboxMessageModel

	if err := pendingQuery(repo.db.WithContext(ctx), now, limit).Find(&msgModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch pending outbox messages")
	}

	msgs := make([]*entity.OutboxMessage, 0, len(msgModels))
	for _, msgM := range msgModels {
		msgs = append(msgs, toOutboxDomain(msgM))
	}

	return msgs, nil
}

func pendingQuery(db *gorm.DB, now time.Time, limit int) *gorm.DB {
	pending := string(entity.OutboxStatusPending)

	return db.
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("status = ? AND next_attempt_at <= ?", pending, now).
		Where(headOfKey, pending).
		Order("id").
		Limit(limit)
}

func (repo *outboxRepository) MarkSent(ctx context.Context, id int64, sentAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OutboxMessageModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":   string(entity.OutboxStatusSent),
			"sent_at":  sentAt,
			"attempts": gorm.Expr("attempts + 1"),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark outbox message sent")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound.WrapMessage("outbox message not found")
	}

	return nil
}

// MarkFailed records a failed attempt and schedules the next one, or marks the row dead.
func (repo *outboxRepository) MarkFailed(ctx context.Context, id int64, lastError string, nextAttemptAt time.Time, dead bool) error {
	status := entity.OutboxStatusPending
	if dead {
		status = entity.OutboxStatusDead
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OutboxMessageModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          string(status),
			"last_error":      lastError,
			"next_attempt_at": nextAttemptAt,
			"attempts":        gorm.Expr("attempts + 1"),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark outbox message failed")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound.WrapMessage("outbox message not found")
	}

	return nil
}

func (repo *outboxRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OutboxMessageModel{}).
		Where("status = ?", string(entity.OutboxStatusPending)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pending outbox messages")
	}

	return count, nil
}

// --- Mapper Functions ---

func toOutboxDomain(data *model.OutboxMessageModel) *entity.OutboxMessage {
	if data == nil {
		return nil
	}

	return &entity.OutboxMessage{
		ID:            data.ID,
		Topic:         data.Topic,
		Key:           data.MessageKey,
		Payload:       data.Payload,
		Headers:       data.Headers,
		Status:        entity.OutboxStatus(data.Status),
		Attempts:      data.Attempts,
		NextAttemptAt: data.NextAttemptAt,
		LastError:     data.LastError,
		CreatedAt:     data.CreatedAt,
		SentAt:        data.SentAt,
	}
}

func fromOutboxDomain(data *entity.OutboxMessage) *model.OutboxMessageModel {
	if data == nil {
		return nil
	}

	headers := data.Headers
	if headers == nil {
		headers = map[string]string{}
	}

	return &model.OutboxMessageModel{
		ID:            data.ID,
		Topic:         data.Topic,
		MessageKey:    data.Key,
		Payload:       data.Payload,
		Headers:       headers,
		Status:        string(data.Status),
		Attempts:      data.Attempts,
		NextAttemptAt: data.NextAttemptAt,
		LastError:     data.LastError,
		CreatedAt:     data.CreatedAt,
		SentAt:        data.SentAt,
	}
}
