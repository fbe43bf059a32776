package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	db "github.com/greencycle/wastehub/db/sqlc"
)

const (
	TaskSendNotification = "notification:send"
)

// Notification types
const (
	NotificationTypeRequest = "request"
	NotificationTypeRoute   = "route"
	NotificationTypeBilling = "billing"
	NotificationTypeSystem  = "system"
)

// SendNotificationPayload is the payload of the send notification task
type SendNotificationPayload struct {
	UserID int64  `json:"user_id"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// DistributeTaskSendNotification enqueues a resident notification
func (distributor *RedisTaskDistributor) DistributeTaskSendNotification(
	ctx context.Context,
	payload *SendNotificationPayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskSendNotification, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("user_id", payload.UserID).
		Str("notification_type", payload.Type).
		Msg("enqueued notification task")

	return nil
}

// ProcessTaskSendNotification stores the notification and publishes it for
// connected clients. The pub/sub push is best-effort, the stored row is the
// source of truth.
func (processor *RedisTaskProcessor) ProcessTaskSendNotification(ctx context.Context, task *asynq.Task) error {
	var payload SendNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", asynq.SkipRetry)
	}

	notification, err := processor.store.CreateNotification(ctx, db.CreateNotificationParams{
		UserID: payload.UserID,
		Type:   payload.Type,
		Title:  payload.Title,
		Body:   payload.Body,
	})
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	log.Info().
		Int64("notification_id", notification.ID).
		Int64("user_id", payload.UserID).
		Str("type", payload.Type).
		Msg("notification created")

	if processor.redisClient != nil {
		channel := fmt.Sprintf("notifications:user:%d", payload.UserID)
		message, err := json.Marshal(notification)
		if err == nil {
			err = processor.redisClient.Publish(ctx, channel, message).Err()
		}
		if err != nil {
			log.Error().Err(err).Int64("notification_id", notification.ID).
				Msg("notification push failed, row persisted")
		}
	}

	return nil
}
