package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor enqueues background tasks
type TaskDistributor interface {
	// DistributeTaskSendNotification enqueues a resident notification
	DistributeTaskSendNotification(
		ctx context.Context,
		payload *SendNotificationPayload,
		opts ...asynq.Option,
	) error

	// DistributeTaskBillOverdue enqueues a delayed overdue check for a bill
	DistributeTaskBillOverdue(
		ctx context.Context,
		payload *BillOverduePayload,
		opts ...asynq.Option,
	) error
}

type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}
