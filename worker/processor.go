package worker

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	db "github.com/greencycle/wastehub/db/sqlc"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// TaskProcessor consumes background tasks
type TaskProcessor interface {
	Start() error
	Shutdown()
	// ProcessTaskSendNotification stores and publishes a resident notification
	ProcessTaskSendNotification(ctx context.Context, task *asynq.Task) error
	// ProcessTaskBillOverdue flags an unpaid bill as overdue once its due date passes
	ProcessTaskBillOverdue(ctx context.Context, task *asynq.Task) error
}

type RedisTaskProcessor struct {
	server      *asynq.Server
	store       db.Store
	distributor TaskDistributor // used to enqueue follow-up tasks
	redisClient *redis.Client   // pub/sub notification fan-out
}

func NewRedisTaskProcessor(
	redisOpt asynq.RedisClientOpt,
	store db.Store,
	distributor TaskDistributor,
) TaskProcessor {
	logger := NewLogger()
	redis.SetLogger(logger)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger:          logger,
			ShutdownTimeout: 10 * time.Second,
		},
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisOpt.Addr,
		Password: redisOpt.Password,
		DB:       redisOpt.DB,
	})

	return &RedisTaskProcessor{
		server:      server,
		store:       store,
		distributor: distributor,
		redisClient: redisClient,
	}
}

// NewTestTaskProcessor creates a processor instance without a Redis connection
func NewTestTaskProcessor(store db.Store, distributor TaskDistributor) *RedisTaskProcessor {
	return &RedisTaskProcessor{
		store:       store,
		distributor: distributor,
	}
}

func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskSendNotification, processor.ProcessTaskSendNotification)
	mux.HandleFunc(TaskBillOverdue, processor.ProcessTaskBillOverdue)

	return processor.server.Start(mux)
}

func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
