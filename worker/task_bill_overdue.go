package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	db "github.com/greencycle/wastehub/db/sqlc"
)

const (
	TaskBillOverdue = "payment_bill:overdue"
)

// BillOverduePayload is the payload of the bill overdue task
type BillOverduePayload struct {
	BillID int64 `json:"bill_id"`
}

// DistributeTaskBillOverdue enqueues a delayed overdue check. Callers pass
// asynq.ProcessAt with the bill's due date.
func (distributor *RedisTaskDistributor) DistributeTaskBillOverdue(
	ctx context.Context,
	payload *BillOverduePayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskBillOverdue, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("bill_id", payload.BillID).
		Msg("enqueued bill overdue task")

	return nil
}

// ProcessTaskBillOverdue marks an unpaid bill overdue once its due date has
// passed and notifies the resident.
func (processor *RedisTaskProcessor) ProcessTaskBillOverdue(ctx context.Context, task *asynq.Task) error {
	var payload BillOverduePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", asynq.SkipRetry)
	}

	bill, err := processor.store.GetPaymentBill(ctx, payload.BillID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			log.Warn().Int64("bill_id", payload.BillID).Msg("bill no longer exists, skip overdue check")
			return nil
		}
		return fmt.Errorf("get payment bill: %w", err)
	}

	if bill.Status != db.BillStatusPending {
		log.Info().
			Int64("bill_id", bill.ID).
			Str("status", bill.Status).
			Msg("bill is not pending, skip overdue processing")
		return nil
	}

	if time.Now().Before(bill.DueAt) {
		log.Info().
			Int64("bill_id", bill.ID).
			Time("due_at", bill.DueAt).
			Msg("bill not due yet")
		return nil
	}

	overdue, err := processor.store.MarkPaymentBillOverdue(ctx, bill.ID)
	if err != nil {
		return fmt.Errorf("mark bill overdue: %w", err)
	}

	log.Info().Int64("bill_id", overdue.ID).Msg("bill marked overdue")

	if processor.distributor != nil {
		err = processor.distributor.DistributeTaskSendNotification(ctx, &SendNotificationPayload{
			UserID: overdue.UserID,
			Type:   NotificationTypeBilling,
			Title:  "Payment overdue",
			Body:   fmt.Sprintf("Your waste collection bill #%d of %d is overdue. Please settle it to avoid service interruption.", overdue.ID, overdue.TotalAmount),
		}, asynq.Queue(QueueDefault))
		if err != nil {
			log.Error().Err(err).Int64("bill_id", overdue.ID).Msg("enqueue overdue notification failed")
		}
	}

	return nil
}
