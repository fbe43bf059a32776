package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// CreateBillingTxParams contains the input parameters of the billing transaction
type CreateBillingTxParams struct {
	UserID        int64
	RequestID     int64
	WasteCategory string
	Weight        float64
	Amount        int64
	DueAt         time.Time
}

// CreateBillingTxResult is the result of the billing transaction
type CreateBillingTxResult struct {
	WasteRecord WasteRecord
	Bill        PaymentBill
}

// CreateBillingTx creates the waste record and payment bill that follow a
// request approval. The record is keyed to the resident's most recently
// registered bin when one exists.
func (store *SQLStore) CreateBillingTx(ctx context.Context, arg CreateBillingTxParams) (CreateBillingTxResult, error) {
	var result CreateBillingTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// 1. Find the resident's latest bin, if any
		var binID pgtype.Int8
		bin, err := q.GetLatestBinByUser(ctx, arg.UserID)
		if err == nil {
			binID = pgtype.Int8{Int64: bin.ID, Valid: true}
		} else if !errors.Is(err, ErrRecordNotFound) {
			return fmt.Errorf("get latest bin: %w", err)
		}

		// 2. Create the waste record
		result.WasteRecord, err = q.CreateWasteRecord(ctx, CreateWasteRecordParams{
			UserID:        arg.UserID,
			RequestID:     pgtype.Int8{Int64: arg.RequestID, Valid: true},
			BinID:         binID,
			WasteCategory: arg.WasteCategory,
			Weight:        arg.Weight,
		})
		if err != nil {
			return fmt.Errorf("create waste record: %w", err)
		}

		// 3. Create the payment bill for the request fee
		result.Bill, err = q.CreatePaymentBill(ctx, CreatePaymentBillParams{
			UserID:        arg.UserID,
			WasteRecordID: pgtype.Int8{Int64: result.WasteRecord.ID, Valid: true},
			RequestID:     pgtype.Int8{Int64: arg.RequestID, Valid: true},
			TotalAmount:   arg.Amount,
			DueAt:         arg.DueAt,
		})
		if err != nil {
			return fmt.Errorf("create payment bill: %w", err)
		}

		return nil
	})

	return result, err
}
