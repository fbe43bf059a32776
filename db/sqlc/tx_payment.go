package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/greencycle/wastehub/algorithm"
)

// ErrBillNotPayable is returned when the bill is already settled
var ErrBillNotPayable = errors.New("bill is not payable in its current status")

// PayBillTxParams contains the input parameters of the bill payment transaction
type PayBillTxParams struct {
	BillID          int64
	RequestedPoints int64 // loyalty points the resident wants to redeem
	Rewards         *algorithm.RewardCalculator
}

// PayBillTxResult is the result of the bill payment transaction
type PayBillTxResult struct {
	Bill           PaymentBill
	Reward         Reward
	PointsRedeemed int64
	PointsAccrued  int64
	PaidAmount     int64
}

// PayBillTx settles a payment bill. Points are redeemed first, capped by the
// requested amount, the balance and the bill total; accrual then happens on
// the post-redemption paid amount. The whole settlement is atomic.
func (store *SQLStore) PayBillTx(ctx context.Context, arg PayBillTxParams) (PayBillTxResult, error) {
	var result PayBillTxResult
	now := time.Now()

	err := store.execTx(ctx, func(q *Queries) error {
		// 1. Lock the bill
		bill, err := q.GetPaymentBillForUpdate(ctx, arg.BillID)
		if err != nil {
			return fmt.Errorf("get payment bill: %w", err)
		}
		if bill.Status == BillStatusPaid {
			return ErrBillNotPayable
		}

		// 2. Redeem points against the bill, when a valid balance exists
		reward, err := q.GetRewardForUpdate(ctx, bill.UserID)
		rewardExists := err == nil
		if err != nil && !errors.Is(err, ErrRecordNotFound) {
			return fmt.Errorf("get reward: %w", err)
		}

		if rewardExists && arg.RequestedPoints > 0 {
			result.PointsRedeemed = arg.Rewards.RedeemablePoints(
				arg.RequestedPoints, reward.Points, bill.TotalAmount, reward.ExpiresAt, now)
		}

		result.PaidAmount = bill.TotalAmount - result.PointsRedeemed

		// 3. Settle the bill
		result.Bill, err = q.PayPaymentBill(ctx, PayPaymentBillParams{
			ID:             bill.ID,
			PaidAmount:     result.PaidAmount,
			PointsRedeemed: result.PointsRedeemed,
		})
		if err != nil {
			return fmt.Errorf("pay bill: %w", err)
		}

		// 4. Accrue points on the amount actually paid. A still-valid expiry
		// is preserved, an absent or passed one restarts the window.
		result.PointsAccrued = arg.Rewards.AccruedPoints(result.PaidAmount)

		if !rewardExists {
			result.Reward, err = q.CreateReward(ctx, CreateRewardParams{
				UserID:    bill.UserID,
				Points:    result.PointsAccrued,
				ExpiresAt: arg.Rewards.NextExpiry(nil, now),
			})
			if err != nil {
				return fmt.Errorf("create reward: %w", err)
			}
			return nil
		}

		result.Reward, err = q.UpdateReward(ctx, UpdateRewardParams{
			UserID:    bill.UserID,
			Points:    reward.Points - result.PointsRedeemed + result.PointsAccrued,
			ExpiresAt: arg.Rewards.NextExpiry(&reward.ExpiresAt, now),
		})
		if err != nil {
			return fmt.Errorf("update reward: %w", err)
		}

		return nil
	})

	return result, err
}
