package algorithm

import "time"

// RewardConfig controls loyalty point accrual and redemption
type RewardConfig struct {
	AccrualRatePercent int64 // points granted per 100 monetary units paid
	ExpiryDays         int   // validity window granted on accrual
}

// DefaultRewardConfig is the standard loyalty policy
var DefaultRewardConfig = RewardConfig{
	AccrualRatePercent: 1,
	ExpiryDays:         90,
}

// RewardCalculator implements the loyalty point policy.
// It is pure: persistence of balances is the caller's concern.
type RewardCalculator struct {
	config RewardConfig
}

// NewRewardCalculator creates a reward calculator with the given policy
func NewRewardCalculator(config RewardConfig) *RewardCalculator {
	return &RewardCalculator{config: config}
}

// NewDefaultRewardCalculator creates a reward calculator with the standard policy
func NewDefaultRewardCalculator() *RewardCalculator {
	return NewRewardCalculator(DefaultRewardConfig)
}

// AccruedPoints returns the points earned for a paid amount, rounded down
func (c *RewardCalculator) AccruedPoints(paidAmount int64) int64 {
	if paidAmount <= 0 {
		return 0
	}
	return paidAmount * c.config.AccrualRatePercent / 100
}

// NextExpiry decides the expiry date after an accrual. An expiry that is still
// in the future is preserved; an absent or already-passed expiry is replaced
// with a fresh window from now.
func (c *RewardCalculator) NextExpiry(currentExpiry *time.Time, now time.Time) time.Time {
	if currentExpiry != nil && currentExpiry.After(now) {
		return *currentExpiry
	}
	return now.AddDate(0, 0, c.config.ExpiryDays)
}

// RedeemablePoints returns the number of points that may be redeemed against a
// bill. Redemption requires a positive, non-expired balance and is capped by
// the requested amount, the balance, and the bill cap.
func (c *RewardCalculator) RedeemablePoints(requested, balance, capAmount int64, expiry time.Time, now time.Time) int64 {
	if balance <= 0 || !expiry.After(now) {
		return 0
	}
	if requested <= 0 || capAmount <= 0 {
		return 0
	}

	redeemable := requested
	if balance < redeemable {
		redeemable = balance
	}
	if capAmount < redeemable {
		redeemable = capAmount
	}
	return redeemable
}
