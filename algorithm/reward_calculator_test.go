package algorithm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRewardCalculator_AccruedPoints(t *testing.T) {
	calculator := NewDefaultRewardCalculator()

	testCases := []struct {
		name       string
		paidAmount int64
		points     int64
	}{
		{"100 units earns 1 point", 100, 1},
		{"rounds down", 199, 1},
		{"under 100 earns nothing", 99, 0},
		{"zero", 0, 0},
		{"negative ignored", -500, 0},
		{"large payment", 123456, 1234},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.points, calculator.AccruedPoints(tc.paidAmount))
		})
	}
}

func TestRewardCalculator_NextExpiry(t *testing.T) {
	calculator := NewDefaultRewardCalculator()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no existing expiry starts a fresh window", func(t *testing.T) {
		expiry := calculator.NextExpiry(nil, now)
		require.Equal(t, now.AddDate(0, 0, 90), expiry)
	})

	t.Run("valid expiry is preserved", func(t *testing.T) {
		existing := now.AddDate(0, 0, 30)
		expiry := calculator.NextExpiry(&existing, now)
		require.Equal(t, existing, expiry)
	})

	t.Run("passed expiry is replaced", func(t *testing.T) {
		existing := now.AddDate(0, 0, -1)
		expiry := calculator.NextExpiry(&existing, now)
		require.Equal(t, now.AddDate(0, 0, 90), expiry)
	})
}

func TestRewardCalculator_RedeemablePoints(t *testing.T) {
	calculator := NewDefaultRewardCalculator()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	valid := now.AddDate(0, 0, 10)
	expired := now.AddDate(0, 0, -10)

	testCases := []struct {
		name       string
		requested  int64
		balance    int64
		capAmount  int64
		expiry     time.Time
		redeemable int64
	}{
		{"capped by balance", 50, 30, 150, valid, 30},
		{"capped by request", 20, 80, 150, valid, 20},
		{"capped by bill amount", 500, 400, 150, valid, 150},
		{"exact balance", 50, 50, 150, valid, 50},
		{"expired balance redeems nothing", 50, 80, 150, expired, 0},
		{"zero balance redeems nothing", 50, 0, 150, valid, 0},
		{"zero request redeems nothing", 0, 80, 150, valid, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := calculator.RedeemablePoints(tc.requested, tc.balance, tc.capAmount, tc.expiry, now)
			require.Equal(t, tc.redeemable, got)
		})
	}
}

func TestRewardCalculator_PaymentScenario(t *testing.T) {
	// redeeming 50 points against a 150-unit bill with 50 valid points:
	// redemption caps at 50, paid amount becomes 100, accrual adds 1 point
	calculator := NewDefaultRewardCalculator()
	now := time.Now()

	redeemed := calculator.RedeemablePoints(50, 50, 150, now.AddDate(0, 0, 45), now)
	require.Equal(t, int64(50), redeemed)

	paid := int64(150) - redeemed
	require.Equal(t, int64(100), paid)

	require.Equal(t, int64(1), calculator.AccruedPoints(paid))
}
