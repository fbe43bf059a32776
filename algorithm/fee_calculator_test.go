package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeeCalculator_NormalMediumWithWeight(t *testing.T) {
	// normal request, medium urgency, 10kg
	// base 800 + weight 10*50 + urgency 200 = 1500
	calculator := NewDefaultFeeCalculator()
	result := calculator.Calculate(FeeInput{
		RequestType:     RequestTypeNormal,
		Urgency:         UrgencyMedium,
		EstimatedWeight: 10,
	})

	require.Equal(t, int64(800), result.BaseFee)
	require.Equal(t, int64(500), result.WeightFee)
	require.Equal(t, int64(200), result.UrgencyFee)
	require.Equal(t, int64(0), result.SpecialHandlingFee)
	require.Equal(t, int64(1500), result.Total)
}

func TestFeeCalculator_BaseFeeTiers(t *testing.T) {
	calculator := NewDefaultFeeCalculator()

	testCases := []struct {
		requestType string
		baseFee     int64
	}{
		{RequestTypeNormal, 800},
		{RequestTypeSpecialEquipped, 1300},
		{RequestTypeHazardous, 2000},
		{RequestTypeBulkyItems, 1500},
		{RequestTypeElectronicWaste, 1800},
	}

	for _, tc := range testCases {
		t.Run(tc.requestType, func(t *testing.T) {
			result := calculator.Calculate(FeeInput{
				RequestType: tc.requestType,
				Urgency:     UrgencyLow,
			})
			require.Equal(t, tc.baseFee, result.BaseFee)
			require.Equal(t, int64(0), result.WeightFee)
			require.Equal(t, int64(0), result.UrgencyFee)
		})
	}
}

func TestFeeCalculator_HazardousSurcharge(t *testing.T) {
	calculator := NewDefaultFeeCalculator()
	result := calculator.Calculate(FeeInput{
		RequestType: RequestTypeHazardous,
		Urgency:     UrgencyHigh,
	})

	require.Equal(t, int64(2000), result.BaseFee)
	require.Equal(t, int64(500), result.UrgencyFee)
	require.Equal(t, int64(500), result.SpecialHandlingFee)
	require.Equal(t, int64(3000), result.Total)
}

func TestFeeCalculator_UnknownInputsFallBack(t *testing.T) {
	// unknown type falls back to the default base fee,
	// unknown urgency contributes nothing, negative weight is ignored
	calculator := NewDefaultFeeCalculator()
	result := calculator.Calculate(FeeInput{
		RequestType:     "teleportation",
		Urgency:         "yesterday",
		EstimatedWeight: -3,
	})

	require.Equal(t, int64(800), result.BaseFee)
	require.Equal(t, int64(0), result.WeightFee)
	require.Equal(t, int64(0), result.UrgencyFee)
	require.Equal(t, int64(800), result.Total)
}

func TestFeeCalculator_TotalEqualsSumOfComponents(t *testing.T) {
	calculator := NewDefaultFeeCalculator()

	inputs := []FeeInput{
		{RequestTypeNormal, UrgencyLow, 0},
		{RequestTypeSpecialEquipped, UrgencyMedium, 7.5},
		{RequestTypeHazardous, UrgencyHigh, 120},
		{RequestTypeBulkyItems, UrgencyLow, 0.4},
	}

	for _, input := range inputs {
		result := calculator.Calculate(input)
		sum := result.BaseFee + result.WeightFee + result.UrgencyFee + result.SpecialHandlingFee
		require.Equal(t, sum, result.Total)

		// pure: same input, same output
		require.Equal(t, result, calculator.Calculate(input))
	}
}
