package algorithm

// Request types understood by the fee table
const (
	RequestTypeNormal          = "normal"
	RequestTypeSpecialEquipped = "special_equipped"
	RequestTypeHazardous       = "hazardous"
	RequestTypeBulkyItems      = "bulky_items"
	RequestTypeElectronicWaste = "electronic_waste"
)

// Urgency levels
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// FeeConfig is the pricing table for collection requests.
// All amounts are integers in the smallest monetary unit.
type FeeConfig struct {
	BaseFees           map[string]int64 // base fee per request type
	DefaultBaseFee     int64            // fallback for unknown types
	UrgencyFees        map[string]int64 // flat fee per urgency level
	PerKgRate          int64            // fee per estimated kilogram
	HazardousSurcharge int64            // extra handling fee for hazardous requests
}

// DefaultFeeConfig is the standard pricing table
var DefaultFeeConfig = FeeConfig{
	BaseFees: map[string]int64{
		RequestTypeNormal:          800,
		RequestTypeSpecialEquipped: 1300,
		RequestTypeHazardous:       2000,
		RequestTypeBulkyItems:      1500,
		RequestTypeElectronicWaste: 1800,
	},
	DefaultBaseFee: 800,
	UrgencyFees: map[string]int64{
		UrgencyLow:    0,
		UrgencyMedium: 200,
		UrgencyHigh:   500,
	},
	PerKgRate:          50,
	HazardousSurcharge: 500,
}

// FeeInput describes one collection request for pricing
type FeeInput struct {
	RequestType     string
	Urgency         string
	EstimatedWeight float64 // kilograms, <= 0 means not provided
}

// FeeResult is the itemized fee breakdown. Total is always the sum of the
// other components.
type FeeResult struct {
	BaseFee            int64 `json:"base_fee"`
	WeightFee          int64 `json:"weight_fee"`
	UrgencyFee         int64 `json:"urgency_fee"`
	SpecialHandlingFee int64 `json:"special_handling_fee"`
	Total              int64 `json:"total"`
}

// FeeCalculator prices collection requests
type FeeCalculator struct {
	config FeeConfig
}

// NewFeeCalculator creates a fee calculator with the given pricing table
func NewFeeCalculator(config FeeConfig) *FeeCalculator {
	return &FeeCalculator{config: config}
}

// NewDefaultFeeCalculator creates a fee calculator with the standard pricing table
func NewDefaultFeeCalculator() *FeeCalculator {
	return NewFeeCalculator(DefaultFeeConfig)
}

// Calculate prices one request. It never fails: unknown request types fall back
// to the default base fee and unknown urgency levels contribute nothing.
func (c *FeeCalculator) Calculate(input FeeInput) FeeResult {
	result := FeeResult{}

	base, ok := c.config.BaseFees[input.RequestType]
	if !ok {
		base = c.config.DefaultBaseFee
	}
	result.BaseFee = base

	if input.EstimatedWeight > 0 {
		result.WeightFee = int64(input.EstimatedWeight * float64(c.config.PerKgRate))
	}

	result.UrgencyFee = c.config.UrgencyFees[input.Urgency]

	if input.RequestType == RequestTypeHazardous {
		result.SpecialHandlingFee = c.config.HazardousSurcharge
	}

	result.Total = result.BaseFee + result.WeightFee + result.UrgencyFee + result.SpecialHandlingFee
	return result
}
