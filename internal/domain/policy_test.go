package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPricingPolicy_UrgencyMultiplier(t *testing.T) {
	policy := DefaultPricingPolicy()

	assert.Equal(t, 1.6, policy.UrgencyMultiplier(0))
	assert.Equal(t, 1.6, policy.UrgencyMultiplier(3))
	assert.Equal(t, 1.4, policy.UrgencyMultiplier(5))
	assert.Equal(t, 1.2, policy.UrgencyMultiplier(14))
	assert.Equal(t, 1.1, policy.UrgencyMultiplier(30))
	assert.Equal(t, 1.0, policy.UrgencyMultiplier(31))
	assert.Equal(t, 1.0, policy.UrgencyMultiplier(365))
}

func TestFeePolicy_CancellationFee(t *testing.T) {
	policy := DefaultFeePolicy()

	assert.Equal(t, 50.0, policy.CancellationFee(2, 100.0))
	assert.Equal(t, 30.0, policy.CancellationFee(7, 100.0))
	assert.Equal(t, 20.0, policy.CancellationFee(10, 100.0))
	assert.Equal(t, 10.0, policy.CancellationFee(60, 100.0))
}

func TestFeePolicy_RebookFee(t *testing.T) {
	policy := DefaultFeePolicy()

	// upgrade: delta 50, penalty 5% of 200 far from departure
	assert.Equal(t, 60.0, policy.RebookFee(100.0, 200.0, 150.0, 30))

	// downgrade: negative delta floored at zero, penalty only
	assert.Equal(t, 10.0, policy.RebookFee(100.0, 200.0, 80.0, 30))

	// close to departure the penalty bracket tightens
	assert.Equal(t, 50.0, policy.RebookFee(100.0, 200.0, 100.0, 2))
}

func TestFeePolicy_RebookFeeIsDeterministic(t *testing.T) {
	policy := DefaultFeePolicy()

	first := policy.RebookFee(123.45, 250.0, 180.5, 6)
	second := policy.RebookFee(123.45, 250.0, 180.5, 6)
	assert.Equal(t, first, second)
}

func TestDaysUntil(t *testing.T) {
	departure := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, DaysUntil(departure, departure.AddDate(0, 0, -10)))
	assert.Equal(t, 0, DaysUntil(departure, departure))
	assert.Equal(t, 0, DaysUntil(departure, departure.Add(-time.Hour)))
	assert.Equal(t, -1, DaysUntil(departure, departure.AddDate(0, 0, 1)))
}
