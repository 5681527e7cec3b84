package domain

import "time"

// Bracket is one step of a days-until-departure step function. A bracket
// applies when daysUntilDeparture <= MaxDaysBefore; brackets are evaluated
// in ascending MaxDaysBefore order.
type Bracket struct {
	MaxDaysBefore int
	Value         float64
}

// PricingPolicy is the urgency step function applied on top of the
// per-class multiplier. The concrete bracket boundaries and values are
// configuration, not constants.
type PricingPolicy struct {
	Brackets       []Bracket
	BaseMultiplier float64
}

// DefaultPricingPolicy ramps the fare up as departure approaches.
func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		Brackets: []Bracket{
			{MaxDaysBefore: 3, Value: 1.6},
			{MaxDaysBefore: 7, Value: 1.4},
			{MaxDaysBefore: 14, Value: 1.2},
			{MaxDaysBefore: 30, Value: 1.1},
		},
		BaseMultiplier: 1.0,
	}
}

// UrgencyMultiplier returns the step value for the given days until
// departure. Departures in the past or today fall into the tightest bracket.
func (p PricingPolicy) UrgencyMultiplier(daysUntilDeparture int) float64 {
	for _, b := range p.Brackets {
		if daysUntilDeparture <= b.MaxDaysBefore {
			return b.Value
		}
	}
	return p.BaseMultiplier
}

// FeePolicy computes cancellation and rebook fees. Both are step functions
// of days until departure; percentages are configuration.
type FeePolicy struct {
	CancellationBrackets  []Bracket
	CancellationBase      float64
	RebookPenaltyBrackets []Bracket
	RebookPenaltyBase     float64
}

func DefaultFeePolicy() FeePolicy {
	return FeePolicy{
		CancellationBrackets: []Bracket{
			{MaxDaysBefore: 3, Value: 0.50},
			{MaxDaysBefore: 7, Value: 0.30},
			{MaxDaysBefore: 14, Value: 0.20},
		},
		CancellationBase: 0.10,
		RebookPenaltyBrackets: []Bracket{
			{MaxDaysBefore: 3, Value: 0.25},
			{MaxDaysBefore: 7, Value: 0.15},
		},
		RebookPenaltyBase: 0.05,
	}
}

func stepValue(brackets []Bracket, base float64, days int) float64 {
	for _, b := range brackets {
		if days <= b.MaxDaysBefore {
			return b.Value
		}
	}
	return base
}

// CancellationFee charges a percentage of the total booking price based on
// how close to departure the cancellation happens.
func (f FeePolicy) CancellationFee(daysUntilDeparture int, totalPrice float64) float64 {
	return RoundMoney(stepValue(f.CancellationBrackets, f.CancellationBase, daysUntilDeparture) * totalPrice)
}

// RebookFee is the positive fare delta between the new and old outbound fare
// plus a time-based penalty on the old booking total. Pure: no entity is
// mutated and identical inputs always yield the identical fee.
func (f FeePolicy) RebookFee(oldOutboundPrice, oldTotalPrice, newFare float64, daysUntilOldDeparture int) float64 {
	delta := newFare - oldOutboundPrice
	if delta < 0 {
		delta = 0
	}
	penalty := stepValue(f.RebookPenaltyBrackets, f.RebookPenaltyBase, daysUntilOldDeparture) * oldTotalPrice
	return RoundMoney(delta + penalty)
}

// DaysUntil counts whole days from asOf to the departure date, truncated
// toward zero. Departures at or before asOf yield zero or negative values.
func DaysUntil(departure, asOf time.Time) int {
	return int(departure.Sub(asOf).Hours() / 24)
}
