package reactor

import "math"

const (
	// minStake is the floor on the bet amount, in mana.
	minStake = 0.06

	// overshoot pads the stake above the share cost.
	overshoot = 1.15
)

// SizeBet computes the buy amount for a market at the given YES
// probability: max(0.06, prob) * 1.15.
//
// The cost to acquire one YES share approximates the current
// probability, so overshooting it by 15% (floored at a minimum stake)
// empirically buys at least one whole share despite rounding and
// slippage on the pricing curve. This is a heuristic, not an inverse of
// the market maker's cost function.
func SizeBet(prob float64) float64 {
	return math.Max(minStake, prob) * overshoot
}
