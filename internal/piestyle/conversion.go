package piestyle

import "math"

const (
	ControlSizeMin     = 0.6
	ControlSizeMax     = 1.5
	ControlSizeDefault = 1.0

	DefaultBackgroundAlpha = 0.3

	// ColorUnset marks a color the user never picked.
	ColorUnset = -2

	MirrorRightDefault = 1
)

// Fallback colors used when the theme overlay cannot be read.
const (
	DefaultBackgroundColor ARGB = 0xdd000000
	DefaultSnapColor       ARGB = 0xff33b5e5
	DefaultTextColor       ARGB = 0xffffffff
)

const sizeRange = ControlSizeMax - ControlSizeMin

// FactorFromDisplay maps a 0..100 slider position to a control size factor.
func FactorFromDisplay(percent float64) float64 {
	return ControlSizeMin + percent*sizeRange/100
}

// DisplayFromFactor maps a control size factor back to its slider position.
func DisplayFromFactor(factor float64) int {
	return int(math.Round((factor - ControlSizeMin) * 100 / sizeRange))
}

// AlphaFromDisplay maps a 0..100 slider position to a background alpha.
// Out of range input is written through as is.
func AlphaFromDisplay(percent float64) float64 {
	return percent / 100
}

// DisplayFromAlpha maps a background alpha to its slider position.
func DisplayFromAlpha(alpha float64) int {
	return int(math.Round(alpha * 100))
}
