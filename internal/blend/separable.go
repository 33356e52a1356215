package blend

import "math"

// channelFunc returns the separable blend function for m. Unknown modes
// fall back to normal.
func channelFunc(m Mode) func(cb, cs float64) float64 {
	switch m {
	case ModeMultiply:
		return multiply
	case ModeScreen:
		return screen
	case ModeOverlay:
		return overlay
	case ModeDarken:
		return math.Min
	case ModeLighten:
		return math.Max
	case ModeColorDodge:
		return colorDodge
	case ModeColorBurn:
		return colorBurn
	case ModeHardLight:
		return hardLight
	case ModeSoftLight:
		return softLight
	case ModeDifference:
		return difference
	case ModeExclusion:
		return exclusion
	default:
		return normal
	}
}

func normal(_, cs float64) float64 { return cs }

func multiply(cb, cs float64) float64 { return cb * cs }

func screen(cb, cs float64) float64 { return cb + cs - cb*cs }

// hardLight is multiply or screen depending on the source.
func hardLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return multiply(cb, 2*cs)
	}
	return screen(cb, 2*cs-1)
}

// overlay is hardLight with the layers swapped.
func overlay(cb, cs float64) float64 {
	return hardLight(cs, cb)
}

func colorDodge(cb, cs float64) float64 {
	switch {
	case cb == 0:
		return 0
	case cs >= 1:
		return 1
	default:
		return math.Min(1, cb/(1-cs))
	}
}

func colorBurn(cb, cs float64) float64 {
	switch {
	case cb >= 1:
		return 1
	case cs <= 0:
		return 0
	default:
		return 1 - math.Min(1, (1-cb)/cs)
	}
}

func softLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float64
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}

func difference(cb, cs float64) float64 { return math.Abs(cb - cs) }

func exclusion(cb, cs float64) float64 { return cb + cs - 2*cb*cs }
