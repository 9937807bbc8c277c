package camera

import (
	"math"

	"github.com/mizzleinetimi/screenmu-chrome/internal/model"
)

// ease maps u in [0,1] through the named easing curve (spec.md §4.1).
func ease(easing model.EasingType, u float64) float64 {
	switch easing {
	case model.EasingLinear:
		return u
	case model.EasingEaseOut:
		return 1 - math.Pow(1-u, 3)
	case model.EasingEaseInOut:
		if u < 0.5 {
			return 4 * u * u * u
		}
		return 1 - math.Pow(-2*u+2, 3)/2
	case model.EasingSpring:
		return spring(u)
	default:
		return u
	}
}

func spring(u float64) float64 {
	switch u {
	case 0:
		return 0
	case 1:
		return 1
	default:
		const c4 = 2 * math.Pi / 3
		return math.Pow(2, -10*u)*math.Sin((10*u-0.75)*c4) + 1
	}
}
