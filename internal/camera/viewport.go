package camera

import "github.com/mizzleinetimi/screenmu-chrome/internal/model"

// ViewportAt answers a viewport query at an arbitrary timestamp using
// the most recently generated keyframes (spec.md §4.1). With no
// keyframes it returns the default viewport.
func (e *Engine) ViewportAt(t model.Timestamp) model.Viewport {
	if len(e.keyframes) == 0 {
		return model.DefaultViewport()
	}

	prev := e.keyframes[0]
	next := e.keyframes[0]
	for i, kf := range e.keyframes {
		if kf.Timestamp > t {
			continue
		}
		prev = kf
		if i+1 < len(e.keyframes) {
			next = e.keyframes[i+1]
		} else {
			next = kf
		}
	}

	if t >= next.Timestamp {
		return next.Viewport
	}

	duration := next.Timestamp.Sub(prev.Timestamp)
	if duration == 0 {
		return prev.Viewport
	}

	u := float64(t.Sub(prev.Timestamp)) / float64(duration)
	eased := ease(next.Easing, u)

	return model.Viewport{
		Center: model.NewNormalizedCoord(
			float32(lerp(float64(prev.Viewport.Center.X), float64(next.Viewport.Center.X), eased)),
			float32(lerp(float64(prev.Viewport.Center.Y), float64(next.Viewport.Center.Y), eased)),
		),
		Zoom: float32(lerp(float64(prev.Viewport.Zoom), float64(next.Viewport.Zoom), eased)),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
