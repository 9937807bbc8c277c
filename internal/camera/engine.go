// Package camera implements the camera keyframe engine (spec.md §4.1):
// constraint-filtered keyframe construction from a cursor track and
// focus regions, pan-speed smoothing, and eased viewport interpolation.
package camera

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/mizzleinetimi/screenmu-chrome/internal/model"
)

// confidenceFloor is the minimum cursor-track confidence that still
// produces a camera keyframe.
const confidenceFloor = 70

// focusImportanceFloor is the minimum focus-region importance that
// produces a camera keyframe.
const focusImportanceFloor = 0.8

// Engine generates and answers queries against a camera keyframe
// sequence. It retains the most recently generated keyframes to serve
// ViewportAt queries, per spec.md §4.1's "stores the result internally"
// contract.
type Engine struct {
	settings  model.CameraSettings
	keyframes []model.CameraKeyframe
}

// New constructs an Engine with the given settings.
func New(settings model.CameraSettings) *Engine {
	return &Engine{settings: settings}
}

// Generate builds an ordered keyframe sequence from a cursor track and
// focus regions, stores it, and returns a copy. Calling Generate again
// with identical inputs produces an identical result (idempotence).
func (e *Engine) Generate(cursorTrack []model.CursorTrackPoint, focusRegions []model.FocusRegion) []model.CameraKeyframe {
	keyframes := make([]model.CameraKeyframe, 0, len(cursorTrack)+len(focusRegions)+1)

	if len(cursorTrack) > 0 || len(focusRegions) > 0 {
		keyframes = append(keyframes, model.CameraKeyframe{
			Timestamp: seedTimestamp(cursorTrack, focusRegions),
			Viewport:  model.DefaultViewport(),
			Easing:    model.EasingEaseOut,
		})
	}

	var lastEmittedCursorTs model.Timestamp
	for _, point := range cursorTrack {
		if point.Timestamp.Sub(lastEmittedCursorTs) < model.Timestamp(e.settings.MinHoldTimeUs) {
			continue
		}
		if len(keyframes) > 0 && e.withinDeadZone(keyframes[len(keyframes)-1].Viewport.Center, point.Position) {
			continue
		}
		if point.Confidence < confidenceFloor {
			continue
		}

		keyframes = append(keyframes, model.CameraKeyframe{
			Timestamp: point.Timestamp,
			Viewport:  e.viewportForCursor(point),
			Easing:    model.EasingEaseInOut,
		})
		lastEmittedCursorTs = point.Timestamp
	}

	for _, region := range focusRegions {
		if region.Importance < focusImportanceFloor {
			continue
		}
		keyframes = append(keyframes, model.CameraKeyframe{
			Timestamp: region.Timestamp,
			Viewport: model.Viewport{
				Center: region.Bounds.Center(),
				Zoom:   zoomForBounds(region.Bounds, e.settings.ZoomStrength),
			},
			Easing: model.EasingEaseOut,
		})
	}

	sort.SliceStable(keyframes, func(i, j int) bool {
		return keyframes[i].Timestamp < keyframes[j].Timestamp
	})

	e.smoothPanSpeed(keyframes)

	e.keyframes = keyframes
	return append([]model.CameraKeyframe(nil), keyframes...)
}

func seedTimestamp(cursorTrack []model.CursorTrackPoint, focusRegions []model.FocusRegion) model.Timestamp {
	if len(cursorTrack) > 0 {
		return cursorTrack[0].Timestamp
	}
	if len(focusRegions) > 0 {
		return focusRegions[0].Timestamp
	}
	return 0
}

func (e *Engine) withinDeadZone(center, target model.NormalizedCoord) bool {
	dist := r2.Norm(r2.Sub(vec(center), vec(target)))
	return dist < float64(e.settings.DeadZone)
}

func (e *Engine) viewportForCursor(point model.CursorTrackPoint) model.Viewport {
	zoom := float32(1.0)
	switch point.State {
	case model.CursorStateVisible:
		zoom = e.settings.ZoomStrength
	case model.CursorStateInferred:
		zoom = e.settings.ZoomStrength * 0.8
	case model.CursorStateHidden:
		zoom = 1.0
	}
	return model.Viewport{Center: point.Position, Zoom: zoom}
}

func zoomForBounds(bounds model.NormalizedRect, zoomStrength float32) float32 {
	maxDim := bounds.Width
	if bounds.Height > maxDim {
		maxDim = bounds.Height
	}
	if maxDim <= 0 {
		return 1.0
	}
	fit := 1 / maxDim
	if fit < zoomStrength {
		return fit
	}
	return zoomStrength
}

// smoothPanSpeed rescales each keyframe's center displacement in place
// so consecutive centers never exceed max_pan_speed per second. Each
// step compares against the already-smoothed previous center, so a
// clamp on keyframe i can affect the distance computed for i+1.
func (e *Engine) smoothPanSpeed(keyframes []model.CameraKeyframe) {
	for i := 1; i < len(keyframes); i++ {
		prevCenter := vec(keyframes[i-1].Viewport.Center)
		currCenter := vec(keyframes[i].Viewport.Center)
		displacement := r2.Sub(currCenter, prevCenter)

		dtSeconds := keyframes[i].Timestamp.Sub(keyframes[i-1].Timestamp).Secs()
		if dtSeconds <= 0 {
			continue
		}

		speed := r2.Norm(displacement) / dtSeconds
		if speed <= float64(e.settings.MaxPanSpeed) {
			continue
		}

		maxMagnitude := float64(e.settings.MaxPanSpeed) * dtSeconds
		scaled := r2.Scale(maxMagnitude/r2.Norm(displacement), displacement)
		newCenter := r2.Add(prevCenter, scaled)
		keyframes[i].Viewport.Center = model.NewNormalizedCoord(float32(newCenter.X), float32(newCenter.Y))
	}
}

func vec(c model.NormalizedCoord) r2.Vec {
	return r2.Vec{X: float64(c.X), Y: float64(c.Y)}
}
