// Package focus implements the focus analyzer (spec.md §4.4): derives
// regions of visual interest from focus-change events and high
// confidence cursor points.
package focus

import "github.com/mizzleinetimi/screenmu-chrome/internal/model"

// focusRegionSize is the side length, in normalized units, of the
// square region synthesized around a high-confidence cursor point.
const focusRegionSize = 0.15

// Analyzer derives focus regions from a signal batch and its cursor
// track. It is stateful only to retain its last emission; it does not
// filter by time.
type Analyzer struct {
	lastRegions []model.FocusRegion
}

// New constructs an Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze emits, in order: one region per FocusChange event (full
// confidence), then one region per cursor track point with confidence
// >= 80.
func (a *Analyzer) Analyze(batch model.SignalBatch, cursorTrack []model.CursorTrackPoint) []model.FocusRegion {
	regions := make([]model.FocusRegion, 0, len(batch.Events)+len(cursorTrack))

	for _, event := range batch.Events {
		focusChange, ok := event.Payload.(model.FocusChangePayload)
		if !ok {
			continue
		}
		regions = append(regions, model.FocusRegion{
			Timestamp:  event.Timestamp,
			Bounds:     focusChange.Bounds,
			Importance: 1.0,
		})
	}

	for _, point := range cursorTrack {
		if point.Confidence < 80 {
			continue
		}
		regions = append(regions, cursorToFocusRegion(point))
	}

	a.lastRegions = regions
	return regions
}

// cursorToFocusRegion builds a region around a cursor position. The
// width/height formula — min(focusRegionSize, 1 - x + focusRegionSize/2)
// — is asymmetric at the right/bottom screen edges; this is preserved
// literally as part of the contract (spec.md §9), not "fixed".
func cursorToFocusRegion(point model.CursorTrackPoint) model.FocusRegion {
	half := float32(focusRegionSize) / 2
	x := point.Position.X - half
	if x < 0 {
		x = 0
	}
	y := point.Position.Y - half
	if y < 0 {
		y = 0
	}

	width := min32(focusRegionSize, 1-point.Position.X+half)
	height := min32(focusRegionSize, 1-point.Position.Y+half)

	return model.FocusRegion{
		Timestamp:  point.Timestamp,
		Bounds:     model.NewNormalizedRect(x, y, width, height),
		Importance: float32(point.Confidence) / 100,
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
