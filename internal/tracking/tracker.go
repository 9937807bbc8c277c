// Package tracking implements the cursor tracker (spec.md §4.3): a
// stateless-except-for-fallback projection of input events onto cursor
// track points with a confidence score.
package tracking

import "github.com/mizzleinetimi/screenmu-chrome/internal/model"

// Tracker converts a SignalBatch into an ordered cursor track. It
// retains the last emitted position and timestamp across calls, used
// as the fallback position for frame-capture events and as the seed
// state for a future Desktop Mode that would dispatch on captureMode.
type Tracker struct {
	captureMode  model.CaptureMode
	lastPosition *model.NormalizedCoord
	lastTime     *model.Timestamp
}

// New builds a Tracker for the given capture mode.
func New(captureMode model.CaptureMode) *Tracker {
	return &Tracker{captureMode: captureMode}
}

// Process maps every event in the batch to zero or one cursor track
// points, in the order the events were given (spec.md §5 ordering
// guarantee).
func (t *Tracker) Process(batch model.SignalBatch) []model.CursorTrackPoint {
	track := make([]model.CursorTrackPoint, 0, len(batch.Events))

	for _, event := range batch.Events {
		point, ok := t.processEvent(event)
		if !ok {
			continue
		}
		t.lastPosition = &point.Position
		t.lastTime = &point.Timestamp
		track = append(track, point)
	}

	return track
}

func (t *Tracker) processEvent(event model.InputEvent) (model.CursorTrackPoint, bool) {
	switch payload := event.Payload.(type) {
	case model.MouseMovePayload:
		return model.CursorTrackPoint{
			Timestamp:  event.Timestamp,
			Position:   payload.Position,
			State:      model.CursorStateVisible,
			Confidence: 100,
			Reason:     model.InferenceReasonDirectInput,
		}, true

	case model.MouseClickPayload:
		return model.CursorTrackPoint{
			Timestamp:  event.Timestamp,
			Position:   payload.Position,
			State:      model.CursorStateVisible,
			Confidence: 100,
			Reason:     model.InferenceReasonDirectInput,
		}, true

	case model.FocusChangePayload:
		return model.CursorTrackPoint{
			Timestamp:  event.Timestamp,
			Position:   payload.Bounds.Center(),
			State:      model.CursorStateInferred,
			Confidence: 80,
			Reason:     model.InferenceReasonUiChange,
		}, true

	case model.FrameCapturedPayload:
		position := model.CoordCenter()
		if t.lastPosition != nil {
			position = *t.lastPosition
		}
		return model.CursorTrackPoint{
			Timestamp:  event.Timestamp,
			Position:   position,
			State:      model.CursorStateInferred,
			Confidence: 50,
			Reason:     model.InferenceReasonSaliencyFallback,
		}, true

	case model.ScrollPayload:
		return model.CursorTrackPoint{}, false

	default:
		return model.CursorTrackPoint{}, false
	}
}
