package model

import "encoding/json"

// EventKind is the wire discriminator for EventPayload implementations.
type EventKind string

const (
	EventKindMouseMove      EventKind = "MouseMove"
	EventKindMouseClick     EventKind = "MouseClick"
	EventKindFocusChange    EventKind = "FocusChange"
	EventKindScroll         EventKind = "Scroll"
	EventKindFrameCaptured  EventKind = "FrameCaptured"
)

// EventPayload is the closed set of input-event variants. It is a
// sealed interface: every implementation lives in this file, and
// decoding an unrecognized "type" discriminator is a decode error
// rather than a silently-dropped event (spec.md §7).
type EventPayload interface {
	Kind() EventKind
}

// MouseMovePayload carries the cursor position for a move event.
type MouseMovePayload struct {
	Position NormalizedCoord `json:"position"`
}

func (MouseMovePayload) Kind() EventKind { return EventKindMouseMove }

// MouseClickPayload carries the click position and the button index.
type MouseClickPayload struct {
	Position NormalizedCoord `json:"position"`
	Button   uint8           `json:"button"`
}

func (MouseClickPayload) Kind() EventKind { return EventKindMouseClick }

// FocusChangePayload carries the bounds of the newly-focused element.
type FocusChangePayload struct {
	Bounds NormalizedRect `json:"bounds"`
}

func (FocusChangePayload) Kind() EventKind { return EventKindFocusChange }

// ScrollPayload carries a vertical scroll delta. It never produces a
// cursor track point.
type ScrollPayload struct {
	DeltaY float32 `json:"delta_y"`
}

func (ScrollPayload) Kind() EventKind { return EventKindScroll }

// FrameCapturedPayload marks a captured video frame index. The cursor
// tracker answers it with a low-confidence point at the last known
// position, whatever the capture mode.
type FrameCapturedPayload struct {
	FrameIndex uint32 `json:"frame_index"`
}

func (FrameCapturedPayload) Kind() EventKind { return EventKindFrameCaptured }

// InputEvent is a timestamped, tagged input-event union.
type InputEvent struct {
	Timestamp Timestamp
	Payload   EventPayload
}

type inputEventWire struct {
	Timestamp Timestamp       `json:"timestamp"`
	EventType json.RawMessage `json:"event_type"`
}

type eventTypeTag struct {
	Type EventKind `json:"type"`
}

func (e InputEvent) MarshalJSON() ([]byte, error) {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return nil, err
	}

	tagged, err := withTypeTag(e.Payload.Kind(), payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(inputEventWire{Timestamp: e.Timestamp, EventType: tagged})
}

func (e *InputEvent) UnmarshalJSON(data []byte) error {
	var wire inputEventWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	var tag eventTypeTag
	if err := json.Unmarshal(wire.EventType, &tag); err != nil {
		return err
	}

	payload, err := decodeEventPayload(tag.Type, wire.EventType)
	if err != nil {
		return err
	}

	e.Timestamp = wire.Timestamp
	e.Payload = payload
	return nil
}

func decodeEventPayload(kind EventKind, raw json.RawMessage) (EventPayload, error) {
	switch kind {
	case EventKindMouseMove:
		var p MouseMovePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case EventKindMouseClick:
		var p MouseClickPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case EventKindFocusChange:
		var p FocusChangePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case EventKindScroll:
		var p ScrollPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case EventKindFrameCaptured:
		var p FrameCapturedPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, invalidEnum("event_type.type", string(kind))
	}
}

// withTypeTag merges {"type": kind} into an already-encoded JSON object.
func withTypeTag(kind EventKind, payload json.RawMessage) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	kindJSON, err := json.Marshal(kind)
	if err != nil {
		return nil, err
	}
	fields["type"] = kindJSON
	return json.Marshal(fields)
}

// SignalBatch is a batch of input events decoded from the host in
// timestamp-of-arrival order (not necessarily sorted by Timestamp).
type SignalBatch struct {
	Events []InputEvent `json:"events"`
}
