package model

// CursorTrackPoint is one sample on the derived cursor track.
type CursorTrackPoint struct {
	Timestamp  Timestamp       `json:"timestamp"`
	Position   NormalizedCoord `json:"position"`
	State      CursorState     `json:"state"`
	Confidence uint8           `json:"confidence"` // 0-100
	Reason     InferenceReason `json:"reason"`
}

// FocusRegion is a region of visual interest at a point in time.
type FocusRegion struct {
	Timestamp  Timestamp      `json:"timestamp"`
	Bounds     NormalizedRect `json:"bounds"`
	Importance float32        `json:"importance"` // 0.0-1.0
}

// Viewport describes what the camera shows: a center point and a zoom
// multiplier (1.0 = no zoom).
type Viewport struct {
	Center NormalizedCoord `json:"center"`
	Zoom   float32         `json:"zoom"`
}

// DefaultViewport is the full-screen, unzoomed view used as the seed
// keyframe and as the fallback when no keyframes exist.
func DefaultViewport() Viewport {
	return Viewport{Center: CoordCenter(), Zoom: 1.0}
}

// CameraKeyframe is a viewport pinned to a timestamp, with the easing
// curve used to approach it from the previous keyframe.
type CameraKeyframe struct {
	Timestamp Timestamp  `json:"timestamp"`
	Viewport  Viewport   `json:"viewport"`
	Easing    EasingType `json:"easing"`
}

// Effect is a single visual-effect cue instance.
type Effect struct {
	Timestamp  Timestamp       `json:"timestamp"`
	DurationUs uint64          `json:"duration_us"`
	EffectType EffectType      `json:"effect_type"`
	Position   NormalizedCoord `json:"position"`
}

// EffectTrack is an ordered list of effect cues.
type EffectTrack struct {
	Effects []Effect `json:"effects"`
}

// AnalysisResult aggregates the four outputs of a single ProcessSignals
// batch call.
type AnalysisResult struct {
	CursorTrack     []CursorTrackPoint `json:"cursor_track"`
	FocusRegions    []FocusRegion      `json:"focus_regions"`
	CameraKeyframes []CameraKeyframe   `json:"camera_keyframes"`
	EffectTracks    EffectTrack        `json:"effect_tracks"`
}
