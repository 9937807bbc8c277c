package model

import "encoding/json"

// Default camera settings, named per spec.md §4.1.
const (
	DefaultMinHoldTimeUs uint64  = 500_000
	DefaultMaxPanSpeed   float32 = 0.5
	DefaultDeadZone      float32 = 0.05
	DefaultZoomStrength  float32 = 1.5
)

// CameraSettings tunes the camera engine's keyframe construction.
type CameraSettings struct {
	MinHoldTimeUs uint64  `json:"min_hold_time_us"`
	MaxPanSpeed   float32 `json:"max_pan_speed"`
	DeadZone      float32 `json:"dead_zone"`
	ZoomStrength  float32 `json:"zoom_strength"`
}

// DefaultCameraSettings returns the documented defaults.
func DefaultCameraSettings() CameraSettings {
	return CameraSettings{
		MinHoldTimeUs: DefaultMinHoldTimeUs,
		MaxPanSpeed:   DefaultMaxPanSpeed,
		DeadZone:      DefaultDeadZone,
		ZoomStrength:  DefaultZoomStrength,
	}
}

// UnmarshalJSON fills any field absent from the payload with its
// documented default, so a config that supplies "any subset" (spec.md
// §6) behaves correctly.
func (c *CameraSettings) UnmarshalJSON(data []byte) error {
	raw := struct {
		MinHoldTimeUs *uint64  `json:"min_hold_time_us"`
		MaxPanSpeed   *float32 `json:"max_pan_speed"`
		DeadZone      *float32 `json:"dead_zone"`
		ZoomStrength  *float32 `json:"zoom_strength"`
	}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = DefaultCameraSettings()
	if raw.MinHoldTimeUs != nil {
		c.MinHoldTimeUs = *raw.MinHoldTimeUs
	}
	if raw.MaxPanSpeed != nil {
		c.MaxPanSpeed = *raw.MaxPanSpeed
	}
	if raw.DeadZone != nil {
		c.DeadZone = *raw.DeadZone
	}
	if raw.ZoomStrength != nil {
		c.ZoomStrength = *raw.ZoomStrength
	}
	return nil
}

// EffectSettings toggles the two independent effect-generation tracks.
type EffectSettings struct {
	ClickRings      bool `json:"click_rings"`
	CursorHighlight bool `json:"cursor_highlight"`
}

// DefaultEffectSettings returns both toggles enabled.
func DefaultEffectSettings() EffectSettings {
	return EffectSettings{ClickRings: true, CursorHighlight: true}
}

func (e *EffectSettings) UnmarshalJSON(data []byte) error {
	raw := struct {
		ClickRings      *bool `json:"click_rings"`
		CursorHighlight *bool `json:"cursor_highlight"`
	}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = DefaultEffectSettings()
	if raw.ClickRings != nil {
		e.ClickRings = *raw.ClickRings
	}
	if raw.CursorHighlight != nil {
		e.CursorHighlight = *raw.CursorHighlight
	}
	return nil
}

// EngineConfig is the textual configuration passed to the facade
// constructor (spec.md §6 item 1).
type EngineConfig struct {
	CaptureMode    CaptureMode    `json:"capture_mode"`
	CameraSettings CameraSettings `json:"camera_settings"`
	EffectSettings EffectSettings `json:"effect_settings"`
}

// UnmarshalJSON applies defaults to the two optional settings blocks
// when they are omitted entirely, and validates capture_mode.
func (c *EngineConfig) UnmarshalJSON(data []byte) error {
	raw := struct {
		CaptureMode    CaptureMode     `json:"capture_mode"`
		CameraSettings *CameraSettings `json:"camera_settings"`
		EffectSettings *EffectSettings `json:"effect_settings"`
	}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if !raw.CaptureMode.Valid() {
		return invalidEnum("capture_mode", string(raw.CaptureMode))
	}

	c.CaptureMode = raw.CaptureMode
	if raw.CameraSettings != nil {
		c.CameraSettings = *raw.CameraSettings
	} else {
		c.CameraSettings = DefaultCameraSettings()
	}
	if raw.EffectSettings != nil {
		c.EffectSettings = *raw.EffectSettings
	} else {
		c.EffectSettings = DefaultEffectSettings()
	}
	return nil
}
