package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizzleinetimi/screenmu-chrome/internal/model"
)

func ts(v uint64) model.Timestamp { return model.TimestampFromMicros(v) }

func TestGenerateSeedsFromFirstCursorPoint(t *testing.T) {
	e := New(model.DefaultCameraSettings())

	cursorTrack := []model.CursorTrackPoint{{
		Timestamp:  ts(1_000_000),
		Position:   model.NewNormalizedCoord(0.5, 0.5),
		State:      model.CursorStateVisible,
		Confidence: 100,
	}}

	keyframes := e.Generate(cursorTrack, nil)

	require.NotEmpty(t, keyframes)
	assert.Equal(t, ts(1_000_000), keyframes[0].Timestamp)
	assert.Equal(t, model.DefaultViewport(), keyframes[0].Viewport)
}

func TestGenerateDropsPointsWithinDeadZoneOfSeed(t *testing.T) {
	e := New(model.DefaultCameraSettings())

	cursorTrack := []model.CursorTrackPoint{{
		Timestamp:  ts(1_000_000),
		Position:   model.NewNormalizedCoord(0.5, 0.5),
		State:      model.CursorStateVisible,
		Confidence: 100,
	}}

	keyframes := e.Generate(cursorTrack, nil)
	assert.Len(t, keyframes, 1)
}

func TestGenerateDropsSecondPointUnderMinHold(t *testing.T) {
	settings := model.DefaultCameraSettings()
	e := New(settings)

	cursorTrack := []model.CursorTrackPoint{
		{Timestamp: ts(0), Position: model.NewNormalizedCoord(0.2, 0.2), State: model.CursorStateVisible, Confidence: 100},
		{Timestamp: ts(100_000), Position: model.NewNormalizedCoord(0.8, 0.8), State: model.CursorStateVisible, Confidence: 100},
	}

	keyframes := e.Generate(cursorTrack, nil)
	assert.LessOrEqual(t, len(keyframes), 2)
}

func TestGenerateSkipsLowConfidencePoints(t *testing.T) {
	e := New(model.DefaultCameraSettings())

	cursorTrack := []model.CursorTrackPoint{
		{Timestamp: ts(0), Position: model.NewNormalizedCoord(0.1, 0.1), Confidence: 100},
		{Timestamp: ts(2_000_000), Position: model.NewNormalizedCoord(0.9, 0.9), Confidence: 10},
	}

	keyframes := e.Generate(cursorTrack, nil)
	for _, kf := range keyframes {
		assert.NotEqual(t, model.NewNormalizedCoord(0.9, 0.9), kf.Viewport.Center)
	}
}

func TestGenerateKeyframesAreNonDecreasing(t *testing.T) {
	e := New(model.DefaultCameraSettings())

	cursorTrack := []model.CursorTrackPoint{
		{Timestamp: ts(3_000_000), Position: model.NewNormalizedCoord(0.9, 0.1), Confidence: 100},
		{Timestamp: ts(0), Position: model.NewNormalizedCoord(0.1, 0.1), Confidence: 100},
	}
	focusRegions := []model.FocusRegion{
		{Timestamp: ts(1_500_000), Bounds: model.NewNormalizedRect(0.4, 0.4, 0.2, 0.2), Importance: 0.9},
	}

	keyframes := e.Generate(cursorTrack, focusRegions)

	for i := 1; i < len(keyframes); i++ {
		assert.GreaterOrEqual(t, keyframes[i].Timestamp, keyframes[i-1].Timestamp)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	e := New(model.DefaultCameraSettings())
	cursorTrack := []model.CursorTrackPoint{
		{Timestamp: ts(0), Position: model.NewNormalizedCoord(0.1, 0.1), Confidence: 100},
		{Timestamp: ts(2_000_000), Position: model.NewNormalizedCoord(0.9, 0.9), Confidence: 100},
	}

	first := e.Generate(cursorTrack, nil)
	second := e.Generate(cursorTrack, nil)
	assert.Equal(t, first, second)
}

func TestSmoothPanSpeedClampsDisplacement(t *testing.T) {
	settings := model.CameraSettings{
		MinHoldTimeUs: 0,
		MaxPanSpeed:   0.1,
		DeadZone:      0,
		ZoomStrength:  1.5,
	}
	e := New(settings)

	cursorTrack := []model.CursorTrackPoint{
		{Timestamp: ts(0), Position: model.NewNormalizedCoord(0.0, 0.5), Confidence: 100},
		{Timestamp: ts(1_000_000), Position: model.NewNormalizedCoord(1.0, 0.5), Confidence: 100},
	}

	keyframes := e.Generate(cursorTrack, nil)
	require.GreaterOrEqual(t, len(keyframes), 2)

	last := keyframes[len(keyframes)-1]
	prev := keyframes[len(keyframes)-2]
	dx := float64(last.Viewport.Center.X) - float64(prev.Viewport.Center.X)
	dy := float64(last.Viewport.Center.Y) - float64(prev.Viewport.Center.Y)
	dist := dx*dx + dy*dy
	assert.LessOrEqual(t, dist, 0.11*0.11)
}

func TestViewportAtWithNoKeyframesReturnsDefault(t *testing.T) {
	e := New(model.DefaultCameraSettings())
	assert.Equal(t, model.DefaultViewport(), e.ViewportAt(ts(0)))
}

func TestViewportAtInterpolatesBetweenKeyframes(t *testing.T) {
	e := New(model.DefaultCameraSettings())
	cursorTrack := []model.CursorTrackPoint{
		{Timestamp: ts(0), Position: model.NewNormalizedCoord(0.0, 0.0), State: model.CursorStateVisible, Confidence: 100},
		{Timestamp: ts(2_000_000), Position: model.NewNormalizedCoord(1.0, 1.0), State: model.CursorStateVisible, Confidence: 100},
	}
	e.Generate(cursorTrack, nil)

	vp := e.ViewportAt(ts(500_000))
	assert.GreaterOrEqual(t, vp.Center.X, float32(0))
	assert.LessOrEqual(t, vp.Center.X, float32(1))
}

func TestViewportAtSaturatesAfterLastKeyframe(t *testing.T) {
	e := New(model.DefaultCameraSettings())
	cursorTrack := []model.CursorTrackPoint{
		{Timestamp: ts(0), Position: model.NewNormalizedCoord(0.2, 0.2), State: model.CursorStateVisible, Confidence: 100},
	}
	e.Generate(cursorTrack, nil)

	vp := e.ViewportAt(ts(10_000_000))
	assert.Equal(t, model.DefaultViewport().Center, vp.Center)
}
