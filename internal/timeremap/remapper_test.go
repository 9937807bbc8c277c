package timeremap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizzleinetimi/screenmu-chrome/internal/model"
)

func us(v uint64) model.Timestamp { return model.TimestampFromMicros(v) }

func TestIdentityRemap(t *testing.T) {
	r := Identity(us(0), us(10_000_000))

	assert.Equal(t, us(10_000_000), r.ExportDuration())
	for _, e := range []uint64{0, 1, 2_500_000, 9_999_999, 10_000_000} {
		assert.Equal(t, us(e), r.ToSourceTime(us(e)), "e=%d", e)
		assert.False(t, r.IsCut(us(e)))
		assert.Equal(t, float32(1.0), r.SpeedAt(us(e)))
	}
}

func TestSingleCut(t *testing.T) {
	r := New(
		[]model.TimeRange{model.NewTimeRange(us(2_000_000), us(4_000_000))},
		nil, us(0), us(10_000_000),
	)

	assert.Equal(t, us(8_000_000), r.ExportDuration())
	assert.Equal(t, us(0), r.ToSourceTime(us(0)))
	assert.Equal(t, us(1_000_000), r.ToSourceTime(us(1_000_000)))
	assert.Equal(t, us(4_000_000), r.ToSourceTime(us(2_000_000)))
	assert.Equal(t, us(5_000_000), r.ToSourceTime(us(3_000_000)))
}

func TestSingleSpeedRamp(t *testing.T) {
	r := New(
		nil,
		[]model.SpeedRamp{model.NewSpeedRamp(model.NewTimeRange(us(2_000_000), us(4_000_000)), 2.0)},
		us(0), us(10_000_000),
	)

	assert.Equal(t, us(9_000_000), r.ExportDuration())
	assert.Equal(t, us(2_000_000), r.ToSourceTime(us(2_000_000)))
	assert.Equal(t, us(3_000_000), r.ToSourceTime(us(2_500_000)))
	assert.Equal(t, us(4_000_000), r.ToSourceTime(us(3_000_000)))
	assert.Equal(t, us(5_000_000), r.ToSourceTime(us(4_000_000)))
}

func TestCombinedCutAndRamp(t *testing.T) {
	r := New(
		[]model.TimeRange{model.NewTimeRange(us(2_000_000), us(3_000_000))},
		[]model.SpeedRamp{model.NewSpeedRamp(model.NewTimeRange(us(5_000_000), us(7_000_000)), 2.0)},
		us(0), us(10_000_000),
	)

	assert.Equal(t, us(8_000_000), r.ExportDuration())
}

func TestCutExclusion(t *testing.T) {
	r := New(
		[]model.TimeRange{model.NewTimeRange(us(2_000_000), us(4_000_000))},
		nil, us(0), us(10_000_000),
	)

	duration := r.ExportDuration()
	for e := uint64(0); e <= duration.Micros(); e += 250_000 {
		source := r.ToSourceTime(us(e))
		assert.False(t, r.IsCut(source), "source=%d should not be inside a cut", source)
	}
}

func TestMonotonicRemap(t *testing.T) {
	r := New(
		[]model.TimeRange{model.NewTimeRange(us(1_000_000), us(1_500_000))},
		[]model.SpeedRamp{model.NewSpeedRamp(model.NewTimeRange(us(3_000_000), us(5_000_000)), 4.0)},
		us(0), us(10_000_000),
	)

	duration := r.ExportDuration()
	var prev model.Timestamp
	for e := uint64(0); e <= duration.Micros(); e += 50_000 {
		source := r.ToSourceTime(us(e))
		assert.GreaterOrEqual(t, source, prev)
		prev = source
	}
}

func TestSpeedClampedAtConstruction(t *testing.T) {
	r := New(nil, []model.SpeedRamp{
		model.NewSpeedRamp(model.NewTimeRange(us(0), us(1_000_000)), 100.0),
		model.NewSpeedRamp(model.NewTimeRange(us(1_000_000), us(2_000_000)), 0.001),
	}, us(0), us(2_000_000))

	assert.Equal(t, model.MaxSpeed, r.SpeedAt(us(0)))
	assert.Equal(t, model.MinSpeed, r.SpeedAt(us(1_500_000)))
}

func TestOutOfRangeQueriesSaturate(t *testing.T) {
	r := Identity(us(0), us(5_000_000))

	assert.Equal(t, us(5_000_000), r.ToSourceTime(us(50_000_000)))
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := Config{
		Cuts:       []CutConfig{{StartUs: us(4_000_000), EndUs: us(5_000_000)}, {StartUs: us(1_000_000), EndUs: us(2_000_000)}},
		SpeedRamps: []RampConfig{{StartUs: us(6_000_000), EndUs: us(7_000_000), Speed: 2.0}},
		InPointUs:  us(0),
		OutPointUs: us(10_000_000),
	}

	r := FromConfig(cfg)
	normalized := r.Config()

	require.Len(t, normalized.Cuts, 2)
	assert.Equal(t, us(1_000_000), normalized.Cuts[0].StartUs)
	assert.Equal(t, us(4_000_000), normalized.Cuts[1].StartUs)
	assert.Equal(t, us(0), normalized.InPointUs)
	assert.Equal(t, us(10_000_000), normalized.OutPointUs)
}

func TestParseConfigRejectsInvertedPoints(t *testing.T) {
	_, err := ParseConfig([]byte(`{"cuts":[],"speed_ramps":[],"in_point_us":5000000,"out_point_us":1000000}`))
	require.Error(t, err)
}

func TestParseConfigRejectsMalformedJSON(t *testing.T) {
	_, err := ParseConfig([]byte(`{not json`))
	require.Error(t, err)
}
