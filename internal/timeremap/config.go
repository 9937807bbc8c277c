package timeremap

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/mizzleinetimi/screenmu-chrome/internal/enginerr"
	"github.com/mizzleinetimi/screenmu-chrome/internal/model"
)

// Config is the textual wire configuration for a Remapper (spec.md
// §6 item 4): cuts and speed ramps as flat microsecond ranges, plus
// the trim endpoints.
type Config struct {
	Cuts       []CutConfig     `json:"cuts"`
	SpeedRamps []RampConfig    `json:"speed_ramps"`
	InPointUs  model.Timestamp `json:"in_point_us"`
	OutPointUs model.Timestamp `json:"out_point_us"`
}

// CutConfig is one cut's wire representation.
type CutConfig struct {
	StartUs model.Timestamp `json:"start_us"`
	EndUs   model.Timestamp `json:"end_us"`
}

// RampConfig is one speed ramp's wire representation.
type RampConfig struct {
	StartUs model.Timestamp `json:"start_us"`
	EndUs   model.Timestamp `json:"end_us"`
	Speed   float32         `json:"speed"`
}

// FromConfig builds a Remapper from a textual configuration. Cuts and
// ramps are sorted and speeds clamped as part of construction.
func FromConfig(cfg Config) *Remapper {
	cuts := make([]model.TimeRange, 0, len(cfg.Cuts))
	for _, c := range cfg.Cuts {
		cuts = append(cuts, model.NewTimeRange(c.StartUs, c.EndUs))
	}

	ramps := make([]model.SpeedRamp, 0, len(cfg.SpeedRamps))
	for _, r := range cfg.SpeedRamps {
		ramps = append(ramps, model.NewSpeedRamp(model.NewTimeRange(r.StartUs, r.EndUs), r.Speed))
	}

	return New(cuts, ramps, cfg.InPointUs, cfg.OutPointUs)
}

// ParseConfig decodes a textual remapper configuration, wrapping parse
// failures as enginerr.InvalidConfig.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, enginerr.Wrap(enginerr.InvalidConfig, "parse remapper config", err)
	}
	if cfg.OutPointUs < cfg.InPointUs {
		return Config{}, enginerr.New(enginerr.InvalidConfig, "out_point_us precedes in_point_us")
	}
	return cfg, nil
}

// Config returns the normalized wire configuration: cuts and ramps in
// sorted order, speeds clamped, per spec.md §6 item 5's round-trip
// serializer.
func (r *Remapper) Config() Config {
	cuts := make([]CutConfig, 0, len(r.cuts))
	for _, c := range r.cuts {
		cuts = append(cuts, CutConfig{StartUs: c.Start, EndUs: c.End})
	}

	ramps := make([]RampConfig, 0, len(r.ramps))
	for _, rr := range r.ramps {
		ramps = append(ramps, RampConfig{StartUs: rr.Range.Start, EndUs: rr.Range.End, Speed: rr.Speed})
	}

	return Config{
		Cuts:       cuts,
		SpeedRamps: ramps,
		InPointUs:  r.inPoint,
		OutPointUs: r.outPoint,
	}
}

// MarshalJSON serializes a Remapper's normalized configuration.
func (r *Remapper) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(r.Config())
	if err != nil {
		return nil, errors.Wrap(err, "marshal remapper config")
	}
	return data, nil
}
