// Package engine is the facade the host embeds: it parses textual
// configuration and signal batches, drives the tracking, focus,
// camera, and effect stages in the order fixed by the pipeline
// (spec.md §3's data-flow diagram), and answers viewport/time-remap
// queries. Every exported method is a boundary operation: failures
// here surface as *enginerr.Error, everything downstream of a
// successful parse saturates or clamps instead of failing.
package engine

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mizzleinetimi/screenmu-chrome/internal/camera"
	"github.com/mizzleinetimi/screenmu-chrome/internal/effects"
	"github.com/mizzleinetimi/screenmu-chrome/internal/enginerr"
	"github.com/mizzleinetimi/screenmu-chrome/internal/focus"
	"github.com/mizzleinetimi/screenmu-chrome/internal/model"
	"github.com/mizzleinetimi/screenmu-chrome/internal/timeremap"
	"github.com/mizzleinetimi/screenmu-chrome/internal/tracking"
)

// Engine composes the four per-batch stages behind a single textual
// interface.
type Engine struct {
	config  model.EngineConfig
	tracker *tracking.Tracker
	focus   *focus.Analyzer
	camera  *camera.Engine
	effects *effects.Generator
	log     zerolog.Logger
}

// New parses a textual EngineConfig (spec.md §6 item 1) and wires the
// four stages from it.
func New(configJSON []byte) (*Engine, error) {
	var cfg model.EngineConfig
	if err := json.Unmarshal(configJSON, &cfg); err != nil {
		return nil, enginerr.Wrap(enginerr.InvalidConfig, "parse engine config", err)
	}

	return &Engine{
		config:  cfg,
		tracker: tracking.New(cfg.CaptureMode),
		focus:   focus.New(),
		camera:  camera.New(cfg.CameraSettings),
		effects: effects.New(cfg.EffectSettings),
		log:     log.With().Str("component", "engine").Logger(),
	}, nil
}

// Config returns the parsed configuration the facade was built with.
func (e *Engine) Config() model.EngineConfig { return e.config }

// ProcessSignals parses a textual SignalBatch, runs it through
// tracking -> focus -> camera, independently through effects, and
// returns the combined AnalysisResult (spec.md §6 item 2). Each batch
// gets a correlation id for its debug log events; the id never
// appears in the returned JSON.
func (e *Engine) ProcessSignals(signalsJSON []byte) (model.AnalysisResult, error) {
	batchID := uuid.New()
	logger := e.log.With().Str("batch_id", batchID.String()).Logger()

	var batch model.SignalBatch
	if err := json.Unmarshal(signalsJSON, &batch); err != nil {
		logger.Error().Err(err).Msg("signal batch parse failed")
		return model.AnalysisResult{}, enginerr.Wrap(enginerr.SignalProcessing, "parse signal batch", err)
	}
	logger.Debug().Int("events", len(batch.Events)).Msg("decoded signal batch")

	cursorTrack := e.tracker.Process(batch)
	logger.Debug().Int("points", len(cursorTrack)).Msg("tracked cursor")

	focusRegions := e.focus.Analyze(batch, cursorTrack)
	logger.Debug().Int("regions", len(focusRegions)).Msg("analyzed focus regions")

	keyframes := e.camera.Generate(cursorTrack, focusRegions)
	logger.Debug().Int("keyframes", len(keyframes)).Msg("generated camera keyframes")

	effectTrack := e.effects.Generate(batch, cursorTrack)
	logger.Debug().Int("effects", len(effectTrack.Effects)).Msg("generated effects")

	return model.AnalysisResult{
		CursorTrack:     cursorTrack,
		FocusRegions:    focusRegions,
		CameraKeyframes: keyframes,
		EffectTracks:    effectTrack,
	}, nil
}

// ViewportAt answers a viewport query at an arbitrary timestamp
// (spec.md §6 item 3) against the most recently generated keyframes.
func (e *Engine) ViewportAt(timestampUs uint64) model.Viewport {
	return e.camera.ViewportAt(model.TimestampFromMicros(timestampUs))
}

// NewRemapper parses a textual remapper configuration (spec.md §6
// item 4).
func (e *Engine) NewRemapper(configJSON []byte) (*timeremap.Remapper, error) {
	cfg, err := timeremap.ParseConfig(configJSON)
	if err != nil {
		e.log.Error().Err(err).Msg("remapper config parse failed")
		return nil, err
	}
	return timeremap.FromConfig(cfg), nil
}

// NewIdentityRemapper builds a cut-free, ramp-free remapper over
// [inPointUs, outPointUs).
func (e *Engine) NewIdentityRemapper(inPointUs, outPointUs uint64) *timeremap.Remapper {
	return timeremap.Identity(model.TimestampFromMicros(inPointUs), model.TimestampFromMicros(outPointUs))
}

// MarshalResult serializes an AnalysisResult back to the host,
// wrapping any failure as enginerr.Serialization.
func MarshalResult(result model.AnalysisResult) ([]byte, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, enginerr.Wrap(enginerr.Serialization, "marshal analysis result", err)
	}
	return data, nil
}
