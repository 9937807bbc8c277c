// Package effects implements the effect generator (spec.md §4.5): two
// independently-toggled cues, click rings and cursor highlights.
package effects

import "github.com/mizzleinetimi/screenmu-chrome/internal/model"

const (
	clickRingDurationUs       uint64 = 300_000
	cursorHighlightDurationUs uint64 = 100_000
)

// Generator emits visual-effect cues from a signal batch and its
// cursor track.
type Generator struct {
	settings model.EffectSettings
}

// New constructs a Generator with the given settings.
func New(settings model.EffectSettings) *Generator {
	return &Generator{settings: settings}
}

// Generate builds an EffectTrack in input-event order followed by
// cursor-track order (spec.md §5).
func (g *Generator) Generate(batch model.SignalBatch, cursorTrack []model.CursorTrackPoint) model.EffectTrack {
	var track model.EffectTrack

	if g.settings.ClickRings {
		for _, event := range batch.Events {
			click, ok := event.Payload.(model.MouseClickPayload)
			if !ok {
				continue
			}
			track.Effects = append(track.Effects, model.Effect{
				Timestamp:  event.Timestamp,
				DurationUs: clickRingDurationUs,
				EffectType: model.EffectTypeClickRing,
				Position:   click.Position,
			})
		}
	}

	if g.settings.CursorHighlight {
		for _, point := range cursorTrack {
			if point.Confidence < 80 {
				continue
			}
			track.Effects = append(track.Effects, model.Effect{
				Timestamp:  point.Timestamp,
				DurationUs: cursorHighlightDurationUs,
				EffectType: model.EffectTypeCursorHighlight,
				Position:   point.Position,
			})
		}
	}

	return track
}
