// Package timeremap implements the time remapper (spec.md §4.2): an
// invertible mapping between export time and source time that accounts
// for cut-out segments and variable-speed ramps.
//
// export_duration and to_source_time share one rounding rule
// (segmentExportLength) by construction, which is what keeps
// to_source_time monotonic (spec.md §8.1, §9).
package timeremap

import (
	"math"
	"sort"

	"github.com/mizzleinetimi/screenmu-chrome/internal/model"
)

// Remapper holds sorted cuts and speed ramps over a trimmed source
// interval [InPoint, OutPoint), and answers queries against them.
type Remapper struct {
	cuts     []model.TimeRange
	ramps    []model.SpeedRamp
	inPoint  model.Timestamp
	outPoint model.Timestamp
}

// New sorts cuts and ramps by start time and retains them immutably.
func New(cuts []model.TimeRange, ramps []model.SpeedRamp, inPoint, outPoint model.Timestamp) *Remapper {
	sortedCuts := append([]model.TimeRange(nil), cuts...)
	sort.Slice(sortedCuts, func(i, j int) bool { return sortedCuts[i].Start < sortedCuts[j].Start })

	sortedRamps := append([]model.SpeedRamp(nil), ramps...)
	sort.Slice(sortedRamps, func(i, j int) bool { return sortedRamps[i].Range.Start < sortedRamps[j].Range.Start })

	return &Remapper{cuts: sortedCuts, ramps: sortedRamps, inPoint: inPoint, outPoint: outPoint}
}

// Identity returns a Remapper with no cuts or speed ramps.
func Identity(inPoint, outPoint model.Timestamp) *Remapper {
	return New(nil, nil, inPoint, outPoint)
}

// InPoint returns the trim start.
func (r *Remapper) InPoint() model.Timestamp { return r.inPoint }

// OutPoint returns the trim end.
func (r *Remapper) OutPoint() model.Timestamp { return r.outPoint }

// Cuts returns the sorted cut list.
func (r *Remapper) Cuts() []model.TimeRange { return r.cuts }

// SpeedRamps returns the sorted ramp list.
func (r *Remapper) SpeedRamps() []model.SpeedRamp { return r.ramps }

// IsCut reports whether a source timestamp falls within any cut.
func (r *Remapper) IsCut(source model.Timestamp) bool {
	for _, cut := range r.cuts {
		if cut.Contains(source) {
			return true
		}
	}
	return false
}

// SpeedAt returns the speed of the first (in sorted order) ramp
// containing source, or 1.0 if none does.
func (r *Remapper) SpeedAt(source model.Timestamp) float32 {
	for _, ramp := range r.ramps {
		if ramp.Range.Contains(source) {
			return ramp.Speed
		}
	}
	return 1.0
}

// segmentExportLength rounds a source-duration/speed ratio to the
// nearest microsecond, half-away-from-zero. Both export_duration and
// to_source_time call this one function so their rounding never
// diverges.
func segmentExportLength(sourceLen model.Timestamp, speed float32) uint64 {
	return uint64(math.Round(float64(sourceLen) / float64(speed)))
}

// segmentSourceLength is the inverse of segmentExportLength, used to
// place a cursor inside a segment given an export offset.
func segmentSourceLength(exportLen uint64, speed float32) uint64 {
	return uint64(math.Round(float64(exportLen) * float64(speed)))
}

// findNextBoundary returns the smallest boundary strictly greater than
// source: a cut start, a speed-ramp start/end, or r.outPoint.
func (r *Remapper) findNextBoundary(source model.Timestamp) model.Timestamp {
	next := r.outPoint

	for _, cut := range r.cuts {
		if cut.Start > source && cut.Start < next {
			next = cut.Start
		}
	}
	for _, ramp := range r.ramps {
		if ramp.Range.Start > source && ramp.Range.Start < next {
			next = ramp.Range.Start
		}
		if ramp.Range.End > source && ramp.Range.End < next {
			next = ramp.Range.End
		}
	}

	return next
}

// skipCutsForward advances ts past any cut that contains it, iterating
// so adjacent/nested cuts collapse, then clamps to outPoint.
func (r *Remapper) skipCutsForward(ts model.Timestamp) model.Timestamp {
	current := ts
	for {
		advanced := false
		for _, cut := range r.cuts {
			if cut.Contains(current) {
				current = cut.End
				advanced = true
				break
			}
		}
		if !advanced {
			break
		}
	}
	return current.Min(r.outPoint)
}

// ExportDuration walks the source cursor from InPoint to OutPoint,
// skipping cuts and converting each constant-speed segment's source
// length into export microseconds (spec.md §4.2).
func (r *Remapper) ExportDuration() model.Timestamp {
	if r.outPoint <= r.inPoint {
		return 0
	}

	var total uint64
	source := r.inPoint

	for source < r.outPoint {
		if r.IsCut(source) {
			source = r.cutEnd(source).Min(r.outPoint)
			continue
		}

		boundary := r.findNextBoundary(source)
		segmentLen := boundary.Sub(source)
		speed := r.SpeedAt(source)

		total += segmentExportLength(segmentLen, speed)
		source = boundary
	}

	return model.Timestamp(total)
}

// cutEnd returns the end of the cut containing source, or source
// itself if none does.
func (r *Remapper) cutEnd(source model.Timestamp) model.Timestamp {
	for _, cut := range r.cuts {
		if cut.Contains(source) {
			return cut.End
		}
	}
	return source
}

// ToSourceTime maps an export timestamp back to source time (spec.md
// §4.2). Export times beyond ExportDuration() saturate to OutPoint;
// negative export times (impossible for the unsigned Timestamp type,
// but conceptually zero) collapse to the first non-cut source
// position.
func (r *Remapper) ToSourceTime(exportTime model.Timestamp) model.Timestamp {
	source := r.skipCutsForward(r.inPoint)

	if exportTime == 0 {
		return source
	}

	remaining := exportTime.Micros()

	for remaining > 0 && source < r.outPoint {
		boundary := r.findNextBoundary(source)
		segmentSourceLen := boundary.Sub(source)
		speed := r.SpeedAt(source)
		segmentExportLen := segmentExportLength(segmentSourceLen, speed)

		if remaining < segmentExportLen {
			offset := segmentSourceLength(remaining, speed)
			source = source.Add(model.Timestamp(offset))
			remaining = 0
		} else {
			remaining -= segmentExportLen
			source = boundary
			source = r.skipCutsForward(source)
		}
	}

	return source.Min(r.outPoint)
}
