// Package model holds the value types shared by every pipeline stage:
// timestamps, normalized geometry, the capture/cursor/easing enums, the
// tagged input-event union, and the wire-facing batch/result/config
// structs. Every type here is a pure value with no aliasing between
// instances.
package model

import "encoding/json"

// Timestamp is a count of microseconds since an arbitrary origin. It is
// totally ordered and arithmetic on it saturates rather than wrapping.
type Timestamp uint64

// TimestampFromMicros constructs a Timestamp from a raw microsecond count.
func TimestampFromMicros(us uint64) Timestamp {
	return Timestamp(us)
}

// Micros returns the raw microsecond count.
func (t Timestamp) Micros() uint64 {
	return uint64(t)
}

// Millis returns the timestamp in fractional milliseconds.
func (t Timestamp) Millis() float64 {
	return float64(t) / 1_000.0
}

// Secs returns the timestamp in fractional seconds.
func (t Timestamp) Secs() float64 {
	return float64(t) / 1_000_000.0
}

// Sub returns t - o, saturating at zero on underflow instead of wrapping.
func (t Timestamp) Sub(o Timestamp) Timestamp {
	if o > t {
		return 0
	}
	return t - o
}

// Add returns t + o, saturating at the maximum uint64 on overflow.
func (t Timestamp) Add(o Timestamp) Timestamp {
	sum := uint64(t) + uint64(o)
	if sum < uint64(t) {
		return Timestamp(^uint64(0))
	}
	return Timestamp(sum)
}

// Min returns the smaller of t and o.
func (t Timestamp) Min(o Timestamp) Timestamp {
	if t < o {
		return t
	}
	return o
}

// Max returns the larger of t and o.
func (t Timestamp) Max(o Timestamp) Timestamp {
	if t > o {
		return t
	}
	return o
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(t))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw uint64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Timestamp(raw)
	return nil
}
