// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trends

import (
	"encoding/json"
	"fmt"
)

// DeltaState distinguishes the sentinel cases a period-over-period delta
// can take. Undefined means no comparison was requested (single-period
// mode); it is ordered below -Inf but rendered distinctly.
type DeltaState int

const (
	DeltaUndefined DeltaState = iota
	DeltaNegInf
	DeltaFinite
	DeltaPosInf
)

// Delta is a percent change that may be infinite or undefined.
type Delta struct {
	State DeltaState
	// Value is the percent change; meaningful only when State is DeltaFinite.
	Value float64
}

// FiniteDelta wraps a finite percent value.
func FiniteDelta(v float64) Delta {
	return Delta{State: DeltaFinite, Value: v}
}

// UndefinedDelta is the sentinel for "comparison not requested".
func UndefinedDelta() Delta {
	return Delta{State: DeltaUndefined}
}

// PercentChange converts two period counts into a display delta. Growth
// from nothing is +Inf; no activity in either period reports 0%, matching
// Growth's zero handling; otherwise the finite percent change (b-a)/a.
func PercentChange(a, b int) Delta {
	if a == 0 {
		if b > 0 {
			return Delta{State: DeltaPosInf}
		}
		return FiniteDelta(0)
	}
	return FiniteDelta((float64(b) - float64(a)) / float64(a) * 100)
}

func (d Delta) String() string {
	switch d.State {
	case DeltaUndefined:
		return "n/a"
	case DeltaNegInf:
		return "-inf"
	case DeltaPosInf:
		return "+inf"
	default:
		return fmt.Sprintf("%+.1f%%", d.Value)
	}
}

// MarshalJSON emits finite deltas as numbers, infinities as strings, and
// undefined as null, so consumers get parseable JSON without NaN/Inf
// literals.
func (d Delta) MarshalJSON() ([]byte, error) {
	switch d.State {
	case DeltaUndefined:
		return []byte("null"), nil
	case DeltaNegInf:
		return json.Marshal("-Inf")
	case DeltaPosInf:
		return json.Marshal("+Inf")
	default:
		return json.Marshal(d.Value)
	}
}

// MarshalYAML mirrors MarshalJSON for YAML exports.
func (d Delta) MarshalYAML() (any, error) {
	switch d.State {
	case DeltaUndefined:
		return nil, nil
	case DeltaNegInf:
		return "-Inf", nil
	case DeltaPosInf:
		return "+Inf", nil
	default:
		return d.Value, nil
	}
}
