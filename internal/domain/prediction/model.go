// Package prediction holds the duration adjustment models.
//
// Two variants implement AdjustmentModel: a stateless table-driven heuristic
// and a learned regressor fitted on trip history. Exactly one learned model is
// active process-wide at a time and it is swapped through a Registry.
package prediction

import (
	"sync/atomic"
)

// Kind names an adjustment path.
type Kind string

const (
	KindHeuristic Kind = "heuristic"
	KindLearned   Kind = "learned"
)

const (
	// HeuristicConfidence is reported for every heuristic prediction.
	HeuristicConfidence = 0.5
	// LearnedConfidence is reported for every learned-model prediction.
	LearnedConfidence = 0.8
)

// Features is everything a model may use to adjust a base duration.
type Features struct {
	Distance           float64 // meters
	BaseDuration       float64 // seconds
	Hour               int
	DayOfWeek          int // 0=Monday
	IsWeekend          bool
	IsHoliday          bool
	WeatherCondition   string
	Temperature        float64
	IncidentCount      int
	IncidentSeverities []string
}

// Adjustment is the output of a model.
type Adjustment struct {
	Factor        float64
	Confidence    float64
	Contributions map[string]float64
}

// AdjustmentModel turns features into a multiplicative duration factor.
type AdjustmentModel interface {
	Kind() Kind
	ComputeFactor(features Features) (Adjustment, error)
}

// Registry holds the active learned model.
// Readers always see either the previous or the next model, never a mix.
type Registry struct {
	active atomic.Pointer[LearnedModel]
}

// NewRegistry returns an empty registry; predictions use heuristics until a model is activated.
func NewRegistry() *Registry {
	return &Registry{}
}

// Active returns the current learned model or nil.
func (r *Registry) Active() *LearnedModel {
	return r.active.Load()
}

// Activate replaces the current learned model.
func (r *Registry) Activate(model *LearnedModel) {
	r.active.Store(model)
}
