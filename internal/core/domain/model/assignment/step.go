package assignment

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/pkg/errs"
)

// StepKey names a fabrication station.
type StepKey string

const (
	RodCut      StepKey = "RodCut"
	UnistrutCut StepKey = "UnistrutCut"
	BraceCut    StepKey = "BraceCut"
	Assembly    StepKey = "Assembly"
	QACheck     StepKey = "QA"
)

type stepDefinition struct {
	label  string
	inputs []string
}

var stepDefinitions = map[StepKey]stepDefinition{
	RodCut:      {label: "Rod Cut", inputs: []string{"length"}},
	UnistrutCut: {label: "Unistrut Cut", inputs: []string{"length"}},
	BraceCut:    {label: "Brace Cut", inputs: []string{"length"}},
	Assembly:    {label: "Assembly", inputs: []string{"torqueVerified"}},
	QACheck:     {label: "QA", inputs: []string{"inspector"}},
}

var templates = map[hanger.Type][]StepKey{
	hanger.Trapeze: {RodCut, UnistrutCut, Assembly, QACheck},
	hanger.Clevis:  {RodCut, Assembly, QACheck},
	hanger.Seismic: {RodCut, UnistrutCut, BraceCut, Assembly, QACheck},
	hanger.Rack:    {UnistrutCut, RodCut, Assembly, QACheck},
}

// Step is one station an assignment passes through.
type Step struct {
	key            StepKey
	label          string
	requiredInputs []string
	completed      bool
	completedAt    *time.Time
	data           map[string]any
}

// NewStep builds an incomplete step for a known station key.
func NewStep(key StepKey) (Step, error) {
	def, ok := stepDefinitions[key]
	if !ok {
		return Step{}, errs.NewValueIsInvalidErrorWithCause("step key", fmt.Errorf("%q is not a known station", key))
	}
	return Step{key: key, label: def.label, requiredInputs: slices.Clone(def.inputs)}, nil
}

// StepsFor returns the fresh step template for a hanger type.
func StepsFor(t hanger.Type) ([]Step, error) {
	keys, ok := templates[t]
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("hanger type", fmt.Errorf("no step template for %s", t))
	}
	steps := make([]Step, 0, len(keys))
	for _, k := range keys {
		s, err := NewStep(k)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func (s Step) Key() StepKey             { return s.key }
func (s Step) Label() string            { return s.label }
func (s Step) RequiredInputs() []string { return slices.Clone(s.requiredInputs) }
func (s Step) Completed() bool          { return s.completed }
func (s Step) CompletedAt() *time.Time  { return s.completedAt }
func (s Step) Data() map[string]any     { return maps.Clone(s.data) }

// complete validates data against the required inputs and marks the step done.
// Completing an already completed step replaces its data, as QA rework does.
func (s *Step) complete(data map[string]any, at time.Time) error {
	var missing []string
	for _, in := range s.requiredInputs {
		if !hasValue(data, in) {
			missing = append(missing, in)
		}
	}
	if len(missing) > 0 {
		return errs.NewValueIsRequiredErrorWithCause(string(s.key),
			fmt.Errorf("missing inputs: %s", strings.Join(missing, ", ")))
	}
	at = at.UTC()
	s.completed = true
	s.completedAt = &at
	s.data = maps.Clone(data)
	return nil
}

func hasValue(data map[string]any, key string) bool {
	v, ok := data[key]
	if !ok || v == nil {
		return false
	}
	if str, isString := v.(string); isString {
		return strings.TrimSpace(str) != ""
	}
	return true
}
