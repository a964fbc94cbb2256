// internal/configurator/wizard.go
package configurator

// Step is one screen of the configuration flow.
type Step string

const (
	StepOverview     Step = "overview"
	StepCustomize    Step = "customize"
	StepMarketplace  Step = "marketplace"
	StepInstallation Step = "installation"
	StepShare        Step = "share"
)

// stepOrder is the explicit step table. Transitions are strictly linear;
// no index arithmetic against throwaway slices.
var stepOrder = map[Step]int{
	StepOverview:     0,
	StepCustomize:    1,
	StepMarketplace:  2,
	StepInstallation: 3,
	StepShare:        4,
}

var stepsInOrder = []Step{
	StepOverview,
	StepCustomize,
	StepMarketplace,
	StepInstallation,
	StepShare,
}

// Order returns the zero-based position of a step in the flow, or -1 for an
// unknown step.
func (s Step) Order() int {
	if i, ok := stepOrder[s]; ok {
		return i
	}
	return -1
}

func (s Step) Valid() bool {
	_, ok := stepOrder[s]
	return ok
}

// Wizard is the linear configuration state machine. Transitions never fail.
type Wizard struct {
	current Step
}

func NewWizard() *Wizard {
	return &Wizard{current: StepOverview}
}

func (w *Wizard) Current() Step {
	return w.current
}

// Next advances exactly one step. From the final step it reports completion
// instead of transitioning further; the caller exits the flow.
func (w *Wizard) Next() (step Step, completed bool) {
	i := w.current.Order()
	if i >= len(stepsInOrder)-1 {
		return w.current, true
	}
	w.current = stepsInOrder[i+1]
	return w.current, false
}

// Previous moves exactly one step back. A no-op at the first step.
func (w *Wizard) Previous() Step {
	i := w.current.Order()
	if i > 0 {
		w.current = stepsInOrder[i-1]
	}
	return w.current
}

// Jump forces the wizard to a step, bypassing linearity. Only vehicle
// selection uses this (it lands on customize regardless of current step).
func (w *Wizard) Jump(s Step) {
	if s.Valid() {
		w.current = s
	}
}
