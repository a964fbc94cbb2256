// internal/configurator/wizard_test.go
package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWizardLinearForward(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, StepOverview, w.Current())

	var visited []Step
	for {
		step, completed := w.Next()
		if completed {
			break
		}
		visited = append(visited, step)
	}

	assert.Equal(t, []Step{StepCustomize, StepMarketplace, StepInstallation, StepShare}, visited)
}

func TestWizardCompletionSignal(t *testing.T) {
	w := &Wizard{current: StepShare}

	step, completed := w.Next()
	assert.True(t, completed)
	// completion signals exit; there is no sixth state
	assert.Equal(t, StepShare, step)
	assert.Equal(t, StepShare, w.Current())
}

func TestWizardPreviousNoOpAtOverview(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, StepOverview, w.Previous())

	w.Next()
	w.Next()
	assert.Equal(t, StepCustomize, w.Previous())
	assert.Equal(t, StepOverview, w.Previous())
	assert.Equal(t, StepOverview, w.Previous())
}

func TestWizardJump(t *testing.T) {
	w := &Wizard{current: StepInstallation}
	w.Jump(StepCustomize)
	assert.Equal(t, StepCustomize, w.Current())

	w.Jump(Step("teleport"))
	assert.Equal(t, StepCustomize, w.Current())
}

func TestStepOrder(t *testing.T) {
	assert.Equal(t, 0, StepOverview.Order())
	assert.Equal(t, 4, StepShare.Order())
	assert.Equal(t, -1, Step("unknown").Order())
}
