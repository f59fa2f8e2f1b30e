package forms

import (
	"context"
	"fmt"

	"hackverse/internal/domain"
)

// SubmitFunc sends an assembled create request.
type SubmitFunc func(ctx context.Context, req *domain.CreateHackathonRequest) error

// Wizard walks a HackathonForm through its steps. The current step is always in
// [1, len(steps)] and only moves one step at a time.
type Wizard struct {
	form  *HackathonForm
	steps []Step
	step  int
}

// NewWizard starts a wizard on step 1.
func NewWizard(form *HackathonForm) *Wizard {
	return &Wizard{form: form, steps: HackathonSteps(), step: 1}
}

// Form returns the form the wizard edits.
func (w *Wizard) Form() *HackathonForm {
	return w.form
}

// Step returns the current 1-based step number.
func (w *Wizard) Step() int {
	return w.step
}

// Current returns the current step.
func (w *Wizard) Current() Step {
	return w.steps[w.step-1]
}

// Total returns the number of steps.
func (w *Wizard) Total() int {
	return len(w.steps)
}

// IsFinal reports whether the wizard is on the last step.
func (w *Wizard) IsFinal() bool {
	return w.step == len(w.steps)
}

// Next validates the current step and advances when it is valid. On the final
// step Next does nothing.
func (w *Wizard) Next() error {
	if w.IsFinal() {
		return nil
	}
	if errs := w.form.ValidateStep(w.step); len(errs) > 0 {
		return fmt.Errorf("step %d %s: %w", w.step, w.Current().Title, errs)
	}
	w.step++
	return nil
}

// Prev goes back one step without validation; on step 1 it does nothing.
func (w *Wizard) Prev() {
	if w.step > 1 {
		w.step--
	}
}

// Submit validates every step, builds the payload and hands it to submit.
// It is only allowed on the final step. The current step never changes.
func (w *Wizard) Submit(ctx context.Context, submit SubmitFunc) (*domain.CreateHackathonRequest, error) {
	if !w.IsFinal() {
		return nil, fmt.Errorf("step %d of %d: %w", w.step, len(w.steps), domain.ErrNotFinalStep)
	}
	if errs := w.form.Validate(); len(errs) > 0 {
		return nil, errs
	}
	req := w.form.Payload()
	if err := submit(ctx, req); err != nil {
		return req, err
	}
	return req, nil
}
