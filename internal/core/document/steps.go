package document

// StepState is how a single stepper step is drawn.
type StepState int

const (
	StepPending StepState = iota
	StepCurrent
	StepComplete
	StepFailed
)

// Step is one entry in the status stepper.
type Step struct {
	Label string // translation key
	State StepState
}

// Steps returns the stepper entries for a status. Rejected and cancelled
// documents end in a failed terminal step in place of "done".
func Steps(status Status) []Step {
	steps := []Step{
		{Label: "steps.created"},
		{Label: "steps.in_progress"},
		{Label: "steps.done"},
	}

	switch status {
	case StatusCreated:
		steps[0].State = StepCurrent
	case StatusInProgress:
		steps[0].State = StepComplete
		steps[1].State = StepCurrent
	case StatusDone:
		for i := range steps {
			steps[i].State = StepComplete
		}
	case StatusRejected, StatusCancelled:
		steps[0].State = StepComplete
		steps[1].State = StepComplete
		steps[2] = Step{Label: "steps." + statusKey(status), State: StepFailed}
	}

	return steps
}

// StatusLabel returns the translation key for a status.
func StatusLabel(status Status) string {
	return "status." + statusKey(status)
}

func statusKey(status Status) string {
	switch status {
	case StatusCreated:
		return "created"
	case StatusInProgress:
		return "in_progress"
	case StatusDone:
		return "done"
	case StatusRejected:
		return "rejected"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
