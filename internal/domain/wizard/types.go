package wizard

import "errors"

var ErrUnknownStep = errors.New("unknown wizard step")

// Step is the wizard position. Steps are ordered; forward movement is
// guarded, backward movement is always allowed.
type Step string

const (
	StepCategory Step = "category"
	StepRoom     Step = "room"
	StepService  Step = "service"
	StepTime     Step = "time"
	StepConfirm  Step = "confirm"
	StepSuccess  Step = "success"
)

var stepOrder = map[Step]int{
	StepCategory: 0,
	StepRoom:     1,
	StepService:  2,
	StepTime:     3,
	StepConfirm:  4,
	StepSuccess:  5,
}

func ParseStep(s string) (Step, error) {
	step := Step(s)
	if _, ok := stepOrder[step]; !ok {
		return "", ErrUnknownStep
	}
	return step, nil
}

func (s Step) String() string {
	return string(s)
}

func (s Step) Before(other Step) bool {
	return stepOrder[s] < stepOrder[other]
}
