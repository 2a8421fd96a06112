package ticket

import (
	"time"

	"antriqu/internal/pkg/errs"
	"antriqu/internal/pkg/patch"
)

type Action string

const (
	ActionCall    Action = "call"
	ActionResolve Action = "resolve"
	ActionSkip    Action = "skip"
	// ActionRecall re-announces a Calling ticket. It never changes state.
	ActionRecall Action = "recall"
)

func (a Action) String() string {
	return string(a)
}

var transitionMap = map[Action][]Status{
	ActionCall:    {StatusWaiting},
	ActionResolve: {StatusCalling},
	ActionSkip:    {StatusCalling},
	ActionRecall:  {StatusCalling},
}

var targetStatus = map[Action]Status{
	ActionCall:    StatusCalling,
	ActionResolve: StatusCompleted,
	ActionSkip:    StatusSkipped,
}

func ValidTransition(action Action, from Status) bool {
	allowed, ok := transitionMap[action]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == from {
			return true
		}
	}
	return false
}

// Patch is the set of mutable fields a transition writes. Nil fields are left untouched.
type Patch struct {
	Status   *Status
	Counter  *int
	CalledAt *time.Time
}

func (p Patch) applyTo(t *Ticket) {
	if p.Status != nil {
		t.status = *p.Status
	}
	if p.Counter != nil {
		t.counter = patch.Clone(p.Counter)
	}
	if p.CalledAt != nil {
		t.calledAt = patch.Clone(p.CalledAt)
	}
}

// Call plans Waiting -> Calling for the given counter.
func Call(t *Ticket, counter int, now time.Time) (Patch, error) {
	if counter <= 0 {
		return Patch{}, ErrInvalidCounter
	}
	if err := check(t, ActionCall); err != nil {
		return Patch{}, err
	}
	return Patch{
		Status:   patch.Ptr(targetStatus[ActionCall]),
		Counter:  patch.Ptr(counter),
		CalledAt: patch.Ptr(now),
	}, nil
}

// Resolve plans Calling -> Completed.
func Resolve(t *Ticket) (Patch, error) {
	return finish(t, ActionResolve)
}

// Skip plans Calling -> Skipped.
func Skip(t *Ticket) (Patch, error) {
	return finish(t, ActionSkip)
}

// Recall only validates that t may be re-announced.
func Recall(t *Ticket) error {
	return check(t, ActionRecall)
}

func finish(t *Ticket, action Action) (Patch, error) {
	if err := check(t, action); err != nil {
		return Patch{}, err
	}
	return Patch{Status: patch.Ptr(targetStatus[action])}, nil
}

func check(t *Ticket, action Action) error {
	if t == nil {
		return ErrNotFound
	}
	if !ValidTransition(action, t.status) {
		return errs.Mark(errs.Newf("cannot %s ticket %s in status %s", action, t.displayNumber, t.status), ErrInvalidTransition)
	}
	return nil
}
