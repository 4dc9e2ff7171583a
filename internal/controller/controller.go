package controller

import (
	"context"

	"github.com/dsouzarc/incast/internal/models"
)

// GenericFailureMessage is the only error text ever shown to the user.
// Transport failures, non-2xx statuses, and malformed bodies all collapse
// to it; raw error detail stays in the logs.
const GenericFailureMessage = "Prediction failed. Please check the service and try again."

// State is the lifecycle of the single outstanding prediction request.
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Predictor issues a single prediction request. client.Client satisfies it.
type Predictor interface {
	Predict(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error)
}

// Event is the completion of an in-flight submission. Exactly one of
// Result and Err is set.
type Event struct {
	Result *models.PredictionResult
	Err    error
}

// Controller owns the form field state and the request lifecycle. It is
// the only writer of State; views read it between events. All methods
// must be called from a single goroutine (the TUI event loop or a CLI
// command), matching the event-driven model it is built for.
type Controller struct {
	svc   Predictor
	date  string
	group string

	state   State
	result  *models.PredictionResult
	message string
}

func New(svc Predictor) *Controller {
	return &Controller{svc: svc}
}

// SetDate and SetAssignmentGroup update the form fields. They never fail
// and have no effect on an in-flight request, which was built from a
// snapshot of the fields at Submit time.
func (c *Controller) SetDate(v string)            { c.date = v }
func (c *Controller) SetAssignmentGroup(v string) { c.group = v }

func (c *Controller) Date() string            { return c.date }
func (c *Controller) AssignmentGroup() string { return c.group }
func (c *Controller) State() State            { return c.state }

// Result returns the payload of the last successful submission, or nil.
func (c *Controller) Result() *models.PredictionResult { return c.result }

// ErrorMessage returns the user-facing message while in Failed, else "".
func (c *Controller) ErrorMessage() string { return c.message }

// Submit starts a submission. While a request is in flight the call is a
// no-op and returns nil. Otherwise the controller transitions to
// Submitting, clears any previous result or error, and returns a thunk
// that performs exactly one request and yields the completion event,
// which the caller feeds back through Resolve. The thunk shape matches
// bubbletea's Cmd/Msg pattern so the TUI can run it directly.
func (c *Controller) Submit(ctx context.Context) func() Event {
	if c.state == Submitting {
		return nil
	}
	c.state = Submitting
	c.result = nil
	c.message = ""

	req := models.PredictionRequest{Date: c.date, AssignmentGroup: c.group}
	svc := c.svc
	return func() Event {
		result, err := svc.Predict(ctx, req)
		if err != nil {
			return Event{Err: err}
		}
		return Event{Result: result}
	}
}

// Resolve applies a completion event. Events arriving outside Submitting
// are ignored; there is no way to cancel a request, so a late event from
// an abandoned submission must not clobber newer state.
func (c *Controller) Resolve(ev Event) {
	if c.state != Submitting {
		return
	}
	if ev.Err != nil || ev.Result == nil {
		c.state = Failed
		c.message = GenericFailureMessage
		return
	}
	c.state = Succeeded
	c.result = ev.Result
}
