// Package submit owns the composer's campaign and drives the
// validate, dispatch and reset-or-report lifecycle.
package submit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/harshmriduhash/Cold-Emailer/internal/campaign"
	"github.com/harshmriduhash/Cold-Emailer/pkg/ids"
	"github.com/harshmriduhash/Cold-Emailer/pkg/logx"
	"github.com/harshmriduhash/Cold-Emailer/pkg/metrics"
	"github.com/harshmriduhash/Cold-Emailer/pkg/model"
	"github.com/harshmriduhash/Cold-Emailer/pkg/notify"
)

// ErrInFlight is returned by Submit while an earlier submission is unresolved.
var ErrInFlight = errors.New("submit: a submission is already in flight")

type State int

const (
	Idle State = iota
	Submitting
)

func (s State) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "idle"
}

type Outcome string

const (
	OutcomeInvalid Outcome = metrics.OutcomeInvalid
	OutcomeSent    Outcome = metrics.OutcomeSent
	OutcomeFailed  Outcome = metrics.OutcomeFailed
)

// Notifications surfaced by Submit.
var (
	NoteInvalid = notify.Notification{
		Title:       "Validation Error",
		Description: "Please fix the errors in the form",
		Severity:    notify.SeverityDestructive,
	}
	NoteSent = notify.Notification{
		Title:       "Success!",
		Description: "Cold emails have been sent successfully",
		Severity:    notify.SeverityDefault,
	}
	NoteFailed = notify.Notification{
		Title:       "Error",
		Description: "Failed to send emails. Please try again.",
		Severity:    notify.SeverityDestructive,
	}
)

type Dispatcher interface {
	Dispatch(ctx context.Context, p model.Payload) error
}

// Recorder keeps a history of dispatch attempts. It never affects the outcome.
type Recorder interface {
	Begin(ctx context.Context, p model.Payload) (int64, error)
	Finish(ctx context.Context, id int64, dispatchErr error) error
}

type Result struct {
	Outcome Outcome
	Report  campaign.Report
	// Err is the dispatch error behind OutcomeFailed.
	Err error
}

// View is a consistent snapshot of the controller.
type View struct {
	Campaign campaign.Campaign `json:"campaign"`
	Report   campaign.Report   `json:"errors"`
	State    string            `json:"state"`
}

type Option func(*Controller)

func WithRecorder(r Recorder) Option { return func(c *Controller) { c.recorder = r } }

func WithClock(now func() time.Time) Option { return func(c *Controller) { c.now = now } }

// Controller is safe for concurrent use. Edits are accepted in every state;
// only Submit is refused while Submitting.
type Controller struct {
	gen        ids.Generator
	dispatcher Dispatcher
	sink       notify.Sink
	recorder   Recorder
	now        func() time.Time

	mu       sync.Mutex
	campaign campaign.Campaign
	report   campaign.Report
	state    State
}

func New(gen ids.Generator, d Dispatcher, sink notify.Sink, opts ...Option) *Controller {
	c := &Controller{
		gen:        gen,
		dispatcher: d,
		sink:       sink,
		now:        time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	c.campaign = campaign.New(gen)
	return c
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{Campaign: c.campaign, Report: c.report, State: c.state.String()}
}

func (c *Controller) Campaign() campaign.Campaign {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.campaign
}

func (c *Controller) Report() campaign.Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.report
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) SetField(f campaign.Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.campaign = campaign.SetField(c.campaign, f, value)
	c.report = c.report.ClearField(f)
}

// AddRecipient appends a blank recipient and returns its id.
func (c *Controller) AddRecipient() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.campaign = campaign.AddRecipient(c.campaign, c.gen)
	return c.campaign.Recipients[len(c.campaign.Recipients)-1].ID
}

// RemoveRecipient reports whether a recipient was removed.
func (c *Controller) RemoveRecipient(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	before := len(c.campaign.Recipients)
	c.campaign = campaign.RemoveRecipient(c.campaign, id)
	return len(c.campaign.Recipients) < before
}

// UpdateRecipient reports whether id matched a recipient.
func (c *Controller) UpdateRecipient(id string, f campaign.RecipientField, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.campaign.HasRecipient(id) {
		return false
	}
	c.campaign = campaign.UpdateRecipient(c.campaign, id, f, value)
	c.report = c.report.ClearRecipientField(id, f)
	return true
}

// Submit validates the current campaign and, when valid, dispatches it once.
// The only error it returns is ErrInFlight; dispatch failures are reported
// through Result.
func (c *Controller) Submit(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeBusy).Inc()
		return Result{}, ErrInFlight
	}

	report := campaign.Validate(c.campaign)
	c.report = report
	if !report.Valid() {
		c.mu.Unlock()
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		c.notify(ctx, NoteInvalid)
		return Result{Outcome: OutcomeInvalid, Report: report}, nil
	}

	c.state = Submitting
	payload := c.campaign.Payload()
	c.mu.Unlock()

	settled := false
	defer func() {
		if !settled {
			c.mu.Lock()
			c.state = Idle
			c.mu.Unlock()
		}
	}()

	err := c.send(ctx, payload)

	c.mu.Lock()
	if err == nil {
		c.campaign = campaign.New(c.gen)
		c.report = campaign.Report{}
	}
	c.state = Idle
	settled = true
	c.mu.Unlock()

	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		c.notify(ctx, NoteFailed)
		return Result{Outcome: OutcomeFailed, Err: err}, nil
	}
	metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeSent).Inc()
	c.notify(ctx, NoteSent)
	return Result{Outcome: OutcomeSent}, nil
}

func (c *Controller) send(ctx context.Context, p model.Payload) error {
	var histID int64
	if c.recorder != nil {
		id, err := c.recorder.Begin(ctx, p)
		if err != nil {
			logx.L().Warnw("submission_record_error", "error", err)
		} else {
			histID = id
		}
	}

	start := time.Now()
	err := c.dispatcher.Dispatch(ctx, p)
	lat := time.Since(start)
	metrics.DispatchDuration.Observe(lat.Seconds())
	metrics.SubmissionRecipients.Observe(float64(len(p.People)))

	if err != nil {
		logx.L().Warnw("submit_dispatch_failed",
			"submission_id", histID, "recipients", len(p.People), "duration", lat.Seconds(), "error", err)
	} else {
		logx.L().Infow("submit_dispatch_ok",
			"submission_id", histID, "recipients", len(p.People), "duration", lat.Seconds())
	}

	if histID != 0 {
		if ferr := c.recorder.Finish(context.WithoutCancel(ctx), histID, err); ferr != nil {
			logx.L().Warnw("submission_finish_error", "submission_id", histID, "error", ferr)
		}
	}
	return err
}

func (c *Controller) notify(ctx context.Context, n notify.Notification) {
	metrics.NotificationsTotal.WithLabelValues(string(n.Severity)).Inc()
	if c.sink == nil {
		return
	}
	n.At = c.now()
	c.sink.Notify(ctx, n)
}
