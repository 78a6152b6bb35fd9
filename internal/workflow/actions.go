package workflow

import (
	"context"
	"fmt"

	"github.com/jonathan/portfolioai/internal/api"
	"github.com/jonathan/portfolioai/internal/types"
)

// Action identifies one of the generation actions.
type Action string

// Generation actions.
const (
	ActionOptimize    Action = "optimize"
	ActionPortfolio   Action = "portfolio"
	ActionCoverLetter Action = "cover-letter"
	ActionInterview   Action = "interview"
	ActionCareerGuide Action = "career-guide"
)

// Actions lists every generation action in display order.
var Actions = []Action{ActionOptimize, ActionPortfolio, ActionCoverLetter, ActionInterview, ActionCareerGuide}

// Phase is the lifecycle of a single action.
type Phase int

// Action phases.
const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseError
)

// ActionState is the observable state of one action. Err carries the last
// failure message while Phase is PhaseError.
type ActionState struct {
	Phase Phase
	Err   string
}

// ActionResult is the outcome of a successfully triggered action. Exactly one
// field matching the action is set. For interviews the new session is handed
// back to the caller, which passes the id on to the interview view.
type ActionResult struct {
	Action          Action
	OptimizedResume *api.OptimizedResume
	Portfolio       *api.Portfolio
	CoverLetter     *api.CoverLetter
	Interview       *api.InterviewSession
	CareerGuide     *api.CareerGuide
}

// ActionStatus returns the current state of an action.
func (c *Coordinator) ActionStatus(a Action) ActionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[a]
}

// TriggerAction runs one generation action. It refuses to issue any network
// call while the completeness predicate is false, and refuses to re-trigger
// an action that is already in flight. Actions are independent: one action's
// failure never blocks another.
func (c *Coordinator) TriggerAction(ctx context.Context, a Action) (*ActionResult, error) {
	d := c.store.LoadProfile()
	hasSource := d.ResumeRef != nil || d.ChatRef != nil
	if !hasSource || d.JobDescriptionID == "" {
		return nil, ErrIncomplete
	}
	resumeID, err := c.activeResumeID(d)
	if err != nil {
		return nil, err
	}

	if err := c.begin(a); err != nil {
		return nil, err
	}

	res, err := c.dispatch(ctx, a, resumeID, d.JobDescriptionID)
	if err != nil {
		c.fail(a, err)
		c.notifier.Error(errMessage(err))
		return nil, err
	}
	c.finish(a)
	c.notifier.Success(fmt.Sprintf("%s generated", a))
	return res, nil
}

func (c *Coordinator) dispatch(ctx context.Context, a Action, resumeID, jobDescriptionID string) (*ActionResult, error) {
	res := &ActionResult{Action: a}
	switch a {
	case ActionOptimize:
		rec, err := c.client.OptimizeResume(ctx, &types.OptimizeRequest{
			UserID:           c.session.UserID,
			JobDescriptionID: jobDescriptionID,
			ResumeID:         resumeID,
		})
		if err != nil {
			return nil, err
		}
		res.OptimizedResume = rec
	case ActionPortfolio:
		req := &types.GeneratePortfolioRequest{
			UserID:           c.session.UserID,
			Title:            c.session.Title,
			ResumeID:         resumeID,
			JobDescriptionID: jobDescriptionID,
		}
		c.mu.Lock()
		req.ChatData = c.chatProfile
		c.mu.Unlock()
		rec, err := c.client.GeneratePortfolio(ctx, req)
		if err != nil {
			return nil, err
		}
		res.Portfolio = rec
	case ActionCoverLetter:
		rec, err := c.client.GenerateCoverLetter(ctx, &types.GenerateCoverLetterRequest{
			UserID:           c.session.UserID,
			JobDescriptionID: jobDescriptionID,
			ResumeID:         resumeID,
		})
		if err != nil {
			return nil, err
		}
		res.CoverLetter = rec
	case ActionInterview:
		rec, err := c.client.StartInterview(ctx, &types.StartInterviewRequest{
			UserID:           c.session.UserID,
			JobDescriptionID: jobDescriptionID,
		})
		if err != nil {
			return nil, err
		}
		res.Interview = rec
	case ActionCareerGuide:
		rec, err := c.client.GenerateCareerGuide(ctx, &types.GenerateCareerGuideRequest{
			UserID:           c.session.UserID,
			JobDescriptionID: jobDescriptionID,
			ResumeID:         resumeID,
		})
		if err != nil {
			return nil, err
		}
		res.CareerGuide = rec
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, a)
	}
	return res, nil
}

func (c *Coordinator) begin(a Action) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.states[a].Phase == PhasePending {
		return fmt.Errorf("%s: %w", a, ErrActionInFlight)
	}
	c.states[a] = ActionState{Phase: PhasePending}
	return nil
}

func (c *Coordinator) finish(a Action) {
	c.mu.Lock()
	c.states[a] = ActionState{Phase: PhaseIdle}
	c.mu.Unlock()
}

func (c *Coordinator) fail(a Action, err error) {
	c.mu.Lock()
	c.states[a] = ActionState{Phase: PhaseError, Err: errMessage(err)}
	c.mu.Unlock()
}
