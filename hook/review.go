package hook

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v61/github"
	"github.com/iabdulin/pr-access-control/gateway"
)

// reviewSubmitted recomputes the verdict after a review lands and
// reports it, branching on the triggering review's own state.
func (d *Dispatcher) reviewSubmitted(ctx context.Context, e *github.PullRequestReviewEvent) error {
	state := gateway.PullRequestReviewState(strings.ToUpper(e.GetReview().GetState()))
	switch state {
	case gateway.PullRequestApproved, gateway.PullRequestChangesRequested:
	default:
		// Comments, dismissals and pending reviews are silent.
		return nil
	}

	gh, _, err := d.gatewayFor(ctx, e.GetInstallation(), e.GetRepo())
	if err != nil {
		return err
	}

	number := e.GetPullRequest().GetNumber()
	verdict, _, err := d.verdictFor(ctx, gh, number)
	if err != nil {
		return err
	}

	reviewer := e.GetReview().GetUser().GetLogin()

	var body string
	switch {
	case state == gateway.PullRequestChangesRequested:
		body = blockNoticeMessage(reviewer, verdict)
	case verdict.Ready():
		body = readyNoticeMessage(verdict)
	default:
		body = approvalAckMessage(reviewer, verdict)
	}

	if err := gh.PostComment(ctx, number, body); err != nil {
		return fmt.Errorf("failed to report status on #%v: %v", number, err)
	}

	d.log.Info("reported review status",
		"number", number, "reviewer", reviewer,
		"state", string(state), "ready", verdict.Ready())
	return nil
}
