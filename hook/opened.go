package hook

import (
	"context"
	"fmt"

	"github.com/google/go-github/v61/github"
)

// pullRequestOpened posts the welcome comment naming both rosters and
// explaining the /merge convention. No verdict is computed; nothing
// has been reviewed yet.
func (d *Dispatcher) pullRequestOpened(ctx context.Context, e *github.PullRequestEvent) error {
	gh, _, err := d.gatewayFor(ctx, e.GetInstallation(), e.GetRepo())
	if err != nil {
		return err
	}

	number := e.GetPullRequest().GetNumber()
	body := welcomeMessage(d.engine.TeamA(), d.engine.TeamB())
	if err := gh.PostComment(ctx, number, body); err != nil {
		return fmt.Errorf("failed to welcome #%v: %v", number, err)
	}

	d.log.Info("welcomed pull request", "number", number)
	return nil
}
