package hook

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v61/github"
	"github.com/iabdulin/pr-access-control/gateway"
	"go.uber.org/multierr"
)

// mergeCommand is the only recognized comment command.
const mergeCommand = "/merge"

// parseCommand extracts the leading whitespace-delimited token of a
// comment body if it is a command. Bodies that do not start with "/"
// are not commands.
func parseCommand(body string) (string, bool) {
	fields := strings.Fields(body)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", false
	}
	return fields[0], true
}

// commentCreated runs the comment command machine. Each delivery walks
// the checks in order and stops at the first terminal outcome:
// non-command (silent), unknown command, non-author, verdict not
// satisfied, failed precondition, and finally the merge attempt
// itself.
func (d *Dispatcher) commentCreated(ctx context.Context, e *github.IssueCommentEvent) error {
	issue := e.GetIssue()
	if !issue.IsPullRequest() {
		return nil
	}

	command, ok := parseCommand(e.GetComment().GetBody())
	if !ok {
		return nil
	}

	gh, repo, err := d.gatewayFor(ctx, e.GetInstallation(), e.GetRepo())
	if err != nil {
		return err
	}
	number := issue.GetNumber()

	// Serialize the fetch-verdict-then-merge critical section per pull
	// request so concurrent deliveries cannot race to merge.
	unlock := d.locks.lock(prKey(repo, number))
	defer unlock()

	verdict, pr, err := d.verdictFor(ctx, gh, number)
	if err != nil {
		return err
	}

	commenter := e.GetComment().GetUser().GetLogin()
	author := pr.GetUser().GetLogin()

	switch {
	case command != mergeCommand:
		d.log.Info("rejecting unknown command",
			"number", number, "command", command)
		return d.reply(ctx, gh, number, unknownCommandMessage(command, verdict))
	case commenter != author:
		d.log.Info("rejecting merge by non-author",
			"number", number, "commenter", commenter)
		return d.reply(ctx, gh, number, notAuthorMessage(commenter, verdict))
	case !verdict.Ready():
		d.log.Info("rejecting premature merge", "number", number)
		return d.reply(ctx, gh, number, notReadyMessage(author, verdict))
	}

	// Known-bad mergeability states fail before any remote call.
	if err := d.checks.Check(pr); err != nil {
		d.log.Info("rejecting merge on preconditions",
			"number", number, "error", err)
		return d.reply(ctx, gh, number, preconditionMessage(err))
	}

	req := &gateway.MergeRequest{
		Number: number,
		Title:  mergeTitle(pr),
		Method: d.mergeMethod,
	}
	if mergeErr := gh.MergePullRequest(ctx, req); mergeErr != nil {
		d.log.Warn("merge rejected by remote",
			"number", number, "error", mergeErr)
		if err := d.reply(ctx, gh, number, mergeFailedMessage(mergeErr)); err != nil {
			return multierr.Append(
				fmt.Errorf("merge of #%v failed: %v", number, mergeErr), err)
		}
		return nil
	}

	d.log.Info("merged pull request", "number", number)
	return d.reply(ctx, gh, number, mergedMessage(pr))
}

// mergeTitle is the commit title used for the merge.
func mergeTitle(pr *github.PullRequest) string {
	return fmt.Sprintf("%v (#%v)", pr.GetTitle(), pr.GetNumber())
}

func (d *Dispatcher) reply(ctx context.Context, gh gateway.GitHub, number int, body string) error {
	if err := gh.PostComment(ctx, number, body); err != nil {
		return fmt.Errorf("failed to reply on #%v: %v", number, err)
	}
	return nil
}
