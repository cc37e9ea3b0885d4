package hook

import (
	"errors"
	"fmt"

	"github.com/google/go-github/v61/github"
	"github.com/iabdulin/pr-access-control/approval"
	"github.com/iabdulin/pr-access-control/entity"
	"github.com/iabdulin/pr-access-control/gateway"
)

func welcomeMessage(teamA, teamB entity.Roster) string {
	return fmt.Sprintf(
		"Thanks for the pull request! Merging requires an approval from "+
			"each of the following teams:\n\n- %v\n- %v\n\n"+
			"Once both teams have approved, the author can merge by "+
			"commenting `/merge`.",
		&teamA, &teamB)
}

func blockNoticeMessage(reviewer string, v *approval.Verdict) string {
	return fmt.Sprintf(
		"@%v has requested changes. Merging is blocked until they "+
			"approve a new revision.\n\n%v",
		reviewer, approval.Render(v))
}

func readyNoticeMessage(v *approval.Verdict) string {
	return "🎉 " + approval.Render(v) + " Comment `/merge` to merge."
}

func approvalAckMessage(reviewer string, v *approval.Verdict) string {
	return fmt.Sprintf(
		"Thanks for the approval, @%v.\n\n%v", reviewer, approval.Render(v))
}

func unknownCommandMessage(command string, v *approval.Verdict) string {
	return fmt.Sprintf(
		"Unknown command `%v`. The only supported command is `/merge`.\n\n%v",
		command, approval.Render(v))
}

func notAuthorMessage(commenter string, v *approval.Verdict) string {
	return fmt.Sprintf(
		"Sorry @%v, only the pull request author can merge.\n\n%v",
		commenter, approval.Render(v))
}

func notReadyMessage(author string, v *approval.Verdict) string {
	return fmt.Sprintf(
		"@%v, this pull request is not ready to merge yet.\n\n%v",
		author, approval.Render(v))
}

func preconditionMessage(err error) string {
	return fmt.Sprintf("Cannot merge: %v.", err)
}

func mergeFailedMessage(err error) string {
	hint := "Check the pull request page for details and try again."

	var merr *gateway.MergeError
	if errors.As(err, &merr) {
		switch merr.Reason {
		case gateway.MergeFailedPermission:
			hint = "Check that the app has write access to this repository."
		case gateway.MergeFailedNotMergeable:
			hint = "The branch may have moved or grown conflicts. Update it and try again."
		case gateway.MergeFailedRuleBlocked:
			hint = "A branch protection rule is blocking the merge. Resolve it and try again."
		}
	}

	return fmt.Sprintf("GitHub rejected the merge: %v\n\n%v", err, hint)
}

func mergedMessage(pr *github.PullRequest) string {
	return fmt.Sprintf("Merged #%v. Thanks for the contribution!", pr.GetNumber())
}
