package hook

import (
	"fmt"

	"github.com/google/go-github/v61/github"
	"go.uber.org/multierr"
)

// PreMergeCheck verifies that a pull request can be merged without
// calling the remote.
type PreMergeCheck interface {
	Check(pr *github.PullRequest) error
}

// ConflictCheck is a PreMergeCheck that fails when GitHub has
// explicitly marked the pull request unmergeable. An unknown
// mergeability (nil) passes; only an explicit false fails.
type ConflictCheck struct{}

// Check that the pull request has no merge conflicts.
func (ConflictCheck) Check(pr *github.PullRequest) error {
	if pr.Mergeable != nil && !*pr.Mergeable {
		return fmt.Errorf("%v has conflicts with its base branch", pr.GetHTMLURL())
	}
	return nil
}

// ProtectionCheck is a PreMergeCheck that fails when the mergeable
// state reports a structural block.
type ProtectionCheck struct{}

// Check that no branch protection or dirty state blocks the merge.
func (ProtectionCheck) Check(pr *github.PullRequest) error {
	switch pr.GetMergeableState() {
	case "dirty":
		return fmt.Errorf("%v has conflicts with its base branch", pr.GetHTMLURL())
	case "blocked":
		return fmt.Errorf("%v is blocked by a branch protection rule", pr.GetHTMLURL())
	}
	return nil
}

// MultiPreMergeCheck runs all associated checks and reports every
// failure.
type MultiPreMergeCheck []PreMergeCheck

// Check the pull request using all associated PreMergeChecks.
func (mc MultiPreMergeCheck) Check(pr *github.PullRequest) error {
	var err error
	for _, c := range mc {
		err = multierr.Append(err, c.Check(pr))
	}
	return err
}

var defaultPreMergeChecks = MultiPreMergeCheck{ConflictCheck{}, ProtectionCheck{}}
