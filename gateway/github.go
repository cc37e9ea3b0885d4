package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v61/github"
)

// PullRequestReviewState indicates the disposition of a single review
// submission.
type PullRequestReviewState string

const (
	// PullRequestApproved indicates that a reviewer approved the pull
	// request.
	PullRequestApproved PullRequestReviewState = "APPROVED"

	// PullRequestChangesRequested indicates that a reviewer requested
	// changes to the pull request.
	PullRequestChangesRequested PullRequestReviewState = "CHANGES_REQUESTED"

	// PullRequestCommented indicates that someone commented on a pull
	// request without an explicit approval or changes-requested.
	PullRequestCommented PullRequestReviewState = "COMMENTED"

	// PullRequestDismissed indicates that a previous review was
	// dismissed.
	PullRequestDismissed PullRequestReviewState = "DISMISSED"

	// PullRequestPending indicates a review that has been started but
	// not submitted.
	PullRequestPending PullRequestReviewState = "PENDING"
)

// PullRequestReview is a single historical review submission on a pull
// request.
type PullRequestReview struct {
	// User who did the review.
	User string

	// Whether they approved, requested changes, etc.
	State PullRequestReviewState

	// When the review was submitted.
	SubmittedAt time.Time
}

// MergeMethod is the strategy used to merge a pull request.
type MergeMethod string

// All supported merge methods.
const (
	MergeSquash MergeMethod = "squash"
	MergeMerge  MergeMethod = "merge"
	MergeRebase MergeMethod = "rebase"
)

// MergeErrorReason classifies why the remote refused to merge a pull
// request.
type MergeErrorReason int

// All known merge failure classes.
const (
	// MergeFailedUnknown is any failure that could not be classified.
	MergeFailedUnknown MergeErrorReason = iota

	// MergeFailedPermission indicates that the caller lacks permission
	// to merge.
	MergeFailedPermission

	// MergeFailedNotMergeable indicates that the pull request is not in
	// a mergeable state.
	MergeFailedNotMergeable

	// MergeFailedRuleBlocked indicates that a branch protection or
	// repository rule rejected the merge.
	MergeFailedRuleBlocked
)

// MergeError is a merge attempt rejected by the remote.
type MergeError struct {
	Reason MergeErrorReason
	Cause  error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("merge rejected: %v", e.Cause)
}

func (e *MergeError) Unwrap() error { return e.Cause }

// MergeRequest asks for a pull request to be merged with the given
// commit title and method.
type MergeRequest struct {
	Number int
	Title  string
	Method MergeMethod
}

//go:generate mockgen -destination=gatewaytest/mock_gateway.go -package=gatewaytest github.com/iabdulin/pr-access-control/gateway GitHub

// GitHub is a gateway that provides access to GitHub operations on a
// specific repository.
type GitHub interface {
	// Fetches the pull request, including its current requested
	// reviewers and mergeability flags.
	GetPullRequest(ctx context.Context, number int) (*github.PullRequest, error)

	// Lists reviews for a pull request in the order the remote returns
	// them, which is assumed chronological.
	ListPullRequestReviews(ctx context.Context, number int) ([]*PullRequestReview, error)

	// Posts a comment on the pull request.
	PostComment(ctx context.Context, number int, body string) error

	// Merges the given pull request. Failures reported by the remote
	// are returned as *MergeError.
	MergePullRequest(ctx context.Context, req *MergeRequest) error
}
