package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v61/github"
	"github.com/iabdulin/pr-access-control/entity"
	"github.com/iabdulin/pr-access-control/gateway"
)

// reviewPageSize is the number of reviews requested per page. The
// gateway assumes pull requests stay under this bound.
const reviewPageSize = 100

// pullRequestsService is the part of the GitHub PullRequests client
// used by the gateway.
type pullRequestsService interface {
	Get(
		ctx context.Context, owner string, repo string, number int,
	) (*github.PullRequest, *github.Response, error)

	ListReviews(
		ctx context.Context, owner string, repo string, number int,
		opts *github.ListOptions,
	) ([]*github.PullRequestReview, *github.Response, error)

	Merge(
		ctx context.Context, owner string, repo string, number int,
		commitMessage string, options *github.PullRequestOptions,
	) (*github.PullRequestMergeResult, *github.Response, error)
}

var _ pullRequestsService = (*github.PullRequestsService)(nil)

// issuesService is the part of the GitHub Issues client used by the
// gateway. Pull request comments are issue comments on GitHub.
type issuesService interface {
	CreateComment(
		ctx context.Context, owner string, repo string, number int,
		comment *github.IssueComment,
	) (*github.IssueComment, *github.Response, error)
}

var _ issuesService = (*github.IssuesService)(nil)

// Gateway is a GitHub gateway that makes actual requests to GitHub.
type Gateway struct {
	owner  string
	repo   string
	pulls  pullRequestsService
	issues issuesService
}

var _ gateway.GitHub = (*Gateway)(nil)

// NewGatewayForRepository builds a new GitHub gateway for the given
// GitHub repository.
func NewGatewayForRepository(client *github.Client, repo *entity.Repo) *Gateway {
	return &Gateway{
		owner:  repo.Owner,
		repo:   repo.Name,
		pulls:  client.PullRequests,
		issues: client.Issues,
	}
}

func (g *Gateway) urlFor(number int) string {
	return fmt.Sprintf("https://github.com/%v/%v/pull/%v", g.owner, g.repo, number)
}

// GetPullRequest fetches the current state of the given pull request.
func (g *Gateway) GetPullRequest(ctx context.Context, number int) (*github.PullRequest, error) {
	pr, _, err := g.pulls.Get(ctx, g.owner, g.repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %v: %v", g.urlFor(number), err)
	}
	return pr, nil
}

// ListPullRequestReviews lists reviews for the given pull request in
// the order GitHub returns them.
func (g *Gateway) ListPullRequestReviews(ctx context.Context, number int) ([]*gateway.PullRequestReview, error) {
	ghReviews, _, err := g.pulls.ListReviews(
		ctx, g.owner, g.repo, number,
		&github.ListOptions{PerPage: reviewPageSize})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to list reviews for %v: %v", g.urlFor(number), err)
	}

	reviews := make([]*gateway.PullRequestReview, 0, len(ghReviews))
	for _, r := range ghReviews {
		reviews = append(reviews, &gateway.PullRequestReview{
			User:        r.GetUser().GetLogin(),
			State:       gateway.PullRequestReviewState(strings.ToUpper(r.GetState())),
			SubmittedAt: r.GetSubmittedAt().Time,
		})
	}
	return reviews, nil
}

// PostComment posts a comment on the given pull request.
func (g *Gateway) PostComment(ctx context.Context, number int, body string) error {
	_, _, err := g.issues.CreateComment(
		ctx, g.owner, g.repo, number, &github.IssueComment{Body: &body})
	if err != nil {
		return fmt.Errorf("failed to comment on %v: %v", g.urlFor(number), err)
	}
	return nil
}

// MergePullRequest merges the given pull request. Rejections reported
// by GitHub are returned as *gateway.MergeError with a classified
// reason.
func (g *Gateway) MergePullRequest(ctx context.Context, req *gateway.MergeRequest) error {
	result, _, err := g.pulls.Merge(ctx, g.owner, g.repo, req.Number, "",
		&github.PullRequestOptions{
			CommitTitle: req.Title,
			MergeMethod: string(req.Method),
		})
	if err != nil {
		return classifyMergeError(fmt.Errorf(
			"failed to merge %v: %v", g.urlFor(req.Number), err), err)
	}

	if !result.GetMerged() {
		wrapped := fmt.Errorf(
			"failed to merge %v: %v", g.urlFor(req.Number), result.GetMessage())
		return classifyMergeError(wrapped, wrapped)
	}

	return nil
}
