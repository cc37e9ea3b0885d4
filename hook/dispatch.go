// Package hook routes inbound GitHub webhook deliveries to their
// workflows and enforces the gated-merge command policy.
package hook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v61/github"
	"github.com/iabdulin/pr-access-control/approval"
	"github.com/iabdulin/pr-access-control/entity"
	"github.com/iabdulin/pr-access-control/gateway"
)

// ErrBadEvent marks deliveries missing identity fields the workflows
// require, such as the installation or repository. The server rejects
// these with 400.
var ErrBadEvent = errors.New("event is missing required fields")

// errSkipped marks deliveries for repositories outside the configured
// allowlist. They are acknowledged without side effects.
var errSkipped = errors.New("repository not in allowlist")

// GatewayBuilder builds an installation-scoped GitHub gateway for one
// delivery.
type GatewayBuilder func(ctx context.Context, installationID int64, repo *entity.Repo) (gateway.GitHub, error)

// Config configures a Dispatcher.
type Config struct {
	Engine      *approval.Engine
	Gateways    GatewayBuilder
	MergeMethod gateway.MergeMethod
	Log         *slog.Logger

	// Repos restricts the bot to the given repositories. Empty means
	// all repositories the installation grants.
	Repos []*entity.Repo
}

// Dispatcher routes webhook events to workflows. It holds no state
// across deliveries; every delivery recomputes the verdict from a
// fresh fetch.
type Dispatcher struct {
	engine      *approval.Engine
	gateways    GatewayBuilder
	mergeMethod gateway.MergeMethod
	log         *slog.Logger
	locks       prLocks
	checks      MultiPreMergeCheck
	repos       map[string]struct{}
}

// NewDispatcher builds a dispatcher from the given configuration.
func NewDispatcher(cfg Config) *Dispatcher {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	var repos map[string]struct{}
	if len(cfg.Repos) > 0 {
		repos = make(map[string]struct{}, len(cfg.Repos))
		for _, r := range cfg.Repos {
			repos[r.String()] = struct{}{}
		}
	}

	return &Dispatcher{
		engine:      cfg.Engine,
		gateways:    cfg.Gateways,
		mergeMethod: cfg.MergeMethod,
		log:         log,
		checks:      defaultPreMergeChecks,
		repos:       repos,
	}
}

// Dispatch routes one parsed webhook event. Unmatched event/action
// pairs and deliveries for repositories outside the allowlist are
// acknowledged without side effects.
func (d *Dispatcher) Dispatch(ctx context.Context, event interface{}) error {
	var err error
	switch e := event.(type) {
	case *github.PullRequestEvent:
		if e.GetAction() != "opened" {
			return nil
		}
		err = d.pullRequestOpened(ctx, e)
	case *github.PullRequestReviewEvent:
		if e.GetAction() != "submitted" {
			return nil
		}
		err = d.reviewSubmitted(ctx, e)
	case *github.IssueCommentEvent:
		if e.GetAction() != "created" {
			return nil
		}
		err = d.commentCreated(ctx, e)
	default:
		return nil
	}

	if errors.Is(err, errSkipped) {
		d.log.Debug("skipping delivery", "reason", err)
		return nil
	}
	return err
}

// gatewayFor validates the delivery's identity fields and builds an
// installation-scoped gateway for it.
func (d *Dispatcher) gatewayFor(ctx context.Context, installation *github.Installation, ghRepo *github.Repository) (gateway.GitHub, *entity.Repo, error) {
	if installation.GetID() == 0 {
		return nil, nil, fmt.Errorf("%w: no installation", ErrBadEvent)
	}
	if ghRepo.GetName() == "" || ghRepo.GetOwner().GetLogin() == "" {
		return nil, nil, fmt.Errorf("%w: no repository", ErrBadEvent)
	}

	repo := &entity.Repo{
		Owner: ghRepo.GetOwner().GetLogin(),
		Name:  ghRepo.GetName(),
	}
	if d.repos != nil {
		if _, ok := d.repos[repo.String()]; !ok {
			return nil, nil, fmt.Errorf("%w: %v", errSkipped, repo)
		}
	}

	gh, err := d.gateways(ctx, installation.GetID(), repo)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"failed to build gateway for %v: %v", repo, err)
	}
	return gh, repo, nil
}

// verdictFor re-fetches the pull request and its reviews and computes
// the current verdict. Nothing is cached across deliveries.
func (d *Dispatcher) verdictFor(ctx context.Context, gh gateway.GitHub, number int) (*approval.Verdict, *github.PullRequest, error) {
	pr, err := gh.GetPullRequest(ctx, number)
	if err != nil {
		return nil, nil, err
	}

	reviews, err := gh.ListPullRequestReviews(ctx, number)
	if err != nil {
		return nil, nil, err
	}

	requested := make([]string, 0, len(pr.RequestedReviewers))
	for _, u := range pr.RequestedReviewers {
		requested = append(requested, u.GetLogin())
	}

	return d.engine.ComputeVerdict(reviews, requested), pr, nil
}
