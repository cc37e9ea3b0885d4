// Package approval computes merge verdicts for the dual-team review
// policy: a pull request may merge only when both configured rosters
// have at least one standing approval and no standing
// changes-requested.
package approval

import (
	"log/slog"

	"github.com/iabdulin/pr-access-control/entity"
	"github.com/iabdulin/pr-access-control/gateway"
)

// ReviewerState is the net effect of one user's review history. At
// most one of the two fields is true after any single review event is
// applied.
type ReviewerState struct {
	Approved bool
	Blocked  bool
}

// TeamVerdict is the verdict for a single roster.
type TeamVerdict struct {
	// Roster the verdict was computed against.
	Roster entity.Roster

	// Ok is true when at least one roster member has a standing
	// approval and no roster member has a standing changes-requested.
	Ok bool

	// BlockedBy lists roster members with a standing
	// changes-requested, in roster order.
	BlockedBy []string
}

// Verdict is the combined approval verdict for both rosters.
type Verdict struct {
	TeamA TeamVerdict
	TeamB TeamVerdict
}

// Ready reports whether the pull request has cleared the full policy.
func (v *Verdict) Ready() bool {
	return v.TeamA.Ok && v.TeamB.Ok
}

// Engine computes verdicts from review histories. It performs no I/O
// and holds no state between computations.
type Engine struct {
	teamA entity.Roster
	teamB entity.Roster
	log   *slog.Logger
}

// NewEngine builds an engine for the two configured rosters. log may
// be nil.
func NewEngine(teamA, teamB entity.Roster, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{teamA: teamA, teamB: teamB, log: log}
}

// TeamA returns the first configured roster.
func (e *Engine) TeamA() entity.Roster { return e.teamA }

// TeamB returns the second configured roster.
func (e *Engine) TeamB() entity.Roster { return e.teamB }

// ComputeVerdict replays the review history in the order supplied and
// derives the current verdict. The history is assumed chronological;
// the engine does not re-sort it.
//
// Users in requestedReviewers contribute nothing: a requested
// re-review voids every review they submitted this cycle, wherever it
// appears in the history.
func (e *Engine) ComputeVerdict(reviews []*gateway.PullRequestReview, requestedReviewers []string) *Verdict {
	requested := make(map[string]struct{}, len(requestedReviewers))
	for _, u := range requestedReviewers {
		requested[u] = struct{}{}
	}

	states := make(map[string]ReviewerState)
	for _, r := range reviews {
		if _, ok := requested[r.User]; ok {
			states[r.User] = ReviewerState{}
			continue
		}

		st := states[r.User]
		switch r.State {
		case gateway.PullRequestApproved:
			st = ReviewerState{Approved: true}
		case gateway.PullRequestChangesRequested:
			st = ReviewerState{Blocked: true}
		case gateway.PullRequestDismissed, gateway.PullRequestPending:
			st = ReviewerState{}
		case gateway.PullRequestCommented:
			// Comments leave the reviewer's standing untouched.
		default:
			e.log.Warn("ignoring review with unrecognized state",
				"user", r.User, "state", string(r.State))
		}
		states[r.User] = st
	}

	return &Verdict{
		TeamA: teamVerdict(e.teamA, states),
		TeamB: teamVerdict(e.teamB, states),
	}
}

func teamVerdict(roster entity.Roster, states map[string]ReviewerState) TeamVerdict {
	verdict := TeamVerdict{Roster: roster}

	approved := false
	for _, member := range roster.Members {
		st := states[member]
		if st.Blocked {
			verdict.BlockedBy = append(verdict.BlockedBy, member)
		}
		if st.Approved && !st.Blocked {
			approved = true
		}
	}

	verdict.Ok = approved && len(verdict.BlockedBy) == 0
	return verdict
}
