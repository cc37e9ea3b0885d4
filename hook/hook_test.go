package hook

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/go-github/v61/github"
	"github.com/iabdulin/pr-access-control/approval"
	"github.com/iabdulin/pr-access-control/entity"
	"github.com/iabdulin/pr-access-control/gateway"
)

var (
	testTeamA = entity.Roster{Name: "Team A", Members: []string{"alice", "bob"}}
	testTeamB = entity.Roster{Name: "Team B", Members: []string{"carol"}}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestDispatcher wires a dispatcher to the given gateway for every
// installation.
func newTestDispatcher(gh gateway.GitHub) *Dispatcher {
	return NewDispatcher(Config{
		Engine: approval.NewEngine(testTeamA, testTeamB, discardLogger()),
		Gateways: func(context.Context, int64, *entity.Repo) (gateway.GitHub, error) {
			return gh, nil
		},
		MergeMethod: gateway.MergeSquash,
		Log:         discardLogger(),
	})
}

func testInstallation() *github.Installation {
	return &github.Installation{ID: github.Int64(42)}
}

func testRepo() *github.Repository {
	return &github.Repository{
		Name:  github.String("bar"),
		Owner: &github.User{Login: github.String("foo")},
	}
}

func testPR(number int, author string) *github.PullRequest {
	return &github.PullRequest{
		Number:  github.Int(number),
		Title:   github.String("fix things"),
		HTMLURL: github.String(fmt.Sprintf("https://github.com/foo/bar/pull/%v", number)),
		User:    &github.User{Login: github.String(author)},
	}
}

func review(user string, state gateway.PullRequestReviewState) *gateway.PullRequestReview {
	return &gateway.PullRequestReview{User: user, State: state}
}

// containsMatcher matches string arguments containing every given
// substring.
type containsMatcher []string

func contains(substrings ...string) containsMatcher { return containsMatcher(substrings) }

func (m containsMatcher) Matches(x interface{}) bool {
	s, ok := x.(string)
	if !ok {
		return false
	}
	for _, sub := range m {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func (m containsMatcher) String() string {
	return fmt.Sprintf("contains %q", []string(m))
}
