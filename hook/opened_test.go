package hook

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-github/v61/github"
	"github.com/iabdulin/pr-access-control/gateway/gatewaytest"
	"github.com/stretchr/testify/require"
)

func openedEvent(number int) *github.PullRequestEvent {
	return &github.PullRequestEvent{
		Action:       github.String("opened"),
		Installation: testInstallation(),
		Repo:         testRepo(),
		PullRequest:  testPR(number, "dave"),
	}
}

func TestPullRequestOpened(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	gh := gatewaytest.NewMockGitHub(mockCtrl)
	gh.EXPECT().
		PostComment(gomock.Any(), 7, contains(
			"Team A: alice, bob",
			"Team B: carol",
			"`/merge`",
		)).
		Return(nil)

	d := newTestDispatcher(gh)
	require.NoError(t, d.Dispatch(context.Background(), openedEvent(7)))
}

func TestPullRequestOtherActionsIgnored(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	gh := gatewaytest.NewMockGitHub(mockCtrl)
	d := newTestDispatcher(gh)

	for _, action := range []string{"closed", "synchronize", "edited"} {
		e := openedEvent(7)
		e.Action = github.String(action)
		require.NoError(t, d.Dispatch(context.Background(), e))
	}
}
