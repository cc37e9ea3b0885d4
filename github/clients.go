package github

import (
	"context"
	"sync"

	"github.com/google/go-github/v61/github"
	"github.com/iabdulin/pr-access-control/entity"
	"github.com/iabdulin/pr-access-control/gateway"
	"golang.org/x/oauth2"
)

// ClientFactory builds installation-scoped gateways, keeping one token
// source per installation so tokens are reused across deliveries.
type ClientFactory struct {
	apps appsService

	mu      sync.Mutex
	sources map[int64]*InstallationTokenSource
}

// NewClientFactory builds a factory that authenticates installations
// of the given App.
func NewClientFactory(creds *AppCredentials) *ClientFactory {
	return &ClientFactory{
		apps:    NewAppsClient(creds).Apps,
		sources: make(map[int64]*InstallationTokenSource),
	}
}

func (f *ClientFactory) source(installationID int64) *InstallationTokenSource {
	f.mu.Lock()
	defer f.mu.Unlock()

	ts, ok := f.sources[installationID]
	if !ok {
		ts = NewInstallationTokenSource(f.apps, installationID)
		f.sources[installationID] = ts
	}
	return ts
}

// Gateway builds a gateway for the given repository, authenticated
// with the installation's current token.
func (f *ClientFactory) Gateway(ctx context.Context, installationID int64, repo *entity.Repo) (gateway.GitHub, error) {
	token, err := f.source(installationID).Token(ctx)
	if err != nil {
		return nil, err
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := github.NewClient(oauth2.NewClient(ctx, src))
	return NewGatewayForRepository(client, repo), nil
}
