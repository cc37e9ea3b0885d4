package github

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-github/v61/github"
)

// tokenSkew is how long before expiry a cached installation token is
// considered stale and refreshed.
const tokenSkew = 60 * time.Second

// appJWTLifetime and appJWTBackdate are fixed by the GitHub Apps API
// contract: assertions may live at most ten minutes and are backdated
// one minute to absorb clock drift.
const (
	appJWTLifetime = 10 * time.Minute
	appJWTBackdate = time.Minute
)

// AppCredentials identifies the GitHub App the bot authenticates as.
type AppCredentials struct {
	AppID      int64
	PrivateKey *rsa.PrivateKey
}

// LoadAppCredentials reads the RSA private key for the given App from
// a PEM file.
func LoadAppCredentials(appID int64, pemPath string) (*AppCredentials, error) {
	pemBytes, err := os.ReadFile(pemPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key %v: %v", pemPath, err)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key %v: %v", pemPath, err)
	}

	return &AppCredentials{AppID: appID, PrivateKey: key}, nil
}

// appJWT mints the short-lived RS256 assertion used to authenticate as
// the App itself against the Apps API.
func (c *AppCredentials) appJWT(now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    strconv.FormatInt(c.AppID, 10),
		IssuedAt:  jwt.NewNumericDate(now.Add(-appJWTBackdate)),
		ExpiresAt: jwt.NewNumericDate(now.Add(appJWTLifetime)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).
		SignedString(c.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign app assertion: %v", err)
	}
	return signed, nil
}

// appTransport signs outgoing Apps API requests with a fresh app JWT.
type appTransport struct {
	base  http.RoundTripper
	creds *AppCredentials
	now   func() time.Time
}

func (t *appTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.creds.appJWT(t.now())
	if err != nil {
		return nil, err
	}

	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+token)
	return t.base.RoundTrip(req)
}

// NewAppsClient returns a go-github client authenticated as the App
// itself, suitable only for Apps API calls such as minting
// installation tokens.
func NewAppsClient(creds *AppCredentials) *github.Client {
	return github.NewClient(&http.Client{
		Transport: &appTransport{
			base:  http.DefaultTransport,
			creds: creds,
			now:   time.Now,
		},
	})
}

// appsService is the part of the GitHub Apps client used for token
// minting.
type appsService interface {
	CreateInstallationToken(
		ctx context.Context, id int64, opts *github.InstallationTokenOptions,
	) (*github.InstallationToken, *github.Response, error)
}

var _ appsService = (*github.AppsService)(nil)

// InstallationTokenSource mints installation tokens on demand and
// caches the current one until it is within tokenSkew of expiry.
// Refreshes are serialized by a mutex so concurrent deliveries never
// race to mint duplicate tokens.
type InstallationTokenSource struct {
	apps           appsService
	installationID int64
	now            func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewInstallationTokenSource builds a token source for one
// installation.
func NewInstallationTokenSource(apps appsService, installationID int64) *InstallationTokenSource {
	return &InstallationTokenSource{
		apps:           apps,
		installationID: installationID,
		now:            time.Now,
	}
}

// Token returns a valid installation token, minting a new one if the
// cached token is absent or about to expire.
func (ts *InstallationTokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && ts.now().Add(tokenSkew).Before(ts.expiry) {
		return ts.token, nil
	}

	tok, _, err := ts.apps.CreateInstallationToken(ctx, ts.installationID, nil)
	if err != nil {
		return "", fmt.Errorf(
			"failed to mint token for installation %v: %v", ts.installationID, err)
	}

	ts.token = tok.GetToken()
	ts.expiry = tok.GetExpiresAt().Time
	return ts.token, nil
}
