package gateway

import (
	"github.com/sirupsen/logrus"

	"github.com/naka-gawa/pr-insights/internal/config"
)

// Factory builds a Fetcher scoped to one bearer credential.
type Factory interface {
	New(token string) (Fetcher, error)
}

// ClientFactory creates a fresh GitHubGateway per credential. Nothing is shared between the
// gateways it returns, including secondary rate limit state: each one sleeps on its own for at
// most RateLimitSleepLimit.
type ClientFactory struct {
	cfg    config.GitHub
	logger *logrus.Logger
}

func NewClientFactory(cfg config.GitHub, logger *logrus.Logger) *ClientFactory {
	return &ClientFactory{cfg: cfg, logger: logger}
}

func (f *ClientFactory) New(token string) (Fetcher, error) {
	gw, err := NewGitHubGateway(token, f.cfg, f.logger)
	if err != nil {
		return nil, err
	}
	return gw, nil
}
