package platform

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"

	"inputfile/pkg/logger"
)

// hostPlatform is the real implementation: os.Open for paths, an HTTP
// client for URLs.
type hostPlatform struct {
	client    *http.Client
	userAgent string
	logger    *logger.Logger
}

// New creates a host platform. A nil client means http.DefaultClient.
func New(client *http.Client, opts ...HostOption) Platform {
	if client == nil {
		client = http.DefaultClient
	}
	hp := &hostPlatform{
		client: client,
		logger: logger.New().WithField("component", "platform"),
	}
	for _, opt := range opts {
		opt(hp)
	}
	return hp
}

// HostOption adjusts the host platform.
type HostOption func(*hostPlatform)

// WithUserAgent sets the User-Agent header sent on fetches.
func WithUserAgent(ua string) HostOption {
	return func(hp *hostPlatform) {
		hp.userAgent = ua
	}
}

func (hp *hostPlatform) OpenRead(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (hp *hostPlatform) Fetch(ctx context.Context, u *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if hp.userAgent != "" {
		req.Header.Set("User-Agent", hp.userAgent)
	}

	hp.logger.Debug("fetching remote source", "url", u.String())
	return hp.client.Do(req)
}

var _ Platform = (*hostPlatform)(nil)
