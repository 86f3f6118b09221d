package platform

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
)

// Fake is an in-memory Platform for tests: paths resolve against a map,
// fetches return stubbed responses, and every call is recorded.
type Fake struct {
	// Files maps paths to content served by OpenRead.
	Files map[string][]byte

	// Responses maps URL strings to stubbed fetch responses.
	Responses map[string]*http.Response

	// FetchErr, when set, fails every Fetch.
	FetchErr error

	// Call tracking
	OpenCalls  []string
	FetchCalls []string
}

// NewFake creates an empty fake platform.
func NewFake() *Fake {
	return &Fake{
		Files:     make(map[string][]byte),
		Responses: make(map[string]*http.Response),
	}
}

func (fp *Fake) OpenRead(path string) (io.ReadCloser, error) {
	fp.OpenCalls = append(fp.OpenCalls, path)

	data, ok := fp.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (fp *Fake) Fetch(ctx context.Context, u *url.URL) (*http.Response, error) {
	fp.FetchCalls = append(fp.FetchCalls, u.String())

	if fp.FetchErr != nil {
		return nil, fp.FetchErr
	}
	resp, ok := fp.Responses[u.String()]
	if !ok {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Status:     "404 Not Found",
			Body:       io.NopCloser(bytes.NewReader(nil)),
		}, nil
	}
	return resp, nil
}

// Reset clears all call tracking.
func (fp *Fake) Reset() {
	fp.OpenCalls = fp.OpenCalls[:0]
	fp.FetchCalls = fp.FetchCalls[:0]
}

var _ Platform = (*Fake)(nil)
