// Package platform isolates the host I/O that realizing a file source
// needs: opening a local path for reading and fetching a remote URL. The
// capability is injected once, so tests and alternate hosts can swap the
// implementation instead of probing the environment at read time.
package platform

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// Platform is the I/O capability surface.
type Platform interface {
	// OpenRead opens a local path for reading. The caller owns the returned
	// handle for the duration of one read and must close it.
	OpenRead(path string) (io.ReadCloser, error)

	// Fetch performs a GET of u and returns the raw response without
	// inspecting the status. Redirects follow the client's policy.
	Fetch(ctx context.Context, u *url.URL) (*http.Response, error)
}
