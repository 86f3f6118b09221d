package inputfile

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Open realizes the source as a byte stream. The returned reader delivers
// the content in chunks and must be closed; closing early releases any file
// or network handle opened for this read.
//
// Single-use sources are claimed before any I/O: a second Open, including
// one racing concurrently with the first, returns ErrConsumed. Re-derivable
// sources re-open their backing resource on every call, and a producer-
// backed source re-invokes its producer, so a higher layer can retry a
// failed transmission by calling Open again on those.
func (f *InputFile) Open(ctx context.Context) (io.ReadCloser, error) {
	switch s := f.src.(type) {
	case lazySource:
		r, err := s.fn(ctx)
		if err != nil {
			return nil, err
		}
		return asReadCloser(r), nil

	case bytesSource:
		return io.NopCloser(bytes.NewReader(s.data)), nil

	case dataURLSource:
		return io.NopCloser(decodeDataURL(s.u)), nil

	case handleSource:
		if err := f.take(); err != nil {
			return nil, err
		}
		// The handle stays the caller's to close.
		return io.NopCloser(s.h.Stream()), nil

	case readerSource:
		if err := f.take(); err != nil {
			return nil, err
		}
		return io.NopCloser(s.r), nil

	case pathSource:
		return f.plat.OpenRead(s.path)

	case responseSource:
		if s.resp.Body == nil {
			return nil, newNoBodyError(s.resp, requestURL(s.resp))
		}
		if err := f.take(); err != nil {
			return nil, err
		}
		return s.resp.Body, nil

	case urlSource:
		return f.openURL(ctx, s.u)

	default:
		return nil, errUnhandledSource(f.src)
	}
}

// openURL resolves a URL source: file URLs read from local disk, everything
// else is fetched.
func (f *InputFile) openURL(ctx context.Context, u *url.URL) (io.ReadCloser, error) {
	if u.Scheme == "file" {
		return f.plat.OpenRead(u.Path)
	}

	resp, err := f.plat.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
		return nil, newStatusError(resp, u.String())
	}
	if resp.Body == nil {
		return nil, newNoBodyError(resp, u.String())
	}
	return resp.Body, nil
}

// decodeDataURL streams the base64 payload of a data: URL. The payload sits
// after the first comma of the opaque part.
func decodeDataURL(u *url.URL) io.Reader {
	payload := u.Opaque
	if i := strings.IndexByte(payload, ','); i >= 0 {
		payload = payload[i+1:]
	}
	return base64.NewDecoder(base64.StdEncoding, strings.NewReader(payload))
}

// asReadCloser closes producer-created readers on stream close when they
// support it.
func asReadCloser(r io.Reader) io.ReadCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}

func requestURL(resp *http.Response) string {
	if resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL.String()
	}
	return ""
}
