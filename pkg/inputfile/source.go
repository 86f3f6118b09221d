package inputfile

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Base64 is file content given as a standard base64 string. It is routed
// through a data: URL so it takes the same read path as other URLs.
type Base64 string

// URL is a remote location given as a string. It is parsed at construction;
// a file:// URL is read from local disk instead of fetched.
type URL string

// Path is a local filesystem path to read the file from.
type Path string

// Readable is an already-open handle that exposes its byte stream, for
// example a wrapper around an accepted upload. The stream is obtained once,
// at read time, and is not reusable.
type Readable interface {
	Stream() io.Reader
}

// ProducerFunc builds a fresh reader on every invocation. It is called once
// per read attempt, so the backing data can be recreated if a higher layer
// retries the whole read.
type ProducerFunc func(ctx context.Context) (io.Reader, error)

// source is the canonical representation of a file input. The set is closed:
// every constructor resolves to exactly one of these, and the read dispatch
// switches over them exhaustively.
type source interface {
	// singleUse reports whether the backing resource cannot be re-read and
	// the instance must be guarded against a second read attempt.
	singleUse() bool
	isSource()
}

type bytesSource struct{ data []byte }

type dataURLSource struct{ u *url.URL }

type handleSource struct{ h Readable }

type responseSource struct{ resp *http.Response }

type urlSource struct{ u *url.URL }

type pathSource struct{ path string }

type lazySource struct{ fn ProducerFunc }

type readerSource struct{ r io.Reader }

func (bytesSource) isSource()    {}
func (dataURLSource) isSource()  {}
func (handleSource) isSource()   {}
func (responseSource) isSource() {}
func (urlSource) isSource()      {}
func (pathSource) isSource()     {}
func (lazySource) isSource()     {}
func (readerSource) isSource()   {}

func (bytesSource) singleUse() bool    { return false }
func (dataURLSource) singleUse() bool  { return false }
func (handleSource) singleUse() bool   { return true }
func (responseSource) singleUse() bool { return true }
func (urlSource) singleUse() bool      { return false }
func (pathSource) singleUse() bool     { return false }
func (lazySource) singleUse() bool     { return false }
func (readerSource) singleUse() bool   { return true }

// normalize classifies a caller-supplied value into its canonical source.
// The case order is deliberate: base64 and open-handle inputs are recognized
// before the generic response/URL/reader fallthroughs, so a value satisfying
// more than one shape resolves predictably. No I/O happens here.
func normalize(v any) (source, error) {
	switch in := v.(type) {
	case Base64:
		return dataURLSource{u: dataURL(string(in))}, nil

	case Readable:
		return handleSource{h: in}, nil

	case *http.Response:
		return responseSource{resp: in}, nil

	case URL:
		u, err := url.Parse(string(in))
		if err != nil {
			return nil, fmt.Errorf("invalid URL %q: %w", string(in), err)
		}
		return urlSource{u: u}, nil

	case []byte:
		return bytesSource{data: in}, nil

	case Path:
		return pathSource{path: string(in)}, nil

	case *url.URL:
		return urlSource{u: in}, nil

	case ProducerFunc:
		return lazySource{fn: in}, nil

	case func(ctx context.Context) (io.Reader, error):
		return lazySource{fn: in}, nil

	case io.Reader:
		return readerSource{r: in}, nil

	default:
		return nil, fmt.Errorf("unsupported file input type %T", v)
	}
}

// dataURL wraps a base64 payload as a data: URL so it flows through the
// same read path as other URLs.
func dataURL(enc string) *url.URL {
	return &url.URL{Scheme: "data", Opaque: ";base64," + enc}
}
