// Package inputfile turns the many ways a caller can describe a file
// (raw bytes, a local path, a remote URL, a base64 blob, an open reader, a
// reader producer, or an already-fetched HTTP response) into one uniform,
// lazily-read stream with a best-effort inferred filename.
//
// Classification happens eagerly at construction; all I/O is deferred to
// Open. Sources backed by a resource that cannot be re-read (an open reader,
// handle, or response body) are single-use: a second Open fails with
// ErrConsumed. Sources that can be re-derived (bytes, paths, URLs, producer
// functions) may be opened any number of times.
package inputfile

import (
	"io"
	"net/http"
	"sync/atomic"

	"inputfile/pkg/platform"
)

// InputFile is a uniform handle over one file input. The source and name are
// fixed at construction; only the consumed flag mutates afterwards.
type InputFile struct {
	src      source
	name     string
	plat     platform.Platform
	consumed atomic.Bool
}

// Option adjusts construction of an InputFile.
type Option func(*InputFile)

// WithName sets an explicit filename, overriding inference.
func WithName(name string) Option {
	return func(f *InputFile) {
		f.name = name
	}
}

// WithPlatform injects the I/O capability used to open local paths and fetch
// remote URLs. Defaults to platform.Default().
func WithPlatform(p platform.Platform) Option {
	return func(f *InputFile) {
		f.plat = p
	}
}

// New classifies v into its canonical source and returns a handle over it.
// Accepted inputs: []byte, Path, URL, *url.URL, Base64, *http.Response, a
// Readable, a ProducerFunc, or any io.Reader. Anything else is an error.
func New(v any, opts ...Option) (*InputFile, error) {
	src, err := normalize(v)
	if err != nil {
		return nil, err
	}
	return build(src, v, opts), nil
}

// FromBytes wraps an in-memory buffer. The buffer is yielded as a single
// chunk on every read.
func FromBytes(data []byte, opts ...Option) *InputFile {
	return build(bytesSource{data: data}, data, opts)
}

// FromPath wraps a local filesystem path. The file is opened fresh on every
// read.
func FromPath(path string, opts ...Option) *InputFile {
	return build(pathSource{path: path}, path, opts)
}

// FromURL wraps a remote location. file:// URLs are read from local disk;
// anything else is fetched on every read.
func FromURL(raw string, opts ...Option) (*InputFile, error) {
	return New(URL(raw), opts...)
}

// FromBase64 wraps base64-encoded content as a data: URL. The payload is
// decoded lazily on every read.
func FromBase64(enc string, opts ...Option) *InputFile {
	return build(dataURLSource{u: dataURL(enc)}, Base64(enc), opts)
}

// FromResponse wraps an already-completed HTTP response. Single-use; the
// body is closed when the returned stream is closed.
func FromResponse(resp *http.Response, opts ...Option) *InputFile {
	return build(responseSource{resp: resp}, resp, opts)
}

// FromReadable wraps an already-open handle that exposes its own byte
// stream. Single-use.
func FromReadable(h Readable, opts ...Option) *InputFile {
	return build(handleSource{h: h}, h, opts)
}

// FromReader wraps an open reader. Single-use; the reader is not closed, it
// still belongs to the caller.
func FromReader(r io.Reader, opts ...Option) *InputFile {
	return build(readerSource{r: r}, r, opts)
}

// FromFunc wraps a producer invoked fresh on every read, so the backing data
// can be recreated per attempt. Never marked consumed.
func FromFunc(fn ProducerFunc, opts ...Option) *InputFile {
	return build(lazySource{fn: fn}, fn, opts)
}

func build(src source, origin any, opts []Option) *InputFile {
	f := &InputFile{src: src}
	for _, opt := range opts {
		opt(f)
	}
	if f.plat == nil {
		f.plat = platform.Default()
	}
	if f.name == "" {
		f.name = inferName(origin, src)
	}
	return f
}

// Name returns the explicit or inferred filename, or "" when none could be
// determined.
func (f *InputFile) Name() string {
	return f.name
}

// Consumed reports whether a single-use source has already been opened.
func (f *InputFile) Consumed() bool {
	return f.consumed.Load()
}

// SingleUse reports whether this source can be opened at most once. A
// retrying caller must reconstruct the InputFile from its original input
// when this is true.
func (f *InputFile) SingleUse() bool {
	return f.src.singleUse()
}

// take claims the single read allowed on a single-use source; re-derivable
// sources pass through. The CAS makes concurrent Open attempts
// deterministic: exactly one wins, the rest get ErrConsumed before any I/O.
func (f *InputFile) take() error {
	if !f.src.singleUse() {
		return nil
	}
	if !f.consumed.CompareAndSwap(false, true) {
		return ErrConsumed
	}
	return nil
}
