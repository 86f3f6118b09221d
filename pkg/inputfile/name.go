package inputfile

import (
	"net/url"
	"path/filepath"
	"strings"
)

// inferName guesses a filename from the origin value and its canonical
// source. Precedence: a local path's basename, then a file-like origin's own
// name (e.g. *os.File), then a URL's path basename, then the URL host. The
// host fallback keeps a root or trailing-slash URL from degrading to an
// empty name. Data URLs infer nothing; their opaque part is payload, not a
// path.
func inferName(origin any, src source) string {
	if s, ok := src.(pathSource); ok {
		return filepath.Base(s.path)
	}

	if named, ok := origin.(interface{ Name() string }); ok {
		if name := named.Name(); name != "" {
			return filepath.Base(name)
		}
	}

	s, ok := src.(urlSource)
	if !ok {
		return ""
	}
	return nameFromURL(s.u)
}

func nameFromURL(u *url.URL) string {
	if u.Path != "" && u.Path != "/" {
		// The segment after the last slash, kept verbatim so a trailing
		// slash yields an empty basename and degrades to the host instead
		// of resurrecting the parent segment.
		if base := u.Path[strings.LastIndexByte(u.Path, '/')+1:]; base != "" {
			return base
		}
	}
	return u.Host
}
