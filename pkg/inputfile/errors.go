package inputfile

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrConsumed is returned when Open is called again on an instance whose
// single-use backing resource was already handed out.
var ErrConsumed = errors.New("file source already consumed")

// ResponseError reports that a network or response-derived source could not
// provide a usable body: the fetch came back with a non-success status, or
// the response carried no body at all.
type ResponseError struct {
	// StatusCode is the numeric HTTP status of the failed response.
	StatusCode int

	// URL is the originating URL when known, otherwise empty.
	URL string

	// Response is the offending response object.
	Response *http.Response

	reason string
}

func (e *ResponseError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("%s: %s", e.reason, e.URL)
	}
	return e.reason
}

func newStatusError(resp *http.Response, url string) *ResponseError {
	reason := "unexpected status " + resp.Status
	if resp.Status == "" {
		reason = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return &ResponseError{
		StatusCode: resp.StatusCode,
		URL:        url,
		Response:   resp,
		reason:     reason,
	}
}

func newNoBodyError(resp *http.Response, url string) *ResponseError {
	return &ResponseError{
		StatusCode: resp.StatusCode,
		URL:        url,
		Response:   resp,
		reason:     "response has no body",
	}
}

// errUnhandledSource signals a defect in the normalizer, not a caller error:
// read dispatch reached a value outside the closed source set.
func errUnhandledSource(src source) error {
	return fmt.Errorf("unhandled source type %T", src)
}
