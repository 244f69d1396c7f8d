package newsapi

import (
	"errors"
	"fmt"

	"github.com/tesso57/headlines/internal/domain/news"
)

const codeMaximumResultsReached = "maximumResultsReached"

// ErrBodyTooLarge is wrapped by FetchError when a response exceeds the read limit.
var ErrBodyTooLarge = errors.New("response body too large")

// FetchError reports a transport failure or a non-2xx response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is matches news.ErrFetch.
func (e *FetchError) Is(target error) bool { return target == news.ErrFetch }

// APIStatusError reports an envelope whose status is not "ok".
type APIStatusError struct {
	Status  string
	Code    string
	Message string
}

func (e *APIStatusError) Error() string {
	if e.Code == "" && e.Message == "" {
		return fmt.Sprintf("api status %q", e.Status)
	}
	return fmt.Sprintf("api status %q: %s: %s", e.Status, e.Code, e.Message)
}

// Is matches news.ErrAPIStatus, and news.ErrResultsCapped for the paging limit code.
func (e *APIStatusError) Is(target error) bool {
	switch target {
	case news.ErrAPIStatus:
		return true
	case news.ErrResultsCapped:
		return e.Code == codeMaximumResultsReached
	}
	return false
}
