package news

import "errors"

// Error kinds produced while loading headlines. None of them is fatal to the feed.
var (
	ErrDecode         = errors.New("malformed api response")
	ErrAPIStatus      = errors.New("api status is not ok")
	ErrFetch          = errors.New("fetch failed")
	ErrFixtureMissing = errors.New("fixture unavailable")
	// ErrResultsCapped means the API refuses pages past its result limit.
	ErrResultsCapped = errors.New("maximum results reached")
)
