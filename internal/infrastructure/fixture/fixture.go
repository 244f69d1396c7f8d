// Package fixture serves a bundled NewsAPI payload for offline runs.
package fixture

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/tesso57/headlines/internal/domain/news"
)

//go:embed response_payload.json
var bundled []byte

// Source loads the mock payload. An empty Path selects the bundled file.
type Source struct {
	Path string
}

// Load returns the raw payload bytes.
func (s Source) Load() ([]byte, error) {
	if s.Path == "" {
		out := make([]byte, len(bundled))
		copy(out, bundled)
		return out, nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", news.ErrFixtureMissing, err)
	}
	return data, nil
}

// Bundled returns a copy of the embedded payload.
func Bundled() []byte {
	data, _ := Source{}.Load()
	return data
}
