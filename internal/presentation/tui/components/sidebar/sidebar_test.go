package sidebar

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	for _, active := range []bool{true, false} {
		got := Render(Props{
			View:     "General (3)",
			Width:    30,
			Height:   10,
			Title:    "Headlines",
			Subtitle: "mock data",
			Active:   active,
		})
		for _, want := range []string{"Headlines", "mock data", "General (3)"} {
			if !strings.Contains(got, want) {
				t.Errorf("active=%v: missing %q in %q", active, want, got)
			}
		}
	}
}
