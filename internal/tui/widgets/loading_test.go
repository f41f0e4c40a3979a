package widgets

import (
	"testing"

	"github.com/pucktrack/nhl-tui/internal/tui/grid"
)

func TestLoadingTextFrames(t *testing.T) {
	want := []string{"●○○", "○●○", "○○●", "○●○"}
	for frame, text := range want {
		if got := LoadingText(frame); got != text {
			t.Errorf("frame %d = %q, want %q", frame, got, text)
		}
	}
	// The cycle wraps.
	if got := LoadingText(4); got != "●○○" {
		t.Errorf("frame 4 = %q, want wrap to first frame", got)
	}
}

func TestLoadingCentersInArea(t *testing.T) {
	buf := grid.NewBuffer(9, 3)
	Loading{Frame: 0}.RenderWidget(buf.Area(), buf, testCtx())

	assertLines(t, buf, []string{
		"",
		"   ●○○",
		"",
	})
}

func TestLoadingInOneRow(t *testing.T) {
	buf := grid.NewBuffer(7, 1)
	Loading{Frame: 2}.RenderWidget(buf.Area(), buf, testCtx())
	assertLines(t, buf, []string{"  ○○●"})
}
