package widgets

import (
	"github.com/pucktrack/nhl-tui/internal/tui/grid"
	"github.com/pucktrack/nhl-tui/internal/tui/styles"
)

const loadingDots = 3

// LoadingText returns the dot pattern for one animation frame. The lit
// dot bounces left to right and back over a four-frame cycle.
func LoadingText(frame int) string {
	switch frame % 4 {
	case 0:
		return "●○○"
	case 1:
		return "○●○"
	case 2:
		return "○○●"
	default:
		return "○●○"
	}
}

// Loading is the pulsing-dots placeholder shown while data is fetched.
// It centers itself in whatever area it is given.
type Loading struct {
	Frame int
}

func (Loading) Height() int         { return 1 }
func (Loading) PreferredWidth() int { return loadingDots }

func (l Loading) RenderWidget(area grid.Rect, buf *grid.Buffer, ctx *styles.Context) {
	if area.Empty() {
		return
	}
	x := area.X + (area.Width-loadingDots)/2
	if x < area.X {
		x = area.X
	}
	y := area.Y + area.Height/2
	buf.SetString(x, y, LoadingText(l.Frame), ctx.Text().Bold(true))
}
