package tui

import (
	"strings"
	"testing"

	"github.com/pucktrack/nhl-tui/internal/tui/grid"
	"github.com/pucktrack/nhl-tui/internal/tui/styles"
)

func crumbStack(docs ...StackedDocument) *DocumentStack {
	stack := &DocumentStack{}
	for _, d := range docs {
		stack.Push(d)
	}
	return stack
}

func TestBreadcrumbHeight(t *testing.T) {
	if got := breadcrumbHeight(crumbStack()); got != 0 {
		t.Errorf("empty stack height = %d, want 0", got)
	}
	if got := breadcrumbHeight(crumbStack(TeamRef{Abbrev: "TOR"})); got != 2 {
		t.Errorf("height = %d, want 2", got)
	}
}

func TestBreadcrumbTrail(t *testing.T) {
	stack := crumbStack(
		BoxscoreRef{AwayAbbrev: "TOR", AwayScore: 3, HomeAbbrev: "BOS", HomeScore: 2},
		PlayerRef{SweaterNumber: 87, LastName: "Crosby"},
	)
	want := "Scores ▶ TOR:3-BOS:2 ▶ #87 Crosby"
	if got := breadcrumbTrail("Scores", stack, "▶"); got != want {
		t.Errorf("trail = %q, want %q", got, want)
	}
}

func TestRenderBreadcrumb(t *testing.T) {
	stack := crumbStack(
		BoxscoreRef{AwayAbbrev: "TOR", AwayScore: 3, HomeAbbrev: "BOS", HomeScore: 2},
		PlayerRef{SweaterNumber: 87, LastName: "Crosby"},
	)
	buf := grid.NewBuffer(40, 2)
	ctx := styles.NewContext(nil, true, true)

	renderBreadcrumb("Scores", stack, buf.Area(), buf, ctx)

	if got := strings.TrimRight(buf.Line(0), " "); got != " Scores ▶ TOR:3-BOS:2 ▶ #87 Crosby" {
		t.Errorf("line 0 = %q", got)
	}
	if got := buf.Line(1); got != strings.Repeat("─", 40) {
		t.Errorf("line 1 = %q", got)
	}
}

func TestRenderBreadcrumbClips(t *testing.T) {
	stack := crumbStack(
		BoxscoreRef{AwayAbbrev: "TOR", AwayScore: 3, HomeAbbrev: "BOS", HomeScore: 2},
	)
	buf := grid.NewBuffer(10, 2)
	ctx := styles.NewContext(nil, true, true)

	renderBreadcrumb("Scores", stack, buf.Area(), buf, ctx)

	if got := buf.Line(0); got != " Scores ▶ " {
		t.Errorf("line 0 = %q", got)
	}
}

func TestRenderBreadcrumbEmptyStackDrawsNothing(t *testing.T) {
	buf := grid.NewBuffer(20, 2)
	ctx := styles.NewContext(nil, true, true)

	renderBreadcrumb("Scores", crumbStack(), buf.Area(), buf, ctx)

	if got := strings.TrimRight(buf.Line(0), " "); got != "" {
		t.Errorf("line 0 = %q, want blank", got)
	}
}
