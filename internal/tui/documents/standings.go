package documents

import (
	"fmt"
	"strings"

	"github.com/pucktrack/nhl-tui/internal/nhl"
	"github.com/pucktrack/nhl-tui/internal/tui/document"
)

// divisionOrder is the render order of the four divisions, eastern
// conference first unless the config flips it.
func divisionOrder(westernFirst bool) []string {
	east := []string{"Atlantic", "Metropolitan"}
	west := []string{"Central", "Pacific"}
	if westernFirst {
		return append(west, east...)
	}
	return append(east, west...)
}

// Standings is the league standings document, one table per division.
// Team rows link to the team detail page.
type Standings struct {
	Rows         []nhl.Standing
	WesternFirst bool
}

func (s *Standings) ID() string    { return "standings" }
func (s *Standings) Title() string { return "Standings" }

func (s *Standings) division(name string) []nhl.Standing {
	var rows []nhl.Standing
	for _, row := range s.Rows {
		if row.DivisionName == name {
			rows = append(rows, row)
		}
	}
	return rows
}

func (s *Standings) Build(fc *document.FocusContext) []document.Element {
	builder := document.NewBuilder()
	for i, name := range divisionOrder(s.WesternFirst) {
		rows := s.division(name)
		if len(rows) == 0 {
			continue
		}
		if i > 0 {
			builder.Spacer(1)
		}
		tableID := standingsTableID(name)
		builder.SectionTitle(name, true)
		builder.Element(document.NewTable(tableID, standingsColumns(), rows).
			WithFocusedRow(fc.FocusedTableRow(tableID)))
	}
	return builder.Build()
}

func (s *Standings) FocusablePositions() []document.FocusKey {
	var keys []document.FocusKey
	for _, name := range divisionOrder(s.WesternFirst) {
		tableID := standingsTableID(name)
		for i, row := range s.division(name) {
			keys = append(keys, document.TableRowKey(tableID, i,
				document.TeamTarget(row.TeamAbbrev.Default)))
		}
	}
	return keys
}

func standingsTableID(division string) string {
	return "standings_" + strings.ToLower(division)
}

func standingsColumns() []document.Column[nhl.Standing] {
	return []document.Column[nhl.Standing]{
		document.NewColumn("Team", 22, document.AlignLeft, func(s nhl.Standing) document.Cell {
			return document.TeamLinkCell(s.TeamName.Default, s.TeamAbbrev.Default)
		}),
		document.NewColumn("GP", 3, document.AlignRight, func(s nhl.Standing) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.GamesPlayed))
		}),
		document.NewColumn("W", 3, document.AlignRight, func(s nhl.Standing) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Wins))
		}),
		document.NewColumn("L", 3, document.AlignRight, func(s nhl.Standing) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Losses))
		}),
		document.NewColumn("OT", 3, document.AlignRight, func(s nhl.Standing) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.OTLosses))
		}),
		document.NewColumn("PTS", 3, document.AlignRight, func(s nhl.Standing) document.Cell {
			return document.StyledCell(fmt.Sprintf("%d", s.Points))
		}),
		document.NewColumn("GF", 3, document.AlignRight, func(s nhl.Standing) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.GoalFor))
		}),
		document.NewColumn("GA", 3, document.AlignRight, func(s nhl.Standing) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.GoalAgainst))
		}),
		document.NewColumn("DIFF", 4, document.AlignRight, func(s nhl.Standing) document.Cell {
			return document.TextCell(fmt.Sprintf("%+d", s.GoalDifferential))
		}),
		document.NewColumn("L10", 6, document.AlignRight, func(s nhl.Standing) document.Cell {
			return document.TextCell(fmt.Sprintf("%d-%d-%d", s.L10Wins, s.L10Losses, s.L10OTLosses))
		}),
		document.NewColumn("STRK", 4, document.AlignRight, func(s nhl.Standing) document.Cell {
			if s.StreakCode == "" {
				return document.TextCell("-")
			}
			return document.TextCell(fmt.Sprintf("%s%d", s.StreakCode, s.StreakCount))
		}),
	}
}
