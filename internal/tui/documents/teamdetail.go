package documents

import (
	"fmt"

	"github.com/pucktrack/nhl-tui/internal/nhl"
	"github.com/pucktrack/nhl-tui/internal/tui/document"
)

// TeamDetail is the team page: the season record when the standings are
// loaded, then the club skater and goalie statistics. Player rows link
// to the player detail page.
type TeamDetail struct {
	Abbrev   string
	Stats    *nhl.ClubStats
	Standing *nhl.Standing
}

func (t *TeamDetail) ID() string { return "team_" + t.Abbrev }

func (t *TeamDetail) Title() string {
	if name, ok := nhl.AbbrevToCommonName(t.Abbrev); ok {
		return name
	}
	return t.Abbrev
}

func (t *TeamDetail) Build(fc *document.FocusContext) []document.Element {
	builder := document.NewBuilder()
	builder.Heading(1, t.headingText())
	builder.Spacer(1)

	if s := t.Standing; s != nil {
		builder.Text(fmt.Sprintf("Record: %d-%d-%d (%d PTS)   GF %d   GA %d   %s Division",
			s.Wins, s.Losses, s.OTLosses, s.Points, s.GoalFor, s.GoalAgainst, s.DivisionName))
		builder.Spacer(1)
	}

	if len(t.Stats.Skaters) > 0 {
		builder.SectionTitle("Skaters", true)
		builder.Element(document.NewTable("club_skaters", clubSkaterColumns(), t.Stats.Skaters).
			WithFocusedRow(fc.FocusedTableRow("club_skaters")))
		builder.Spacer(1)
	}
	if len(t.Stats.Goalies) > 0 {
		builder.SectionTitle("Goalies", true)
		builder.Element(document.NewTable("club_goalies", clubGoalieColumns(), t.Stats.Goalies).
			WithFocusedRow(fc.FocusedTableRow("club_goalies")))
	}
	return builder.Build()
}

func (t *TeamDetail) headingText() string {
	if s := t.Standing; s != nil {
		return s.TeamName.Default
	}
	return t.Title()
}

func (t *TeamDetail) FocusablePositions() []document.FocusKey {
	var keys []document.FocusKey
	for i, s := range t.Stats.Skaters {
		keys = append(keys, document.TableRowKey("club_skaters", i,
			document.PlayerTarget(s.PlayerID, 0, s.LastName.Default)))
	}
	for i, g := range t.Stats.Goalies {
		keys = append(keys, document.TableRowKey("club_goalies", i,
			document.PlayerTarget(g.PlayerID, 0, g.LastName.Default)))
	}
	return keys
}

func clubSkaterColumns() []document.Column[nhl.ClubSkater] {
	return []document.Column[nhl.ClubSkater]{
		document.NewColumn("Player", 22, document.AlignLeft, func(s nhl.ClubSkater) document.Cell {
			return document.PlayerLinkCell(s.FirstName.Default+" "+s.LastName.Default, s.PlayerID)
		}),
		document.NewColumn("Pos", 3, document.AlignCenter, func(s nhl.ClubSkater) document.Cell {
			return document.TextCell(s.PositionCode)
		}),
		document.NewColumn("GP", 3, document.AlignRight, func(s nhl.ClubSkater) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.GamesPlayed))
		}),
		document.NewColumn("G", 3, document.AlignRight, func(s nhl.ClubSkater) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Goals))
		}),
		document.NewColumn("A", 3, document.AlignRight, func(s nhl.ClubSkater) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Assists))
		}),
		document.NewColumn("PTS", 3, document.AlignRight, func(s nhl.ClubSkater) document.Cell {
			return document.StyledCell(fmt.Sprintf("%d", s.Points))
		}),
		document.NewColumn("+/-", 3, document.AlignRight, func(s nhl.ClubSkater) document.Cell {
			return document.TextCell(fmt.Sprintf("%+d", s.PlusMinus))
		}),
		document.NewColumn("PIM", 3, document.AlignRight, func(s nhl.ClubSkater) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.PenaltyMinutes))
		}),
		document.NewColumn("S", 4, document.AlignRight, func(s nhl.ClubSkater) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Shots))
		}),
		document.NewColumn("S%", 5, document.AlignRight, func(s nhl.ClubSkater) document.Cell {
			return document.TextCell(fmt.Sprintf("%.1f", s.ShootingPctg*100))
		}),
	}
}

func clubGoalieColumns() []document.Column[nhl.ClubGoalie] {
	return []document.Column[nhl.ClubGoalie]{
		document.NewColumn("Player", 22, document.AlignLeft, func(g nhl.ClubGoalie) document.Cell {
			return document.PlayerLinkCell(g.FirstName.Default+" "+g.LastName.Default, g.PlayerID)
		}),
		document.NewColumn("GP", 3, document.AlignRight, func(g nhl.ClubGoalie) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", g.GamesPlayed))
		}),
		document.NewColumn("W", 3, document.AlignRight, func(g nhl.ClubGoalie) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", g.Wins))
		}),
		document.NewColumn("L", 3, document.AlignRight, func(g nhl.ClubGoalie) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", g.Losses))
		}),
		document.NewColumn("OT", 3, document.AlignRight, func(g nhl.ClubGoalie) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", g.OvertimeLosses))
		}),
		document.NewColumn("GAA", 5, document.AlignRight, func(g nhl.ClubGoalie) document.Cell {
			return document.TextCell(fmt.Sprintf("%.2f", g.GoalsAgainstAvg))
		}),
		document.NewColumn("SV%", 5, document.AlignRight, func(g nhl.ClubGoalie) document.Cell {
			return document.TextCell(fmt.Sprintf("%.3f", g.SavePercentage))
		}),
		document.NewColumn("SO", 3, document.AlignRight, func(g nhl.ClubGoalie) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", g.Shutouts))
		}),
	}
}
