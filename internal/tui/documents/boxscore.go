// Package documents implements the drill-down pages of the app: the game
// boxscore, team detail, player detail, standings and settings documents.
package documents

import (
	"fmt"
	"strings"

	"github.com/pucktrack/nhl-tui/internal/nhl"
	"github.com/pucktrack/nhl-tui/internal/tui/document"
	"github.com/pucktrack/nhl-tui/internal/tui/styles"
	"github.com/pucktrack/nhl-tui/internal/tui/widgets"
)

// Boxscore is the game detail document: the score section on top and the
// two team stat panels below, side by side when the terminal is wide
// enough.
type Boxscore struct {
	GameID     int64
	Box        *nhl.Boxscore
	TimeFormat string
}

// NewBoxscore wraps a fetched boxscore as a document.
func NewBoxscore(gameID int64, box *nhl.Boxscore, timeFormat string) *Boxscore {
	return &Boxscore{GameID: gameID, Box: box, TimeFormat: timeFormat}
}

func (b *Boxscore) ID() string {
	return fmt.Sprintf("boxscore_%d", b.GameID)
}

func (b *Boxscore) Title() string {
	return fmt.Sprintf("%s @ %s - Game %d", b.Box.AwayTeam.Abbrev, b.Box.HomeTeam.Abbrev, b.GameID)
}

// buildScore renders the score header: big digits on unicode terminals,
// a plain text line otherwise.
func (b *Boxscore) buildScore(fc *document.FocusContext, builder *document.Builder) {
	box := b.Box
	if fc.Unicode {
		builder.Element(widgets.BigScore{
			AwayName:  box.AwayTeam.CommonName.Default,
			HomeName:  box.HomeTeam.CommonName.Default,
			AwayScore: box.AwayTeam.Score,
			HomeScore: box.HomeTeam.Score,
			Status:    nhl.BoxscoreStatus(box, b.TimeFormat),
			Venue:     box.Venue.Default,
		})
		return
	}
	builder.Heading(2, "SCORE")
	builder.Text(fmt.Sprintf("%s: %d  |  %s: %d",
		box.AwayTeam.Abbrev, box.AwayTeam.Score,
		box.HomeTeam.Abbrev, box.HomeTeam.Score))
}

func (b *Boxscore) teamPanel(fc *document.FocusContext, prefix string, name string, stats nhl.TeamPlayerStats) *document.TeamBoxscore {
	forwards := document.NewTable(prefix+"_forwards", skaterColumns(), stats.Forwards).
		WithFocusedRow(fc.FocusedTableRow(prefix + "_forwards"))
	defense := document.NewTable(prefix+"_defense", skaterColumns(), stats.Defense).
		WithFocusedRow(fc.FocusedTableRow(prefix + "_defense"))
	goalies := document.NewTable(prefix+"_goalies", goalieColumns(fc.Boxes), stats.Goalies).
		WithFocusedRow(fc.FocusedTableRow(prefix + "_goalies"))
	return &document.TeamBoxscore{
		TeamName: name,
		Forwards: forwards,
		Defense:  defense,
		Goalies:  goalies,
	}
}

func (b *Boxscore) Build(fc *document.FocusContext) []document.Element {
	builder := document.NewBuilder()
	b.buildScore(fc, builder)
	builder.Spacer(1)

	away := b.teamPanel(fc, "away", b.Box.AwayTeam.CommonName.Default, b.Box.PlayerByGameStats.AwayTeam)
	home := b.teamPanel(fc, "home", b.Box.HomeTeam.CommonName.Default, b.Box.PlayerByGameStats.HomeTeam)

	if fc.AvailableWidth >= document.SideBySideMinWidth {
		builder.Row(document.TeamBoxscoreGap, document.RowLeft, away, home)
	} else {
		builder.Element(away)
		builder.Spacer(1)
		builder.Element(home)
	}
	return builder.Build()
}

// FocusablePositions lists every player row, away team first, in the
// order the panels render their sections.
func (b *Boxscore) FocusablePositions() []document.FocusKey {
	var keys []document.FocusKey
	add := func(prefix string, stats nhl.TeamPlayerStats) {
		for _, section := range []struct {
			id      string
			skaters []nhl.SkaterStats
		}{
			{prefix + "_forwards", stats.Forwards},
			{prefix + "_defense", stats.Defense},
		} {
			for i, s := range section.skaters {
				keys = append(keys, document.TableRowKey(section.id, i,
					document.PlayerTarget(s.PlayerID, s.SweaterNumber, lastName(s.Name.Default))))
			}
		}
		for i, g := range stats.Goalies {
			keys = append(keys, document.TableRowKey(prefix+"_goalies", i,
				document.PlayerTarget(g.PlayerID, g.SweaterNumber, lastName(g.Name.Default))))
		}
	}
	add("away", b.Box.PlayerByGameStats.AwayTeam)
	add("home", b.Box.PlayerByGameStats.HomeTeam)
	return keys
}

// lastName takes the surname from an api-web short name like "S. Crosby".
func lastName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[len(fields)-1]
}

func skaterColumns() []document.Column[nhl.SkaterStats] {
	return []document.Column[nhl.SkaterStats]{
		document.NewColumn("#", 2, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			return document.StyledCell(fmt.Sprintf("%d", s.SweaterNumber))
		}),
		document.NewColumn("Player", 20, document.AlignLeft, func(s nhl.SkaterStats) document.Cell {
			return document.PlayerLinkCell(s.Name.Default, s.PlayerID)
		}),
		document.NewColumn("Pos", 3, document.AlignCenter, func(s nhl.SkaterStats) document.Cell {
			return document.TextCell(s.Position)
		}),
		document.NewColumn("G", 2, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Goals))
		}),
		document.NewColumn("A", 2, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Assists))
		}),
		document.NewColumn("PTS", 3, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Points))
		}),
		document.NewColumn("PPG", 3, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.PowerPlayGoals))
		}),
		document.NewColumn("+/-", 3, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%+d", s.PlusMinus))
		}),
		document.NewColumn("SOG", 3, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.SOG))
		}),
		document.NewColumn("Hits", 4, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Hits))
		}),
		document.NewColumn("Blk", 3, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.BlockedShots))
		}),
		document.NewColumn("GA", 2, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Giveaways))
		}),
		document.NewColumn("TA", 2, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Takeaways))
		}),
		document.NewColumn("PIM", 3, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.PIM))
		}),
		document.NewColumn("FO%", 5, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			if s.FaceoffWinningPctg > 0 {
				return document.TextCell(fmt.Sprintf("%.1f", s.FaceoffWinningPctg*100))
			}
			return document.TextCell("-")
		}),
		document.NewColumn("SH", 3, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Shifts))
		}),
		document.NewColumn("TOI", 6, document.AlignRight, func(s nhl.SkaterStats) document.Cell {
			return document.TextCell(s.TOI)
		}),
	}
}

func goalieColumns(boxes styles.BoxChars) []document.Column[nhl.GoalieStats] {
	checkmark := string(boxes.Checkmark)
	return []document.Column[nhl.GoalieStats]{
		document.NewColumn("#", 2, document.AlignRight, func(g nhl.GoalieStats) document.Cell {
			return document.StyledCell(fmt.Sprintf("%d", g.SweaterNumber))
		}),
		document.NewColumn("Player", 20, document.AlignLeft, func(g nhl.GoalieStats) document.Cell {
			return document.PlayerLinkCell(g.Name.Default, g.PlayerID)
		}),
		document.NewColumn("DEC", 3, document.AlignCenter, func(g nhl.GoalieStats) document.Cell {
			if g.Decision != nil {
				return document.TextCell(*g.Decision)
			}
			return document.TextCell("-")
		}),
		document.NewColumn("S", 1, document.AlignCenter, func(g nhl.GoalieStats) document.Cell {
			if g.Starter != nil && *g.Starter {
				return document.TextCell(checkmark)
			}
			return document.TextCell(" ")
		}),
		document.NewColumn("SA", 3, document.AlignRight, func(g nhl.GoalieStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", g.ShotsAgainst))
		}),
		document.NewColumn("GA", 2, document.AlignRight, func(g nhl.GoalieStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", g.GoalsAgainst))
		}),
		document.NewColumn("SV", 3, document.AlignRight, func(g nhl.GoalieStats) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", g.Saves))
		}),
		document.NewColumn("SV%", 5, document.AlignRight, func(g nhl.GoalieStats) document.Cell {
			if g.SavePctg != nil {
				return document.TextCell(fmt.Sprintf("%.3f", *g.SavePctg))
			}
			return document.TextCell("-")
		}),
		document.NewColumn("ES", 6, document.AlignRight, func(g nhl.GoalieStats) document.Cell {
			return document.TextCell(g.EvenStrengthShotsAgainst)
		}),
		document.NewColumn("PP", 4, document.AlignRight, func(g nhl.GoalieStats) document.Cell {
			return document.TextCell(g.PowerPlayShotsAgainst)
		}),
		document.NewColumn("SH", 4, document.AlignRight, func(g nhl.GoalieStats) document.Cell {
			return document.TextCell(g.ShorthandedShotsAgainst)
		}),
		document.NewColumn("TOI", 7, document.AlignRight, func(g nhl.GoalieStats) document.Cell {
			return document.TextCell(g.TOI)
		}),
		document.NewColumn("PIM", 3, document.AlignRight, func(g nhl.GoalieStats) document.Cell {
			if g.PIM != nil {
				return document.TextCell(fmt.Sprintf("%d", *g.PIM))
			}
			return document.TextCell("-")
		}),
	}
}
