package documents

import (
	"fmt"

	"github.com/pucktrack/nhl-tui/internal/nhl"
	"github.com/pucktrack/nhl-tui/internal/tui/document"
)

// PlayerDetail is the player page: bio lines, the featured season and
// career blocks, then the NHL season-by-season history. It has no
// focusable content.
type PlayerDetail struct {
	Player *nhl.PlayerLanding
}

func (p *PlayerDetail) ID() string {
	return fmt.Sprintf("player_%d", p.Player.PlayerID)
}

func (p *PlayerDetail) Title() string { return p.Player.FullName() }

func (p *PlayerDetail) Build(*document.FocusContext) []document.Element {
	pl := p.Player
	builder := document.NewBuilder()

	heading := pl.FullName()
	if pl.SweaterNumber != nil {
		heading = fmt.Sprintf("#%d %s", *pl.SweaterNumber, heading)
	}
	builder.Heading(1, heading)
	builder.Spacer(1)

	bio := fmt.Sprintf("%s | %s | %s | %d lb",
		pl.CurrentTeamAbbrev, pl.Position, formatHeight(pl.HeightInInches), pl.WeightInPounds)
	if pl.ShootsCatches != "" {
		bio += " | Shoots " + pl.ShootsCatches
	}
	builder.Text(bio)
	if pl.BirthDate != "" {
		builder.Text(fmt.Sprintf("Born %s - %s, %s", pl.BirthDate, pl.BirthCity.Default, pl.BirthCountry))
	}
	builder.Spacer(1)

	featured := pl.FeaturedStats.RegularSeason
	builder.SectionTitle("This Season", true)
	builder.Element(document.NewTable("featured_season", featuredColumns(),
		[]nhl.FeaturedSubSeason{featured.SubSeason}))
	builder.Spacer(1)

	builder.SectionTitle("Career", true)
	builder.Element(document.NewTable("featured_career", featuredColumns(),
		[]nhl.FeaturedSubSeason{featured.Career}))

	if seasons := p.nhlSeasons(); len(seasons) > 0 {
		builder.Spacer(1)
		builder.SectionTitle("NHL Seasons", true)
		builder.Element(document.NewTable("season_totals", seasonColumns(), seasons))
	}
	return builder.Build()
}

func (p *PlayerDetail) FocusablePositions() []document.FocusKey { return nil }

func (p *PlayerDetail) nhlSeasons() []nhl.SeasonTotal {
	var seasons []nhl.SeasonTotal
	for _, s := range p.Player.SeasonTotals {
		if s.LeagueAbbrev == "NHL" {
			seasons = append(seasons, s)
		}
	}
	return seasons
}

// formatHeight renders inches as feet and inches, e.g. 71 -> 5'11".
func formatHeight(inches int) string {
	if inches <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d'%d\"", inches/12, inches%12)
}

// formatSeason shortens a season id like 20232024 to "2023-24".
func formatSeason(season int64) string {
	start := season / 10000
	end := season % 10000
	return fmt.Sprintf("%d-%02d", start, end%100)
}

func featuredColumns() []document.Column[nhl.FeaturedSubSeason] {
	return []document.Column[nhl.FeaturedSubSeason]{
		document.NewColumn("GP", 4, document.AlignRight, func(s nhl.FeaturedSubSeason) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.GamesPlayed))
		}),
		document.NewColumn("G", 4, document.AlignRight, func(s nhl.FeaturedSubSeason) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Goals))
		}),
		document.NewColumn("A", 4, document.AlignRight, func(s nhl.FeaturedSubSeason) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Assists))
		}),
		document.NewColumn("PTS", 4, document.AlignRight, func(s nhl.FeaturedSubSeason) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Points))
		}),
		document.NewColumn("+/-", 4, document.AlignRight, func(s nhl.FeaturedSubSeason) document.Cell {
			return document.TextCell(fmt.Sprintf("%+d", s.PlusMinus))
		}),
		document.NewColumn("PIM", 4, document.AlignRight, func(s nhl.FeaturedSubSeason) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.PIM))
		}),
		document.NewColumn("S", 5, document.AlignRight, func(s nhl.FeaturedSubSeason) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Shots))
		}),
	}
}

func seasonColumns() []document.Column[nhl.SeasonTotal] {
	return []document.Column[nhl.SeasonTotal]{
		document.NewColumn("Season", 8, document.AlignLeft, func(s nhl.SeasonTotal) document.Cell {
			return document.TextCell(formatSeason(s.Season))
		}),
		document.NewColumn("Team", 22, document.AlignLeft, func(s nhl.SeasonTotal) document.Cell {
			return document.TextCell(s.TeamName.Default)
		}),
		document.NewColumn("GP", 4, document.AlignRight, func(s nhl.SeasonTotal) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.GamesPlayed))
		}),
		document.NewColumn("G", 4, document.AlignRight, func(s nhl.SeasonTotal) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Goals))
		}),
		document.NewColumn("A", 4, document.AlignRight, func(s nhl.SeasonTotal) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Assists))
		}),
		document.NewColumn("PTS", 4, document.AlignRight, func(s nhl.SeasonTotal) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.Points))
		}),
		document.NewColumn("+/-", 4, document.AlignRight, func(s nhl.SeasonTotal) document.Cell {
			return document.TextCell(fmt.Sprintf("%+d", s.PlusMinus))
		}),
		document.NewColumn("PIM", 4, document.AlignRight, func(s nhl.SeasonTotal) document.Cell {
			return document.TextCell(fmt.Sprintf("%d", s.PIM))
		}),
	}
}
