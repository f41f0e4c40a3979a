package tui

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/pucktrack/nhl-tui/internal/config"
	"github.com/pucktrack/nhl-tui/internal/nhl"
	"github.com/pucktrack/nhl-tui/internal/tui/document"
	"github.com/pucktrack/nhl-tui/internal/tui/styles"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tickMsg:
		return a, tea.Batch(a.refreshData(), a.refreshTick())

	case animFrameMsg:
		if a.isLoading() {
			a.animFrame++
			return a, animCmd()
		}
		return a, nil

	case scoresMsg:
		slog.Debug("scoreboard refreshed", "games", len(msg.board.Games))
		cmd := a.checkFinals(msg.board)
		a.scoreboard = msg.board
		delete(a.loading, "scores")
		return a, cmd

	case standingsMsg:
		a.standings = msg.standings
		delete(a.loading, "standings")
		return a, nil

	case boxscoreMsg:
		a.boxscores[msg.gameID] = msg.box
		delete(a.loading, fmt.Sprintf("boxscore_%d", msg.gameID))
		return a, nil

	case clubStatsMsg:
		a.clubStats[msg.abbrev] = msg.stats
		delete(a.loading, "club_"+msg.abbrev)
		return a, nil

	case playerMsg:
		a.players[msg.player.PlayerID] = msg.player
		delete(a.loading, fmt.Sprintf("player_%d", msg.player.PlayerID))
		return a, nil

	case errMsg:
		slog.Error("fetch failed", "err", msg.err)
		a.err = msg.err
		a.loading = make(map[string]bool)
		return a, nil
	}

	return a, nil
}

// handleKey routes a key press through the keymap.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, consumed := a.keyState.HandleKey(msg, a.keymap)
	if !consumed || action == "" {
		return a, nil
	}

	// Any key clears a transient status or error line.
	a.statusText = ""
	a.err = nil

	if a.showHelp && action != "help" && action != "quit" {
		a.showHelp = false
		return a, nil
	}

	switch action {
	case "quit":
		return a, tea.Quit
	case "help":
		a.showHelp = !a.showHelp
		return a, nil

	case "next_tab", "right":
		return a.switchTab(Tab((int(a.activeTab) + 1) % tabCount))
	case "prev_tab", "left":
		return a.switchTab(Tab((int(a.activeTab) + tabCount - 1) % tabCount))
	case "tab_scores":
		return a.switchTab(TabScores)
	case "tab_standings":
		return a.switchTab(TabStandings)
	case "tab_settings":
		return a.switchTab(TabSettings)

	case "up":
		a.moveFocus(-1)
		return a, nil
	case "down":
		a.moveFocus(1)
		return a, nil
	case "top":
		if view := a.currentView(); view != nil {
			view.SetScrollOffset(0)
			if view.FocusableCount() > 0 {
				view.SetFocusIndex(0)
			}
		}
		return a, nil
	case "bottom":
		if view := a.currentView(); view != nil {
			if count := view.FocusableCount(); count > 0 {
				view.SetFocusIndex(count - 1)
			}
			_, h := a.documentSize()
			view.ScrollBy(1 << 16)
			view.ScrollToFocus(a.width, h, a.styleCtx.Unicode)
		}
		return a, nil
	case "half_up":
		if view := a.currentView(); view != nil {
			_, h := a.documentSize()
			view.ScrollBy(-h / 2)
		}
		return a, nil
	case "half_down":
		if view := a.currentView(); view != nil {
			_, h := a.documentSize()
			view.ScrollBy(h / 2)
		}
		return a, nil

	case "select":
		return a.activateFocused()
	case "back":
		if _, ok := a.stack().Pop(); ok {
			a.restoreNav()
		}
		return a, nil
	case "refresh":
		return a, tea.Batch(a.refreshData(), animCmd())
	case "copy":
		return a.copyLocation()
	}

	return a, nil
}

// switchTab changes the active tab, keeping each tab's stack and nav.
func (a *App) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	if tab == a.activeTab {
		return a, nil
	}
	a.activeTab = tab
	return a, nil
}

// moveFocus shifts focus on the visible document and keeps it in view.
func (a *App) moveFocus(delta int) {
	view := a.currentView()
	if view == nil {
		return
	}
	view.MoveFocus(delta)
	_, h := a.documentSize()
	view.ScrollToFocus(a.width, h, a.styleCtx.Unicode)
}

// activateFocused opens the focused link: games, teams and players push a
// document onto the stack, settings entries mutate the config in place.
func (a *App) activateFocused() (tea.Model, tea.Cmd) {
	view := a.currentView()
	if view == nil {
		return a, nil
	}
	target, ok := view.FocusedTarget()
	if !ok {
		return a, nil
	}

	switch target.Kind {
	case document.TargetGame:
		a.saveNav(view)
		a.stack().Push(BoxscoreRef{
			GameID:     target.GameID,
			AwayAbbrev: target.AwayAbbrev,
			HomeAbbrev: target.HomeAbbrev,
			AwayScore:  target.AwayScore,
			HomeScore:  target.HomeScore,
			GameDate:   target.GameDate,
		})
		a.resetNav()
		if _, ok := a.boxscores[target.GameID]; !ok {
			a.loading[fmt.Sprintf("boxscore_%d", target.GameID)] = true
			return a, tea.Batch(a.fetchBoxscore(target.GameID), animCmd())
		}
		return a, nil

	case document.TargetTeam:
		a.saveNav(view)
		a.stack().Push(TeamRef{Abbrev: target.TeamAbbrev})
		a.resetNav()
		if _, ok := a.clubStats[target.TeamAbbrev]; !ok {
			a.loading["club_"+target.TeamAbbrev] = true
			return a, tea.Batch(a.fetchClubStats(target.TeamAbbrev), animCmd())
		}
		return a, nil

	case document.TargetPlayer:
		a.saveNav(view)
		a.stack().Push(PlayerRef{
			PlayerID:      target.PlayerID,
			SweaterNumber: target.SweaterNumber,
			LastName:      target.LastName,
		})
		a.resetNav()
		if _, ok := a.players[target.PlayerID]; !ok {
			a.loading[fmt.Sprintf("player_%d", target.PlayerID)] = true
			return a, tea.Batch(a.fetchPlayer(target.PlayerID), animCmd())
		}
		return a, nil

	case document.TargetAction:
		return a.applyAction(view, target.Action)
	}

	return a, nil
}

// applyAction performs a settings action: open a category page, or cycle
// or toggle one setting and persist the config.
func (a *App) applyAction(view *document.View, action string) (tea.Model, tea.Cmd) {
	verb, name, ok := splitAction(action)
	if !ok {
		return a, nil
	}

	if verb == "open" {
		a.saveNav(view)
		a.stack().Push(SettingsRef{Category: name})
		a.resetNav()
		return a, nil
	}

	switch name {
	case "theme":
		a.config.Display.Theme = cycleString(styles.ThemeNames(), a.config.Display.Theme)
		a.refreshStyleContext()
	case "use_unicode":
		a.config.Display.UseUnicode = !a.config.Display.UseUnicode
		a.refreshStyleContext()
	case "refresh_interval":
		a.config.RefreshInterval = cycleInt(refreshIntervals, a.config.RefreshInterval)
	case "western_teams_first":
		a.config.WesternFirst = !a.config.WesternFirst
	case "time_format":
		a.config.TimeFormat = cycleString(timeFormats, a.config.TimeFormat)
	case "notify_on_final":
		a.config.NotifyOnFinal = !a.config.NotifyOnFinal
	case "log_level":
		a.config.LogLevel = cycleString(logLevels, a.config.LogLevel)
	default:
		return a, nil
	}

	if err := config.Save(a.config); err != nil {
		a.err = err
	}
	return a, nil
}

// Setting values the cycle actions rotate through.
var (
	refreshIntervals = []int{30, 60, 120, 300}
	timeFormats      = []string{"12h", "24h"}
	logLevels        = []string{"debug", "info", "warn", "error"}
)

func splitAction(action string) (verb, name string, ok bool) {
	for i := 0; i < len(action); i++ {
		if action[i] == ':' {
			return action[:i], action[i+1:], true
		}
	}
	return "", "", false
}

func cycleString(values []string, current string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func cycleInt(values []int, current int) int {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

// refreshData refetches the data behind the visible document plus the
// scoreboard, which drives final-score notifications.
func (a *App) refreshData() tea.Cmd {
	cmds := []tea.Cmd{}
	a.loading["scores"] = true
	cmds = append(cmds, a.fetchScores())

	if a.activeTab == TabStandings || a.standings == nil {
		a.loading["standings"] = true
		cmds = append(cmds, a.fetchStandings())
	}
	if top := a.stack().Top(); top != nil {
		switch r := top.Doc.(type) {
		case BoxscoreRef:
			a.loading[fmt.Sprintf("boxscore_%d", r.GameID)] = true
			cmds = append(cmds, a.fetchBoxscore(r.GameID))
		case TeamRef:
			a.loading["club_"+r.Abbrev] = true
			cmds = append(cmds, a.fetchClubStats(r.Abbrev))
		}
	}
	return tea.Batch(cmds...)
}

// copyLocation puts the current breadcrumb trail on the system clipboard.
func (a *App) copyLocation() (tea.Model, tea.Cmd) {
	sep := string(a.styleCtx.Boxes.BreadcrumbSep)
	trail := breadcrumbTrail(a.activeTab.Name(), a.stack(), sep)
	if err := clipboard.WriteAll(trail); err != nil {
		a.err = err
		return a, nil
	}
	a.statusText = "Copied: " + trail
	return a, nil
}

// checkFinals sends a desktop notification for games that went final
// since the last scoreboard refresh.
func (a *App) checkFinals(board *nhl.Scoreboard) tea.Cmd {
	firstLoad := a.scoreboard == nil
	for _, g := range board.Games {
		if !g.GameState.Finished() || a.notified[g.ID] {
			continue
		}
		a.notified[g.ID] = true
		if firstLoad || !a.config.NotifyOnFinal {
			continue
		}
		title := "Final: " + g.AwayTeam.Abbrev + " @ " + g.HomeTeam.Abbrev
		body := fmt.Sprintf("%s %d - %s %d", g.AwayTeam.Abbrev, g.AwayTeam.Score,
			g.HomeTeam.Abbrev, g.HomeTeam.Score)
		slog.Info("game final", "game", g.ID, "score", body)
		if err := beeep.Notify(title, body, ""); err != nil {
			slog.Warn("notification failed", "err", err)
		}
	}
	return nil
}
