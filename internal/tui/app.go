package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pucktrack/nhl-tui/internal/config"
	"github.com/pucktrack/nhl-tui/internal/nhl"
	"github.com/pucktrack/nhl-tui/internal/tui/document"
	"github.com/pucktrack/nhl-tui/internal/tui/documents"
	"github.com/pucktrack/nhl-tui/internal/tui/styles"
)

// Tab represents a top-level tab.
type Tab int

const (
	TabScores Tab = iota
	TabStandings
	TabSettings

	tabCount = 3
)

// Name returns the tab's display name.
func (t Tab) Name() string {
	switch t {
	case TabStandings:
		return "Standings"
	case TabSettings:
		return "Settings"
	default:
		return "Scores"
	}
}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	client *nhl.Client
	config *config.Config

	// Navigation: one drill-down stack per tab, plus the saved focus and
	// scroll of each tab root while a stacked document covers it.
	activeTab Tab
	stacks    [tabCount]DocumentStack
	rootNav   [tabCount]NavState

	// Data caches, filled by fetch commands.
	scoreboard *nhl.Scoreboard
	standings  []nhl.Standing
	boxscores  map[int64]*nhl.Boxscore
	clubStats  map[string]*nhl.ClubStats
	players    map[int64]*nhl.PlayerLanding

	// In-flight fetches, keyed by resource.
	loading map[string]bool

	// Games already announced as final, so a refresh never notifies twice.
	notified map[int64]bool

	// UI state
	width      int
	height     int
	animFrame  int
	showHelp   bool
	statusText string
	err        error

	// Components
	spinner  spinner.Model
	keymap   Keymap
	keyState KeyState
	store    *ComponentStateStore
	styleCtx *styles.Context
}

// NewApp creates a new App instance.
func NewApp(client *nhl.Client, cfg *config.Config) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	app := &App{
		client:    client,
		config:    cfg,
		activeTab: TabScores,
		boxscores: make(map[int64]*nhl.Boxscore),
		clubStats: make(map[string]*nhl.ClubStats),
		players:   make(map[int64]*nhl.PlayerLanding),
		loading:   make(map[string]bool),
		notified:  make(map[int64]bool),
		spinner:   s,
		keymap:    DefaultKeymap(),
		store:     NewComponentStateStore(),
	}
	for i := range app.rootNav {
		app.rootNav[i] = NavState{FocusIndex: -1}
	}
	app.refreshStyleContext()
	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.loading["scores"] = true
	a.loading["standings"] = true
	return tea.Batch(
		a.spinner.Tick,
		a.fetchScores(),
		a.fetchStandings(),
		a.refreshTick(),
		animCmd(),
	)
}

// refreshStyleContext rebuilds the render context from the current
// display settings.
func (a *App) refreshStyleContext() {
	theme := styles.ThemeByName(a.config.Display.Theme)
	a.styleCtx = styles.NewContext(theme, a.config.Display.UseUnicode, true)
}

func (a *App) stack() *DocumentStack {
	return &a.stacks[a.activeTab]
}

// isLoading reports whether any fetch is in flight.
func (a *App) isLoading() bool {
	for _, v := range a.loading {
		if v {
			return true
		}
	}
	return false
}

// currentDocument resolves the document shown in the active tab: the top
// of the drill-down stack when one exists, otherwise the tab root. The
// second return is false while the document's data is still loading.
func (a *App) currentDocument() (document.Document, bool) {
	if top := a.stack().Top(); top != nil {
		return a.stackedDocument(top.Doc)
	}
	switch a.activeTab {
	case TabStandings:
		if a.standings == nil {
			return nil, false
		}
		return &documents.Standings{Rows: a.standings, WesternFirst: a.config.WesternFirst}, true
	case TabSettings:
		return documents.SettingsMenu{}, true
	default:
		if a.scoreboard == nil {
			return nil, false
		}
		return &documents.Scores{Board: a.scoreboard, TimeFormat: a.config.TimeFormat}, true
	}
}

// stackedDocument materializes a stack reference against the data caches.
func (a *App) stackedDocument(ref StackedDocument) (document.Document, bool) {
	switch r := ref.(type) {
	case BoxscoreRef:
		box, ok := a.boxscores[r.GameID]
		if !ok {
			return nil, false
		}
		return documents.NewBoxscore(r.GameID, box, a.config.TimeFormat), true
	case TeamRef:
		stats, ok := a.clubStats[r.Abbrev]
		if !ok {
			return nil, false
		}
		return &documents.TeamDetail{
			Abbrev:   r.Abbrev,
			Stats:    stats,
			Standing: a.standingFor(r.Abbrev),
		}, true
	case PlayerRef:
		player, ok := a.players[r.PlayerID]
		if !ok {
			return nil, false
		}
		return &documents.PlayerDetail{Player: player}, true
	case SettingsRef:
		return &documents.Settings{Category: settingsCategory(r.Category), Config: a.config}, true
	}
	return nil, false
}

func (a *App) standingFor(abbrev string) *nhl.Standing {
	for i := range a.standings {
		if a.standings[i].TeamAbbrev.Default == abbrev {
			return &a.standings[i]
		}
	}
	return nil
}

func settingsCategory(name string) documents.SettingsCategory {
	switch name {
	case "Display":
		return documents.SettingsDisplay
	case "Data":
		return documents.SettingsData
	default:
		return documents.SettingsLogging
	}
}

// currentView returns the persistent view over the active tab's current
// document, or nil while its data is loading. Views survive in the store
// keyed by tab and document identity, so focus and scroll persist across
// frames and return visits.
func (a *App) currentView() *document.View {
	doc, ok := a.currentDocument()
	if !ok {
		return nil
	}
	key := fmt.Sprintf("%s/%s", a.activeTab.Name(), doc.ID())
	view := StateFor(a.store, key, func() *document.View {
		return document.NewView(doc)
	})
	view.SetDocument(doc)
	return view
}

// resetNav seeds the just-pushed document with fresh nav state. Views
// persist in the store across visits, so without this a re-pushed
// document would resume the focus and scroll it had before it was
// popped.
func (a *App) resetNav() {
	if view := a.currentView(); view != nil {
		view.SetFocusIndex(-1)
		view.SetScrollOffset(0)
	}
}

// saveNav records the nav state of the document about to be covered or
// revealed, so it can be restored later.
func (a *App) saveNav(view *document.View) {
	nav := NavState{FocusIndex: view.FocusIndex(), ScrollOffset: view.ScrollOffset()}
	if top := a.stack().Top(); top != nil {
		top.Nav = nav
		return
	}
	a.rootNav[a.activeTab] = nav
}

// restoreNav applies a saved nav state to the now-visible document.
func (a *App) restoreNav() {
	var nav NavState
	if top := a.stack().Top(); top != nil {
		nav = top.Nav
	} else {
		nav = a.rootNav[a.activeTab]
	}
	if view := a.currentView(); view != nil {
		view.SetFocusIndex(nav.FocusIndex)
		view.SetScrollOffset(nav.ScrollOffset)
	}
}
