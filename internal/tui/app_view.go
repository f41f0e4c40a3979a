package tui

import (
	"strings"

	"github.com/pucktrack/nhl-tui/internal/tui/grid"
	"github.com/pucktrack/nhl-tui/internal/tui/styles"
	"github.com/pucktrack/nhl-tui/internal/tui/widgets"
)

// Frame rows outside the document area: the tab bar with its trailing
// blank line, and the status bar.
const (
	tabBarRows    = 2
	statusBarRows = 1
)

// documentSize returns the area the visible document renders into, after
// the tab bar, status bar and breadcrumb are taken out.
func (a *App) documentSize() (width, height int) {
	width = a.width
	height = a.height - tabBarRows - statusBarRows - breadcrumbHeight(a.stack())
	if height < 0 {
		height = 0
	}
	return width, height
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.renderTabBar())
	b.WriteString("\n\n")
	b.WriteString(a.renderContent())
	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	return b.String()
}

// renderTabBar renders the top-level tab labels, highlighting the active
// tab.
func (a *App) renderTabBar() string {
	var b strings.Builder
	b.WriteString(" ")
	for i := 0; i < tabCount; i++ {
		if i > 0 {
			b.WriteString(styles.TabInactive.Render(" │ "))
		}
		tab := Tab(i)
		if tab == a.activeTab {
			b.WriteString(styles.TabActive.Render(tab.Name()))
		} else {
			b.WriteString(styles.TabInactive.Render(tab.Name()))
		}
	}
	return b.String()
}

// renderContent draws the breadcrumb and the visible document into a cell
// buffer sized to the space between the tab bar and the status bar.
func (a *App) renderContent() string {
	height := a.height - tabBarRows - statusBarRows
	if height < 1 {
		return ""
	}
	buf := grid.NewBuffer(a.width, height)

	if a.showHelp {
		a.renderHelp(buf)
		return buf.Render()
	}

	stack := a.stack()
	crumb := breadcrumbHeight(stack)
	renderBreadcrumb(a.activeTab.Name(), stack, grid.NewRect(0, 0, a.width, crumb), buf, a.styleCtx)

	docArea := grid.NewRect(0, crumb, a.width, height-crumb)
	view := a.currentView()
	if view == nil {
		widgets.Loading{Frame: a.animFrame}.RenderWidget(docArea, buf, a.styleCtx)
		return buf.Render()
	}
	view.Render(docArea, buf, a.styleCtx)
	return buf.Render()
}

// renderHelp draws the key binding reference.
func (a *App) renderHelp(buf *grid.Buffer) {
	y := 1
	for _, item := range a.keymap.HelpItems() {
		if y >= buf.Height() {
			break
		}
		key, desc := item[0], item[1]
		switch {
		case key == "" && desc == "":
			// blank separator row
		case desc == "":
			buf.SetString(1, y, key, a.styleCtx.SectionTitle())
		default:
			buf.SetString(3, y, key, a.styleCtx.Emphasis())
			buf.SetString(18, y, desc, a.styleCtx.Text())
		}
		y++
	}
}

// renderStatusBar renders the bottom line: an error, a transient status
// message, or the key hints, with the spinner while data loads.
func (a *App) renderStatusBar() string {
	var content string
	switch {
	case a.err != nil:
		content = " " + styles.StatusBarError.Render("Error: "+a.err.Error())
	case a.statusText != "":
		content = " " + styles.StatusBarSuccess.Render(a.statusText)
	default:
		hints := [][2]string{
			{"j/k", "move"}, {"enter", "open"}, {"esc", "back"}, {"tab", "switch"},
			{"r", "refresh"}, {"?", "help"}, {"q", "quit"},
		}
		var b strings.Builder
		for i, hint := range hints {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(styles.StatusBarKey.Render(hint[0]))
			b.WriteString(" ")
			b.WriteString(styles.StatusBarText.Render(hint[1]))
		}
		content = " " + b.String()
	}
	if a.isLoading() {
		content = " " + a.spinner.View() + content
	}
	return styles.StatusBar.Width(a.width).Render(content)
}
