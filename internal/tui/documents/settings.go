package documents

import (
	"fmt"

	"github.com/pucktrack/nhl-tui/internal/config"
	"github.com/pucktrack/nhl-tui/internal/tui/document"
)

// SettingsCategory selects one settings page.
type SettingsCategory int

const (
	SettingsLogging SettingsCategory = iota
	SettingsDisplay
	SettingsData
)

// Name returns the category's display name.
func (c SettingsCategory) Name() string {
	switch c {
	case SettingsDisplay:
		return "Display"
	case SettingsData:
		return "Data"
	default:
		return "Logging"
	}
}

// SettingsMenu is the settings tab root: a link per category.
type SettingsMenu struct{}

func (SettingsMenu) ID() string    { return "settings" }
func (SettingsMenu) Title() string { return "Settings" }

var settingsCategories = []SettingsCategory{SettingsLogging, SettingsDisplay, SettingsData}

func (SettingsMenu) Build(fc *document.FocusContext) []document.Element {
	builder := document.NewBuilder()
	for _, cat := range settingsCategories {
		builder.Spacer(1)
		key := "category_" + cat.Name()
		builder.Link(fc, key, cat.Name(), document.ActionTarget("open:"+cat.Name()))
	}
	return builder.Build()
}

func (SettingsMenu) FocusablePositions() []document.FocusKey {
	keys := make([]document.FocusKey, 0, len(settingsCategories))
	for _, cat := range settingsCategories {
		keys = append(keys, document.LinkKey("category_"+cat.Name(),
			document.ActionTarget("open:"+cat.Name())))
	}
	return keys
}

// Settings is one settings category page. Each editable entry is a link
// whose action the app applies to the live config.
type Settings struct {
	Category SettingsCategory
	Config   *config.Config
}

func (s *Settings) ID() string {
	switch s.Category {
	case SettingsDisplay:
		return "settings_display"
	case SettingsData:
		return "settings_data"
	default:
		return "settings_logging"
	}
}

func (s *Settings) Title() string {
	return s.Category.Name() + " Settings"
}

func (s *Settings) Build(fc *document.FocusContext) []document.Element {
	builder := document.NewBuilder()
	switch s.Category {
	case SettingsDisplay:
		s.buildDisplay(fc, builder)
	case SettingsData:
		s.buildData(fc, builder)
	default:
		s.buildLogging(fc, builder)
	}
	return builder.Build()
}

func (s *Settings) buildLogging(fc *document.FocusContext, builder *document.Builder) {
	builder.Spacer(1)
	builder.Link(fc, "log_level",
		fmt.Sprintf("%-10s   %s", "Log Level:", s.Config.LogLevel),
		document.ActionTarget("cycle:log_level"))
	builder.Spacer(1)
	logFile := s.Config.LogFile
	if logFile == "" {
		logFile = "(disabled)"
	}
	builder.Text(fmt.Sprintf("%-10s   %s", "Log File:", logFile))
}

func (s *Settings) buildDisplay(fc *document.FocusContext, builder *document.Builder) {
	builder.Spacer(1)
	builder.Link(fc, "theme",
		fmt.Sprintf("%-12s   %s", "Theme:", s.Config.Display.Theme),
		document.ActionTarget("cycle:theme"))
	builder.Spacer(1)
	builder.Link(fc, "use_unicode",
		fmt.Sprintf("%-12s   %t", "Use Unicode:", s.Config.Display.UseUnicode),
		document.ActionTarget("toggle:use_unicode"))
}

func (s *Settings) buildData(fc *document.FocusContext, builder *document.Builder) {
	builder.Spacer(1)
	builder.Link(fc, "refresh_interval",
		fmt.Sprintf("%-20s   %d seconds", "Refresh Interval:", s.Config.RefreshInterval),
		document.ActionTarget("cycle:refresh_interval"))
	builder.Spacer(1)
	builder.Link(fc, "western_teams_first",
		fmt.Sprintf("%-20s   %t", "Western Teams First:", s.Config.WesternFirst),
		document.ActionTarget("toggle:western_teams_first"))
	builder.Spacer(1)
	builder.Link(fc, "time_format",
		fmt.Sprintf("%-20s   %s", "Time Format:", s.Config.TimeFormat),
		document.ActionTarget("cycle:time_format"))
	builder.Spacer(1)
	builder.Link(fc, "notify_on_final",
		fmt.Sprintf("%-20s   %t", "Notify On Final:", s.Config.NotifyOnFinal),
		document.ActionTarget("toggle:notify_on_final"))
}

func (s *Settings) FocusablePositions() []document.FocusKey {
	switch s.Category {
	case SettingsDisplay:
		return []document.FocusKey{
			document.LinkKey("theme", document.ActionTarget("cycle:theme")),
			document.LinkKey("use_unicode", document.ActionTarget("toggle:use_unicode")),
		}
	case SettingsData:
		return []document.FocusKey{
			document.LinkKey("refresh_interval", document.ActionTarget("cycle:refresh_interval")),
			document.LinkKey("western_teams_first", document.ActionTarget("toggle:western_teams_first")),
			document.LinkKey("time_format", document.ActionTarget("cycle:time_format")),
			document.LinkKey("notify_on_final", document.ActionTarget("toggle:notify_on_final")),
		}
	default:
		return []document.FocusKey{
			document.LinkKey("log_level", document.ActionTarget("cycle:log_level")),
		}
	}
}
