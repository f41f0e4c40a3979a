// Package main is the entry point for the NHL TUI application.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pucktrack/nhl-tui/internal/config"
	"github.com/pucktrack/nhl-tui/internal/logging"
	"github.com/pucktrack/nhl-tui/internal/nhl"
	"github.com/pucktrack/nhl-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `nhl-tui - Terminal NHL scores, standings and stats with Vim keybindings

USAGE:
    nhl-tui [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file

CONFIGURATION:
    Config file: ~/.config/nhl-tui/config.yaml

KEYBINDINGS:
    Navigation:
        j/k         Move focus down/up
        gg/G        Go to top/bottom
        Ctrl+d/u    Half page down/up
        Tab, 1-3    Switch tab
        Enter       Open the focused game, team or player
        Esc         Go back

    Other:
        r           Refresh
        y           Copy current location
        ?           Show help
        q           Quit
`

const configTemplate = `# NHL TUI Configuration
# Location: ~/.config/nhl-tui/config.yaml

# Score refresh cadence in seconds
refresh_interval: 60

# Game start times: "12h" or "24h"
time_format: 12h

# List Western Conference divisions before Eastern in the standings
western_teams_first: false

# Desktop notification when a game goes final
notify_on_final: false

log_level: info
# log_file: ~/.config/nhl-tui/nhl-tui.log

display:
  # Box-drawing glyphs and the big-digit score font
  use_unicode: true

  # Built-in themes: default, gruvbox, nord
  theme: default
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("nhl-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp()
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if _, err := config.ConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	client := nhl.NewClient()

	app := tui.NewApp(client, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
