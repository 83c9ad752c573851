package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"footline/core"
	"footline/internal/config"
	"footline/screens"
	"footline/tabs"
)

var (
	// Version information (set by the release build)
	version = "dev"
	commit  = "none"

	configPath string
	variant    string
)

var rootCmd = &cobra.Command{
	Use:   "footline",
	Short: "Footer and status bar composition demo",
	Long:  "A terminal UI showing composable footer variants: key hints plus a reactive status label.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("footline version %s (commit: %s)\n", version, commit)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.Flags().StringVarP(&variant, "variant", "v", "container", "Starting footer variant (container|enhanced|dynamic)")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if configPath != "" {
		os.Setenv("FOOTLINE_CONFIG", configPath)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	bindings := core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys)
	keys := core.NewKeyRegistry(bindings)
	commands := core.NewCommandRegistry(demoCommands())

	tabList := []core.Tab{
		tabs.Container{StatusRatio: cfg.UI.StatusRatio},
		tabs.NewEnhanced(cfg.UI.DefaultStatus),
		&tabs.Dynamic{},
	}

	m := core.NewModel(tabList, keys, commands, cfg.UI.DefaultStatus)
	m.MountStatus = cfg.UI.MountStatus
	m.OpenHelpScreen = func(mm *core.Model, scope string) core.Screen {
		return screens.NewHelpScreen(mm.Keys(), scope)
	}
	if idx := variantIndex(variant); idx >= 0 {
		m.SwitchTab(idx)
	} else {
		return fmt.Errorf("unknown variant %q", variant)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func demoCommands() []core.Command {
	return []core.Command{
		{
			ID:          "save",
			Name:        "Save",
			Description: "Save the current file",
			Execute: func(m *core.Model) tea.Cmd {
				return core.StatusCmd("File saved")
			},
		},
		{
			ID:          "open",
			Name:        "Open",
			Description: "Open a file",
			Execute: func(m *core.Model) tea.Cmd {
				return core.StatusCmd("Opened file")
			},
		},
		{
			ID:          "help",
			Name:        "Help",
			Description: "Show key bindings",
			Execute: func(m *core.Model) tea.Cmd {
				if m.OpenHelpScreen == nil {
					return core.ErrorCmd(errors.New("help screen not wired"))
				}
				m.PushScreen(m.OpenHelpScreen(m, m.ActiveScope()))
				return nil
			},
		},
	}
}

func variantIndex(name string) int {
	switch name {
	case "container":
		return 0
	case "enhanced":
		return 1
	case "dynamic":
		return 2
	}
	return -1
}
