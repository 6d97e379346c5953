// ABOUTME: Cobra command for interactive WordPress site setup.
// ABOUTME: Launches a bubbletea TUI wizard to collect and validate credentials.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/2389-research/quill/internal/config"
	"github.com/2389-research/quill/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Connect your WordPress site",
	Long:  "Interactive wizard to configure the site URL and application password credentials.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	model := tui.NewSetupModel(
		cfg.WordPress.SiteURL,
		cfg.WordPress.Username,
		cfg.WordPress.AppPassword,
	)

	p := tea.NewProgram(model)
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.SetupModel)
	if !final.ShouldSave() {
		fmt.Println("Setup cancelled.")
		return nil
	}

	siteURL, username, appPassword := final.Result()
	cfg.WordPress.SiteURL = siteURL
	cfg.WordPress.Username = username
	cfg.WordPress.AppPassword = appPassword

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		fmt.Println("Config saved successfully.")
	} else {
		fmt.Printf("Config saved to %s\n", configPath)
	}
	return nil
}
