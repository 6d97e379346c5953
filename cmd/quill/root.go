// ABOUTME: Root Cobra command and global wiring for the quill CLI.
// ABOUTME: Sets up lifecycle hooks for config loading, session state, and the WordPress client.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/2389-research/quill/internal/config"
	"github.com/2389-research/quill/internal/markdown"
	"github.com/2389-research/quill/internal/provider"
	"github.com/2389-research/quill/internal/session"
	"github.com/2389-research/quill/internal/wordpress"
)

var globalConfig *config.Config
var globalClient *wordpress.Client
var globalState *provider.State
var globalCheckpoints *session.Store
var globalProvider *provider.Provider
var globalLogger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "WordPress publishing for humans and agents",
	Long: `
 ██████╗ ██╗   ██╗██╗██╗     ██╗
██╔═══██╗██║   ██║██║██║     ██║
██║   ██║██║   ██║██║██║     ██║
██║▄▄ ██║██║   ██║██║██║     ██║
╚██████╔╝╚██████╔╝██║███████╗███████╗
 ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚══════╝

Draft, edit, and publish WordPress posts from the command line
or over MCP, with one selected post carried across the session.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "setup" {
			return nil
		}

		// stdout belongs to MCP stdio, so logs go to stderr
		globalLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		globalConfig = cfg

		checkpointPath, err := cfg.GetCheckpointPath()
		if err != nil {
			return fmt.Errorf("failed to resolve checkpoint path: %w", err)
		}
		checkpoints, err := session.NewStore(checkpointPath)
		if err != nil {
			return fmt.Errorf("failed to open checkpoint store: %w", err)
		}
		globalCheckpoints = checkpoints

		globalState = provider.NewState()
		if err := checkpoints.Restore(globalState); err != nil {
			return fmt.Errorf("failed to restore session checkpoint: %w", err)
		}

		if cfg.HasWordPress() {
			globalClient = wordpress.NewClient(cfg.WordPress.SiteURL, cfg.WordPress.Username, cfg.WordPress.AppPassword)
			globalProvider = provider.New(globalClient, globalClient, markdown.Render, globalLogger)
		}

		return nil
	},
}

// requireWordPress errors when no site is configured.
func requireWordPress() error {
	if globalProvider == nil {
		return fmt.Errorf("no WordPress site configured - run 'quill setup' first")
	}
	return nil
}
