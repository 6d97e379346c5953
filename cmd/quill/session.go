// ABOUTME: CLI commands for session state inspection and reset.
// ABOUTME: Provides show and reset subcommands over the checkpointed slot.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2389-research/quill/internal/provider"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage session state",
	Long:  "Inspect or reset the checkpointed current-post selection.",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the session state",
	RunE:  runSessionShow,
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the session at a chat boundary",
	Long:  "Empty the current-post selection, as happens when a new chat begins.",
	RunE:  runSessionReset,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionResetCmd)
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	fmt.Printf("Session: %s\n", globalCheckpoints.SessionID())
	for _, line := range globalState.Show() {
		fmt.Println(line)
	}
	return nil
}

func runSessionReset(cmd *cobra.Command, args []string) error {
	globalState.Reset([]string{provider.ScopeChat})
	if err := globalCheckpoints.Save(globalState); err != nil {
		return fmt.Errorf("failed to save session checkpoint: %w", err)
	}
	fmt.Println("Session reset.")
	return nil
}
