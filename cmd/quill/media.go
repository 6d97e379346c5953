// ABOUTME: CLI command for media library uploads.
// ABOUTME: Uploads a local file and prints the attachment id and source URL.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Manage media",
}

var mediaUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a file to the media library",
	Long:  "Upload a local file. The printed attachment id is what 'post create --image' and 'post update --image' expect.",
	Args:  cobra.ExactArgs(1),
	RunE:  runMediaUpload,
}

func init() {
	rootCmd.AddCommand(mediaCmd)
	mediaCmd.AddCommand(mediaUploadCmd)
}

func runMediaUpload(cmd *cobra.Command, args []string) error {
	if err := requireWordPress(); err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	media, err := globalClient.CreateMedia(cmd.Context(), filepath.Base(args[0]), data)
	if err != nil {
		return fmt.Errorf("failed to upload media: %w", err)
	}

	fmt.Printf("Uploaded %s (attachment ID: %d)\n", filepath.Base(args[0]), media.ID)
	fmt.Printf("URL: %s\n", media.SourceURL)
	return nil
}
