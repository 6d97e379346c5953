// ABOUTME: CLI commands for post operations.
// ABOUTME: Provides list, current, create, update, select, and clear subcommands.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2389-research/quill/internal/models"
	"github.com/2389-research/quill/internal/provider"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Manage posts",
	Long:  "Draft, edit, select, and publish posts on the configured site.",
}

var postListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all posts",
	Long:  "List posts across every status.",
	RunE:  runPostList,
}

var postCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the currently selected post",
	RunE:  runPostCurrent,
}

var postCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a draft post and select it",
	Long:  "Create a new draft from markdown content and make it the selected post.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostCreate,
}

var postUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the selected post",
	Long:  "Apply the supplied flags to the currently selected post. Unset flags leave fields unchanged.",
	RunE:  runPostUpdate,
}

var postSelectCmd = &cobra.Command{
	Use:   "select <id>",
	Short: "Select a post by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostSelect,
}

var postClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the selection",
	RunE:  runPostClear,
}

// Flags
var (
	postCreateContent     string
	postCreateContentFile string
	postCreateTags        string
	postCreateImage       string

	postUpdateTitle   string
	postUpdateContent string
	postUpdateTags    string
	postUpdateImage   string
	postUpdateStatus  string
)

func init() {
	rootCmd.AddCommand(postCmd)
	postCmd.AddCommand(postListCmd)
	postCmd.AddCommand(postCurrentCmd)
	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postUpdateCmd)
	postCmd.AddCommand(postSelectCmd)
	postCmd.AddCommand(postClearCmd)

	postCreateCmd.Flags().StringVar(&postCreateContent, "content", "", "Post body in markdown")
	postCreateCmd.Flags().StringVar(&postCreateContentFile, "content-file", "", "Read the markdown body from a file")
	postCreateCmd.Flags().StringVar(&postCreateTags, "tags", "", "Comma-separated tag names")
	postCreateCmd.Flags().StringVar(&postCreateImage, "image", "", "Attachment id of an uploaded feature image")

	postUpdateCmd.Flags().StringVar(&postUpdateTitle, "title", "", "New title")
	postUpdateCmd.Flags().StringVar(&postUpdateContent, "content", "", "New body markup")
	postUpdateCmd.Flags().StringVar(&postUpdateTags, "tags", "", "Comma-separated replacement tag names")
	postUpdateCmd.Flags().StringVar(&postUpdateImage, "image", "", "Attachment id of an uploaded feature image")
	postUpdateCmd.Flags().StringVar(&postUpdateStatus, "status", "", "New status (published, scheduled, draft, pending, private)")
}

func runPostList(cmd *cobra.Command, args []string) error {
	if err := requireWordPress(); err != nil {
		return err
	}

	posts, err := globalProvider.ListAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}

	if len(posts) == 0 {
		fmt.Println("No posts found.")
		return nil
	}

	for _, post := range posts {
		printPost(post)
	}
	return nil
}

func runPostCurrent(cmd *cobra.Command, args []string) error {
	if err := requireWordPress(); err != nil {
		return err
	}

	post, err := globalProvider.GetCurrent(globalState)
	if err != nil {
		return fmt.Errorf("failed to read current post: %w", err)
	}
	if post == nil {
		fmt.Println("No post selected.")
		return nil
	}

	printPost(post)
	fmt.Printf("\n%s\n", post.Content)
	return nil
}

func runPostCreate(cmd *cobra.Command, args []string) error {
	if err := requireWordPress(); err != nil {
		return err
	}

	content := postCreateContent
	if postCreateContentFile != "" {
		data, err := os.ReadFile(postCreateContentFile)
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}
		content = string(data)
	}
	if content == "" {
		return fmt.Errorf("content is required - pass --content or --content-file")
	}

	post, err := globalProvider.Create(cmd.Context(), globalState, provider.CreateInput{
		Title:        args[0],
		Content:      content,
		Tags:         splitTags(postCreateTags),
		FeatureImage: postCreateImage,
	})
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	if err := globalCheckpoints.Save(globalState); err != nil {
		globalLogger.Warn("failed to save session checkpoint", "error", err)
	}

	fmt.Printf("Draft created and selected (ID: %s)\n", post.ID)
	return nil
}

func runPostUpdate(cmd *cobra.Command, args []string) error {
	if err := requireWordPress(); err != nil {
		return err
	}

	var in provider.UpdateInput
	if cmd.Flags().Changed("title") {
		in.Title = &postUpdateTitle
	}
	if cmd.Flags().Changed("content") {
		in.Content = &postUpdateContent
	}
	if cmd.Flags().Changed("tags") {
		in.Tags = splitTags(postUpdateTags)
		if in.Tags == nil {
			in.Tags = []string{}
		}
	}
	if cmd.Flags().Changed("image") {
		in.FeatureImage = &postUpdateImage
	}
	if cmd.Flags().Changed("status") {
		status := models.Status(postUpdateStatus)
		if !models.IsValidStatus(status) {
			return fmt.Errorf("invalid status %q - valid statuses: published, scheduled, draft, pending, private", postUpdateStatus)
		}
		in.Status = &status
	}

	post, err := globalProvider.Update(cmd.Context(), globalState, in)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if err := globalCheckpoints.Save(globalState); err != nil {
		globalLogger.Warn("failed to save session checkpoint", "error", err)
	}

	fmt.Printf("Post updated (ID: %s, status: %s)\n", post.ID, post.Status)
	return nil
}

func runPostSelect(cmd *cobra.Command, args []string) error {
	if err := requireWordPress(); err != nil {
		return err
	}

	post, err := globalProvider.SelectByID(cmd.Context(), globalState, args[0])
	if err != nil {
		return fmt.Errorf("failed to select post: %w", err)
	}

	if err := globalCheckpoints.Save(globalState); err != nil {
		globalLogger.Warn("failed to save session checkpoint", "error", err)
	}

	fmt.Print("Selected ")
	printPost(post)
	return nil
}

func runPostClear(cmd *cobra.Command, args []string) error {
	if err := requireWordPress(); err != nil {
		return err
	}

	globalProvider.Clear(globalState)
	if err := globalCheckpoints.Save(globalState); err != nil {
		globalLogger.Warn("failed to save session checkpoint", "error", err)
	}

	fmt.Println("Selection cleared.")
	return nil
}

func printPost(post *models.Post) {
	fmt.Printf("%q (ID: %s) [%s] updated %s\n",
		post.Title, post.ID, post.Status, post.UpdatedAt.Format("2006-01-02 15:04:05"))
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	tags := strings.Split(s, ",")
	for i := range tags {
		tags[i] = strings.TrimSpace(tags[i])
	}
	return tags
}
