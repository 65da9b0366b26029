package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nextup-mentor/nextup-api/internal/models"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Read and triage contact messages",
}

var messagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contact messages, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, api, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		items, err := api.Messages(cmd.Context())
		if err != nil {
			return err
		}
		unread, _ := cmd.Flags().GetBool("unread")
		if unread {
			filtered := items[:0]
			for _, m := range items {
				if m.Status == models.MessageStatusUnread {
					filtered = append(filtered, m)
				}
			}
			items = filtered
		}
		return render(cmd, items, func(w io.Writer) { messageTable(w, items) })
	},
}

var messagesStatusCmd = &cobra.Command{
	Use:   "status <id> <unread|read|replied>",
	Short: "Update a message status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := models.MessageStatus(args[1])
		if !status.Valid() {
			return fmt.Errorf("unknown message status %q", args[1])
		}
		session, _, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		m, err := session.SetMessageStatus(cmd.Context(), args[0], status)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", m.ID, m.Status, m.Email)
		return nil
	},
}

func init() {
	messagesListCmd.Flags().Bool("unread", false, "only unread messages")
	messagesCmd.AddCommand(messagesListCmd, messagesStatusCmd)
	rootCmd.AddCommand(messagesCmd)
}
