package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nextup-mentor/nextup-api/internal/dashboard"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard stats and one tab of records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		session, _, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		tab, _ := cmd.Flags().GetString("tab")
		if err := session.SelectTab(dashboard.Tab(tab)); err != nil {
			return err
		}
		if err := session.Load(cmd.Context()); err != nil {
			return err
		}

		state := session.State()
		stats := state.Stats()
		return render(cmd, state, func(w io.Writer) {
			fmt.Fprintf(w, "Enrollments\t%d\t(%d pending)\n", stats.TotalEnrollments, stats.PendingEnrollments)
			fmt.Fprintf(w, "Unread messages\t%d\n", stats.UnreadMessages)
			fmt.Fprintf(w, "Active packages\t%d\n", stats.TotalPackages)
			fmt.Fprintf(w, "Destinations\t%d\n", stats.TotalDestinations)
			fmt.Fprintln(w)

			switch state.Tab {
			case dashboard.TabEnrollments:
				enrollmentTable(w, state.Enrollments)
			case dashboard.TabMessages:
				messageTable(w, state.Messages)
			case dashboard.TabPackages:
				packageTable(w, state.Packages)
			case dashboard.TabDestinations:
				destinationTable(w, state.Destinations)
			default:
				recent := state.Enrollments
				if len(recent) > 5 {
					recent = recent[:5]
				}
				enrollmentTable(w, recent)
			}
		})
	},
}

func init() {
	dashboardCmd.Flags().String("tab", string(dashboard.TabOverview), "overview, enrollments, messages, packages or destinations")
	rootCmd.AddCommand(dashboardCmd)
}
