package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nextup-mentor/nextup-api/internal/models"
)

var enrollmentsCmd = &cobra.Command{
	Use:     "enrollments",
	Aliases: []string{"enrollment"},
	Short:   "Review payment confirmations",
}

var enrollmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List enrollments, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, api, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		status, _ := cmd.Flags().GetString("status")
		items, err := api.Enrollments(cmd.Context(), status)
		if err != nil {
			return err
		}
		return render(cmd, items, func(w io.Writer) { enrollmentTable(w, items) })
	},
}

var enrollmentsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one enrollment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, api, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		e, err := api.Enrollment(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return render(cmd, e, func(w io.Writer) {
			fmt.Fprintf(w, "Student\t%s\n", e.StudentName)
			fmt.Fprintf(w, "Email\t%s\n", deref(e.StudentEmail))
			fmt.Fprintf(w, "Phone\t%s\n", deref(e.StudentPhone))
			fmt.Fprintf(w, "Package\t%s\n", e.PackageTitle)
			fmt.Fprintf(w, "Amount\t%d BDT\n", e.Amount)
			fmt.Fprintf(w, "Transaction\t%s\n", e.TransactionID)
			fmt.Fprintf(w, "Screenshot\t%s\n", deref(e.PaymentScreenshot))
			fmt.Fprintf(w, "Status\t%s\n", e.Status)
			fmt.Fprintf(w, "Notes\t%s\n", deref(e.AdminNotes))
			fmt.Fprintf(w, "Submitted\t%s\n", shortDate(e.CreatedAt))
		})
	},
}

func statusCommand(use, short string, status models.EnrollmentStatus) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			notes, _ := cmd.Flags().GetString("notes")
			e, err := session.SetEnrollmentStatus(cmd.Context(), args[0], status, optional(notes))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", e.ID, e.Status, e.StudentName)
			return nil
		},
	}
	cmd.Flags().String("notes", "", "admin notes stored with the decision")
	return cmd
}

var enrollmentsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download enrollments as CSV or PDF",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, api, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		status, _ := cmd.Flags().GetString("status")
		dir, _ := cmd.Flags().GetString("dir")

		filename, body, err := api.ExportEnrollments(cmd.Context(), format, status)
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.Base(filename))
		if err := os.WriteFile(target, body, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", target, len(body))
		return nil
	},
}

func init() {
	enrollmentsListCmd.Flags().String("status", "", "filter by pending, verified or rejected")
	enrollmentsExportCmd.Flags().String("format", "csv", "csv or pdf")
	enrollmentsExportCmd.Flags().String("status", "", "filter by pending, verified or rejected")
	enrollmentsExportCmd.Flags().String("dir", ".", "directory to write the file into")

	enrollmentsCmd.AddCommand(
		enrollmentsListCmd,
		enrollmentsShowCmd,
		statusCommand("verify", "Mark a pending enrollment verified", models.EnrollmentStatusVerified),
		statusCommand("reject", "Mark a pending enrollment rejected", models.EnrollmentStatusRejected),
		enrollmentsExportCmd,
	)
	rootCmd.AddCommand(enrollmentsCmd)
}
