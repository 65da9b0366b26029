package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nextup-mentor/nextup-api/internal/models"
)

// render prints v as JSON when --json is set, otherwise through table.
func render(cmd *cobra.Command, v interface{}, table func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if viper.GetBool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

func enrollmentTable(w io.Writer, items []models.Enrollment) {
	fmt.Fprintln(w, "ID\tDATE\tSTUDENT\tPACKAGE\tAMOUNT\tMETHOD\tTRANSACTION\tSTATUS")
	for _, e := range items {
		method := ""
		if e.PaymentMethod != nil {
			method = string(*e.PaymentMethod)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			e.ID, shortDate(e.CreatedAt), e.StudentName, e.PackageTitle, e.Amount, method, e.TransactionID, e.Status)
	}
}

func messageTable(w io.Writer, items []models.Message) {
	fmt.Fprintln(w, "ID\tDATE\tNAME\tEMAIL\tDESTINATION\tSTATUS")
	for _, m := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", m.ID, shortDate(m.CreatedAt), m.Name, m.Email, deref(m.Destination), m.Status)
	}
}

func packageTable(w io.Writer, items []models.Package) {
	fmt.Fprintln(w, "ID\tORDER\tTITLE\tPRICE\tPOPULAR\tFEATURES")
	for _, p := range items {
		fmt.Fprintf(w, "%s\t%d\t%s %s\t%d\t%t\t%d\n", p.ID, p.DisplayOrder, p.Icon, p.Title, p.Price, p.IsPopular, len(p.Features))
	}
}

func destinationTable(w io.Writer, items []models.Destination) {
	fmt.Fprintln(w, "ID\tCOUNTRY\tUNIVERSITIES\tHIGHLIGHTS")
	for _, d := range items {
		fmt.Fprintf(w, "%s\t%s %s\t%d\t%d\n", d.ID, d.Flag, d.Country, d.UniversityCount, len(d.Highlights))
	}
}

func shortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
