package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nextup-mentor/nextup-api/internal/dto"
)

var destinationsCmd = &cobra.Command{
	Use:     "destinations",
	Aliases: []string{"destination"},
	Short:   "Manage study destinations",
}

var destinationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List destinations by country",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, api, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		items, err := api.Destinations(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, items, func(w io.Writer) { destinationTable(w, items) })
	},
}

var destinationsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a destination",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		req := dto.CreateDestinationRequest{}
		req.Country, _ = flags.GetString("country")
		req.Flag, _ = flags.GetString("flag")
		req.UniversityCount, _ = flags.GetInt("universities")
		req.Description, _ = flags.GetString("description")
		req.Highlights, _ = flags.GetStringArray("highlight")

		session, _, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		d, err := session.CreateDestination(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", d.ID, d.Country)
		return nil
	},
}

var destinationsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change selected fields of a destination",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		req := dto.UpdateDestinationRequest{}
		if flags.Changed("country") {
			v, _ := flags.GetString("country")
			req.Country = &v
		}
		if flags.Changed("flag") {
			v, _ := flags.GetString("flag")
			req.Flag = &v
		}
		if flags.Changed("universities") {
			v, _ := flags.GetInt("universities")
			req.UniversityCount = &v
		}
		if flags.Changed("description") {
			v, _ := flags.GetString("description")
			req.Description = &v
		}
		if flags.Changed("highlight") {
			v, _ := flags.GetStringArray("highlight")
			req.Highlights = &v
		}

		session, _, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		d, err := session.UpdateDestination(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%s)\n", d.ID, d.Country)
		return nil
	},
}

var destinationsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a destination",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := session.DeleteDestination(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

func destinationFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("country", "", "country name")
	f.String("flag", "", "flag emoji")
	f.Int("universities", 0, "number of partner universities")
	f.String("description", "", "short description")
	f.StringArray("highlight", nil, "highlight line, repeatable")
}

func init() {
	destinationFlags(destinationsCreateCmd)
	destinationFlags(destinationsUpdateCmd)
	_ = destinationsCreateCmd.MarkFlagRequired("country")

	destinationsCmd.AddCommand(destinationsListCmd, destinationsCreateCmd, destinationsUpdateCmd, destinationsDeleteCmd)
	rootCmd.AddCommand(destinationsCmd)
}
