package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nextup-mentor/nextup-api/internal/dto"
)

var packagesCmd = &cobra.Command{
	Use:     "packages",
	Aliases: []string{"package"},
	Short:   "Manage consulting packages",
}

var packagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active packages in display order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, api, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		items, err := api.Packages(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, items, func(w io.Writer) { packageTable(w, items) })
	},
}

var packagesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a package",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		req := dto.CreatePackageRequest{}
		req.Title, _ = flags.GetString("title")
		req.Icon, _ = flags.GetString("icon")
		req.Price, _ = flags.GetInt64("price")
		req.Features, _ = flags.GetStringArray("feature")
		req.Images, _ = flags.GetStringArray("image")
		req.IsPopular, _ = flags.GetBool("popular")
		subtitle, _ := flags.GetString("subtitle")
		req.Subtitle = optional(subtitle)
		if flags.Changed("order") {
			order, _ := flags.GetInt("order")
			req.DisplayOrder = &order
		}

		session, _, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		pkg, err := session.CreatePackage(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", pkg.ID, pkg.Title)
		return nil
	},
}

var packagesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change selected fields of a package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		req := dto.UpdatePackageRequest{}
		if flags.Changed("title") {
			v, _ := flags.GetString("title")
			req.Title = &v
		}
		if flags.Changed("subtitle") {
			v, _ := flags.GetString("subtitle")
			req.Subtitle = &v
		}
		if flags.Changed("icon") {
			v, _ := flags.GetString("icon")
			req.Icon = &v
		}
		if flags.Changed("price") {
			v, _ := flags.GetInt64("price")
			req.Price = &v
		}
		if flags.Changed("feature") {
			v, _ := flags.GetStringArray("feature")
			req.Features = &v
		}
		if flags.Changed("image") {
			v, _ := flags.GetStringArray("image")
			req.Images = &v
		}
		if flags.Changed("popular") {
			v, _ := flags.GetBool("popular")
			req.IsPopular = &v
		}
		if flags.Changed("order") {
			v, _ := flags.GetInt("order")
			req.DisplayOrder = &v
		}

		session, _, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		pkg, err := session.UpdatePackage(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%s)\n", pkg.ID, pkg.Title)
		return nil
	},
}

var packagesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Hide a package from the site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := session.DeletePackage(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deactivated %s\n", args[0])
		return nil
	},
}

func packageFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("title", "", "package title")
	f.String("subtitle", "", "short subtitle")
	f.String("icon", "", "emoji icon")
	f.Int64("price", 0, "price in BDT")
	f.StringArray("feature", nil, "feature line, repeatable")
	f.StringArray("image", nil, "image URL, repeatable")
	f.Bool("popular", false, "mark as popular")
	f.Int("order", 0, "display order")
}

func init() {
	packageFlags(packagesCreateCmd)
	packageFlags(packagesUpdateCmd)
	_ = packagesCreateCmd.MarkFlagRequired("title")

	packagesCmd.AddCommand(packagesListCmd, packagesCreateCmd, packagesUpdateCmd, packagesDeleteCmd)
	rootCmd.AddCommand(packagesCmd)
}
