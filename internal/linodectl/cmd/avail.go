package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coderanger/linodectl/internal/linodectl/util"
)

// newAvailCmd creates the avail command group for provider inventory.
func newAvailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avail",
		Short: "Show plans and datacenters offered by the provider",
	}

	cmd.AddCommand(
		newAvailPlansCmd(),
		newAvailDatacentersCmd(),
	)

	return cmd
}

func newAvailPlansCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List available instance plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := util.GetClient(cfg)
			if err != nil {
				return err
			}

			plans, err := c.ListPlans(cmd.Context())
			if err != nil {
				return describeAPIError(err)
			}

			if done, err := util.Print(os.Stdout, output, plans); done || err != nil {
				return err
			}

			tw := util.NewTabWriter(os.Stdout)
			fmt.Fprintln(tw, "ID\tLABEL\tRAM\tDISK\tCORES\tPRICE")
			for _, p := range plans {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t$%.2f\n",
					p.ID, p.Label, p.RAM, p.Disk, p.Cores, p.Price)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format (table, json, yaml)")

	return cmd
}

func newAvailDatacentersCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "datacenters",
		Short: "List available datacenters",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := util.GetClient(cfg)
			if err != nil {
				return err
			}

			datacenters, err := c.ListDatacenters(cmd.Context())
			if err != nil {
				return describeAPIError(err)
			}

			if done, err := util.Print(os.Stdout, output, datacenters); done || err != nil {
				return err
			}

			tw := util.NewTabWriter(os.Stdout)
			fmt.Fprintln(tw, "ID\tABBR\tLOCATION")
			for _, d := range datacenters {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", d.ID, d.Abbr, d.Location)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format (table, json, yaml)")

	return cmd
}
