package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coderanger/linodectl/internal/linodectl/client"
	"github.com/coderanger/linodectl/internal/linodectl/util"
)

// newLinodeCmd creates the linode command group for managing instances.
func newLinodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linode",
		Short: "Manage Linode instances",
	}

	cmd.AddCommand(
		newLinodeListCmd(),
		newLinodePowerCmd("boot", "Queue a boot job for an instance",
			func(c *client.Client) powerFunc { return c.BootLinode }),
		newLinodePowerCmd("reboot", "Queue a reboot job for an instance",
			func(c *client.Client) powerFunc { return c.RebootLinode }),
		newLinodePowerCmd("shutdown", "Queue a shutdown job for an instance",
			func(c *client.Client) powerFunc { return c.ShutdownLinode }),
	)

	return cmd
}

func newLinodeListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List instances on the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := util.GetClient(cfg)
			if err != nil {
				return err
			}

			linodes, err := c.ListLinodes(cmd.Context())
			if err != nil {
				return describeAPIError(err)
			}

			if done, err := util.Print(os.Stdout, output, linodes); done || err != nil {
				return err
			}

			tw := util.NewTabWriter(os.Stdout)
			fmt.Fprintln(tw, "ID\tLABEL\tSTATUS\tRAM\tDATACENTER")
			for _, l := range linodes {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n",
					l.ID, l.Label, l.Status, l.TotalRAM, l.DatacenterID)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format (table, json, yaml)")

	return cmd
}

type powerFunc func(ctx context.Context, id int) (*client.Job, error)

func newLinodePowerCmd(name, short string, action func(*client.Client) powerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid Linode ID %q", args[0])
			}

			c, err := util.GetClient(cfg)
			if err != nil {
				return err
			}

			job, err := action(c)(cmd.Context(), id)
			if err != nil {
				return describeAPIError(err)
			}

			fmt.Printf("Queued %s job %d for Linode %d\n", name, job.ID, id)
			return nil
		},
	}
}

// describeAPIError upgrades authentication failures to a friendlier
// message; everything else passes through unchanged.
func describeAPIError(err error) error {
	if client.IsInvalidCreds(err) {
		return fmt.Errorf("API key was rejected - check your credentials: %w", err)
	}
	return err
}
