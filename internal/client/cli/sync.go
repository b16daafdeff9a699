package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func (c *Cli) newSyncCmd() *cobra.Command {
	var ids []string
	cmd := &cobra.Command{
		Use:     "sync",
		Aliases: []string{"push"},
		Short:   "Push local changes to the remote workspace",
		Long: `Push local changes to the remote workspace.

Without --ids every dirty or failed entity and every pending deletion is
pushed. Entities in conflict are skipped until resolved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.client.Push(cmd.Context(), ids)
			if err != nil {
				return err
			}
			return c.render(res, func() {
				c.success("Synced %d, deleted %d", res.SyncedCount, res.DeletedCount)
				if res.SkippedCount > 0 {
					c.warning("%d skipped (conflicts must be resolved first)", res.SkippedCount)
				}
				if res.RequeuedCount > 0 {
					c.warning("%d edited during sync and queued again", res.RequeuedCount)
				}
				if res.FailedCount > 0 {
					c.io.Println(errorStyle.Render(itoa(res.FailedCount) + " failed:"))
					c.printEntityErrors(res.Errors)
				}
				if res.Cancelled {
					c.warning("sync was cancelled before finishing")
				}
			})
		},
	}
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "push only these entity ids")
	return cmd
}

func (c *Cli) newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Pull remote changes into the local canvas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.client.Pull(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(res, func() {
				c.success("Pulled %d records: %d imported, %d updated, %d unchanged",
					res.Total, res.Imported, res.Updated, res.Unchanged)
				if res.Pending > 0 {
					c.io.Printf("%d kept local edits waiting for push\n", res.Pending)
				}
				if res.Conflicts > 0 {
					c.warning("%d conflicts detected, run 'canvasync conflicts'", res.Conflicts)
				}
				if res.Failed > 0 {
					c.io.Println(errorStyle.Render(itoa(res.Failed) + " failed:"))
					c.printEntityErrors(res.Errors)
				}
				if res.Cancelled {
					c.warning("pull was cancelled before finishing")
				}
			})
		},
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
