package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *Cli) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.requestContext(cmd)
			defer cancel()

			st, err := c.client.Status(ctx)
			if err != nil {
				return err
			}
			return c.render(st, func() {
				c.heading("=== Sync Status ===")
				if st.Configured {
					c.io.Println("Remote sync: " + successStyle.Render("configured"))
				} else {
					c.io.Println("Remote sync: " + warningStyle.Render("not configured"))
				}
				c.io.Printf("Last push:         %s\n", formatTime(st.LastPush))
				c.io.Printf("Last pull:         %s\n", formatTime(st.LastPull))
				c.io.Printf("Dirty entities:    %d\n", st.DirtyCount)
				c.io.Printf("Pending deletions: %d\n", st.PendingDeletions)
				c.io.Printf("Conflicts:         %d\n", st.ConflictCount)

				var parts []string
				for _, s := range statusOrder {
					if n := st.Counts[s]; n > 0 {
						parts = append(parts, formatStatus(s)+" "+itoa(n))
					}
				}
				if len(parts) > 0 {
					c.io.Println("Records:           " + strings.Join(parts, "  "))
				}
				if st.ConflictCount > 0 {
					c.io.Println()
					c.io.Println("Run 'canvasync conflicts' to review them.")
				}
			})
		},
	}
}
