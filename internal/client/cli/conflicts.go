package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

func (c *Cli) newConflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List entities edited on both sides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.requestContext(cmd)
			defer cancel()

			conflicts, err := c.client.Conflicts(ctx)
			if err != nil {
				return err
			}
			return c.render(api.ConflictsResponse{Conflicts: conflicts}, func() {
				if len(conflicts) == 0 {
					c.success("No conflicts")
					return
				}
				for i, cf := range conflicts {
					c.printConflict(i+1, cf)
				}
				c.io.Println("Resolve with 'canvasync resolve <id> --choice APP|REMOTE'.")
			})
		},
	}
}

func (c *Cli) printConflict(n int, cf api.Conflict) {
	title := cf.Title
	if title == "" {
		title = cf.AppID
	}
	c.io.Printf("%d. %s %s\n", n, titleStyle.Render(title), subtleStyle.Render(cf.EntityType))
	c.io.Printf("   id: %s  detected: %s\n", cf.AppID, formatTime(&cf.DetectedAt))
	for _, d := range cf.Diffs {
		c.io.Printf("   %s: %s\n", d.Field, d.Pretty)
	}
	c.io.Println()
}

// parseChoice accepts the side name in any case.
func parseChoice(s string) (string, error) {
	choice := strings.ToUpper(strings.TrimSpace(s))
	switch choice {
	case "APP", "REMOTE":
		return choice, nil
	}
	return "", fmt.Errorf("--choice must be APP or REMOTE, got %q", s)
}

func (c *Cli) newResolveCmd() *cobra.Command {
	var choice string
	cmd := &cobra.Command{
		Use:   "resolve <entity-id>",
		Short: "Resolve one conflict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := parseChoice(choice)
			if err != nil {
				return err
			}

			ctx, cancel := c.requestContext(cmd)
			defer cancel()

			if err := c.client.Resolve(ctx, args[0], side); err != nil {
				return err
			}
			result := map[string]string{"entity_id": args[0], "choice": side}
			return c.render(result, func() {
				c.success("Resolved %s keeping the %s version", args[0], strings.ToLower(side))
				if side == "APP" {
					c.io.Println("Run 'canvasync sync' to push it.")
				}
			})
		},
	}
	cmd.Flags().StringVar(&choice, "choice", "", "winning side: APP or REMOTE")
	_ = cmd.MarkFlagRequired("choice")
	return cmd
}

func (c *Cli) newResolveAllCmd() *cobra.Command {
	var choice string
	cmd := &cobra.Command{
		Use:   "resolve-all",
		Short: "Resolve every conflict in favour of one side",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := parseChoice(choice)
			if err != nil {
				return err
			}

			ctx, cancel := c.requestContext(cmd)
			defer cancel()

			res, err := c.client.ResolveAll(ctx, side)
			if err != nil {
				return err
			}
			return c.render(res, func() {
				c.success("Resolved %d conflicts", res.Resolved)
				if res.Failed > 0 {
					c.io.Println(errorStyle.Render(itoa(res.Failed) + " failed:"))
					c.printEntityErrors(res.Errors)
				}
			})
		},
	}
	cmd.Flags().StringVar(&choice, "choice", "", "winning side: APP or REMOTE")
	_ = cmd.MarkFlagRequired("choice")
	return cmd
}
