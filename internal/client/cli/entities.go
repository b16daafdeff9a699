package cli

import (
	"github.com/spf13/cobra"

	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

func (c *Cli) newEntitiesCmd() *cobra.Command {
	var dirtyOnly bool
	cmd := &cobra.Command{
		Use:     "entities",
		Aliases: []string{"ls"},
		Short:   "List local blocks and roadmap items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.requestContext(cmd)
			defer cancel()

			entities, err := c.client.ListEntities(ctx)
			if err != nil {
				return err
			}
			if dirtyOnly {
				kept := entities[:0]
				for _, e := range entities {
					if e.Dirty {
						kept = append(kept, e)
					}
				}
				entities = kept
			}

			return c.render(api.EntityListResponse{Entities: entities}, func() {
				if len(entities) == 0 {
					c.io.Println(subtleStyle.Render("No entities"))
					return
				}
				for _, e := range entities {
					mark := " "
					if e.Dirty {
						mark = warningStyle.Render("*")
					}
					c.io.Printf("%s %s %-13s %s %s\n", mark, e.ID, e.Type, fieldTitle(e.Fields),
						subtleStyle.Render("r"+itoa(int(e.LocalRevision))))
				}
			})
		},
	}
	cmd.Flags().BoolVar(&dirtyOnly, "dirty", false, "show only entities with unsynced edits")
	return cmd
}
