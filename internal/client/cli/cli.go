// Package cli implements the canvasync command line client. Every command
// talks to a running canvasd over its HTTP API.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Brommah/contentfinal-sub002/internal/client/api"
	"github.com/Brommah/contentfinal-sub002/internal/client/iocli"
)

// DefaultAddr is the daemon address used when neither --addr nor
// CANVASYNC_ADDR is set.
const DefaultAddr = "http://127.0.0.1:8787"

// Output formats accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Cli holds state shared by all commands.
type Cli struct {
	io      iocli.IO
	client  *api.Client
	getenv  func(string) string
	addr    string
	format  string
	timeout time.Duration
}

// NewRootCommand builds the command tree writing to io.
func NewRootCommand(io iocli.IO, version string) *cobra.Command {
	c := &Cli{io: io, getenv: os.Getenv, timeout: api.DefaultTimeout}

	root := &cobra.Command{
		Use:     "canvasync",
		Short:   "Sync canvas blocks and roadmap items with the remote workspace",
		Version: version,
		Long: `canvasync controls a running canvasd daemon: configure the remote
integration, push local edits, pull remote changes and resolve conflicts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
	}
	root.SetOut(io)
	root.SetErr(io)

	root.PersistentFlags().StringVar(&c.addr, "addr", "", "daemon address (env CANVASYNC_ADDR, default "+DefaultAddr+")")
	root.PersistentFlags().StringVarP(&c.format, "output", "o", FormatText, "output format: text, json or yaml")

	root.AddCommand(
		c.newStatusCmd(),
		c.newConfigureCmd(),
		c.newConfigCmd(),
		c.newDisableCmd(),
		c.newSyncCmd(),
		c.newPullCmd(),
		c.newConflictsCmd(),
		c.newResolveCmd(),
		c.newResolveAllCmd(),
		c.newEntitiesCmd(),
	)
	return root
}

func (c *Cli) init() error {
	switch c.format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.format)
	}

	addr := c.addr
	if addr == "" {
		addr = c.getenv("CANVASYNC_ADDR")
	}
	if addr == "" {
		addr = DefaultAddr
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	c.client = api.NewClient(addr)
	return nil
}

// requestContext bounds quick requests. Sync runs use the command context
// directly because they are paced and can take minutes.
func (c *Cli) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.timeout)
}

// Execute runs the CLI and returns the process exit code.
func Execute(version string) int {
	io := iocli.NewStdio()
	root := NewRootCommand(io, version)
	if err := root.ExecuteContext(context.Background()); err != nil {
		printError(io, err)
		return 1
	}
	return 0
}
