package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

// apiKeyEnv is read before the key file and the interactive prompt.
const apiKeyEnv = "CANVASYNC_API_KEY"

func (c *Cli) newConfigureCmd() *cobra.Command {
	var (
		req     api.ConfigureRequest
		keyFile string
	)
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Enable sync with the remote workspace",
		Long: `Enable sync with the remote workspace.

The API key is read from CANVASYNC_API_KEY, then from --api-key-file,
and finally from an interactive prompt without echo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := c.readAPIKey(keyFile)
			if err != nil {
				return err
			}
			req.APIKey = key

			ctx, cancel := c.requestContext(cmd)
			defer cancel()

			cfg, err := c.client.Configure(ctx, req)
			if err != nil {
				return err
			}
			return c.render(cfg, func() {
				c.success("Remote sync configured")
				c.printConfig(cfg)
			})
		},
	}
	cmd.Flags().StringVar(&req.BlocksDatabaseID, "blocks-db", "", "remote database id for blocks")
	cmd.Flags().StringVar(&req.RoadmapDatabaseID, "roadmap-db", "", "remote database id for roadmap items")
	cmd.Flags().StringVar(&req.BaseURL, "base-url", "", "remote API base URL")
	cmd.Flags().StringVar(&keyFile, "api-key-file", "", "read the API key from this file")
	return cmd
}

// readAPIKey retrieves the API key with priority:
// 1. Environment variable CANVASYNC_API_KEY
// 2. File given by --api-key-file
// 3. Interactive prompt
func (c *Cli) readAPIKey(keyFile string) (string, error) {
	if key := strings.TrimSpace(c.getenv(apiKeyEnv)); key != "" {
		return key, nil
	}

	if keyFile != "" {
		content, err := os.ReadFile(keyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read api key file: %w", err)
		}
		key := strings.TrimSpace(string(content))
		if key == "" {
			return "", fmt.Errorf("api key file is empty")
		}
		return key, nil
	}

	key, err := c.io.ReadPassword("API key: ")
	if err != nil {
		return "", fmt.Errorf("failed to read api key: %w", err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("api key cannot be empty")
	}
	return key, nil
}

func (c *Cli) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the active remote configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.requestContext(cmd)
			defer cancel()

			cfg, err := c.client.GetConfig(ctx)
			if err != nil {
				return err
			}
			return c.render(cfg, func() { c.printConfig(cfg) })
		},
	}
}

func (c *Cli) newDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Turn remote sync off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.requestContext(cmd)
			defer cancel()

			cfg, err := c.client.Disable(ctx)
			if err != nil {
				return err
			}
			return c.render(cfg, func() { c.success("Remote sync disabled") })
		},
	}
}

func (c *Cli) printConfig(cfg *api.ConfigResponse) {
	enabled := warningStyle.Render("no")
	if cfg.Enabled {
		enabled = successStyle.Render("yes")
	}
	c.io.Printf("Enabled:        %s\n", enabled)
	if cfg.APIKey != "" {
		c.io.Printf("API key:        %s %s\n", cfg.APIKey, subtleStyle.Render("("+cfg.Fingerprint+")"))
	}
	if cfg.BaseURL != "" {
		c.io.Printf("Base URL:       %s\n", cfg.BaseURL)
	}
	c.io.Printf("Blocks DB:      %s\n", orNone(cfg.BlocksDatabaseID))
	c.io.Printf("Roadmap DB:     %s\n", orNone(cfg.RoadmapDatabaseID))
}

func orNone(s string) string {
	if s == "" {
		return subtleStyle.Render("none")
	}
	return s
}
