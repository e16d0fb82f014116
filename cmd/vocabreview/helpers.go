package main

import (
	"fmt"
	"io"

	"github.com/at-ishikawa/vocabreview/internal/cli"
	"github.com/at-ishikawa/vocabreview/internal/client"
	"github.com/at-ishikawa/vocabreview/internal/config"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newClient(cfg *config.Config) (*client.Client, error) {
	if cfg.Client.Token == "" {
		return nil, fmt.Errorf("no token configured, set client.token or VOCABREVIEW_TOKEN (see `vocabreview token`)")
	}
	return client.NewClient(cfg.Client.ServerURL, cfg.Client.Token), nil
}

// withClient loads the configuration and a printer, then calls fn with a client of the server.
func withClient(out io.Writer, fn func(c *client.Client, p *cli.Printer) error) error {
	p, err := cli.NewPrinter(out, string(outputFormat))
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()
	return fn(c, p)
}
