// Copyright 2026 The avanza-mcp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package serve implements the serve command that runs the MCP server
// over stdio.
package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/marknad/avanza-mcp/internal/avanza"
	"github.com/marknad/avanza-mcp/internal/config"
	"github.com/marknad/avanza-mcp/internal/mcp/server"
	"github.com/marknad/avanza-mcp/internal/version"
)

// NewCommand creates the serve command
func NewCommand() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Avanza MCP server",
		Long: `Start the Avanza MCP (Model Context Protocol) server.

The server exposes Swedish financial market data from Avanza as tools,
resources, and prompts that AI assistants (Claude Code, Cursor, Gemini CLI)
can use to look up stocks, funds, certificates, warrants, ETFs, and
futures/forwards. All data is public and read-only; no Avanza account or
authentication is involved.

The server runs in stdio mode, which is suitable for integration with
AI assistants via their MCP configuration.

Configuration example for Claude Code (~/.config/claude/config.json):
  {
    "mcpServers": {
      "avanza": {
        "command": "avanza-mcp",
        "args": ["serve"]
      }
    }
  }

Configuration is read from --config if given, otherwise from
$XDG_CONFIG_HOME/avanza-mcp/config.yaml when that file exists.
Environment variables (AVANZA_MCP_BASE_URL, AVANZA_MCP_MAX_ATTEMPTS,
AVANZA_MCP_CALLS_PER_MINUTE, AVANZA_MCP_LOG_LEVEL) override both.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath, logLevel)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration file")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Logging verbosity (debug, info, warn, error)")

	return cmd
}

func runServe(configPath, logLevel string) error {
	if configPath == "" {
		defaultPath, err := config.ConfigPath()
		if err == nil {
			if _, statErr := os.Stat(defaultPath); statErr == nil {
				configPath = defaultPath
			}
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	srv, err := server.NewServer(server.ServerConfig{
		Name:           cfg.Server.Name,
		Version:        version.Version,
		LogLevel:       cfg.Log.Level,
		CallsPerMinute: cfg.Server.CallsPerMinute,
		Client: avanza.Config{
			BaseURL:            cfg.Upstream.BaseURL,
			ReadTimeout:        cfg.Upstream.ReadTimeout,
			ConnectTimeout:     cfg.Upstream.ConnectTimeout,
			MaxConnections:     cfg.Upstream.MaxConnections,
			MaxIdleConnections: cfg.Upstream.MaxIdleConnections,
			MaxAttempts:        cfg.Upstream.MaxAttempts,
			UserAgent:          cfg.Upstream.UserAgent,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived shutdown signal, shutting down gracefully...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		}

		cancel()
	}()

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	return nil
}
