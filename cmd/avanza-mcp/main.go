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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marknad/avanza-mcp/internal/commands/serve"
	"github.com/marknad/avanza-mcp/internal/commands/versioncmd"
	versionpkg "github.com/marknad/avanza-mcp/internal/version"
)

// Version information (injected via ldflags at build time)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	versionpkg.Version = version
	versionpkg.Commit = commit
	versionpkg.BuildDate = buildDate

	rootCmd := &cobra.Command{
		Use:   "avanza-mcp",
		Short: "MCP server for Swedish financial market data from Avanza",
		Long: `avanza-mcp exposes public Avanza market data over the Model Context
Protocol so AI assistants can look up stocks, funds, certificates,
warrants, ETFs, and futures/forwards.

Run "avanza-mcp serve" to start the server in stdio mode.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serve.NewCommand())
	rootCmd.AddCommand(versioncmd.NewCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
