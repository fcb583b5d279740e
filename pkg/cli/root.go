// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookpot/pkg/ingredient"
	"github.com/NVIDIA/cookpot/pkg/logging"
	"github.com/NVIDIA/cookpot/pkg/recipe"
	"github.com/NVIDIA/cookpot/pkg/serializer"
	"github.com/NVIDIA/cookpot/pkg/simulator"
)

const (
	name           = "cookpot"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the CLI with the process arguments. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Usage:                 "Crock Pot cooking simulator",
		EnableShellCompletion: true,
		Description: `Simulate what a Crock Pot or Portable Crock Pot cooks from four ingredients.

Every eligible recipe is tested against the combined ingredient tags and the
highest priority matches win. The Portable Crock Pot also tests the recipes
that only it can cook.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Logging level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			simulateCmd(),
			batchCmd(),
			ingredientsCmd(),
			recipesCmd(),
			validateCmd(),
		},
		ShellComplete: commandLister,
	}
}

// commandLister prints visible subcommand names for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintln(cmd.Root().Writer, c.Name)
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Sources: cli.EnvVars("COOKPOT_FORMAT"),
	}
}

func stationFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:    "station",
		Aliases: []string{"s"},
		Usage:   usage,
		Sources: cli.EnvVars("COOKPOT_STATION"),
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	raw := cmd.String("format")
	f := serializer.Format(strings.ToLower(strings.TrimSpace(raw)))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format %q, supported values: %s",
			raw, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// parseStation reads the --station flag. An empty value is returned as is
// so that the service applies its default.
func parseStation(cmd *cli.Command) (recipe.Station, error) {
	raw := strings.TrimSpace(cmd.String("station"))
	if raw == "" {
		return "", nil
	}
	return recipe.ParseStation(raw)
}

// loadService builds a simulator over the embedded data.
func loadService(ctx context.Context, opts ...simulator.Option) (*simulator.Service, error) {
	catalog, err := ingredient.Default(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredient catalog: %w", err)
	}
	table, err := recipe.Default(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe table: %w", err)
	}
	return simulator.NewService(catalog, table, slices.Concat([]simulator.Option{simulator.WithVersion(version)}, opts)...), nil
}

// writeOutput serializes v according to the --format and --output flags.
func writeOutput(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, v)
}
