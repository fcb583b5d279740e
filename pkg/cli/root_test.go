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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookpot/pkg/serializer"
)

// run executes the subcommand in args[0] with JSON output written to a temp
// file and returns the file content.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	require.NotEmpty(t, args)

	out := filepath.Join(t.TempDir(), "out.json")
	argv := []string{name, args[0], "--format", "json", "--output", out}
	argv = append(argv, args[1:]...)

	if err := newRootCmd().Run(context.Background(), argv); err != nil {
		return "", err
	}

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	return string(data), nil
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
		},
		{
			name:       "upper case",
			format:     "JSON",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:    "invalid format xml",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
		assert.NotEmpty(t, c.Usage, "usage of %s", c.Name)
		assert.NotNil(t, c.Action, "action of %s", c.Name)
	}
	assert.Equal(t, []string{"simulate", "batch", "ingredients", "recipes", "validate"}, names)
}

func TestCommandLister(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.Writer = &buf

	commandLister(context.Background(), root)

	assert.Equal(t, "simulate\nbatch\ningredients\nrecipes\nvalidate\n", buf.String())
}

func TestRootCmd_UnknownFormat(t *testing.T) {
	err := newRootCmd().Run(context.Background(),
		[]string{name, "recipes", "--format", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
