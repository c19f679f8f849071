// Copyright (c) 2026, Semver Authors.  All rights reserved.
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
	"time"

	"github.com/urfave/cli/v3"

	"github.com/ackara/semver/pkg/semver"
)

func formatCmd() *cli.Command {
	return &cli.Command{
		Name:                  "format",
		EnableShellCompletion: true,
		Usage:                 "Render a version through a format pattern",
		ArgsUsage:             "VERSION",
		Description: `Render a version using format pattern tokens:

  x y z   major, minor, patch
  p b     prerelease, build tag
  C       core triple (x.y.z)
  G       full version (core plus tags)
  g       full version without build metadata
  T       timestamp as nanoseconds since the Unix epoch
  \       escape the next character

Runs of clock tokens (Y M D d H h m s f) render fields of the
reference time; run length selects zero-padding or names (e.g., MM is
03, MMM is Mar). Any other character is copied verbatim.

# Examples

Nightly tag from the core triple:
  semver format --pattern 'C.YYMMDD' --timestamp 2026-03-07T00:00:00Z 1.2.3-rc.1
  1.2.3.260307

Escape a literal token character:
  semver format --pattern 'x\.y\.z sna\pshot' 1.2.3`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "pattern",
				Aliases: []string{"p"},
				Value:   semver.DefaultPattern,
				Usage:   "Format pattern to render",
			},
			&cli.StringFlag{
				Name:  "timestamp",
				Usage: "RFC 3339 reference time for clock tokens (default: current UTC time)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one version argument, got %d", len(args))
			}

			v, err := semver.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", args[0], err)
			}

			ts := time.Now().UTC()
			if raw := cmd.String("timestamp"); raw != "" {
				ts, err = time.Parse(time.RFC3339, raw)
				if err != nil {
					return fmt.Errorf("invalid timestamp %q: %w", raw, err)
				}
			}

			fmt.Fprintln(cmd.Root().Writer, v.Format(cmd.String("pattern"), ts))
			return nil
		},
	}
}
