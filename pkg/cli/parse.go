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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/ackara/semver/pkg/semver"
	"github.com/ackara/semver/pkg/serializer"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse version strings into their components",
		ArgsUsage:             "VERSION...",
		Description: `Parse one or more version strings and emit their components.

By default parsing is lenient: identifier tags are captured as written
and only the numeric triple is fully checked. With --strict, the
prerelease and build tags must also satisfy the identifier grammar
(dot-separated alphanumeric identifiers).

# Examples

Parse a single version to stdout:
  semver parse 1.2.3-rc.1+build.45

Parse several versions to a JSON file:
  semver parse --format json --output versions.json 1.2.3 2.0.0-alpha`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Reject versions whose identifier tags violate the grammar",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("at least one version argument is required")
			}

			strict := cmd.Bool("strict")
			versions := make([]semver.Version, 0, len(args))
			for _, arg := range args {
				var v semver.Version
				if strict {
					v, err = semver.ParseStrict(arg)
				} else {
					v, err = semver.Parse(arg)
				}
				if err != nil {
					return fmt.Errorf("failed to parse %q: %w", arg, err)
				}
				versions = append(versions, v)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if len(versions) == 1 {
				return ser.Serialize(ctx, versions[0])
			}
			return ser.Serialize(ctx, versions)
		},
	}
}
