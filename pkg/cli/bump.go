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
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/ackara/semver/pkg/semver"
)

func bumpCmd() *cli.Command {
	return &cli.Command{
		Name:                  "bump",
		EnableShellCompletion: true,
		Usage:                 "Advance a version component",
		ArgsUsage:             "major|minor|patch VERSION",
		Description: `Compute the next version and print it.

Bumping major zeroes minor and patch; bumping minor zeroes patch.
Prerelease and build tags carry over unless replaced with --pre and
--build; pass an empty value (--pre=) to drop a tag. With --value the
component is set to the given number instead of incremented.

# Examples

Patch release:
  semver bump patch 1.2.3
  1.2.4

Start a new release candidate line:
  semver bump minor --pre rc.1 1.2.3
  1.3.0-rc.1

Promote a release candidate to stable:
  semver bump patch --value 0 --pre= 1.3.0-rc.1
  1.3.0

Jump to an explicit major:
  semver bump major --value 4 1.2.3
  4.0.0`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "value",
				Usage: "Set the bumped component to this number instead of incrementing",
			},
			&cli.StringFlag{
				Name:  "pre",
				Usage: "Prerelease tag for the next version; empty drops the carried tag",
			},
			&cli.StringFlag{
				Name:  "build",
				Usage: "Build metadata tag for the next version; empty drops the carried tag",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return fmt.Errorf("expected a component (major|minor|patch) and a version, got %d argument(s)", len(args))
			}
			level, input := args[0], args[1]

			v, err := semver.Parse(input)
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", input, err)
			}

			var opts []semver.NextOption
			if raw := cmd.String("value"); raw != "" {
				n, err := strconv.Atoi(raw)
				if err != nil || n < 0 {
					return fmt.Errorf("invalid component value: %q", raw)
				}
				opts = append(opts, semver.WithValue(n))
			}
			if cmd.IsSet("pre") {
				opts = append(opts, semver.WithPrerelease(cmd.String("pre")))
			}
			if cmd.IsSet("build") {
				opts = append(opts, semver.WithBuild(cmd.String("build")))
			}

			var next semver.Version
			switch level {
			case "major":
				next = v.NextMajor(opts...)
			case "minor":
				next = v.NextMinor(opts...)
			case "patch":
				next = v.NextPatch(opts...)
			default:
				return fmt.Errorf("unknown component %q (supported values: major, minor, patch)", level)
			}

			fmt.Fprintln(cmd.Root().Writer, next.String())
			return nil
		},
	}
}
