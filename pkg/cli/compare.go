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

	"github.com/urfave/cli/v3"

	"github.com/ackara/semver/pkg/semver"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two versions by precedence",
		ArgsUsage:             "A B",
		Description: `Compare two versions and print -1, 0, or 1 when the first sorts
before, equal to, or after the second.

Precedence follows the numeric triple, then prerelease identifiers.
A stable version outranks any prerelease of the same triple. Build
metadata never affects the result:

  semver compare 1.2.3+linux 1.2.3+windows
  0`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return fmt.Errorf("expected exactly two version arguments, got %d", len(args))
			}

			a, err := semver.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", args[0], err)
			}
			b, err := semver.Parse(args[1])
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", args[1], err)
			}

			fmt.Fprintln(cmd.Root().Writer, a.Compare(b))
			return nil
		},
	}
}
