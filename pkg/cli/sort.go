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
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ackara/semver/pkg/semver"
)

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Sort versions by ascending precedence",
		ArgsUsage:             "[VERSION...]",
		Description: `Sort versions by precedence and print them one per line.

Versions are taken from the arguments, or read one per line from stdin
when no arguments are given. Blank lines are skipped. The sort is
stable, so versions that differ only in build metadata keep their
input order.

# Examples

Sort arguments:
  semver sort 1.10.0 1.2.0 1.0.0-rc.1

Sort a file of versions:
  semver sort <versions.txt`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			inputs := cmd.Args().Slice()
			if len(inputs) == 0 {
				scanner := bufio.NewScanner(cmd.Root().Reader)
				for scanner.Scan() {
					line := strings.TrimSpace(scanner.Text())
					if line == "" {
						continue
					}
					inputs = append(inputs, line)
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read versions from stdin: %w", err)
				}
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no versions to sort")
			}

			versions := make([]semver.Version, 0, len(inputs))
			for _, input := range inputs {
				v, err := semver.Parse(input)
				if err != nil {
					return fmt.Errorf("failed to parse %q: %w", input, err)
				}
				versions = append(versions, v)
			}

			semver.Sort(versions)

			for _, v := range versions {
				fmt.Fprintln(cmd.Root().Writer, v.String())
			}
			return nil
		},
	}
}
