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

// validationResult reports the well-formedness of a single input.
type validationResult struct {
	Input string `json:"input" yaml:"input"`
	Valid bool   `json:"valid" yaml:"valid"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Check version strings for well-formedness",
		ArgsUsage:             "VERSION...",
		Description: `Check each input against the full version grammar:

  major.minor.patch[-prerelease][+build]

All three numeric components must be present, and the prerelease and
build tags must be dot-separated alphanumeric identifiers. Leading and
trailing whitespace is ignored.

The command reports every input and exits with a non-zero status if any
input is ill-formed.

# Examples

Validate versions (exits 1 because the second input is incomplete):
  semver validate 1.2.3-rc.1 1.2

Emit the per-input report as JSON:
  semver validate --format json 1.2.3 2.0.0+sha.5114f85`,
		Flags: []cli.Flag{
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

			invalid := 0
			results := make([]validationResult, 0, len(args))
			for _, arg := range args {
				ok := semver.IsWellFormed(arg)
				if !ok {
					invalid++
				}
				results = append(results, validationResult{Input: arg, Valid: ok})
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, results); err != nil {
				return fmt.Errorf("failed to serialize validation results: %w", err)
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d input(s) ill-formed", invalid, len(args))
			}
			return nil
		},
	}
}
