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

// Package cli implements the command-line interface for the semver tool.
//
// # Overview
//
// The semver CLI exposes the pkg/semver library to shell pipelines and
// release automation: parsing and validating version strings, comparing
// and sorting them by precedence, bumping components, and rendering
// versions through format patterns.
//
// # Commands
//
// parse - Parse a version string into its components:
//
//	semver parse [--strict] [--output FILE] [--format yaml|json|table] VERSION...
//
// Parses each argument and emits the structured components through the
// serializer. With --strict, inputs must also satisfy the full
// identifier grammar.
//
// validate - Check well-formedness:
//
//	semver validate VERSION...
//
// Reports each input as valid or invalid and exits non-zero if any
// input is ill-formed.
//
// compare - Compare two versions by precedence:
//
//	semver compare A B
//
// Prints -1, 0, or 1. Build metadata is ignored.
//
// sort - Sort versions by ascending precedence:
//
//	semver sort [VERSION...]
//
// Sorts the arguments, or lines read from stdin when no arguments are
// given, and prints one version per line.
//
// bump - Advance a version component:
//
//	semver bump major|minor|patch [--value N] [--pre TAG] [--build META] VERSION
//
// Prints the next version. Bumping major zeroes minor and patch;
// bumping minor zeroes patch. Prerelease and build tags carry over
// unless replaced (or dropped) with --pre/--build.
//
// format - Render a version through a format pattern:
//
//	semver format [--pattern PAT] [--timestamp RFC3339] VERSION
//
// Prints the rendered string. Clock tokens use the given timestamp, or
// the current UTC time when omitted.
//
// # Output Formats
//
// Commands that emit structured data (parse, validate) accept:
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, ill-formed input)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/ackara/semver/pkg/cli.version=1.0.0'"
package cli
