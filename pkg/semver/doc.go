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

// Package semver implements a Semantic Version value type
// (major.minor.patch[-prerelease][+build], per semver.org) with parsing,
// strict validation, precedence-ordering comparison, and a format-pattern
// mini-language for rendering.
//
// # Overview
//
// A Version is an immutable value: every operation returns a new Version
// and no operation mutates its receiver. Versions are safe to share and
// compare across goroutines without synchronization.
//
// Parse a version string:
//
//	v, err := semver.Parse("0.0.1-beta+sha64")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.Prerelease) // Output: beta
//
// Compare versions (build metadata never affects ordering):
//
//	a := semver.MustParse("1.0.0-alpha")
//	b := semver.MustParse("1.0.0")
//	a.Less(b) // true: stable releases outrank pre-releases
//
// Evolve versions without mutation:
//
//	next := v.NextMinor(semver.WithPrerelease("rc.1"))
//
// Render with the format mini-language:
//
//	v.Format("x.y.z_p", time.Now().UTC()) // "1.2.3_beta"
//
// # Lenient and strict parsing
//
// Parse is structural and deliberately lenient: it locates the first two
// dots and the first '-' and '+' delimiters, checks the region before the
// first '+' for illegal characters, and preserves everything else as-is.
// Content after the first '+' (build metadata) is never character-checked
// by Parse; that asymmetry is part of the contract, since callers depend
// on round-tripping build metadata that contains otherwise-illegal
// characters. ParseStrict additionally validates prerelease and build
// against the dot-separated identifier grammar and rejects negative
// numeric components. IsWellFormed checks the full anchored grammar and
// never returns an error.
//
// # Precedence
//
// Compare implements semver precedence as a single tri-state function:
// major, minor, and patch compare numerically; a version without a
// prerelease tag outranks one with a tag; prerelease tags compare by
// their dot-separated identifiers, numerically when both identifiers are
// integers and byte-wise otherwise, with the shorter identifier sequence
// losing. The relational shorthands (Less, Greater, Equal, ...) and Hash
// are all defined on top of Compare, so build metadata is excluded from
// ordering, equality, and hashing alike.
//
// # Format patterns
//
// Format interprets a pattern string one token at a time:
//
//	x y z     major, minor, patch
//	p b       prerelease, build (empty when absent)
//	G         major.minor.patch[-prerelease][+build] (the default)
//	C         major.minor.patch
//	g         major.minor.patch[-prerelease]
//	\c        emit c literally
//	T         integer timestamp of the reference time
//
// Runs of identical characters from the set {Y M m D d H h s f} render a
// component of the reference time (year, month, minute, day, hour,
// second, fractional second); run length selects padding or, for months
// and weekdays, names. Any other character is emitted literally. The
// reference time is always passed in by the caller, which keeps output
// deterministic and testable.
package semver
