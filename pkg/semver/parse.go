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

package semver

import (
	"errors"
	"fmt"
	"strconv"
)

// Error types for version parsing and strict construction failures
var (
	// ErrIllegalCharacter indicates a character outside [0-9A-Za-z.+-]
	// before the first '+' of the input.
	ErrIllegalCharacter = errors.New("illegal character in version string")
	// ErrNumberFormat indicates a major, minor, or patch segment that is
	// not a valid integer.
	ErrNumberFormat = errors.New("version component is not numeric")
	// ErrOutOfRange indicates a negative major, minor, or patch component
	// under strict construction.
	ErrOutOfRange = errors.New("version component cannot be negative")
	// ErrMalformedIdentifier indicates a prerelease or build tag that
	// fails the dot-separated identifier grammar under strict mode.
	ErrMalformedIdentifier = errors.New("malformed prerelease or build identifier")
)

// Parse parses a version string leniently into its components.
//
// An empty string yields the zero version with no error; that is a
// deliberate default, not a failure. A single left-to-right scan locates
// the first two '.' (major/minor and minor/patch boundaries), the first
// '-' (start of prerelease), and the first '+' (start of build); later
// occurrences of each delimiter are kept as literal content. The scan
// stops at the first '+', so build metadata is never character-checked
// here. Use ParseStrict or IsWellFormed for grammar validation.
func Parse(s string) (Version, error) {
	return parse(s, false)
}

// ParseStrict parses a version string and then enforces the strict
// invariants: non-negative numeric components and, when present,
// prerelease and build tags matching the identifier grammar.
func ParseStrict(s string) (Version, error) {
	return parse(s, true)
}

// TryParse parses a version string leniently and reports success.
// It never returns an error; on failure the zero version is returned.
func TryParse(s string) (Version, bool) {
	v, err := parse(s, false)
	if err != nil {
		return Version{}, false
	}
	return v, true
}

// MustParse parses a version string leniently and panics if parsing
// fails. Only use this for hardcoded strings or in tests; for user
// input, use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := parse(s, false)
	if err != nil {
		panic(fmt.Sprintf("semver.MustParse(%q): %v", s, err))
	}
	return v
}

func parse(s string, strict bool) (Version, error) {
	if s == "" {
		return Version{}, nil
	}

	// Delimiter positions. Only the first occurrence of each counts;
	// dots are boundaries only while no '-' has been seen.
	dot1, dot2, dash, plus := -1, -1, -1, -1

scan:
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+':
			// Everything after the first '+' is build metadata and is
			// not scanned at all.
			plus = i
			break scan
		case c == '-':
			if dash < 0 {
				dash = i
			}
		case c == '.':
			if dash < 0 && dot1 < 0 {
				dot1 = i
			} else if dash < 0 && dot2 < 0 {
				dot2 = i
			}
		case isAlphanumeric(c):
			// Digit or identifier content.
		default:
			return Version{}, fmt.Errorf("%w: %q at offset %d in %q", ErrIllegalCharacter, rune(c), i, s)
		}
	}

	end := len(s)
	if plus >= 0 {
		end = plus
	}
	numEnd := end
	if dash >= 0 {
		numEnd = dash
	}

	majorEnd := numEnd
	if dot1 >= 0 {
		majorEnd = dot1
	}
	minorStart, minorEnd := numEnd, numEnd
	if dot1 >= 0 {
		minorStart = dot1 + 1
		if dot2 >= 0 {
			minorEnd = dot2
		}
	}
	patchStart := numEnd
	if dot2 >= 0 {
		patchStart = dot2 + 1
	}

	var v Version
	var err error
	if v.Major, err = parseComponent(s[:majorEnd]); err != nil {
		return Version{}, err
	}
	if v.Minor, err = parseComponent(s[minorStart:minorEnd]); err != nil {
		return Version{}, err
	}
	if v.Patch, err = parseComponent(s[patchStart:numEnd]); err != nil {
		return Version{}, err
	}
	if dash >= 0 {
		v.Prerelease = s[dash+1 : end]
	}
	if plus >= 0 {
		v.Build = s[plus+1:]
	}

	if strict {
		if err := v.validateStrict(); err != nil {
			return Version{}, err
		}
	}
	return v, nil
}

func parseComponent(segment string) (int, error) {
	n, err := strconv.Atoi(segment)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumberFormat, segment)
	}
	return n, nil
}

func isAlphanumeric(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z'
}
