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

import "strings"

// IsWellFormed reports whether s matches the full semver grammar: three
// dot-separated non-negative integers, an optional '-' followed by one
// or more dot-separated identifiers, and an optional '+' followed by one
// or more dot-separated identifiers, anchored start to end. Leading and
// trailing whitespace is trimmed first. It never returns an error.
//
// Both grammars here are explicit character-class scanners rather than
// regular expressions, keeping validation single-pass and allocation
// free.
func IsWellFormed(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	i := 0
	for segment := 0; segment < 3; segment++ {
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
		if segment < 2 {
			if i >= len(s) || s[i] != '.' {
				return false
			}
			i++
		}
	}

	if i < len(s) && s[i] == '-' {
		var ok bool
		if i, ok = scanIdentifiers(s, i+1); !ok {
			return false
		}
	}
	if i < len(s) && s[i] == '+' {
		var ok bool
		if i, ok = scanIdentifiers(s, i+1); !ok {
			return false
		}
	}
	return i == len(s)
}

// IsWellFormed reports whether the version value itself satisfies the
// grammar: non-negative numeric components and, when present, prerelease
// and build tags matching the identifier grammar.
func (v Version) IsWellFormed() bool {
	return v.validateStrict() == nil
}

// scanIdentifiers consumes ident('.'ident)* starting at i and returns
// the position after the last identifier. It fails on an empty
// identifier (leading, trailing, or doubled dot).
func scanIdentifiers(s string, i int) (int, bool) {
	for {
		start := i
		for i < len(s) && isIdentifierChar(s[i]) {
			i++
		}
		if i == start {
			return i, false
		}
		if i < len(s) && s[i] == '.' {
			i++
			continue
		}
		return i, true
	}
}

// isIdentifierTag reports whether a prerelease or build tag matches the
// strict-mode identifier grammar ([0-9A-Za-z-]+ '.'?)+ as a whole.
// Unlike the full well-formedness grammar, this form admits a single
// trailing dot.
func isIdentifierTag(s string) bool {
	if s == "" {
		return false
	}
	afterDot := true
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			if afterDot {
				return false
			}
			afterDot = true
			continue
		}
		if !isIdentifierChar(s[i]) {
			return false
		}
		afterDot = false
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentifierChar(c byte) bool {
	return c == '-' || isAlphanumeric(c)
}
