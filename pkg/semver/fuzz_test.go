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
	"testing"
	"time"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("")
	f.Add("0.0.0")
	f.Add("1.2.3")
	f.Add("1.2.3-alpha")
	f.Add("1.2.3-alpha.1")
	f.Add("0.0.1-beta+sha64")
	f.Add("1.2.3+a+b")
	f.Add("1.2.3-")
	f.Add("1.2.3+")
	f.Add("1.2.3--rc")
	f.Add(".")
	f.Add("..")
	f.Add("...")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("-1.2.3")
	f.Add("+1.2.3")
	f.Add("1.2.3.4")
	f.Add("999999999.0.0")
	f.Add("1.1.1-beta;1")
	f.Add("   1.2.3")

	f.Fuzz(func(t *testing.T, input string) {
		// Parse should never panic, and TryParse/IsWellFormed should
		// agree with it on lenient/strict success respectively.
		v, err := Parse(input)
		if _, ok := TryParse(input); ok != (err == nil) {
			t.Errorf("TryParse(%q) disagrees with Parse error %v", input, err)
		}
		_ = IsWellFormed(input) // must never panic
		if err != nil {
			return
		}

		// Formatting with the default pattern and re-parsing must
		// preserve every component, including lenient build content.
		rendered := v.Format(DefaultPattern, time.Unix(0, 0).UTC())
		v2, err2 := Parse(rendered)
		if err2 != nil {
			t.Errorf("re-parsing %q (from %q) failed: %v", rendered, input, err2)
			return
		}
		if v != v2 {
			t.Errorf("round-trip mismatch for %q: %+v != %+v", input, v, v2)
		}

		// Compare must stay reflexive and build-blind.
		if v.Compare(v) != 0 {
			t.Errorf("Compare(%q, %q) != 0", input, input)
		}
		stripped := v
		stripped.Build = ""
		if !v.Equal(stripped) || v.Hash() != stripped.Hash() {
			t.Errorf("build metadata leaked into equality or hash for %q", input)
		}
	})
}

// FuzzFormat checks that arbitrary patterns never panic and always
// terminate with output no shorter than the escaped input demands.
func FuzzFormat(f *testing.F) {
	f.Add("G")
	f.Add("x.y.z_p")
	f.Add(`\G`)
	f.Add(`\`)
	f.Add("YYYYMMdd-HHmmss.fff")
	f.Add("TTTT")
	f.Add("MMMMMMMMMM")
	f.Add("ffffffffffff")

	v := Version{Major: 1, Minor: 2, Patch: 3, Prerelease: "rc.1", Build: "sha"}
	at := time.Date(2026, time.August, 27, 10, 30, 0, 0, time.UTC)

	f.Fuzz(func(t *testing.T, pattern string) {
		out := v.Format(pattern, at)
		// Every non-empty pattern emits at least one byte here: tokens
		// render numbers, literals render themselves, and v carries
		// non-empty prerelease and build tags.
		if pattern != "" && out == "" {
			t.Errorf("Format(%q) produced no output", pattern)
		}
	})
}
