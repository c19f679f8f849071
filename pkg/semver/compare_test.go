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
	"slices"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal versions", "1.2.3", "1.2.3", 0},
		{"major decides", "2.0.0", "1.9.9", 1},
		{"minor decides", "1.3.0", "1.2.9", 1},
		{"patch decides", "1.2.4", "1.2.3", 1},
		{"stable outranks prerelease", "1.0.0-alpha", "1.0.0", -1},
		{"numeric identifiers compare numerically", "1.0.0-alpha.2", "1.0.0-alpha.10", -1},
		{"numeric loses to alphanumeric as string", "1.0.0-alpha.1", "1.0.0-alpha.beta", -1},
		{"shorter identifier sequence loses", "1.0.0-alpha", "1.0.0-alpha.1", -1},
		{"ordinal string comparison", "1.0.0-alpha", "1.0.0-beta", -1},
		{"build is ignored", "1.0.0+1", "1.0.0+2", 0},
		{"build is ignored with prerelease", "1.0.0-rc.1+a", "1.0.0-rc.1+b", 0},
		{"classic semver chain example", "1.0.0-alpha.beta", "1.0.0-beta", -1},
		{"case sensitive identifiers", "1.0.0-Alpha", "1.0.0-alpha", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := b.Compare(a); got != -tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

// TestCompareTotalOrder walks the canonical semver.org precedence chain
// and checks reflexivity, antisymmetry, and transitivity across it.
func TestCompareTotalOrder(t *testing.T) {
	ordered := []Version{
		MustParse("1.0.0-alpha"),
		MustParse("1.0.0-alpha.1"),
		MustParse("1.0.0-alpha.beta"),
		MustParse("1.0.0-beta"),
		MustParse("1.0.0-beta.2"),
		MustParse("1.0.0-beta.11"),
		MustParse("1.0.0-rc.1"),
		MustParse("1.0.0"),
		MustParse("2.0.0"),
		MustParse("2.1.0"),
		MustParse("2.1.1"),
	}

	for i, a := range ordered {
		if a.Compare(a) != 0 {
			t.Errorf("Compare(%v, %v) != 0", a, a)
		}
		for j, b := range ordered {
			got := a.Compare(b)
			want := compareInt(i, j)
			if got != want {
				t.Errorf("Compare(%v, %v) = %d, want %d", a, b, got, want)
			}
			if got != -b.Compare(a) {
				t.Errorf("Compare(%v, %v) is not antisymmetric", a, b)
			}
		}
	}

	// Transitivity over every ordered triple in the chain.
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			for k := j + 1; k < len(ordered); k++ {
				if !(ordered[i].Less(ordered[j]) && ordered[j].Less(ordered[k]) && ordered[i].Less(ordered[k])) {
					t.Errorf("transitivity broken at (%v, %v, %v)", ordered[i], ordered[j], ordered[k])
				}
			}
		}
	}
}

func TestRelationalShorthands(t *testing.T) {
	a := MustParse("1.0.0-alpha")
	b := MustParse("1.0.0")

	if !a.Less(b) || !a.LessOrEqual(b) || a.Greater(b) || a.GreaterOrEqual(b) || a.Equal(b) {
		t.Errorf("shorthands disagree with Compare(%v, %v) = %d", a, b, a.Compare(b))
	}
	if !b.Greater(a) || !b.GreaterOrEqual(a) || b.Less(a) || b.LessOrEqual(a) {
		t.Errorf("shorthands disagree with Compare(%v, %v) = %d", b, a, b.Compare(a))
	}

	c := MustParse("1.0.0+build")
	if !b.Equal(c) || !b.LessOrEqual(c) || !b.GreaterOrEqual(c) {
		t.Error("versions differing only in build must be equal")
	}
}

func TestHashExcludesBuild(t *testing.T) {
	a := MustParse("1.0.0+1")
	b := MustParse("1.0.0+2")
	if !a.Equal(b) {
		t.Fatal("versions differing only in build must compare equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal versions must hash equal")
	}

	c := MustParse("1.0.0-alpha")
	if a.Hash() == c.Hash() {
		t.Error("prerelease must participate in the hash")
	}
	if a.Hash() == MustParse("1.0.1").Hash() {
		t.Error("patch must participate in the hash")
	}
}

func TestSort(t *testing.T) {
	versions := []Version{
		MustParse("1.0.0"),
		MustParse("0.9.0"),
		MustParse("1.0.0-rc.1"),
		MustParse("2.0.0-alpha"),
		MustParse("1.0.0-alpha.1"),
		MustParse("1.0.0-alpha"),
	}

	Sort(versions)

	want := []Version{
		MustParse("0.9.0"),
		MustParse("1.0.0-alpha"),
		MustParse("1.0.0-alpha.1"),
		MustParse("1.0.0-rc.1"),
		MustParse("1.0.0"),
		MustParse("2.0.0-alpha"),
	}
	if !slices.Equal(versions, want) {
		t.Errorf("Sort = %v, want %v", versions, want)
	}
}
