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
	"strconv"
	"strings"
)

// Compare returns an integer comparing two versions by semver
// precedence: -1 if v < other, 0 if v == other, 1 if v > other.
//
// Major, minor, and patch compare numerically. When all three are equal,
// a version without a prerelease tag has higher precedence than one with
// a tag. Two prerelease tags compare by their dot-separated identifiers,
// left to right: identifiers that both parse as integers compare
// numerically, otherwise byte-wise; the shorter identifier sequence
// loses. Build metadata never participates, so versions differing only
// in build compare equal.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}

	// No prerelease > has prerelease (1.0.0 > 1.0.0-alpha)
	switch {
	case v.Prerelease == "" && other.Prerelease == "":
		return 0
	case v.Prerelease == "":
		return 1
	case other.Prerelease == "":
		return -1
	}

	return comparePrerelease(v.Prerelease, other.Prerelease)
}

// Equal reports whether the two versions have equal precedence.
// Build metadata is excluded, matching Compare and Hash.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Less reports whether v has lower precedence than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// LessOrEqual reports whether v has lower or equal precedence.
func (v Version) LessOrEqual(other Version) bool {
	return v.Compare(other) <= 0
}

// Greater reports whether v has higher precedence than other.
func (v Version) Greater(other Version) bool {
	return v.Compare(other) > 0
}

// GreaterOrEqual reports whether v has higher or equal precedence.
func (v Version) GreaterOrEqual(other Version) bool {
	return v.Compare(other) >= 0
}

// Sort sorts versions in place by ascending precedence. The sort is
// stable so that versions differing only in build metadata keep their
// input order.
func Sort(versions []Version) {
	slices.SortStableFunc(versions, Version.Compare)
}

func comparePrerelease(a, b string) int {
	if a == b {
		return 0
	}

	partsA := strings.Split(a, ".")
	partsB := strings.Split(b, ".")

	for i := 0; i < len(partsA) && i < len(partsB); i++ {
		partA, partB := partsA[i], partsB[i]
		if partA == partB {
			continue
		}

		numA, errA := strconv.Atoi(partA)
		numB, errB := strconv.Atoi(partB)
		if errA == nil && errB == nil {
			if c := compareInt(numA, numB); c != 0 {
				return c
			}
			continue
		}

		// Ordinal string comparison
		if partA < partB {
			return -1
		}
		if partA > partB {
			return 1
		}
	}

	// The shorter identifier sequence has lower precedence.
	return compareInt(len(partsA), len(partsB))
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
