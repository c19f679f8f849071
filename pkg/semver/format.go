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
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultPattern is the format pattern used when none is given:
// the full major.minor.patch[-prerelease][+build] rendering.
const DefaultPattern = "G"

// clockTokens is the closed table of timestamp substitutions. A run of n
// identical characters from this table renders one component of the
// reference time; the run length selects zero-padding or, for months and
// lowercase days, names.
var clockTokens = map[byte]func(t time.Time, n int) string{
	'Y': func(t time.Time, n int) string {
		if n <= 2 {
			return pad(t.Year()%100, n)
		}
		return pad(t.Year(), n)
	},
	'M': func(t time.Time, n int) string {
		switch {
		case n <= 2:
			return pad(int(t.Month()), n)
		case n == 3:
			return t.Month().String()[:3]
		default:
			return t.Month().String()
		}
	},
	'D': func(t time.Time, n int) string {
		return pad(t.Day(), n)
	},
	'd': func(t time.Time, n int) string {
		switch {
		case n <= 2:
			return pad(t.Day(), n)
		case n == 3:
			return t.Weekday().String()[:3]
		default:
			return t.Weekday().String()
		}
	},
	'H': func(t time.Time, n int) string {
		return pad(t.Hour(), n)
	},
	'h': func(t time.Time, n int) string {
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return pad(hour, n)
	},
	'm': func(t time.Time, n int) string {
		return pad(t.Minute(), n)
	},
	's': func(t time.Time, n int) string {
		return pad(t.Second(), n)
	},
	'f': func(t time.Time, n int) string {
		if n > 9 {
			n = 9
		}
		return fmt.Sprintf("%09d", t.Nanosecond())[:n]
	},
}

// Format renders the version according to the given pattern, interpreted
// left to right one token at a time:
//
//	x y z   major, minor, patch
//	p b     prerelease, build (empty when the tag is absent)
//	G       major.minor.patch[-prerelease][+build]
//	C       major.minor.patch
//	g       major.minor.patch[-prerelease]
//	\c      emit c literally, even if c is a token character
//	T       integer timestamp of at (Unix nanoseconds)
//
// Runs of identical characters from {Y M m D d H h s f} render a
// component of at (see clockTokens); any other character is emitted
// literally. A trailing lone '\' is emitted as-is. An empty pattern
// means DefaultPattern.
//
// The reference time is injected by the caller so output stays
// deterministic; callers wanting wall-clock output pass time.Now().
func (v Version) Format(pattern string, at time.Time) string {
	if pattern == "" {
		pattern = DefaultPattern
	}

	var b strings.Builder
	b.Grow(len(pattern) + 16)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '\\':
			if i+1 < len(pattern) {
				i++
				b.WriteByte(pattern[i])
			} else {
				b.WriteByte(c)
			}
		case 'x':
			b.WriteString(strconv.Itoa(v.Major))
		case 'y':
			b.WriteString(strconv.Itoa(v.Minor))
		case 'z':
			b.WriteString(strconv.Itoa(v.Patch))
		case 'p':
			b.WriteString(v.Prerelease)
		case 'b':
			b.WriteString(v.Build)
		case 'G':
			v.writeFull(&b, true)
		case 'g':
			v.writeFull(&b, false)
		case 'C':
			v.writeCore(&b)
		case 'T':
			b.WriteString(strconv.FormatInt(at.UnixNano(), 10))
		default:
			if render, ok := clockTokens[c]; ok {
				run := i
				for run < len(pattern) && pattern[run] == c {
					run++
				}
				b.WriteString(render(at, run-i))
				i = run - 1
			} else {
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}

func (v Version) writeCore(b *strings.Builder) {
	b.WriteString(strconv.Itoa(v.Major))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.Minor))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.Patch))
}

func (v Version) writeFull(b *strings.Builder, withBuild bool) {
	v.writeCore(b)
	if v.Prerelease != "" {
		b.WriteByte('-')
		b.WriteString(v.Prerelease)
	}
	if withBuild && v.Build != "" {
		b.WriteByte('+')
		b.WriteString(v.Build)
	}
}

func pad(value, width int) string {
	s := strconv.Itoa(value)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
