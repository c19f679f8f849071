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
	"hash/fnv"
	"strconv"
	"time"
)

// Version represents a semantic version with Major, Minor, and Patch
// components plus optional Prerelease and Build metadata tags.
// An empty Prerelease or Build means the tag is absent.
//
// Version is a value type: methods never mutate their receiver, and the
// zero value is the zero version "0.0.0".
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`

	// Prerelease is the dot-separated pre-release tag (e.g. "alpha.1").
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`

	// Build is the build metadata tag. It is excluded from ordering,
	// equality, and hashing.
	Build string `json:"build,omitempty" yaml:"build,omitempty"`
}

// New creates a new Version with the specified major, minor, and patch
// values and no prerelease or build tag. No validation is performed;
// use NewStrict when the invariants must hold.
func New(major, minor, patch int) Version {
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// NewStrict creates a new Version and enforces the construction
// invariants: major, minor, and patch must be non-negative
// (ErrOutOfRange) and a non-empty prerelease or build tag must match the
// dot-separated identifier grammar (ErrMalformedIdentifier).
func NewStrict(major, minor, patch int, prerelease, build string) (Version, error) {
	v := Version{
		Major:      major,
		Minor:      minor,
		Patch:      patch,
		Prerelease: prerelease,
		Build:      build,
	}
	if err := v.validateStrict(); err != nil {
		return Version{}, err
	}
	return v, nil
}

// validateStrict applies the strict-mode invariants shared by NewStrict
// and ParseStrict.
func (v Version) validateStrict() error {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return fmt.Errorf("%w: %d.%d.%d", ErrOutOfRange, v.Major, v.Minor, v.Patch)
	}
	if v.Prerelease != "" && !isIdentifierTag(v.Prerelease) {
		return fmt.Errorf("%w: prerelease %q", ErrMalformedIdentifier, v.Prerelease)
	}
	if v.Build != "" && !isIdentifierTag(v.Build) {
		return fmt.Errorf("%w: build %q", ErrMalformedIdentifier, v.Build)
	}
	return nil
}

// IsStable returns true if this is a stable release (no prerelease tag),
// regardless of the major version.
func (v Version) IsStable() bool {
	return v.Prerelease == ""
}

// IsPrerelease returns true if this version carries a prerelease tag.
func (v Version) IsPrerelease() bool {
	return v.Prerelease != ""
}

// String returns the default full rendering,
// major.minor.patch[-prerelease][+build] (format pattern "G").
func (v Version) String() string {
	return v.Format(DefaultPattern, time.Now().UTC())
}

// Hash returns a 64-bit hash of the version's identity. It combines
// major, minor, patch, and prerelease; build metadata is excluded so
// that versions equal under Compare hash equal.
func (v Version) Hash() uint64 {
	b := make([]byte, 0, 32)
	b = strconv.AppendInt(b, int64(v.Major), 10)
	b = append(b, '.')
	b = strconv.AppendInt(b, int64(v.Minor), 10)
	b = append(b, '.')
	b = strconv.AppendInt(b, int64(v.Patch), 10)
	b = append(b, '-')
	b = append(b, v.Prerelease...)

	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}

// nextSpec carries the optional overrides for the Next operations.
type nextSpec struct {
	value         int
	hasValue      bool
	prerelease    string
	hasPrerelease bool
	build         string
	hasBuild      bool
}

// NextOption customizes a NextMajor, NextMinor, or NextPatch operation.
type NextOption func(*nextSpec)

// WithValue sets the incremented component to an explicit value instead
// of field+1.
func WithValue(n int) NextOption {
	return func(s *nextSpec) {
		s.value = n
		s.hasValue = true
	}
}

// WithPrerelease replaces the prerelease tag on the produced version.
// Without this option the receiver's tag is carried over.
func WithPrerelease(prerelease string) NextOption {
	return func(s *nextSpec) {
		s.prerelease = prerelease
		s.hasPrerelease = true
	}
}

// WithBuild replaces the build tag on the produced version.
// Without this option the receiver's tag is carried over.
func WithBuild(build string) NextOption {
	return func(s *nextSpec) {
		s.build = build
		s.hasBuild = true
	}
}

func applyNext(opts []NextOption) nextSpec {
	var s nextSpec
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s nextSpec) tags(v Version) (prerelease, build string) {
	prerelease, build = v.Prerelease, v.Build
	if s.hasPrerelease {
		prerelease = s.prerelease
	}
	if s.hasBuild {
		build = s.build
	}
	return prerelease, build
}

// NextMajor returns a new version with the major component incremented
// (or set via WithValue) and minor and patch reset to zero. The receiver
// is never mutated.
func (v Version) NextMajor(opts ...NextOption) Version {
	s := applyNext(opts)
	major := v.Major + 1
	if s.hasValue {
		major = s.value
	}
	prerelease, build := s.tags(v)
	return Version{
		Major:      major,
		Prerelease: prerelease,
		Build:      build,
	}
}

// NextMinor returns a new version with the minor component incremented
// (or set via WithValue) and patch reset to zero.
func (v Version) NextMinor(opts ...NextOption) Version {
	s := applyNext(opts)
	minor := v.Minor + 1
	if s.hasValue {
		minor = s.value
	}
	prerelease, build := s.tags(v)
	return Version{
		Major:      v.Major,
		Minor:      minor,
		Prerelease: prerelease,
		Build:      build,
	}
}

// NextPatch returns a new version with the patch component incremented
// (or set via WithValue); no lower-order fields exist to reset.
func (v Version) NextPatch(opts ...NextOption) Version {
	s := applyNext(opts)
	patch := v.Patch + 1
	if s.hasValue {
		patch = s.value
	}
	prerelease, build := s.tags(v)
	return Version{
		Major:      v.Major,
		Minor:      v.Minor,
		Patch:      patch,
		Prerelease: prerelease,
		Build:      build,
	}
}

// Quad is the coarse four-field numeric interop form of a version
// (major.minor.patch.revision), used to exchange versions with tooling
// that has no notion of prerelease or non-numeric build metadata.
type Quad struct {
	Major    int `json:"major" yaml:"major"`
	Minor    int `json:"minor" yaml:"minor"`
	Patch    int `json:"patch" yaml:"patch"`
	Revision int `json:"revision" yaml:"revision"`
}

// String returns the dotted four-field rendering of the quad.
func (q Quad) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", q.Major, q.Minor, q.Patch, q.Revision)
}

// Quad converts the version to its coarse numeric form. Build metadata
// becomes the Revision field when it parses as an integer and zero
// otherwise; the prerelease tag is dropped. The conversion is lossy.
func (v Version) Quad() Quad {
	revision, err := strconv.Atoi(v.Build)
	if err != nil {
		revision = 0
	}
	return Quad{
		Major:    v.Major,
		Minor:    v.Minor,
		Patch:    v.Patch,
		Revision: revision,
	}
}

// FromQuad converts a coarse numeric quad back to a Version. A positive
// Revision becomes the build tag; there is no prerelease to restore.
func FromQuad(q Quad) Version {
	v := Version{
		Major: q.Major,
		Minor: q.Minor,
		Patch: q.Patch,
	}
	if q.Revision > 0 {
		v.Build = strconv.Itoa(q.Revision)
	}
	return v
}
