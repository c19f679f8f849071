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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ackara/semver/pkg/semver"
)

// runRoot executes the root command with the given args, capturing stdout
// and feeding the given input as stdin.
func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := New()
	root.Writer = &out
	root.Reader = strings.NewReader(stdin)

	err := root.Run(context.Background(), append([]string{name}, args...))
	return out.String(), err
}

func TestRootCommandStructure(t *testing.T) {
	root := New()
	assert.Equal(t, "semver", root.Name)

	want := []string{"parse", "validate", "compare", "sort", "bump", "format"}
	var got []string
	for _, cmd := range root.Commands {
		got = append(got, cmd.Name)
	}
	assert.Equal(t, want, got)
}

func TestParseCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	_, err := runRoot(t, "", "parse", "--format", "json", "--output", path, "1.2.3-rc.1+build.45")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var v semver.Version
	require.NoError(t, json.Unmarshal(content, &v))
	assert.Equal(t, semver.MustParse("1.2.3-rc.1+build.45"), v)
}

func TestParseCommandMultiple(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	_, err := runRoot(t, "", "parse", "-t", "json", "-o", path, "1.2.3", "2.0.0-alpha")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var versions []semver.Version
	require.NoError(t, json.Unmarshal(content, &versions))
	require.Len(t, versions, 2)
	assert.Equal(t, "alpha", versions[1].Prerelease)
}

func TestParseCommandErrors(t *testing.T) {
	_, err := runRoot(t, "", "parse")
	assert.Error(t, err, "no arguments")

	_, err = runRoot(t, "", "parse", "--format", "xml", "1.2.3")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = runRoot(t, "", "parse", "1.2")
	assert.ErrorContains(t, err, "failed to parse")
}

func TestParseCommandStrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	// Lenient parse captures the malformed tag as written.
	_, err := runRoot(t, "", "parse", "-t", "json", "-o", path, "1.2.3-rc..1")
	require.NoError(t, err)

	// Strict parse rejects the doubled dot.
	_, err = runRoot(t, "", "parse", "--strict", "-t", "json", "-o", path, "1.2.3-rc..1")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	_, err := runRoot(t, "", "validate", "-t", "json", "-o", path, "1.2.3-rc.1", "2.0.0+sha.5114f85")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var results []validationResult
	require.NoError(t, json.Unmarshal(content, &results))
	require.Len(t, results, 2)
	assert.True(t, results[0].Valid)
	assert.True(t, results[1].Valid)
}

func TestValidateCommandIllFormed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	_, err := runRoot(t, "", "validate", "-t", "json", "-o", path, "1.2.3", "1.2")
	require.ErrorContains(t, err, "ill-formed")

	// The report still covers every input.
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var results []validationResult
	require.NoError(t, json.Unmarshal(content, &results))
	require.Len(t, results, 2)
	assert.True(t, results[0].Valid)
	assert.False(t, results[1].Valid)
}

func TestCompareCommand(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"1.2.3", "1.2.4", "-1"},
		{"1.2.3+linux", "1.2.3+windows", "0"},
		{"1.2.3", "1.2.3-rc.1", "1"},
	}

	for _, tt := range tests {
		out, err := runRoot(t, "", "compare", tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want+"\n", out, "compare %s %s", tt.a, tt.b)
	}
}

func TestCompareCommandErrors(t *testing.T) {
	_, err := runRoot(t, "", "compare", "1.2.3")
	assert.ErrorContains(t, err, "exactly two")

	_, err = runRoot(t, "", "compare", "1.2.3", "nope")
	assert.ErrorContains(t, err, "failed to parse")
}

func TestSortCommandArgs(t *testing.T) {
	out, err := runRoot(t, "", "sort", "1.10.0", "1.0.0-rc.1", "1.2.0", "1.0.0")
	require.NoError(t, err)

	want := "1.0.0-rc.1\n1.0.0\n1.2.0\n1.10.0\n"
	assert.Equal(t, want, out)
}

func TestSortCommandStdin(t *testing.T) {
	stdin := "2.0.0\n\n1.0.0-alpha\n1.0.0\n"
	out, err := runRoot(t, stdin, "sort")
	require.NoError(t, err)

	want := "1.0.0-alpha\n1.0.0\n2.0.0\n"
	assert.Equal(t, want, out)
}

func TestSortCommandEmpty(t *testing.T) {
	_, err := runRoot(t, "", "sort")
	assert.ErrorContains(t, err, "no versions")
}

func TestBumpCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "patch",
			args: []string{"bump", "patch", "1.2.3"},
			want: "1.2.4",
		},
		{
			name: "minor zeroes patch",
			args: []string{"bump", "minor", "1.2.3"},
			want: "1.3.0",
		},
		{
			name: "major zeroes minor and patch",
			args: []string{"bump", "major", "1.2.3"},
			want: "2.0.0",
		},
		{
			name: "tags carried on bump",
			args: []string{"bump", "patch", "1.2.3-rc.1+build.45"},
			want: "1.2.4-rc.1+build.45",
		},
		{
			name: "promote prerelease to stable",
			args: []string{"bump", "patch", "--value", "0", "--pre=", "--build=", "1.3.0-rc.1"},
			want: "1.3.0",
		},
		{
			name: "replacement tags",
			args: []string{"bump", "minor", "--pre", "rc.1", "--build", "sha.5114f85", "1.2.3"},
			want: "1.3.0-rc.1+sha.5114f85",
		},
		{
			name: "explicit value",
			args: []string{"bump", "major", "--value", "4", "1.2.3"},
			want: "4.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runRoot(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestBumpCommandErrors(t *testing.T) {
	_, err := runRoot(t, "", "bump", "patch")
	assert.Error(t, err, "missing version argument")

	_, err = runRoot(t, "", "bump", "epoch", "1.2.3")
	assert.ErrorContains(t, err, "unknown component")

	_, err = runRoot(t, "", "bump", "major", "--value=-1", "1.2.3")
	assert.ErrorContains(t, err, "invalid component value")
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "default pattern",
			args: []string{"format", "1.2.3-rc.1+build.45"},
			want: "1.2.3-rc.1+build.45",
		},
		{
			name: "nightly tag",
			args: []string{"format", "--pattern", "C.YYMMDD", "--timestamp", "2026-03-07T00:00:00Z", "1.2.3-rc.1"},
			want: "1.2.3.260307",
		},
		{
			name: "escaped token characters",
			args: []string{"format", "-p", `x\.y\.z`, "1.2.3"},
			want: "1.2.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runRoot(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestFormatCommandErrors(t *testing.T) {
	_, err := runRoot(t, "", "format")
	assert.ErrorContains(t, err, "exactly one")

	_, err = runRoot(t, "", "format", "--timestamp", "yesterday", "1.2.3")
	assert.ErrorContains(t, err, "invalid timestamp")
}
