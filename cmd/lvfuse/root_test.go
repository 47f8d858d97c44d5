// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuse/fused"
	"github.com/katalvlaran/lvfuse/matrix"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// field returns the value column of the report line labelled name.
func field(t *testing.T, report, name string) string {
	t.Helper()
	for _, line := range strings.Split(report, "\n") {
		fs := strings.Fields(line)
		if len(fs) >= 2 && fs[0] == name {
			return strings.Join(fs[1:], " ")
		}
	}
	require.Failf(t, "missing report line", "%q in:\n%s", name, report)

	return ""
}

func TestRun_OffsetOverEmptyInput(t *testing.T) {
	out, _, err := execute(t, "--rows", "4", "--cols", "4", "--density", "0", "--offset", "1", "--agg", "sum,min,max")
	require.NoError(t, err)
	require.Equal(t, "MACLI", field(t, out, "operator"))
	require.Equal(t, "false", field(t, out, "sparse-safe"))
	require.Equal(t, "16", field(t, out, "size"))
	require.Equal(t, "16", field(t, out, "SUM"))
	require.Equal(t, "1", field(t, out, "MIN"))
	require.Equal(t, "1", field(t, out, "MAX"))
}

func TestRun_FormatsAgree(t *testing.T) {
	var sums []string
	for _, f := range []string{"dense", "sparse", "compressed"} {
		out, _, err := execute(t, "--rows", "64", "--cols", "8", "--density", "0.3",
			"--format", f, "--agg", "sum,sumsq", "--seed", "7")
		require.NoError(t, err, f)
		require.True(t, strings.HasPrefix(field(t, out, "input"), f), f)
		require.Equal(t, "true", field(t, out, "sparse-safe"))
		sums = append(sums, field(t, out, "SUM")+" "+field(t, out, "SUM_SQ"))
	}
	require.Equal(t, sums[0], sums[1])
	require.Equal(t, sums[0], sums[2])
}

func TestRun_ParallelPlan(t *testing.T) {
	out, _, err := execute(t, "--rows", "256", "--cols", "4", "--density", "1",
		"--threads", "4", "--threshold", "0", "--agg", "max")
	require.NoError(t, err)
	require.Equal(t, "true (threads=4, tasks=8)", field(t, out, "parallel"))

	serial, _, err := execute(t, "--rows", "256", "--cols", "4", "--density", "1",
		"--threads", "1", "--agg", "max")
	require.NoError(t, err)
	require.Equal(t, field(t, serial, "MAX"), field(t, out, "MAX"))
}

func TestRun_DebugLogging(t *testing.T) {
	_, errOut, err := execute(t, "--rows", "8", "--cols", "8", "--log-level", "debug", "--agg", "sum")
	require.NoError(t, err)
	require.Contains(t, errOut, "multi-aggregate plan")
	require.Contains(t, errOut, "op=MACLI")
}

func TestRun_UnsafeCompressedRejected(t *testing.T) {
	_, errOut, err := execute(t, "--rows", "8", "--cols", "8", "--format", "compressed", "--unsafe")
	require.Error(t, err)
	require.Contains(t, errOut, "Error:")
}

func TestRun_BadFlags(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"format", []string{"--format", "csr"}, "--format"},
		{"agg", []string{"--agg", "sum,avg"}, "--agg"},
		{"log level", []string{"--log-level", "loud"}, "--log-level"},
		{"threshold", []string{"--threshold", "-1"}, "--threshold"},
		{"values", []string{"--values", "cauchy"}, "--values"},
		{"density", []string{"--density", "1.5"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, append([]string{"--rows", "2", "--cols", "2"}, tc.args...)...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}

	_, _, err := execute(t, "--format", "csr")
	require.ErrorIs(t, err, matrix.ErrUnsupported)
}

// The usage line from the command documentation must run as written.
func TestRun_CompressedUsageLine(t *testing.T) {
	out, errOut, err := execute(t, "--format", "compressed", "--threads", "8", "--log-level", "debug")
	require.NoError(t, err, errOut)
	require.True(t, strings.HasPrefix(field(t, out, "input"), "compressed 1024x1024"))
	require.Equal(t, "true", field(t, out, "sparse-safe"))
	require.NotEmpty(t, field(t, out, "SUM"))
	require.NotEmpty(t, field(t, out, "SUM_SQ"))
	require.NotContains(t, out, "MIN")
	require.Contains(t, errOut, "multi-aggregate plan")
}

func TestRun_CompressedWithMinMaxNamesAgg(t *testing.T) {
	_, _, err := execute(t, "--rows", "16", "--cols", "4", "--format", "compressed", "--agg", "sum,min")
	require.ErrorIs(t, err, fused.ErrUnsafeCompressed)
	require.Contains(t, err.Error(), "--agg sum,min")
}

func TestRun_ValueDistributions(t *testing.T) {
	out, _, err := execute(t, "--rows", "64", "--cols", "8", "--density", "1",
		"--values", "normal", "--agg", "min,max", "--seed", "3")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(field(t, out, "MIN"), "-"), "standard normal draws go negative")

	out, _, err = execute(t, "--rows", "64", "--cols", "8", "--density", "1",
		"--values", "integer", "--agg", "sum")
	require.NoError(t, err)
	require.NotContains(t, field(t, out, "SUM"), ".")
}
