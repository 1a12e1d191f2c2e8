// Copyright 2025 go-divconq Authors
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

package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-divconq/dnc"
	"github.com/ajroetker/go-divconq/dnc/contrib/datagen"
	"github.com/ajroetker/go-divconq/dnc/contrib/report"
	"github.com/ajroetker/go-divconq/dnc/contrib/workerpool"
)

func newTestRunner(t *testing.T, out *bytes.Buffer) *Runner {
	pool := workerpool.New(2)
	t.Cleanup(pool.Close)
	r := &Runner{
		Gen:       datagen.New(1, pool),
		Bound:     1000,
		Log:       zaptest.NewLogger(t),
		Formatter: report.NewFormatter(language.English),
	}
	if out != nil {
		r.Out = out
	}
	return r
}

func TestRunnerAll(t *testing.T) {
	var out bytes.Buffer
	rows, err := newTestRunner(t, &out).Run("all", 200, 2)
	require.NoError(t, err)
	require.Len(t, rows, 8)

	labels := []string{"MergeSort", "MergeSort", "QuickSort", "QuickSort", "Select", "Select", "ClosestPair", "ClosestPair"}
	for i, row := range rows {
		assert.Equal(t, labels[i], row.Algorithm)
		assert.Equal(t, 200, row.Size)
		assert.Equal(t, i%2+1, row.Run)
		assert.Positive(t, row.Stats.Comparisons, row.Algorithm)
		assert.Positive(t, row.Stats.ArrayAccesses, row.Algorithm)
		assert.Positive(t, row.Stats.MaxDepth, row.Algorithm)
	}
	assert.Contains(t, out.String(), "Run 2: Time:")
}

func TestRunnerSingle(t *testing.T) {
	rows, err := newTestRunner(t, nil).Run("select", 50, 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, "Select", row.Algorithm)
		assert.Positive(t, row.Stats.Swaps)
	}
}

func TestRunnerErrors(t *testing.T) {
	r := newTestRunner(t, nil)

	_, err := r.Run("bogosort", 10, 1)
	assert.ErrorContains(t, err, `unknown algorithm "bogosort"`)

	_, err = r.Run("closest", 1, 1)
	assert.ErrorIs(t, err, dnc.ErrDomain)
}

func TestParseArgs(t *testing.T) {
	inv, err := parseArgs([]string{"MergeSort"})
	require.NoError(t, err)
	assert.Equal(t, invocation{"mergesort", defaultSize, defaultRuns, defaultOutput}, inv)

	inv, err = parseArgs([]string{"quicksort", "500", "3", "out.csv"})
	require.NoError(t, err)
	assert.Equal(t, invocation{"quicksort", 500, 3, "out.csv"}, inv)

	for _, args := range [][]string{
		{"quicksort", "x"},
		{"quicksort", "10", "y"},
		{"quicksort", "0"},
		{"quicksort", "10", "-1"},
	} {
		_, err := parseArgs(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestRootCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"quicksort", "300", "2", path, "--seed", "7", "--workers", "2"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Running quicksort with size 300 for 2 runs")
	assert.Contains(t, out.String(), "QuickSort n=300 runs=2")
	assert.Contains(t, out.String(), "Results written to "+path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, report.Header, records[0])
	assert.Equal(t, []string{"QuickSort", "300", "1"}, records[1][:3])
	assert.Equal(t, []string{"QuickSort", "300", "2"}, records[2][:3])
}

func TestRootCommandRejectsBadInput(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"heapsort", "10"},
		{"select", "10", "1", filepath.Join(t.TempDir(), "x.csv"), "--bound", "0"},
	} {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		assert.Error(t, cmd.Execute(), "%v", args)
	}
}

func TestCPUFeaturesDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { _ = cpuFeatures() })
}
