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

package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-divconq/dnc"
)

const wantHeader = "Algorithm,Size,Run,Time(ms),Comparisons,ArrayAccesses,Allocations,Swaps,MaxDepth"

func sampleRows() []Row {
	return []Row{
		{"MergeSort", 1000, 1, dnc.Stats{Comparisons: 8700, ArrayAccesses: 30000, Allocations: 1000, Elapsed: 1500 * time.Microsecond, MaxDepth: 8}},
		{"MergeSort", 1000, 2, dnc.Stats{Comparisons: 8900, ArrayAccesses: 31000, Allocations: 1000, Elapsed: 500 * time.Microsecond, MaxDepth: 8}},
		{"QuickSort", 1000, 1, dnc.Stats{Comparisons: 11000, ArrayAccesses: 50000, Swaps: 6000, Elapsed: time.Millisecond, MaxDepth: 9}},
	}
}

func TestRowRecord(t *testing.T) {
	got := sampleRows()[0].Record()
	want := []string{"MergeSort", "1000", "1", "1.5", "8700", "30000", "1000", "0", "8"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Record() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, r := range sampleRows() {
		require.NoError(t, w.Write(r))
	}
	require.NoError(t, w.Flush())
	assert.Equal(t, 3, w.Rows())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, wantHeader, lines[0])
	assert.Equal(t, "QuickSort,1000,1,1,11000,50000,0,6000,9", lines[3])
}

func TestWriterHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Flush())
	require.NoError(t, w.Flush())
	assert.Equal(t, wantHeader+"\n", buf.String())
	assert.Zero(t, w.Rows())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, WriteFile(path, sampleRows()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, "2", records[2][2])
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "results.csv"), sampleRows())
	assert.Error(t, err)
}

func TestTimestampedPath(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t, "out/results_20260304_050607.csv", TimestampedPath("out/results.csv", now))
	assert.Equal(t, "results_20260304_050607", TimestampedPath("results", now))
}

func TestSummarize(t *testing.T) {
	aggs := Summarize(sampleRows())
	require.Len(t, aggs, 2)

	ms := aggs[0]
	assert.Equal(t, "MergeSort", ms.Algorithm)
	assert.Equal(t, 1000, ms.Size)
	assert.Equal(t, 2, ms.Runs)
	assert.InDelta(t, 1.0, ms.MeanMillis, 1e-12)
	assert.InDelta(t, 8800.0, ms.MeanComparisons, 1e-12)
	assert.InDelta(t, 30500.0, ms.MeanArrayAccesses, 1e-12)
	assert.Equal(t, 8, ms.MaxDepth)

	assert.Equal(t, "QuickSort", aggs[1].Algorithm)
	assert.InDelta(t, 6000.0, aggs[1].MeanSwaps, 1e-12)

	assert.Empty(t, Summarize(nil))
}

func TestFormatter(t *testing.T) {
	f := NewFormatter(language.Und)

	line := f.Row(sampleRows()[2])
	assert.Contains(t, line, "Run 1:")
	assert.Contains(t, line, "Time: 1.000ms")
	assert.Contains(t, line, "Comparisons: 11,000")
	assert.Contains(t, line, "Swaps: 6,000")

	agg := f.Aggregate(Summarize(sampleRows())[0])
	assert.Contains(t, agg, "MergeSort n=1,000 runs=2")
	assert.Contains(t, agg, "8,800 comparisons")
	assert.Contains(t, agg, "max depth 8")
}
