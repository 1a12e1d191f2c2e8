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

// Package report turns Counters snapshots into CSV rows and human-readable
// summaries.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/ajroetker/go-divconq/dnc"
)

// Header is the fixed CSV header.
var Header = []string{
	"Algorithm", "Size", "Run", "Time(ms)", "Comparisons",
	"ArrayAccesses", "Allocations", "Swaps", "MaxDepth",
}

// Row is the outcome of one measured run.
type Row struct {
	Algorithm string
	Size      int
	Run       int
	Stats     dnc.Stats
}

// Record renders r in Header order.
func (r Row) Record() []string {
	return []string{
		r.Algorithm,
		strconv.Itoa(r.Size),
		strconv.Itoa(r.Run),
		strconv.FormatFloat(r.Stats.ElapsedMillis(), 'f', -1, 64),
		strconv.FormatInt(r.Stats.Comparisons, 10),
		strconv.FormatInt(r.Stats.ArrayAccesses, 10),
		strconv.FormatInt(r.Stats.Allocations, 10),
		strconv.FormatInt(r.Stats.Swaps, 10),
		strconv.Itoa(r.Stats.MaxDepth),
	}
}

// Writer emits rows as CSV. The header is written before the first row.
type Writer struct {
	w      *csv.Writer
	header bool
	rows   int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w)}
}

// Write appends one row.
func (w *Writer) Write(r Row) error {
	if !w.header {
		if err := w.w.Write(Header); err != nil {
			return err
		}
		w.header = true
	}
	if err := w.w.Write(r.Record()); err != nil {
		return err
	}
	w.rows++
	return nil
}

// Flush writes any buffered data, including the header when no rows were
// written.
func (w *Writer) Flush() error {
	if !w.header {
		if err := w.w.Write(Header); err != nil {
			return err
		}
		w.header = true
	}
	w.w.Flush()
	return w.w.Error()
}

// Rows returns the number of data rows written.
func (w *Writer) Rows() int {
	return w.rows
}

// WriteFile writes rows to path, replacing any existing file.
func WriteFile(path string, rows []Row) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	w := NewWriter(f)
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return fmt.Errorf("report: writing %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("report: writing %s: %w", path, err)
	}
	return nil
}

// TimestampedPath inserts _YYYYMMDD_HHMMSS before the extension of path.
func TimestampedPath(path string, now time.Time) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + now.Format("20060102_150405") + ext
}
