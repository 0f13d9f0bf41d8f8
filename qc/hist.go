// qcreport: a tool for generating per-sample QC reports with MultiQC.
// Copyright (c) 2021-2022 seqscience.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/seqscience/qcreport/blob/master/LICENSE.txt>.

package qc

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/exascience/pargo/parallel"
	"github.com/willf/bitset"

	"github.com/seqscience/qcreport/internal"
)

// LengthHist is a read-length histogram. Counts maps a read length to
// the number of reads of that length; Observed marks the lengths that
// occurred in at least one input file, so merged output can be
// restricted to observed bins.
type LengthHist struct {
	Counts   map[uint]uint64
	Observed *bitset.BitSet
}

// NewLengthHist returns an empty read-length histogram.
func NewLengthHist() *LengthHist {
	return &LengthHist{
		Counts:   make(map[uint]uint64),
		Observed: bitset.New(1024),
	}
}

// Add records count additional reads of the given length.
func (hist *LengthHist) Add(length uint, count uint64) {
	hist.Counts[length] += count
	hist.Observed.Set(length)
}

// Merge adds all counts of the other histogram to this one.
func (hist *LengthHist) Merge(other *LengthHist) {
	for length, count := range other.Counts {
		hist.Counts[length] += count
	}
	hist.Observed.InPlaceUnion(other.Observed)
}

// ReadLengthHist parses a per-sample read-length histogram file: CSV
// records of the form length,count, with an optional header record.
func ReadLengthHist(filename string) (hist *LengthHist, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := file.Close(); err == nil {
			err = nerr
		}
	}()
	reader := csv.NewReader(file)
	reader.Comment = '#'
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%v in histogram file %v", err, filename)
	}
	hist = NewLengthHist()
	for i, record := range records {
		if len(record) != 2 {
			return nil, fmt.Errorf("invalid record %v in histogram file %v", record, filename)
		}
		length, lerr := strconv.ParseUint(record[0], 10, 64)
		if lerr != nil {
			if i == 0 {
				// header record
				continue
			}
			return nil, fmt.Errorf("invalid length %v in histogram file %v", record[0], filename)
		}
		count, cerr := strconv.ParseUint(record[1], 10, 64)
		if cerr != nil {
			return nil, fmt.Errorf("invalid count %v in histogram file %v", record[1], filename)
		}
		hist.Add(uint(length), count)
	}
	return hist, nil
}

// LoadAndCombineHists loads all per-sample read-length histogram
// files in the given directory and merges them into one histogram.
// Files are parsed in parallel; merging is order-independent.
func LoadAndCombineHists(histPath string) (*LengthHist, error) {
	files, err := internal.Directory(histPath)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, name := range files {
		if strings.HasSuffix(name, LengthHistSuffix) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no histogram files found in %v", histPath)
	}
	hists := make([]*LengthHist, len(names))
	errs := make([]error, len(names))
	parallel.Range(0, len(names), 0, func(low, high int) {
		for i := low; i < high; i++ {
			hists[i], errs[i] = ReadLengthHist(filepath.Join(histPath, names[i]))
		}
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	combined := NewLengthHist()
	for _, hist := range hists {
		combined.Merge(hist)
	}
	return combined, nil
}

// PrintLengthHist writes a merged read-length histogram to a file,
// preceded by a provenance header that records the command line that
// produced it. Only observed lengths are emitted, in ascending order.
func PrintLengthHist(output, commandString string, hist *LengthHist) (err error) {
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if nerr := file.Close(); err == nil {
			err = nerr
		}
	}()
	fmt.Fprintln(file, "## seqscience.qcreport.length_hist")
	fmt.Fprintf(file, "# %v\n", commandString)
	fmt.Fprintln(file, "# Started on:", time.Now().Format("Mon Jan 02 15:04:05 MST 2006"))
	fmt.Fprintln(file, "length,count")
	for length, ok := hist.Observed.NextSet(0); ok; length, ok = hist.Observed.NextSet(length + 1) {
		fmt.Fprintf(file, "%v,%v\n", length, hist.Counts[length])
	}
	return nil
}
