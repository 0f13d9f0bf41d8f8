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

// Package qc implements readers, combiners, and writers for the
// per-sample metric and histogram files produced by sequencing QC
// pipelines.
package qc

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/exascience/pargo/parallel"

	"github.com/seqscience/qcreport/internal"
)

const (
	// MetricsSuffix is the filename suffix of per-sample metric tables.
	MetricsSuffix = "metrics.csv"

	// LengthHistSuffix is the filename suffix of per-sample read-length histograms.
	LengthHistSuffix = "length_hist.csv"
)

// SampleKey returns the sample identifier for a QC output file: the
// portion of its base name before the first '.' character. Files of
// the same sample share the key, for example sampleA.metrics.csv and
// sampleA.length_hist.csv both map to sampleA.
func SampleKey(name string) string {
	name = filepath.Base(name)
	if index := strings.IndexByte(name, '.'); index >= 0 {
		return name[:index]
	}
	return name
}

// MetricsTable is the parsed contents of one per-sample metrics file.
type MetricsTable struct {
	Sample string
	Header []string
	Rows   [][]string
}

// CombinedMetrics is a metrics table combined over several samples,
// with a leading SAMPLE column identifying the origin of each row.
type CombinedMetrics struct {
	Header []string
	Rows   [][]string
}

// ReadMetrics parses a per-sample metrics file. The first
// non-comment record is the header; every following record is a data
// row and must have the same number of fields as the header.
func ReadMetrics(filename string) (table *MetricsTable, err error) {
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
		return nil, fmt.Errorf("%v in metrics file %v", err, filename)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header in metrics file %v", filename)
	}
	return &MetricsTable{
		Sample: SampleKey(filename),
		Header: records[0],
		Rows:   records[1:],
	}, nil
}

func headersEqual(header1, header2 []string) bool {
	if len(header1) != len(header2) {
		return false
	}
	for i, entry := range header1 {
		if entry != header2[i] {
			return false
		}
	}
	return true
}

// LoadAndCombineMetrics loads all per-sample metrics files in the
// given directory and combines them into a single table. Files are
// parsed in parallel; rows appear in sorted sample order, each
// prefixed with its sample name. All files must agree on the header.
func LoadAndCombineMetrics(metricsPath string) (*CombinedMetrics, error) {
	files, err := internal.Directory(metricsPath)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, name := range files {
		if strings.HasSuffix(name, MetricsSuffix) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no metrics files found in %v", metricsPath)
	}
	tables := make([]*MetricsTable, len(names))
	errs := make([]error, len(names))
	parallel.Range(0, len(names), 0, func(low, high int) {
		for i := low; i < high; i++ {
			tables[i], errs[i] = ReadMetrics(filepath.Join(metricsPath, names[i]))
		}
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	combined := new(CombinedMetrics)
	for i, table := range tables {
		if i == 0 {
			combined.Header = append([]string{"SAMPLE"}, table.Header...)
		} else if !headersEqual(combined.Header[1:], table.Header) {
			return nil, fmt.Errorf("header of metrics file %v does not match %v", names[i], names[0])
		}
		for _, row := range table.Rows {
			combined.Rows = append(combined.Rows, append([]string{table.Sample}, row...))
		}
	}
	return combined, nil
}

// PrintMetrics writes a combined metrics table to a file, preceded by
// a provenance header that records the command line that produced it.
func PrintMetrics(metrics, commandString string, combined *CombinedMetrics) (err error) {
	file, err := os.Create(metrics)
	if err != nil {
		return err
	}
	defer func() {
		if nerr := file.Close(); err == nil {
			err = nerr
		}
	}()
	fmt.Fprintln(file, "## seqscience.qcreport.metrics")
	fmt.Fprintf(file, "# %v\n", commandString)
	fmt.Fprintln(file, "# Started on:", time.Now().Format("Mon Jan 02 15:04:05 MST 2006"))
	writer := csv.NewWriter(file)
	if err := writer.Write(combined.Header); err != nil {
		return err
	}
	if err := writer.WriteAll(combined.Rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
