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

package report

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/seqscience/qcreport/internal"
	"github.com/seqscience/qcreport/qc"
)

// InvocationUnit is one grouped set of input paths passed together in
// a single external-tool execution.
type InvocationUnit []string

// Expand turns the raw input paths into invocation units.
//
// Multiple explicit inputs form a single unit holding the whole list.
// A single input naming a directory is scanned (non-recursively) for
// files ending in metrics.csv or length_hist.csv; the matches are
// grouped by sample key, one unit per sample, in first-seen key order
// of the sorted directory listing. A directory without matching files
// expands to zero units. A single input naming a plain file forms a
// single unit holding just that file.
func Expand(inputs []string) ([]InvocationUnit, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	if len(inputs) > 1 {
		return []InvocationUnit{InvocationUnit(inputs)}, nil
	}
	dir := inputs[0]
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []InvocationUnit{{dir}}, nil
	}
	files, err := internal.Directory(dir)
	if err != nil {
		return nil, err
	}
	var keys []string
	groups := make(map[string][]string)
	for _, name := range files {
		if !strings.HasSuffix(name, qc.MetricsSuffix) && !strings.HasSuffix(name, qc.LengthHistSuffix) {
			continue
		}
		key := qc.SampleKey(name)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], filepath.Join(dir, name))
	}
	units := make([]InvocationUnit, 0, len(keys))
	for _, key := range keys {
		units = append(units, groups[key])
	}
	return units, nil
}
