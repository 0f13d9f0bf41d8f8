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
	"path/filepath"
	"strings"
)

// DefaultSuffix is the default output directory name suffix.
const DefaultSuffix = "multiqc"

// OutputDir computes the output directory for an invocation unit.
//
// The name is derived from the unit's first path: one trailing path
// separator is stripped, only the final path segment is kept, and the
// segment is truncated at its first '.' character. A name like
// v1.2.metrics.csv therefore becomes v1; this matches the historical
// behavior of the pipeline. The suffix is appended with a '_'
// separator, and the result is joined under outRoot when outRoot is
// non-empty, otherwise returned as a relative path.
func OutputDir(unit InvocationUnit, suffix, outRoot string) string {
	name := strings.TrimSuffix(unit[0], string(filepath.Separator))
	if index := strings.LastIndexByte(name, filepath.Separator); index >= 0 {
		name = name[index+1:]
	}
	if strings.HasSuffix(name, ".csv") {
		if index := strings.IndexByte(name, '.'); index >= 0 {
			name = name[:index]
		}
	}
	name = name + "_" + suffix
	if outRoot == "" {
		return name
	}
	return filepath.Join(outRoot, name)
}
