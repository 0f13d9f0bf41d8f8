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

import "testing"

func TestOutputDir(t *testing.T) {
	if dir := OutputDir(InvocationUnit{"/data/run1/"}, "multiqc", ""); dir != "run1_multiqc" {
		t.Error("OutputDir 1 failed: ", dir)
	}
	if dir := OutputDir(InvocationUnit{"sample.metrics.csv"}, "qc", "/out"); dir != "/out/sample_qc" {
		t.Error("OutputDir 2 failed: ", dir)
	}
	if dir := OutputDir(InvocationUnit{"a.csv", "b.csv"}, "multiqc", ""); dir != "a_multiqc" {
		t.Error("OutputDir 3 failed: ", dir)
	}
	if dir := OutputDir(InvocationUnit{"/data/sampleB.metrics.csv"}, "multiqc", "out"); dir != "out/sampleB_multiqc" {
		t.Error("OutputDir 4 failed: ", dir)
	}
	// names with dots before the extension truncate at the first dot
	if dir := OutputDir(InvocationUnit{"v1.2.metrics.csv"}, "multiqc", ""); dir != "v1_multiqc" {
		t.Error("OutputDir 5 failed: ", dir)
	}
	if dir := OutputDir(InvocationUnit{"run1"}, "qc", ""); dir != "run1_qc" {
		t.Error("OutputDir 6 failed: ", dir)
	}
}
