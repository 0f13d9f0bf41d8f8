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
	"io/ioutil"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func silentLogger() *log.Logger {
	return log.New(ioutil.Discard, "", 0)
}

// writeToolStub creates a fake external tool that appends its
// arguments to a record file and exits with the given status.
func writeToolStub(t *testing.T, dir, record string, exitStatus int) string {
	t.Helper()
	tool := filepath.Join(dir, "multiqc")
	script := "#!/bin/sh\necho \"$@\" >> " + record + "\nexit " + strconv.Itoa(exitStatus) + "\n"
	if err := ioutil.WriteFile(tool, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return tool
}

func readRecord(t *testing.T, record string) []string {
	t.Helper()
	contents, err := ioutil.ReadFile(record)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(contents)), "\n")
}

func TestDispatcherRun(t *testing.T) {
	dir := t.TempDir()
	record := filepath.Join(dir, "record")
	tool := writeToolStub(t, dir, record, 0)
	dispatcher := &Dispatcher{
		Tool:   tool,
		Force:  true,
		Suffix: "multiqc",
		Log:    silentLogger(),
	}
	units := []InvocationUnit{
		{"sampleA.metrics.csv", "sampleA.length_hist.csv"},
		{"sampleB.metrics.csv"},
	}
	results := dispatcher.Run(units)
	if len(results) != 2 {
		t.Fatal("Dispatcher run failed: ", results)
	}
	for _, result := range results {
		if result.Err != nil || result.ExitCode != 0 {
			t.Error("Dispatcher result failed: ", result)
		}
	}
	lines := readRecord(t, record)
	if len(lines) != 2 {
		t.Fatal("Dispatcher invocation count failed: ", lines)
	}
	if lines[0] != "--force --outdir sampleA_multiqc sampleA.metrics.csv sampleA.length_hist.csv" {
		t.Error("Dispatcher command line 1 failed: ", lines[0])
	}
	if lines[1] != "--force --outdir sampleB_multiqc sampleB.metrics.csv" {
		t.Error("Dispatcher command line 2 failed: ", lines[1])
	}
}

func TestDispatcherFailureIsolation(t *testing.T) {
	dir := t.TempDir()
	record := filepath.Join(dir, "record")
	tool := writeToolStub(t, dir, record, 1)
	dispatcher := &Dispatcher{
		Tool:   tool,
		Suffix: "multiqc",
		Log:    silentLogger(),
	}
	units := []InvocationUnit{
		{"sampleA.metrics.csv"},
		{"sampleB.metrics.csv"},
	}
	results := dispatcher.Run(units)
	if len(results) != 2 {
		t.Fatal("Dispatcher failure isolation failed: ", results)
	}
	for _, result := range results {
		if result.Err == nil || result.ExitCode != 1 {
			t.Error("Dispatcher failure result failed: ", result)
		}
	}
	if lines := readRecord(t, record); len(lines) != 2 {
		t.Error("Dispatcher did not attempt all units: ", lines)
	}
}

func TestDispatcherLaunchFailure(t *testing.T) {
	dispatcher := &Dispatcher{
		Tool:   filepath.Join(t.TempDir(), "missing"),
		Suffix: "multiqc",
		Log:    silentLogger(),
	}
	results := dispatcher.Run([]InvocationUnit{{"sampleA.metrics.csv"}, {"sampleB.metrics.csv"}})
	if len(results) != 2 {
		t.Fatal("Dispatcher launch failure isolation failed: ", results)
	}
	for _, result := range results {
		if result.Err == nil || result.ExitCode != -1 {
			t.Error("Dispatcher launch failure result failed: ", result)
		}
	}
}

func TestDispatcherDryRun(t *testing.T) {
	dir := t.TempDir()
	record := filepath.Join(dir, "record")
	tool := writeToolStub(t, dir, record, 0)
	dispatcher := &Dispatcher{
		Tool:   tool,
		Suffix: "multiqc",
		DryRun: true,
		Log:    silentLogger(),
	}
	results := dispatcher.Run([]InvocationUnit{{"sampleA.metrics.csv"}})
	if len(results) != 1 || results[0].Err != nil {
		t.Error("Dispatcher dry run failed: ", results)
	}
	if _, err := ioutil.ReadFile(record); err == nil {
		t.Error("Dispatcher dry run executed the tool")
	}
}

func TestDispatcherZeroUnits(t *testing.T) {
	dispatcher := &Dispatcher{
		Tool:   "/bin/missing",
		Suffix: "multiqc",
		Log:    silentLogger(),
	}
	if results := dispatcher.Run(nil); len(results) != 0 {
		t.Error("Dispatcher zero units failed: ", results)
	}
}
