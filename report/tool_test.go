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
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveToolExplicit(t *testing.T) {
	dir := t.TempDir()
	tool := filepath.Join(dir, "multiqc")
	if err := ioutil.WriteFile(tool, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	resolved, err := ResolveTool(tool)
	if err != nil {
		t.Fatal(err)
	}
	if resolved != tool {
		t.Error("ResolveTool explicit failed: ", resolved)
	}
}

func TestResolveToolNotExecutable(t *testing.T) {
	dir := t.TempDir()
	tool := filepath.Join(dir, "multiqc")
	if err := ioutil.WriteFile(tool, []byte("#!/bin/sh\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := ResolveTool(tool)
	var invalid *InvalidToolError
	if !errors.As(err, &invalid) {
		t.Error("ResolveTool of non-executable file failed: ", err)
	}
}

func TestResolveToolDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := ResolveTool(dir)
	var invalid *InvalidToolError
	if !errors.As(err, &invalid) {
		t.Error("ResolveTool of directory failed: ", err)
	}
}

func TestResolveToolNotFound(t *testing.T) {
	dir := t.TempDir()
	orgPath := os.Getenv("PATH")
	defer os.Setenv("PATH", orgPath)
	if err := os.Setenv("PATH", dir); err != nil {
		t.Fatal(err)
	}
	_, err := ResolveTool("")
	var notFound *ToolNotFoundError
	if !errors.As(err, &notFound) {
		t.Error("ResolveTool with empty search path failed: ", err)
	}
}

func TestResolveToolFromPath(t *testing.T) {
	dir := t.TempDir()
	tool := filepath.Join(dir, "multiqc")
	if err := ioutil.WriteFile(tool, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	orgPath := os.Getenv("PATH")
	defer os.Setenv("PATH", orgPath)
	if err := os.Setenv("PATH", dir); err != nil {
		t.Fatal(err)
	}
	resolved, err := ResolveTool("")
	if err != nil {
		t.Fatal(err)
	}
	if resolved != tool {
		t.Error("ResolveTool from search path failed: ", resolved)
	}
}
